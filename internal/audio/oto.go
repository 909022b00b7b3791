package audio

import (
	"io"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/oto/v2"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
)

// maxVoices limits overlapping clicks; a fast stream of hits would
// otherwise stack into clipping.
const maxVoices = 3

// OtoPlayer plays a procedurally generated click through the local sound
// device.
type OtoPlayer struct {
	ctx    *oto.Context
	ready  chan struct{}
	click  []byte
	volume float64
	voices atomic.Int32
}

// NewOtoPlayer opens the sound device. The context becomes usable
// asynchronously; clicks before that are dropped.
func NewOtoPlayer(volume float64) (*OtoPlayer, error) {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, oto.FormatFloat32LE)
	if err != nil {
		return nil, err
	}
	return &OtoPlayer{
		ctx:    ctx,
		ready:  ready,
		click:  genClick(SampleRate),
		volume: volume,
	}, nil
}

// Play implements Player.
func (p *OtoPlayer) Play() {
	select {
	case <-p.ready:
	default:
		return
	}
	if p.voices.Add(1) > maxVoices {
		p.voices.Add(-1)
		return
	}

	go func() {
		defer p.voices.Add(-1)
		player := p.ctx.NewPlayer(&soundReader{data: p.click})
		player.SetVolume(p.volume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		//nolint:errcheck // Nothing to do about a failed close
		player.Close()
	}()
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}
