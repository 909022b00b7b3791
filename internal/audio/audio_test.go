package audio

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"
	"testing"

	"github.com/vovakirdan/tui-beats/internal/config"
)

func TestGenClick(t *testing.T) {
	buf := genClick(SampleRate)

	frames := int(clickDuration.Seconds() * SampleRate)
	if len(buf) != frames*8 {
		t.Fatalf("len = %d, expected %d", len(buf), frames*8)
	}

	var peak float64
	for i := 0; i < len(buf); i += 8 {
		l := math.Float32frombits(binary.LittleEndian.Uint32(buf[i:]))
		r := math.Float32frombits(binary.LittleEndian.Uint32(buf[i+4:]))
		if l != r {
			t.Fatalf("frame %d: channels differ (%v, %v)", i/8, l, r)
		}
		if math.IsNaN(float64(l)) || l < -1 || l > 1 {
			t.Fatalf("frame %d: sample %v out of range", i/8, l)
		}
		peak = max(peak, math.Abs(float64(l)))
	}
	if peak < 0.05 {
		t.Errorf("click is silent, peak = %v", peak)
	}

	// starts and ends near silence so it does not pop
	first := math.Float32frombits(binary.LittleEndian.Uint32(buf))
	last := math.Float32frombits(binary.LittleEndian.Uint32(buf[len(buf)-8:]))
	if math.Abs(float64(first)) > 0.01 || math.Abs(float64(last)) > 0.01 {
		t.Errorf("click edges not silent: first %v last %v", first, last)
	}
}

func TestSoundReader(t *testing.T) {
	r := &soundReader{data: []byte{1, 2, 3, 4, 5}}
	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll() failed: %v", err)
	}
	if !bytes.Equal(got, []byte{1, 2, 3, 4, 5}) {
		t.Errorf("ReadAll() = %v", got)
	}
}

func TestBellPlayer(t *testing.T) {
	var out bytes.Buffer
	p := NewBellPlayer(&out)
	p.Play()
	p.Play()

	if out.String() != "\a\a" {
		t.Errorf("output = %q, expected two bells", out.String())
	}
}

func TestNewSelectsBackend(t *testing.T) {
	var out bytes.Buffer

	p, err := New(config.AudioConfig{Backend: config.AudioNone}, &out)
	if err != nil {
		t.Fatalf("New(none) failed: %v", err)
	}
	if _, ok := p.(Nop); !ok {
		t.Errorf("New(none) = %T, expected Nop", p)
	}

	p, err = New(config.AudioConfig{Backend: config.AudioBell}, &out)
	if err != nil {
		t.Fatalf("New(bell) failed: %v", err)
	}
	if _, ok := p.(*BellPlayer); !ok {
		t.Errorf("New(bell) = %T, expected *BellPlayer", p)
	}

	if _, err := New(config.AudioConfig{Backend: "midi"}, &out); err == nil {
		t.Error("unknown backend should fail")
	}
}
