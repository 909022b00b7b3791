// Package audio plays the hit sound. The game triggers at most one cue per
// frame; backends decide how it is produced.
package audio

import (
	"fmt"
	"io"
	"sync"

	"github.com/vovakirdan/tui-beats/internal/config"
)

// Player produces one hit-sound cue per call.
// Play must not block the update loop.
type Player interface {
	Play()
}

// Nop is a Player that does nothing.
type Nop struct{}

// Play implements Player.
func (Nop) Play() {}

// BellPlayer rings the terminal bell. Used for SSH sessions, where the
// server's speaker is not the player's.
type BellPlayer struct {
	mu sync.Mutex
	w  io.Writer
}

// NewBellPlayer creates a bell player writing to w.
func NewBellPlayer(w io.Writer) *BellPlayer {
	return &BellPlayer{w: w}
}

// Play implements Player.
func (b *BellPlayer) Play() {
	b.mu.Lock()
	defer b.mu.Unlock()
	//nolint:errcheck // A lost bell is not worth interrupting the run
	b.w.Write([]byte{'\a'})
}

// New builds the player selected by cfg. bell is the terminal output used
// by the bell backend.
func New(cfg config.AudioConfig, bell io.Writer) (Player, error) {
	switch cfg.Backend {
	case config.AudioNone:
		return Nop{}, nil
	case config.AudioBell:
		return NewBellPlayer(bell), nil
	case config.AudioOto:
		p, err := NewOtoPlayer(cfg.Volume)
		if err != nil {
			return nil, fmt.Errorf("audio: %w", err)
		}
		return p, nil
	default:
		return nil, fmt.Errorf("audio: unknown backend %q", cfg.Backend)
	}
}
