// Package stairs implements a fixed ladder chart that walks the lanes up and
// back down.
package stairs

import (
	"github.com/vovakirdan/tui-beats/internal/config"
	"github.com/vovakirdan/tui-beats/internal/registry"
	"github.com/vovakirdan/tui-beats/internal/rhythm"
)

// pattern is one period of the ladder: 0 1 2 3 2 1.
var pattern = []rhythm.Lane{0, 1, 2, 3, 2, 1}

// Chart ignores the seed; every run is the same.
type Chart struct{}

// New creates a stairs chart generator.
func New() *Chart {
	return &Chart{}
}

// ID returns the unique identifier for this chart.
func (c *Chart) ID() string {
	return "stairs"
}

// Title returns the display name for this chart.
func (c *Chart) Title() string {
	return "Stairs"
}

// Generate builds cfg.Count beats following the ladder.
func (c *Chart) Generate(_ int64, cfg config.ChartConfig) []rhythm.BeatSpec {
	beats := make([]rhythm.BeatSpec, 0, cfg.Count)
	for n := range cfg.Count {
		beats = append(beats, rhythm.BeatSpec{
			Lane:  pattern[n%len(pattern)],
			HitAt: cfg.Slot(n),
		})
	}
	return beats
}

func init() {
	registry.Register("stairs", func() registry.Generator {
		return New()
	})
}
