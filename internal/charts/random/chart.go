// Package random implements the default chart: evenly spaced beats on
// uniformly random lanes.
package random

import (
	"math/rand"

	"github.com/vovakirdan/tui-beats/internal/config"
	"github.com/vovakirdan/tui-beats/internal/registry"
	"github.com/vovakirdan/tui-beats/internal/rhythm"
)

// Chart places one beat per slot on a random lane.
type Chart struct{}

// New creates a random chart generator.
func New() *Chart {
	return &Chart{}
}

// ID returns the unique identifier for this chart.
func (c *Chart) ID() string {
	return "random"
}

// Title returns the display name for this chart.
func (c *Chart) Title() string {
	return "Random"
}

// Generate builds cfg.Count beats. The lane sequence depends only on seed.
func (c *Chart) Generate(seed int64, cfg config.ChartConfig) []rhythm.BeatSpec {
	rng := rand.New(rand.NewSource(seed))

	beats := make([]rhythm.BeatSpec, 0, cfg.Count)
	for n := range cfg.Count {
		beats = append(beats, rhythm.BeatSpec{
			Lane:  rhythm.Lane(rng.Intn(rhythm.LaneCount)),
			HitAt: cfg.Slot(n),
		})
	}
	return beats
}

// Register the chart with the global registry
func init() {
	registry.Register("random", func() registry.Generator {
		return New()
	})
}
