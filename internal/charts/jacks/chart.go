// Package jacks implements a chart of same-lane pairs. Consecutive beats on
// one lane are a "jack"; each lane is hit twice before moving on.
package jacks

import (
	"math/rand"

	"github.com/vovakirdan/tui-beats/internal/config"
	"github.com/vovakirdan/tui-beats/internal/registry"
	"github.com/vovakirdan/tui-beats/internal/rhythm"
)

// Chart alternates random lanes, each repeated twice in a row.
type Chart struct{}

// New creates a jacks chart generator.
func New() *Chart {
	return &Chart{}
}

// ID returns the unique identifier for this chart.
func (c *Chart) ID() string {
	return "jacks"
}

// Title returns the display name for this chart.
func (c *Chart) Title() string {
	return "Jacks"
}

// Generate builds cfg.Count beats in pairs. A new pair never reuses the
// previous pair's lane.
func (c *Chart) Generate(seed int64, cfg config.ChartConfig) []rhythm.BeatSpec {
	rng := rand.New(rand.NewSource(seed))

	beats := make([]rhythm.BeatSpec, 0, cfg.Count)
	lane := rhythm.Lane(rng.Intn(rhythm.LaneCount))
	for n := range cfg.Count {
		if n > 0 && n%2 == 0 {
			// shift by 1..LaneCount-1 so the lane always changes
			lane = (lane + rhythm.Lane(1+rng.Intn(rhythm.LaneCount-1))) % rhythm.LaneCount
		}
		beats = append(beats, rhythm.BeatSpec{
			Lane:  lane,
			HitAt: cfg.Slot(n),
		})
	}
	return beats
}

func init() {
	registry.Register("jacks", func() registry.Generator {
		return New()
	})
}
