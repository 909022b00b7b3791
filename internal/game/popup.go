package game

import (
	"time"

	"github.com/vovakirdan/tui-beats/internal/core"
	"github.com/vovakirdan/tui-beats/internal/rhythm"
)

// popup is a judgement label shown above the hit line for a few frames.
type popup struct {
	tier  rhythm.Tier
	lane  rhythm.Lane
	delta time.Duration
	ttl   int // frames left
}

// agePopups counts down every popup and drops the finished ones.
func (g *Game) agePopups() {
	live := g.popups[:0]
	for _, p := range g.popups {
		p.ttl--
		if p.ttl > 0 {
			live = append(live, p)
		}
	}
	g.popups = live
}

// rise is how many rows the popup has drifted upward.
func (p popup) rise(frames int) int {
	age := frames - p.ttl
	return age * 2 / max(frames, 1)
}

// color fades the tier color to gray during the last third of its life.
func (p popup) color(frames int) core.Color {
	if p.ttl*3 < frames {
		return core.ColorGray
	}
	return TierColor(p.tier)
}

// TierColor returns the display color of a judgement tier.
func TierColor(t rhythm.Tier) core.Color {
	switch t {
	case rhythm.TierPerfect:
		return core.ColorBrightCyan
	case rhythm.TierGood:
		return core.ColorDarkCyan
	case rhythm.TierOkay:
		return core.ColorGreen
	case rhythm.TierMeh:
		return core.ColorGold
	default:
		return core.ColorRed
	}
}
