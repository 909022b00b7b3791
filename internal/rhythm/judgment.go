package rhythm

import "time"

// Tier is the accuracy classification of a hit attempt.
// Tiers are ordered by severity: Perfect is the best, Miss the worst.
type Tier int

const (
	TierPerfect Tier = iota
	TierGood
	TierOkay
	TierMeh
	TierMiss
)

// Tiers lists every tier in severity order.
var Tiers = [...]Tier{TierPerfect, TierGood, TierOkay, TierMeh, TierMiss}

// Upper bounds (exclusive) of each tier's window on |delta|.
const (
	PerfectWindow = 15 * time.Millisecond
	GoodWindow    = 30 * time.Millisecond
	OkayWindow    = 50 * time.Millisecond
	MehWindow     = 100 * time.Millisecond
)

// Classify maps a signed time delta to a tier using only its magnitude.
func Classify(d time.Duration) Tier {
	if d < 0 {
		d = -d
	}

	switch {
	case d < PerfectWindow:
		return TierPerfect
	case d < GoodWindow:
		return TierGood
	case d < OkayWindow:
		return TierOkay
	case d < MehWindow:
		return TierMeh
	default:
		return TierMiss
	}
}

// Points returns the score value of the tier.
func (t Tier) Points() int {
	switch t {
	case TierPerfect:
		return 100
	case TierGood:
		return 50
	case TierOkay:
		return 25
	case TierMeh:
		return 10
	default:
		return 0
	}
}

// String returns the feedback text shown for the tier.
func (t Tier) String() string {
	switch t {
	case TierPerfect:
		return "Perfect!"
	case TierGood:
		return "Good!"
	case TierOkay:
		return "Okay!"
	case TierMeh:
		return "Meh!"
	case TierMiss:
		return "Miss!"
	default:
		return "Unknown"
	}
}
