package rhythm

import "time"

// RemovalReason tells the render layer why a beat disappeared.
type RemovalReason int

const (
	RemovedHit RemovalReason = iota
	RemovedExpired
)

// String returns a short name for the reason.
func (r RemovalReason) String() string {
	switch r {
	case RemovedHit:
		return "hit"
	case RemovedExpired:
		return "expired"
	default:
		return "unknown"
	}
}

// Removal notifies that a beat left the set.
type Removal struct {
	Beat   Beat
	Reason RemovalReason
}

// FeedbackEvent is emitted once per resolved hit.
// The presentation layer owns how long it stays on screen.
type FeedbackEvent struct {
	Tier   Tier
	Lane   Lane
	BeatID BeatID
	Delta  time.Duration // signed time-to-line at the moment of the press
}

// Events collects everything the session emitted since the last drain.
type Events struct {
	Feedback []FeedbackEvent
	Removed  []Removal

	// HitSounds counts hit-sound triggers. Players coalesce them to a single
	// playback per frame.
	HitSounds int
}

// Empty reports whether no events were emitted.
func (e Events) Empty() bool {
	return len(e.Feedback) == 0 && len(e.Removed) == 0 && e.HitSounds == 0
}
