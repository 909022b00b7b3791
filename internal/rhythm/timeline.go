// Package rhythm implements the timing and judgement engine for the beats game.
// It maps wall-clock time to beat positions, classifies hit attempts and keeps
// score. Like the rest of the game logic it has no terminal or I/O dependencies:
// every operation takes the current time as an argument.
package rhythm

import "time"

// Render boundary constants. A beat's render offset is one unit per
// MillisPerUnit milliseconds of time-to-line, shifted so the hit line sits
// at HitLineOffset.
const (
	MillisPerUnit = 3.0
	HitLineOffset = 20.0
)

// TrackTiming anchors every timing computation of a session.
// It is created once when the session starts and never modified.
type TrackTiming struct {
	StartAt time.Time
}

// NewTrackTiming creates the timing anchor for a session starting at startAt.
func NewTrackTiming(startAt time.Time) TrackTiming {
	return TrackTiming{StartAt: startAt}
}

// HitTime returns the absolute moment a beat scheduled at hitAt crosses the line.
func (t TrackTiming) HitTime(hitAt time.Duration) time.Time {
	return t.StartAt.Add(hitAt)
}

// Elapsed returns how far into the session now is.
func (t TrackTiming) Elapsed(now time.Time) time.Duration {
	return now.Sub(t.StartAt)
}

// TimeToLine returns (StartAt + hitAt) - now.
// Positive values mean the beat is still approaching, negative values mean
// it has already passed the hit line. Rendering, expiry and hit resolution
// all go through this function so what is drawn is what is judged.
func TimeToLine(t TrackTiming, hitAt time.Duration, now time.Time) time.Duration {
	return t.HitTime(hitAt).Sub(now)
}

// RenderOffset converts a time-to-line into a vertical offset above the
// bottom edge, with the hit line at HitLineOffset.
func RenderOffset(d time.Duration) float64 {
	return float64(d.Milliseconds())/MillisPerUnit + HitLineOffset
}
