package rhythm

import (
	"fmt"
	"time"
)

// HitWindow is the time-to-line below which a beat becomes hittable.
// There is no lower bound besides the expiry sweep: a very late beat can
// still be pressed (and judged Miss) until it is swept.
const HitWindow = 100 * time.Millisecond

// Press is a single "lane pressed" input event.
type Press struct {
	Lane Lane
	At   time.Time
}

// Resolution describes the outcome of a press.
type Resolution struct {
	Hit    bool
	Beat   Beat
	Tier   Tier
	Delta  time.Duration
	Points int
}

// Press resolves a key press on lane at the given time.
// If a beat is eligible it is judged, scored and removed, and exactly one
// feedback event and one hit-sound trigger are queued. Pressing a lane with
// nothing hittable has no effect.
func (s *Session) Press(lane Lane, at time.Time) (Resolution, error) {
	if !lane.Valid() {
		return Resolution{}, fmt.Errorf("%w: %d", ErrInvalidLane, int(lane))
	}

	b, delta, ok := s.candidate(lane, at)
	if !ok {
		return Resolution{}, nil
	}

	tier := Classify(delta)
	points := tier.Points()
	s.score += points
	s.counts[tier]++
	s.beats.Remove(b.ID)

	s.pending.Feedback = append(s.pending.Feedback, FeedbackEvent{
		Tier:   tier,
		Lane:   lane,
		BeatID: b.ID,
		Delta:  delta,
	})
	s.pending.Removed = append(s.pending.Removed, Removal{Beat: b, Reason: RemovedHit})
	s.pending.HitSounds++

	return Resolution{
		Hit:    true,
		Beat:   b,
		Tier:   tier,
		Delta:  delta,
		Points: points,
	}, nil
}

// candidate picks the beat a press on lane at the given time applies to.
// Among eligible beats the earliest scheduled one wins, ties broken by ID,
// so the choice never depends on set iteration order.
func (s *Session) candidate(lane Lane, at time.Time) (Beat, time.Duration, bool) {
	var (
		best  Beat
		delta time.Duration
		found bool
	)

	for b := range s.beats.Lane(lane) {
		d := b.TimeToLine(s.timing, at)
		if d >= HitWindow {
			continue
		}
		if !found || b.HitAt < best.HitAt || (b.HitAt == best.HitAt && b.ID < best.ID) {
			best, delta, found = b, d, true
		}
	}

	return best, delta, found
}
