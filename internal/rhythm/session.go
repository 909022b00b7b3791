package rhythm

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidLane is returned when a lane index outside [0, LaneCount)
// reaches the engine. It indicates a programming error at the input boundary.
var ErrInvalidLane = errors.New("rhythm: invalid lane")

// Session holds the complete state of one run: timing anchor, live beats,
// score and pending events. It is owned by a single update loop and is not
// safe for concurrent use.
type Session struct {
	timing  TrackTiming
	beats   *BeatSet
	score   int
	counts  [len(Tiers)]int
	expired int
	total   int
	pending Events
}

// NewSession creates a session anchored at startAt and populated with the
// given beats. Returns an error if any beat has an invalid lane.
func NewSession(startAt time.Time, specs []BeatSpec) (*Session, error) {
	s := &Session{
		timing: NewTrackTiming(startAt),
		beats:  NewBeatSet(),
	}
	for i, spec := range specs {
		if _, err := s.beats.Insert(spec.Lane, spec.HitAt); err != nil {
			return nil, fmt.Errorf("rhythm: beat %d: %w", i, err)
		}
	}
	s.total = len(specs)
	return s, nil
}

// Timing returns the session's timing anchor.
func (s *Session) Timing() TrackTiming {
	return s.timing
}

// Beats returns the live beat set. Callers must not insert or remove beats
// outside of the session's own operations.
func (s *Session) Beats() *BeatSet {
	return s.beats
}

// Score returns the running total.
func (s *Session) Score() int {
	return s.score
}

// Count returns how many hits were judged as the given tier.
func (s *Session) Count(t Tier) int {
	if t < 0 || int(t) >= len(s.counts) {
		return 0
	}
	return s.counts[t]
}

// Expired returns how many beats were swept without being played.
func (s *Session) Expired() int {
	return s.expired
}

// Total returns the number of beats the session started with.
func (s *Session) Total() int {
	return s.total
}

// Done reports whether every beat has been hit or expired.
func (s *Session) Done() bool {
	return s.beats.Len() == 0
}

// Frame runs one update tick: presses are resolved first, in order, then the
// expiry sweep runs at now. A press with a zero At is resolved at now.
// Only the first press per lane is used. If any press carries an invalid
// lane the whole frame is rejected and the session is left unchanged.
func (s *Session) Frame(presses []Press, now time.Time) (Events, error) {
	for _, p := range presses {
		if !p.Lane.Valid() {
			return Events{}, fmt.Errorf("%w: %d", ErrInvalidLane, int(p.Lane))
		}
	}

	var seen [LaneCount]bool
	for _, p := range presses {
		if seen[p.Lane] {
			continue
		}
		seen[p.Lane] = true

		at := p.At
		if at.IsZero() {
			at = now
		}
		//nolint:errcheck // lane validated above
		s.Press(p.Lane, at)
	}

	s.Sweep(now)
	return s.Drain(), nil
}

// Drain returns the events emitted since the last drain and clears them.
func (s *Session) Drain() Events {
	ev := s.pending
	s.pending = Events{}
	return ev
}
