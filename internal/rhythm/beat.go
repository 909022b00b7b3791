package rhythm

import (
	"fmt"
	"iter"
	"slices"
	"time"
)

// LaneCount is the number of key-bound columns.
const LaneCount = 4

// Lane identifies one of the LaneCount columns.
type Lane int

// Valid reports whether the lane index is within [0, LaneCount).
func (l Lane) Valid() bool {
	return l >= 0 && l < LaneCount
}

// String returns a human-readable lane label.
func (l Lane) String() string {
	return fmt.Sprintf("lane %d", int(l))
}

// BeatID is the stable identity of a beat within a BeatSet.
type BeatID uint64

// Beat is a single note scheduled to cross the hit line at
// TrackTiming.StartAt + HitAt. Lane and HitAt never change after insertion.
type Beat struct {
	ID    BeatID
	Lane  Lane
	HitAt time.Duration
}

// TimeToLine returns the beat's signed distance from the hit line at now.
func (b Beat) TimeToLine(t TrackTiming, now time.Time) time.Duration {
	return TimeToLine(t, b.HitAt, now)
}

// BeatSpec describes a beat before it is inserted into a set.
// Chart generators produce these.
type BeatSpec struct {
	Lane  Lane
	HitAt time.Duration
}

// BeatSet is the collection of in-flight beats.
// Beats are addressed by ID; iteration walks a snapshot so callers may
// remove beats while iterating. No ordering is promised to consumers.
type BeatSet struct {
	beats  map[BeatID]Beat
	byLane [LaneCount][]BeatID
	nextID BeatID
}

// NewBeatSet creates an empty beat set.
func NewBeatSet() *BeatSet {
	return &BeatSet{
		beats:  make(map[BeatID]Beat),
		nextID: 1,
	}
}

// Insert adds a beat and returns it with its assigned ID.
// Returns an error if the lane is out of range.
func (s *BeatSet) Insert(lane Lane, hitAt time.Duration) (Beat, error) {
	if !lane.Valid() {
		return Beat{}, fmt.Errorf("%w: %d", ErrInvalidLane, int(lane))
	}

	b := Beat{ID: s.nextID, Lane: lane, HitAt: hitAt}
	s.nextID++
	s.beats[b.ID] = b
	s.byLane[lane] = append(s.byLane[lane], b.ID)
	return b, nil
}

// Remove deletes the beat with the given ID.
// Returns the removed beat and whether it was present.
func (s *BeatSet) Remove(id BeatID) (Beat, bool) {
	b, ok := s.beats[id]
	if !ok {
		return Beat{}, false
	}
	delete(s.beats, id)

	ids := s.byLane[b.Lane]
	if i := slices.Index(ids, id); i >= 0 {
		s.byLane[b.Lane] = slices.Delete(ids, i, i+1)
	}
	return b, true
}

// Get returns the beat with the given ID.
func (s *BeatSet) Get(id BeatID) (Beat, bool) {
	b, ok := s.beats[id]
	return b, ok
}

// Len returns the number of live beats.
func (s *BeatSet) Len() int {
	return len(s.beats)
}

// LaneLen returns the number of live beats in a lane.
func (s *BeatSet) LaneLen(lane Lane) int {
	if !lane.Valid() {
		return 0
	}
	return len(s.byLane[lane])
}

// Lane iterates over the beats of one lane.
func (s *BeatSet) Lane(lane Lane) iter.Seq[Beat] {
	return func(yield func(Beat) bool) {
		if !lane.Valid() {
			return
		}
		for _, id := range slices.Clone(s.byLane[lane]) {
			b, ok := s.beats[id]
			if !ok {
				continue // removed earlier in this iteration
			}
			if !yield(b) {
				return
			}
		}
	}
}

// All iterates over every live beat, lane by lane.
func (s *BeatSet) All() iter.Seq[Beat] {
	return func(yield func(Beat) bool) {
		for lane := range Lane(LaneCount) {
			for b := range s.Lane(lane) {
				if !yield(b) {
					return
				}
			}
		}
	}
}
