package rhythm

import "time"

// ExpireAfter is how far past the hit line an unplayed beat may travel
// before it is removed.
const ExpireAfter = 1000 * time.Millisecond

// Sweep removes every beat whose time-to-line is below -ExpireAfter.
// Expired beats do not affect the score and produce no feedback; only a
// removal notification is queued. Returns the number of beats removed.
func (s *Session) Sweep(now time.Time) int {
	removed := 0
	for b := range s.beats.All() {
		if b.TimeToLine(s.timing, now) >= -ExpireAfter {
			continue
		}
		s.beats.Remove(b.ID)
		s.pending.Removed = append(s.pending.Removed, Removal{Beat: b, Reason: RemovedExpired})
		s.expired++
		removed++
	}
	return removed
}
