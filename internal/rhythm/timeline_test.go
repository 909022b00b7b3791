package rhythm

import (
	"testing"
	"time"
)

func TestTimeToLine(t *testing.T) {
	t0 := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	timing := NewTrackTiming(t0)

	tests := []struct {
		name     string
		hitAt    time.Duration
		now      time.Time
		expected time.Duration
	}{
		{"approaching", time.Second, t0, time.Second},
		{"on the line", time.Second, t0.Add(time.Second), 0},
		{"passed", time.Second, t0.Add(1010 * time.Millisecond), -10 * time.Millisecond},
		{"before start", 0, t0.Add(-time.Second), time.Second},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := TimeToLine(timing, tc.hitAt, tc.now); got != tc.expected {
				t.Errorf("TimeToLine() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBeatTimeToLineMatchesTimeline(t *testing.T) {
	t0 := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	timing := NewTrackTiming(t0)
	b := Beat{Lane: 1, HitAt: 750 * time.Millisecond}
	now := t0.Add(333 * time.Millisecond)

	if b.TimeToLine(timing, now) != TimeToLine(timing, b.HitAt, now) {
		t.Error("Beat.TimeToLine must agree with TimeToLine")
	}
}

func TestRenderOffset(t *testing.T) {
	if got := RenderOffset(0); got != HitLineOffset {
		t.Errorf("RenderOffset(0) = %f, expected %f", got, HitLineOffset)
	}
	if got := RenderOffset(300 * time.Millisecond); got != 120 {
		t.Errorf("RenderOffset(300ms) = %f, expected 120", got)
	}
	if got := RenderOffset(-60 * time.Millisecond); got != 0 {
		t.Errorf("RenderOffset(-60ms) = %f, expected 0", got)
	}
}
