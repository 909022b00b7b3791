package game

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-beats/internal/charts/random"
	"github.com/vovakirdan/tui-beats/internal/config"
	"github.com/vovakirdan/tui-beats/internal/core"
	"github.com/vovakirdan/tui-beats/internal/rhythm"
)

var t0 = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type countingPlayer struct{ n int }

func (p *countingPlayer) Play() { p.n++ }

// fixedChart plays a hand-written beat list.
type fixedChart []rhythm.BeatSpec

func (c fixedChart) ID() string    { return "fixed" }
func (c fixedChart) Title() string { return "Fixed" }
func (c fixedChart) Generate(int64, config.ChartConfig) []rhythm.BeatSpec {
	return c
}

func ms(n int) time.Duration { return time.Duration(n) * time.Millisecond }

func newTestGame(t *testing.T, specs ...rhythm.BeatSpec) (*Game, *fakeClock, *countingPlayer) {
	t.Helper()
	clock := &fakeClock{now: t0}
	player := &countingPlayer{}
	g := New(fixedChart(specs), config.DefaultBeatsConfig(), player)

	rc := core.DefaultConfig()
	rc.Clock = clock.Now
	if err := g.Reset(rc); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}
	return g, clock, player
}

func TestStepPerfectHit(t *testing.T) {
	g, clock, player := newTestGame(t, rhythm.BeatSpec{Lane: 2, HitAt: ms(1000)})

	clock.Advance(ms(1016))
	in := core.NewInputFrame()
	in.SetAt(core.ActionLane2, t0.Add(ms(1010)))
	res := g.Step(in)

	if res.State.Score != 100 {
		t.Errorf("Score = %d, expected 100", res.State.Score)
	}
	if !res.Sound || player.n != 1 {
		t.Errorf("expected one hit sound, Sound=%v plays=%d", res.Sound, player.n)
	}
	if !res.State.Done {
		t.Error("single-beat chart should be done after the hit")
	}
	if len(g.popups) != 1 || g.popups[0].tier != rhythm.TierPerfect {
		t.Errorf("expected a Perfect popup, got %+v", g.popups)
	}
}

func TestStepZeroTimestampUsesClock(t *testing.T) {
	g, clock, _ := newTestGame(t, rhythm.BeatSpec{Lane: 0, HitAt: ms(1000)})

	clock.Advance(ms(1120))
	in := core.NewInputFrame()
	in.Set(core.ActionLane0)
	res := g.Step(in)

	if res.State.Score != 0 || g.Summary().Counts[rhythm.TierMiss] != 1 {
		t.Errorf("press at 1120ms should be a Miss, summary %+v", g.Summary())
	}
}

func TestSoundCoalescedPerFrame(t *testing.T) {
	g, clock, player := newTestGame(t,
		rhythm.BeatSpec{Lane: 0, HitAt: ms(1000)},
		rhythm.BeatSpec{Lane: 3, HitAt: ms(1000)},
	)

	clock.Advance(ms(1000))
	in := core.NewInputFrame()
	in.SetAt(core.ActionLane0, clock.now)
	in.SetAt(core.ActionLane3, clock.now)
	res := g.Step(in)

	if res.State.Score != 200 {
		t.Errorf("Score = %d, expected 200", res.State.Score)
	}
	if player.n != 1 {
		t.Errorf("two hits in one frame should play once, played %d", player.n)
	}
	if len(g.popups) != 2 {
		t.Errorf("expected one popup per hit, got %d", len(g.popups))
	}
}

func TestEmptyFrameIsSilent(t *testing.T) {
	g, clock, player := newTestGame(t, rhythm.BeatSpec{Lane: 1, HitAt: ms(1000)})

	for range 30 {
		clock.Advance(time.Second / 60)
		if res := g.Step(core.NewInputFrame()); res.Sound {
			t.Fatal("no sound without presses")
		}
	}
	if player.n != 0 {
		t.Errorf("played %d times without presses", player.n)
	}
}

func TestPopupsFade(t *testing.T) {
	g, clock, _ := newTestGame(t,
		rhythm.BeatSpec{Lane: 1, HitAt: ms(1000)},
		rhythm.BeatSpec{Lane: 1, HitAt: ms(9000)},
	)
	frames := g.cfg.Display.FeedbackFrames

	clock.Advance(ms(1000))
	in := core.NewInputFrame()
	in.SetAt(core.ActionLane1, clock.now)
	g.Step(in)

	if got := g.popups[0].color(frames); got != TierColor(rhythm.TierPerfect) {
		t.Errorf("fresh popup color = %v", got)
	}

	for i := 1; i < frames; i++ {
		clock.Advance(time.Second / 60)
		g.Step(core.NewInputFrame())
		if len(g.popups) != 1 {
			t.Fatalf("popup gone after %d frames, expected %d", i, frames)
		}
	}
	if got := g.popups[0].color(frames); got != core.ColorGray {
		t.Errorf("old popup color = %v, expected gray", got)
	}
	if g.popups[0].rise(frames) < 1 {
		t.Error("popup should have risen")
	}

	clock.Advance(time.Second / 60)
	g.Step(core.NewInputFrame())
	if len(g.popups) != 0 {
		t.Errorf("popup should be gone after %d frames", frames)
	}
}

func TestExpiryWithoutPlay(t *testing.T) {
	g, clock, player := newTestGame(t, rhythm.BeatSpec{Lane: 2, HitAt: ms(1000)})

	clock.Advance(ms(2000))
	if res := g.Step(core.NewInputFrame()); res.State.Done {
		t.Fatal("beat at exactly -1000ms should still be live")
	}
	clock.Advance(ms(1))
	res := g.Step(core.NewInputFrame())
	if !res.State.Done || res.State.Score != 0 {
		t.Errorf("beat should expire without score, got %+v", res.State)
	}
	if len(g.popups) != 0 || player.n != 0 {
		t.Error("expiry must not produce feedback or sound")
	}
	if g.Summary().Expired != 1 {
		t.Errorf("Expired = %d, expected 1", g.Summary().Expired)
	}
}

func TestDeterminism(t *testing.T) {
	run := func() Summary {
		clock := &fakeClock{now: t0}
		g := New(random.New(), config.DefaultBeatsConfig(), nil)
		rc := core.DefaultConfig()
		rc.Seed = 12345
		rc.Clock = clock.Now
		if err := g.Reset(rc); err != nil {
			t.Fatalf("Reset() failed: %v", err)
		}

		for i := range 3000 {
			clock.Advance(time.Second / 60)
			in := core.NewInputFrame()
			in.SetAt(core.LaneAction(i%rhythm.LaneCount), clock.now)
			g.Step(in)
		}
		return g.Summary()
	}

	a, b := run(), run()
	if a != b {
		t.Errorf("Determinism failed:\n%+v\n%+v", a, b)
	}
	if a.Total != 190 {
		t.Errorf("Total = %d, expected 190", a.Total)
	}
}

func TestResetStartsFreshSession(t *testing.T) {
	g, clock, _ := newTestGame(t,
		rhythm.BeatSpec{Lane: 0, HitAt: ms(1000)},
		rhythm.BeatSpec{Lane: 1, HitAt: ms(2000)},
	)

	clock.Advance(ms(1000))
	in := core.NewInputFrame()
	in.SetAt(core.ActionLane0, clock.now)
	g.Step(in)
	if g.State().Score == 0 {
		t.Fatal("expected a scored hit before reset")
	}

	rc := g.runtime
	if err := g.Reset(rc); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}
	if g.State().Score != 0 || len(g.popups) != 0 {
		t.Error("Reset() should clear score and popups")
	}
	if !g.session.Timing().StartAt.Equal(clock.now) {
		t.Errorf("new session should start at the reset time, got %v", g.session.Timing().StartAt)
	}
	if g.session.Beats().Len() != 2 {
		t.Errorf("beats = %d, expected 2", g.session.Beats().Len())
	}
}

func TestResetRejectsBadChart(t *testing.T) {
	g := New(fixedChart{{Lane: 5}}, config.DefaultBeatsConfig(), nil)
	if err := g.Reset(core.DefaultConfig()); err == nil {
		t.Error("chart with an invalid lane should fail")
	}
}

func TestPressOrderByArrival(t *testing.T) {
	in := core.NewInputFrame()
	in.SetAt(core.ActionLane3, t0.Add(ms(2)))
	in.SetAt(core.ActionLane0, t0.Add(ms(5)))
	in.SetAt(core.ActionLane1, t0.Add(ms(1)))

	presses := pressesFrom(in)
	want := []rhythm.Lane{1, 3, 0}
	if len(presses) != len(want) {
		t.Fatalf("got %d presses, expected %d", len(presses), len(want))
	}
	for i, p := range presses {
		if p.Lane != want[i] {
			t.Errorf("press %d lane = %d, expected %d", i, p.Lane, want[i])
		}
	}
}

func TestBeatRow(t *testing.T) {
	tests := []struct {
		d        time.Duration
		expected int
	}{
		{0, 20},
		{ms(300), 16},  // 100px above the line
		{ms(1500), 0},  // 500px
		{ms(-150), 22}, // passed
		{ms(30), 20},   // 0.4 row rounds onto the line
	}

	for _, tc := range tests {
		if got := BeatRow(tc.d, 20, 25); got != tc.expected {
			t.Errorf("BeatRow(%v) = %d, expected %d", tc.d, got, tc.expected)
		}
	}
}

func TestRenderPlacesBeats(t *testing.T) {
	g, _, _ := newTestGame(t, rhythm.BeatSpec{Lane: 1, HitAt: ms(300)})
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	l := computeLayout(80, 24)
	row := BeatRow(ms(300), l.hitRow, g.cfg.Display.PixelsPerRow)
	cell := screen.GetCell(l.laneX(1), row)
	if cell.Rune != BeatChar || cell.Color != laneColors[1] {
		t.Errorf("expected beat at lane 1 row %d, got %+v\n%s", row, cell, screen.String())
	}
	if screen.Get(l.fieldX, l.hitRow) != HitLineChar {
		t.Error("hit line not drawn")
	}
	if !strings.Contains(screen.Row(l.keyRow), "F") {
		t.Errorf("key labels missing: %q", screen.Row(l.keyRow))
	}
	if !strings.Contains(screen.String(), "Score  0") {
		t.Error("HUD missing")
	}
}

func TestRenderComplete(t *testing.T) {
	g, clock, _ := newTestGame(t, rhythm.BeatSpec{Lane: 0, HitAt: ms(1000)})

	clock.Advance(ms(1000))
	in := core.NewInputFrame()
	in.SetAt(core.ActionLane0, clock.now)
	g.Step(in)

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()
	if !strings.Contains(out, "COMPLETE") || !strings.Contains(out, "Accuracy: 100.0%") {
		t.Errorf("complete box missing:\n%s", out)
	}
}

func TestRenderTooSmall(t *testing.T) {
	g, _, _ := newTestGame(t, rhythm.BeatSpec{Lane: 0, HitAt: ms(1000)})
	screen := core.NewScreen(20, 8)
	g.Render(screen)
	if !strings.Contains(screen.String(), "too small") {
		t.Error("expected too-small message")
	}
}
