// Package game runs a rhythm session at a fixed tick: it turns lane actions
// into presses, keeps judgement popups alive for a few frames and draws the
// playfield into a core.Screen.
package game

import (
	"cmp"
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-beats/internal/audio"
	"github.com/vovakirdan/tui-beats/internal/config"
	"github.com/vovakirdan/tui-beats/internal/core"
	"github.com/vovakirdan/tui-beats/internal/registry"
	"github.com/vovakirdan/tui-beats/internal/rhythm"
)

// Game plays one chart. Each Reset starts a new session with a fresh
// timing anchor.
type Game struct {
	chart   registry.Generator
	cfg     config.BeatsConfig
	sound   audio.Player
	logger  *log.Logger
	runtime core.RuntimeConfig

	session   *rhythm.Session
	popups    []popup
	lastDelta time.Duration
	hasDelta  bool
	now       time.Time // time of the last Step, used for drawing
	tickCount int
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger used for per-hit debug output.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		g.logger = l
	}
}

// New creates a game for the given chart. sound may be nil.
func New(chart registry.Generator, cfg config.BeatsConfig, sound audio.Player, opts ...Option) *Game {
	if sound == nil {
		sound = audio.Nop{}
	}
	g := &Game{
		chart:  chart,
		cfg:    cfg,
		sound:  sound,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ID returns the chart identifier.
func (g *Game) ID() string {
	return g.chart.ID()
}

// Title returns the chart's display name.
func (g *Game) Title() string {
	return g.chart.Title()
}

// Reset generates the chart for rc.Seed and starts a new session anchored
// at the current clock reading.
func (g *Game) Reset(rc core.RuntimeConfig) error {
	specs := g.chart.Generate(rc.Seed, g.cfg.Chart)
	now := rc.Now()

	session, err := rhythm.NewSession(now, specs)
	if err != nil {
		return fmt.Errorf("game: chart %s: %w", g.chart.ID(), err)
	}

	g.runtime = rc
	g.session = session
	g.popups = nil
	g.hasDelta = false
	g.now = now
	g.tickCount = 0

	g.logger.Debug("session started", "chart", g.chart.ID(), "seed", rc.Seed, "beats", len(specs))
	return nil
}

// Resize updates the screen size without restarting the session.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
}

// Step advances the game by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	now := g.runtime.Now()
	g.now = now
	g.tickCount++

	g.agePopups()

	ev, err := g.session.Frame(pressesFrom(in), now)
	if err != nil {
		// lanes come from core.LaneActions, so this is a wiring bug
		g.logger.Error("frame rejected", "error", err)
		return core.StepResult{State: g.State()}
	}

	for _, fb := range ev.Feedback {
		g.popups = append(g.popups, popup{
			tier:  fb.Tier,
			lane:  fb.Lane,
			delta: fb.Delta,
			ttl:   g.cfg.Display.FeedbackFrames,
		})
		g.lastDelta = fb.Delta
		g.hasDelta = true
		g.logger.Debug("hit", "lane", fb.Lane, "tier", fb.Tier, "delta", fb.Delta)
	}
	for _, r := range ev.Removed {
		if r.Reason == rhythm.RemovedExpired {
			g.logger.Debug("expired", "lane", r.Beat.Lane, "hit_at", r.Beat.HitAt)
		}
	}

	sound := ev.HitSounds > 0
	if sound {
		g.sound.Play()
	}

	if ev.Removed != nil && g.session.Done() {
		g.logger.Debug("session complete", "score", g.session.Score(), "ticks", g.tickCount)
	}

	return core.StepResult{State: g.State(), Sound: sound}
}

// pressesFrom collects lane actions ordered by arrival time.
func pressesFrom(in core.InputFrame) []rhythm.Press {
	var presses []rhythm.Press
	for i, a := range core.LaneActions {
		if at, ok := in.At(a); ok {
			presses = append(presses, rhythm.Press{Lane: rhythm.Lane(i), At: at})
		}
	}
	slices.SortStableFunc(presses, func(a, b rhythm.Press) int {
		return a.At.Compare(b.At)
	})
	return presses
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score: g.session.Score(),
		Done:  g.session.Done(),
	}
}

// Summary is the end-of-run breakdown.
type Summary struct {
	Chart   string
	Score   int
	Counts  [len(rhythm.Tiers)]int
	Expired int
	Total   int
}

// Accuracy is the score as a fraction of an all-Perfect run.
func (s Summary) Accuracy() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Score) / float64(s.Total*rhythm.TierPerfect.Points())
}

// Summary returns the statistics of the current session.
func (g *Game) Summary() Summary {
	s := Summary{Chart: g.chart.Title()}
	if g.session == nil {
		return s
	}
	s.Score = g.session.Score()
	s.Expired = g.session.Expired()
	s.Total = g.session.Total()
	for i, t := range rhythm.Tiers {
		s.Counts[i] = g.session.Count(t)
	}
	return s
}

// sortedBeats returns the live beats, latest first, so earlier beats are
// drawn on top where rows collide.
func sortedBeats(set *rhythm.BeatSet) []rhythm.Beat {
	var beats []rhythm.Beat
	for b := range set.All() {
		beats = append(beats, b)
	}
	slices.SortFunc(beats, func(a, b rhythm.Beat) int {
		return cmp.Or(cmp.Compare(b.HitAt, a.HitAt), cmp.Compare(b.ID, a.ID))
	})
	return beats
}
