package game

import (
	"fmt"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/vovakirdan/tui-beats/internal/core"
	"github.com/vovakirdan/tui-beats/internal/rhythm"
)

// Playfield layout in cells.
const (
	laneWidth = 6 // interior plus one separator
	fieldW    = rhythm.LaneCount*laneWidth + 1
	hudW      = 20
	minH      = 12
)

// Visual characters for rendering
const (
	BeatChar      = '▄'
	HitLineChar   = '═'
	SeparatorChar = '│'
)

var laneColors = [rhythm.LaneCount]core.Color{
	core.ColorWhite, core.ColorBrightCyan, core.ColorBrightCyan, core.ColorWhite,
}

// layout holds the computed geometry for one frame.
type layout struct {
	fieldX  int
	hudX    int // -1 when there is no room for the side panel
	hitRow  int
	keyRow  int
	showHUD bool
}

func computeLayout(w, h int) layout {
	l := layout{
		hitRow: h - 4,
		keyRow: h - 1,
	}
	if w >= fieldW+hudW+4 {
		l.fieldX = (w - fieldW - hudW - 3) / 2
		l.hudX = l.fieldX + fieldW + 3
		l.showHUD = true
	} else {
		l.fieldX = (w - fieldW) / 2
		l.hudX = -1
	}
	return l
}

// laneX returns the first interior column of a lane.
func (l layout) laneX(lane rhythm.Lane) int {
	return l.fieldX + int(lane)*laneWidth + 1
}

// BeatRow converts a time-to-line into a screen row for a hit line at
// hitRow. Positive times are above the line.
func BeatRow(d time.Duration, hitRow int, pixelsPerRow float64) int {
	rows := (rhythm.RenderOffset(d) - rhythm.HitLineOffset) / pixelsPerRow
	return hitRow - int(math.Round(rows))
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < fieldW+2 || dst.Height() < minH {
		g.renderTooSmall(dst)
		return
	}
	if g.session == nil {
		return
	}

	l := computeLayout(dst.Width(), dst.Height())

	g.renderField(dst, l)
	g.renderBeats(dst, l)
	g.renderPopups(dst, l)

	if l.showHUD {
		g.renderHUD(dst, l)
	} else {
		dst.DrawText(l.fieldX, 0, fmt.Sprintf("Score: %d", g.session.Score()))
	}

	if g.session.Done() {
		g.renderComplete(dst)
	}
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorDefault)
	dst.DrawTextCentered(y+1, "Please resize terminal", core.ColorGray)
}

func (g *Game) renderField(dst *core.Screen, l layout) {
	for i := range rhythm.LaneCount + 1 {
		dst.DrawVLine(l.fieldX+i*laneWidth, 1, l.keyRow-1, SeparatorChar, core.ColorGray)
	}
	dst.DrawHLine(l.fieldX, l.hitRow, fieldW, HitLineChar, core.ColorGold)

	for lane := range rhythm.Lane(rhythm.LaneCount) {
		label := "?"
		if int(lane) < len(g.cfg.Keys.Lanes) {
			label = strings.ToUpper(g.cfg.Keys.Lanes[lane])
		}
		x := l.laneX(lane) + (laneWidth-1-utf8.RuneCountInString(label))/2
		dst.DrawTextColor(x, l.keyRow, label, laneColors[lane])
	}
}

func (g *Game) renderBeats(dst *core.Screen, l layout) {
	timing := g.session.Timing()
	for _, b := range sortedBeats(g.session.Beats()) {
		row := BeatRow(b.TimeToLine(timing, g.now), l.hitRow, g.cfg.Display.PixelsPerRow)
		if row < 1 || row >= l.keyRow {
			continue
		}
		color := laneColors[b.Lane]
		if row > l.hitRow {
			color = core.ColorGray
		}
		dst.DrawHLine(l.laneX(b.Lane), row, laneWidth-1, BeatChar, color)
	}
}

func (g *Game) renderPopups(dst *core.Screen, l layout) {
	frames := g.cfg.Display.FeedbackFrames
	for _, p := range g.popups {
		text := p.tier.String()
		cx := l.laneX(p.lane) + (laneWidth-1)/2
		x := cx - utf8.RuneCountInString(text)/2
		y := l.hitRow - 2 - p.rise(frames)
		dst.DrawTextColor(x, y, text, p.color(frames))

		if g.cfg.Display.ShowDelta {
			d := formatDelta(p.delta)
			dst.DrawTextColor(cx-utf8.RuneCountInString(d)/2, y+1, d, core.ColorGray)
		}
	}
}

func (g *Game) renderHUD(dst *core.Screen, l layout) {
	x, y := l.hudX, 1
	s := g.session

	dst.DrawTextColor(x, y, g.chart.Title(), core.ColorBrightWhite)
	y += 2
	dst.DrawText(x, y, fmt.Sprintf("Score  %d", s.Score()))
	y++
	played := s.Total() - s.Beats().Len()
	dst.DrawText(x, y, fmt.Sprintf("Beats  %d/%d", played, s.Total()))
	y += 2

	for _, t := range rhythm.Tiers {
		dst.DrawTextColor(x, y, fmt.Sprintf("%-9s %4d", t.String(), s.Count(t)), TierColor(t))
		y++
	}
	dst.DrawTextColor(x, y, fmt.Sprintf("%-9s %4d", "Expired", s.Expired()), core.ColorGray)
	y += 2

	if g.cfg.Display.ShowDelta && g.hasDelta {
		dst.DrawText(x, y, "Last "+formatDelta(g.lastDelta))
	}
}

// renderComplete draws the end-of-chart box in the center of the screen.
func (g *Game) renderComplete(dst *core.Screen) {
	sum := g.Summary()
	lines := []string{
		"COMPLETE",
		fmt.Sprintf("Score: %d  Accuracy: %.1f%%", sum.Score, sum.Accuracy()*100),
		"R: restart  Esc: menu  Q: quit",
	}

	w := 0
	for _, s := range lines {
		w = max(w, utf8.RuneCountInString(s))
	}
	box := dst.Bounds().Centered(w+4, 2*len(lines)+1)

	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorGold)
	for i, s := range lines {
		x := box.X + (box.W-utf8.RuneCountInString(s))/2
		color := core.ColorDefault
		if i == 0 {
			color = core.ColorGold
		}
		dst.DrawTextColor(x, box.Y+1+2*i, s, color)
	}
}

// formatDelta renders a signed time-to-line as "+12ms" (early) or "-8ms" (late).
func formatDelta(d time.Duration) string {
	return fmt.Sprintf("%+dms", d.Milliseconds())
}
