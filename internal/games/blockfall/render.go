package blockfall

import (
	"fmt"

	"github.com/vovakirdan/blockfall/internal/core"
	bfcore "github.com/vovakirdan/blockfall/internal/games/blockfall/core"
)

// Visual characters for rendering. Every playfield cell is two columns wide
// so blocks look square in a terminal.
const (
	BlockGlyph = '█'
	GhostGlyph = '░'
	panelWidth = 14
)

// layout places the playfield and side panel on screen.
type layout struct {
	boardX, boardY int       // Top-left corner of the playfield border
	boardW, boardH int       // Border size in screen cells
	inner          core.Rect // Screen area inside the border
	rows           int       // Playfield rows shown
	panelX         int
	minW, minH     int
	tooSmall       bool
}

func newLayout(rules bfcore.Config, screenW, screenH int) layout {
	l := layout{
		boardW: rules.Width*2 + 2,
		boardH: rules.Height + 2,
		rows:   rules.Height,
	}
	l.minW = l.boardW + panelWidth
	l.minH = l.boardH
	l.tooSmall = screenW < l.minW || screenH < l.minH
	l.boardX = core.Clamp((screenW-l.minW)/2, 0, screenW)
	l.boardY = core.Clamp((screenH-l.boardH)/2, 0, screenH)
	l.inner = core.NewRect(l.boardX+1, l.boardY+1, l.boardW-2, l.boardH-2)
	l.panelX = l.boardX + l.boardW + 2
	return l
}

// cell converts a playfield position to the left screen column of its cell.
// Row 0 of the playfield is the floor, drawn at the bottom of the board.
func (l layout) cell(p bfcore.Pos) (x, y int, ok bool) {
	x, y = l.inner.X+2*p.X, l.inner.Y+l.rows-1-p.Y
	if !l.inner.Contains(x, y) {
		return 0, 0, false
	}
	return x, y, true
}

// colors maps piece colors onto the terminal palette.
var colors = map[bfcore.Color]core.Color{
	bfcore.ColorCyan:    core.ColorCyan,
	bfcore.ColorYellow:  core.ColorYellow,
	bfcore.ColorMagenta: core.ColorMagenta,
	bfcore.ColorGreen:   core.ColorGreen,
	bfcore.ColorRed:     core.ColorRed,
	bfcore.ColorBlue:    core.ColorBlue,
	bfcore.ColorOrange:  core.ColorOrange,
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	// Check for screen too small
	if g.layout.tooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.layout.minW, g.layout.minH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	l := g.layout
	dst.DrawBox(core.NewRect(l.boardX, l.boardY, l.boardW, l.boardH), core.ColorGray)

	if ghost, ok := g.state.Ghost(); ok {
		active, _ := g.state.Active()
		for _, b := range ghost.Blocks {
			if !active.Contains(b) {
				g.drawCell(dst, b, GhostGlyph, core.ColorGray)
			}
		}
	}
	for _, b := range g.state.Blocks() {
		g.drawCell(dst, b.Pos, BlockGlyph, colors[b.Color])
	}

	g.renderPanel(dst)
	g.renderOverlay(dst)
}

func (g *Game) drawCell(dst *core.Screen, p bfcore.Pos, glyph rune, c core.Color) {
	x, y, ok := g.layout.cell(p)
	if !ok {
		return
	}
	dst.SetColor(x, y, glyph, c)
	dst.SetColor(x+1, y, glyph, c)
}

// renderPanel draws the next-piece preview and counters.
func (g *Game) renderPanel(dst *core.Screen) {
	l := g.layout
	x, y := l.panelX, l.boardY+1

	dst.DrawText(x, y, g.Title())
	dst.DrawText(x, y+2, "NEXT")

	spec := bfcore.Spec(g.state.Next())
	for _, c := range spec.Cells {
		px := x + 2*c.X
		py := y + 3 + (spec.Size - 1 - c.Y)
		dst.SetColor(px, py, BlockGlyph, colors[spec.Color])
		dst.SetColor(px+1, py, BlockGlyph, colors[spec.Color])
	}

	dst.DrawText(x, y+8, fmt.Sprintf("Pieces: %d", g.state.LockedCount()))
	dst.DrawText(x, y+9, fmt.Sprintf("Ticks:  %d", g.state.Tick()))
	if g.state.Config().LockDelay > 0 && g.state.Grounded() {
		dst.DrawTextColor(x, y+10, fmt.Sprintf("Lock:   %dms", g.state.LockDelayRemaining().Milliseconds()), core.ColorYellow)
	}

	help := []string{"←/→  move", "↓    soft", "spc  hard", "↑/x  cw", "z    ccw", "p    pause"}
	for i, line := range help {
		dst.DrawTextColor(x, y+12+i, line, core.ColorGray)
	}
}

// renderOverlay draws pause and game over messages over the board.
func (g *Game) renderOverlay(dst *core.Screen) {
	l := g.layout
	cx := l.boardX + l.boardW/2
	cy := l.boardY + l.boardH/2

	center := func(y int, text string, c core.Color) {
		dst.DrawTextColor(cx-len([]rune(text))/2, y, text, c)
	}

	switch {
	case g.state.Lost():
		dst.DrawRect(core.NewRect(l.inner.X, cy-1, l.inner.W, 5), ' ')
		center(cy-1, "GAME OVER", core.ColorRed)
		center(cy, g.state.LossReason().String(), core.ColorWhite)
		center(cy+2, "R restart", core.ColorWhite)
		center(cy+3, "B menu", core.ColorWhite)
	case g.paused:
		dst.DrawRect(core.NewRect(l.inner.X, cy, l.inner.W, 1), ' ')
		center(cy, "PAUSED", core.ColorYellow)
	}
}
