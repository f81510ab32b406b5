package xonix

import (
	"fmt"

	"github.com/vovakirdan/tui-xonix/internal/core"
)

// GameOverState is drawn over the frozen level that ended the run.
type GameOverState struct {
	s     *session
	score int
	level int
}

func newGameOverState(s *session, score, level int) *GameOverState {
	return &GameOverState{s: s, score: score, level: level}
}

// Score returns the final score of the run.
func (g *GameOverState) Score() int {
	return g.score
}

// Level returns the level the run ended on.
func (g *GameOverState) Level() int {
	return g.level
}

// Update does nothing.
func (g *GameOverState) Update() Transition {
	return NoTransition()
}

// HandleEvent leaves the overlay and the dead level together, back to the title screen.
func (g *GameOverState) HandleEvent(e core.Event) Transition {
	switch e {
	case core.EventSelect, core.EventBack:
		return Pop(2)
	}
	return NoTransition()
}

// RenderParent is true: the level stays visible around the box.
func (g *GameOverState) RenderParent() bool {
	return true
}

// Render draws a framed box in the middle of the area.
func (g *GameOverState) Render(dst core.Canvas) {
	width, height := g.s.screenSize()
	box := core.CenteredRect(width, height, min(width, 20), min(height, 6))
	core.DrawBox(dst, box, core.ColorBrightRed)

	inner := core.NewRect(box.X+1, box.Y+1, box.W-2, box.H-2)
	sub := offsetCanvas{dst: dst, dx: inner.X, dy: inner.Y, w: inner.W, h: inner.H}
	core.DrawTextCentered(sub, inner.W, 0, "GAME OVER", core.ColorBrightRed)
	core.DrawTextCentered(sub, inner.W, 1, fmt.Sprintf("Score: %d", g.score), core.ColorBrightWhite)
	core.DrawTextCentered(sub, inner.W, 2, fmt.Sprintf("Level: %d", g.level), core.ColorWhite)
	core.DrawTextCentered(sub, inner.W, 3, "enter  menu", core.ColorGray)
}

func (g *GameOverState) screen() {}

// offsetCanvas translates and clips drawing into a sub-rectangle of dst.
type offsetCanvas struct {
	dst    core.Canvas
	dx, dy int
	w, h   int
}

func (c offsetCanvas) PutCell(x, y int, r rune, col core.Color) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.dst.PutCell(x+c.dx, y+c.dy, r, col)
}
