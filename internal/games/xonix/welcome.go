package xonix

import (
	"fmt"

	"github.com/vovakirdan/tui-xonix/internal/core"
)

// WelcomeState is the title screen and the bottom of every stack.
type WelcomeState struct {
	s *session
}

func newWelcomeState(s *session) *WelcomeState {
	return &WelcomeState{s: s}
}

// Update does nothing; the title screen only reacts to input.
func (w *WelcomeState) Update() Transition {
	return NoTransition()
}

// HandleEvent starts a run on Select or Right and asks to leave on Back.
func (w *WelcomeState) HandleEvent(e core.Event) Transition {
	switch e {
	case core.EventSelect, core.EventRight:
		play, err := w.s.newPlay()
		if err != nil {
			w.s.logger.Error("cannot start run", "error", err)
			return NoTransition()
		}
		w.s.logger.Info("run started", "lives", play.lives)
		return Push(play)
	case core.EventBack:
		return Pop(1)
	}
	return NoTransition()
}

// RenderParent is false: the title screen is always opaque.
func (w *WelcomeState) RenderParent() bool {
	return false
}

// Render clears the area and draws the title, rules and controls.
func (w *WelcomeState) Render(dst core.Canvas) {
	width, height := w.s.screenSize()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			dst.PutCell(x, y, ' ', core.ColorDefault)
		}
	}

	lines := []textLine{
		{"X O N I X", core.ColorBrightCyan},
		{},
		{fmt.Sprintf("Claim %.0f%% of the sea", w.s.cfg.Rules.FillThreshold*100), core.ColorWhite},
		{"Avoid S and L", core.ColorWhite},
		{},
		{"arrows/wasd  move", core.ColorGray},
		{"enter  play", core.ColorGray},
		{"esc  quit", core.ColorGray},
	}
	if w.s.highScore > 0 {
		lines = append(lines, textLine{}, textLine{fmt.Sprintf("Best: %d", w.s.highScore), core.ColorBrightYellow})
	}

	top := max(0, (height-len(lines))/2)
	for i, l := range lines {
		if l.text == "" {
			continue
		}
		core.DrawTextCentered(dst, width, top+i, l.text, l.color)
	}
}

func (w *WelcomeState) screen() {}

// textLine is one centered line of a menu screen.
type textLine struct {
	text  string
	color core.Color
}
