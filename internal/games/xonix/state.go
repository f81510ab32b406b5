package xonix

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-xonix/internal/config"
	"github.com/vovakirdan/tui-xonix/internal/core"
)

// State is one screen on the navigation stack.
// The set of screens is closed: *WelcomeState, *PlayState and *GameOverState.
type State interface {
	// Update advances the screen by one tick.
	Update() Transition

	// Render draws the screen.
	Render(dst core.Canvas)

	// RenderParent reports whether the screen below must be drawn first,
	// i.e. whether this screen is an overlay.
	RenderParent() bool

	// HandleEvent reacts to one input event.
	HandleEvent(e core.Event) Transition

	screen()
}

// TransitionKind identifies how a transition changes the stack.
type TransitionKind int

const (
	TransitionNone TransitionKind = iota
	TransitionPush
	TransitionReplace
	TransitionPop
)

// String returns the transition name.
func (k TransitionKind) String() string {
	switch k {
	case TransitionNone:
		return "none"
	case TransitionPush:
		return "push"
	case TransitionReplace:
		return "replace"
	case TransitionPop:
		return "pop"
	default:
		return "unknown"
	}
}

// Transition is a navigation request produced by the active screen.
type Transition struct {
	Kind  TransitionKind
	State State // Target of Push and Replace
	Count int   // Number of screens removed by Pop
}

// NoTransition keeps the stack as it is.
func NoTransition() Transition {
	return Transition{}
}

// Push places s on top of the stack.
func Push(s State) Transition {
	return Transition{Kind: TransitionPush, State: s}
}

// Replace swaps the top of the stack for s.
func Replace(s State) Transition {
	return Transition{Kind: TransitionReplace, State: s}
}

// Pop removes count screens from the top of the stack.
func Pop(count int) Transition {
	return Transition{Kind: TransitionPop, Count: count}
}

// session carries what every screen of one game needs to build the next one.
type session struct {
	cfg       config.XonixConfig
	rng       *rand.Rand
	logger    *log.Logger
	highScore int
}

// newPlay starts a run at level 1.
func (s *session) newPlay() (*PlayState, error) {
	return newPlayState(s, 1, 0, s.cfg.Rules.Lives)
}

// screenSize returns the area screens draw into: the board plus the HUD line.
func (s *session) screenSize() (int, int) {
	return s.cfg.Board.Width, s.cfg.Board.Height + 1
}
