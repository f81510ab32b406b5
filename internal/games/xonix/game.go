// Package xonix implements a territory-capture arcade game.
// The player cuts trails through the sea; closing a trail against land claims
// every region no sea enemy can reach. Screens are kept on a stack so the
// game over box can be drawn over the level that ended the run.
package xonix

import (
	"errors"
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-xonix/internal/config"
	"github.com/vovakirdan/tui-xonix/internal/core"
	"github.com/vovakirdan/tui-xonix/internal/registry"
)

// Package-level settings applied on Reset, set by the CLI before a game is created.
var (
	configPath       string
	difficultyPreset string
	logger           = log.New(io.Discard)
)

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset (easy, normal, hard).
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// SetLogger sets the logger used by games created through the registry.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Option configures a Game built with NewGame.
type Option func(*Game)

// WithLogger routes engine logs to l.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.s.logger = l
		}
	}
}

// WithHighScore sets the best score shown on the title screen.
func WithHighScore(score int) Option {
	return func(g *Game) {
		g.SetHighScore(score)
	}
}

// Game owns the screen stack and the pending input queue.
type Game struct {
	wide      bool
	highScore int // survives Reset
	s         *session
	stack     []State
	events    core.EventQueue
	tick      uint64
}

// NewGame creates a game showing the title screen.
func NewGame(cfg config.XonixConfig, rng *rand.Rand, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g := &Game{}
	g.start(cfg, rng, log.New(io.Discard))
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// New creates the registry entry for the fixed-size board.
func New() *Game {
	return &Game{}
}

// NewWide creates the registry entry whose board fills the terminal.
func NewWide() *Game {
	return &Game{wide: true}
}

func init() {
	registry.Register("xonix", func() registry.Game {
		return New()
	})
	registry.Register("xonix_wide", func() registry.Game {
		return NewWide()
	})
}

func (g *Game) start(cfg config.XonixConfig, rng *rand.Rand, l *log.Logger) {
	g.s = &session{cfg: cfg, rng: rng, logger: l, highScore: g.highScore}
	g.stack = []State{newWelcomeState(g.s)}
	g.events.Clear()
	g.tick = 0
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.wide {
		return "xonix_wide"
	}
	return "xonix"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.wide {
		return "Xonix (Wide)"
	}
	return "Xonix"
}

// Reset loads the configuration and returns to the title screen.
func (g *Game) Reset(rcfg core.RuntimeConfig) error {
	cfg, err := config.LoadXonix(configPath)
	if err != nil {
		return fmt.Errorf("xonix: loading config: %w", err)
	}

	preset, err := config.ParseDifficulty(difficultyPreset)
	if err != nil {
		return fmt.Errorf("xonix: %w", err)
	}
	config.ApplyXonixPreset(&cfg, preset)

	if g.wide {
		cfg.Board.Width = rcfg.ScreenW
		cfg.Board.Height = rcfg.ScreenH - 1
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("xonix: %s: %w", g.ID(), err)
	}

	g.start(cfg, rand.New(rand.NewSource(rcfg.Seed)), logger)
	g.s.logger.Debug("reset", "game", g.ID(), "board", fmt.Sprintf("%dx%d", cfg.Board.Width, cfg.Board.Height), "seed", rcfg.Seed)
	return nil
}

// SetHighScore sets the best score shown on the title screen.
// It may be called before Reset.
func (g *Game) SetHighScore(score int) {
	g.highScore = score
	if g.s != nil {
		g.s.highScore = score
	}
}

// Size returns the area the game draws into: the board plus the status line.
// It is 0x0 until the first Reset.
func (g *Game) Size() (int, int) {
	if g.s == nil {
		return 0, 0
	}
	return g.s.screenSize()
}

// PushEvent queues an input event for a later tick. Ticks are not queued;
// they are driven by Tick.
func (g *Game) PushEvent(e core.Event) {
	if e == core.EventTick {
		return
	}
	g.events.Push(e)
}

// Tick delivers at most one queued event to the top screen, then advances it.
// A rejected navigation leaves the stack unchanged and is reported as
// core.ErrEmptyStack.
func (g *Game) Tick() error {
	g.tick++

	var errs []error
	if e, ok := g.events.Pop(); ok {
		errs = append(errs, g.apply(g.Top().HandleEvent(e)))
	}
	errs = append(errs, g.apply(g.Top().Update()))
	return errors.Join(errs...)
}

// Step advances one tick and reports the resulting state.
func (g *Game) Step() (core.StepResult, error) {
	err := g.Tick()
	return core.StepResult{State: g.State()}, err
}

// apply mutates the stack according to t.
func (g *Game) apply(t Transition) error {
	switch t.Kind {
	case TransitionPush:
		g.stack = append(g.stack, t.State)
	case TransitionReplace:
		g.stack[len(g.stack)-1] = t.State
	case TransitionPop:
		if t.Count >= len(g.stack) {
			g.s.logger.Warn("navigation rejected", "pop", t.Count, "depth", len(g.stack))
			return fmt.Errorf("xonix: pop %d of %d screens: %w", t.Count, len(g.stack), core.ErrEmptyStack)
		}
		if t.Count <= 0 {
			return nil
		}
		clear(g.stack[len(g.stack)-t.Count:])
		g.stack = g.stack[:len(g.stack)-t.Count]
	default:
		return nil
	}
	g.s.logger.Debug("transition", "kind", t.Kind, "top", screenName(g.Top()), "depth", len(g.stack))
	return nil
}

// Render draws the visible part of the stack: the nearest opaque screen
// and every overlay above it, bottom to top.
func (g *Game) Render(dst core.Canvas) {
	base := len(g.stack) - 1
	for base > 0 && g.stack[base].RenderParent() {
		base--
	}
	for _, st := range g.stack[base:] {
		st.Render(dst)
	}
}

// Top returns the active screen.
func (g *Game) Top() State {
	return g.stack[len(g.stack)-1]
}

// Depth returns the number of screens on the stack.
func (g *Game) Depth() int {
	return len(g.stack)
}

// State reports the run in progress, if any.
func (g *Game) State() core.GameState {
	switch st := g.Top().(type) {
	case *PlayState:
		return core.GameState{
			Score:   st.score,
			Level:   st.level,
			Lives:   st.lives,
			Playing: true,
		}
	case *GameOverState:
		return core.GameState{
			Score:    st.score,
			Level:    st.level,
			GameOver: true,
		}
	default:
		return core.GameState{}
	}
}

func screenName(st State) string {
	switch st.(type) {
	case *WelcomeState:
		return "welcome"
	case *PlayState:
		return "play"
	case *GameOverState:
		return "game_over"
	default:
		return "unknown"
	}
}
