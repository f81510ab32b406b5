package xonix

import (
	"errors"
	"math/rand"
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-xonix/internal/config"
	"github.com/vovakirdan/tui-xonix/internal/core"
	"github.com/vovakirdan/tui-xonix/internal/registry"
)

func newTestGame(t *testing.T, seed int64, opts ...Option) *Game {
	t.Helper()
	g, err := NewGame(config.DefaultXonixConfig(), rand.New(rand.NewSource(seed)), opts...)
	if err != nil {
		t.Fatalf("NewGame failed: %v", err)
	}
	return g
}

func render(g *Game) *core.Screen {
	w, h := g.Size()
	scr := core.NewScreen(w, h)
	g.Render(scr)
	return scr
}

func TestNewGameValidatesConfig(t *testing.T) {
	cfg := config.DefaultXonixConfig()
	cfg.Rules.Lives = 0
	if _, err := NewGame(cfg, rand.New(rand.NewSource(1))); !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("NewGame() = %v, expected ErrInvalidConfig", err)
	}
}

func TestGameStartsOnWelcome(t *testing.T) {
	g := newTestGame(t, 1)
	if g.Depth() != 1 {
		t.Fatalf("Depth() = %d, expected 1", g.Depth())
	}
	if _, ok := g.Top().(*WelcomeState); !ok {
		t.Fatalf("Top() = %T, expected *WelcomeState", g.Top())
	}
	if g.State() != (core.GameState{}) {
		t.Errorf("State() = %+v, expected zero", g.State())
	}
	if w, h := g.Size(); w != 32 || h != 13 {
		t.Errorf("Size() = %dx%d, expected 32x13", w, h)
	}
}

func TestBackOnWelcomeIsRejected(t *testing.T) {
	g := newTestGame(t, 1)
	g.PushEvent(core.EventBack)

	err := g.Tick()
	if !errors.Is(err, core.ErrEmptyStack) {
		t.Fatalf("Tick() = %v, expected ErrEmptyStack", err)
	}
	if g.Depth() != 1 {
		t.Errorf("Depth() = %d after rejected pop, expected 1", g.Depth())
	}
}

func TestStartAndAbandonRun(t *testing.T) {
	for _, start := range []core.Event{core.EventSelect, core.EventRight} {
		t.Run(start.String(), func(t *testing.T) {
			g := newTestGame(t, 1)
			g.PushEvent(start)
			if err := g.Tick(); err != nil {
				t.Fatalf("Tick() failed: %v", err)
			}

			if _, ok := g.Top().(*PlayState); !ok || g.Depth() != 2 {
				t.Fatalf("top = %T at depth %d, expected play at depth 2", g.Top(), g.Depth())
			}
			st := g.State()
			if !st.Playing || st.Lives != 3 || st.Level != 1 || st.Score != 0 {
				t.Errorf("State() = %+v", st)
			}

			g.PushEvent(core.EventBack)
			if err := g.Tick(); err != nil {
				t.Fatalf("Tick() failed: %v", err)
			}
			if _, ok := g.Top().(*WelcomeState); !ok || g.Depth() != 1 {
				t.Errorf("top = %T at depth %d, expected welcome", g.Top(), g.Depth())
			}
		})
	}
}

func TestOneEventPerTick(t *testing.T) {
	g := newTestGame(t, 1)
	g.PushEvent(core.EventSelect)
	g.PushEvent(core.EventTick)
	g.PushEvent(core.EventDown)
	g.PushEvent(core.EventLeft)

	if g.events.Len() != 3 {
		t.Fatalf("queued %d events, ticks should not be queued", g.events.Len())
	}

	g.Tick()
	if g.events.Len() != 2 {
		t.Fatalf("%d events left after one tick, expected 2", g.events.Len())
	}

	// Input is applied before the same tick's movement.
	g.Tick()
	if p := g.Snapshot().Player; p.Position != core.P(16, 1) || p.Direction != core.South {
		t.Errorf("player = %+v, expected (16,1) heading south", p)
	}
	g.Tick()
	if p := g.Snapshot().Player; p.Position != core.P(15, 1) || p.Direction != core.West {
		t.Errorf("player = %+v, expected (15,1) heading west", p)
	}
}

func TestApplyTransitions(t *testing.T) {
	g := newTestGame(t, 1)
	play, err := g.s.newPlay()
	if err != nil {
		t.Fatalf("newPlay failed: %v", err)
	}

	if err := g.apply(Push(play)); err != nil || g.Depth() != 2 || g.Top() != State(play) {
		t.Fatalf("push: err=%v depth=%d", err, g.Depth())
	}

	over := newGameOverState(g.s, 10, 1)
	if err := g.apply(Replace(over)); err != nil || g.Depth() != 2 || g.Top() != State(over) {
		t.Fatalf("replace: err=%v depth=%d", err, g.Depth())
	}

	if err := g.apply(Pop(2)); !errors.Is(err, core.ErrEmptyStack) || g.Depth() != 2 {
		t.Fatalf("pop 2 of 2: err=%v depth=%d", err, g.Depth())
	}
	if err := g.apply(Pop(5)); !errors.Is(err, core.ErrEmptyStack) || g.Depth() != 2 {
		t.Fatalf("pop 5 of 2: err=%v depth=%d", err, g.Depth())
	}

	if err := g.apply(NoTransition()); err != nil || g.Depth() != 2 {
		t.Fatalf("none: err=%v depth=%d", err, g.Depth())
	}

	if err := g.apply(Pop(1)); err != nil || g.Depth() != 1 {
		t.Fatalf("pop 1 of 2: err=%v depth=%d", err, g.Depth())
	}
}

func TestRenderOpaqueWelcome(t *testing.T) {
	g := newTestGame(t, 1, WithHighScore(500))
	out := render(g).String()
	if !strings.Contains(out, "X O N I X") {
		t.Error("title missing from welcome screen")
	}
	if !strings.Contains(out, "Best: 500") {
		t.Error("best score missing from welcome screen")
	}
}

func TestRenderOverlay(t *testing.T) {
	g := newTestGame(t, 1)
	g.PushEvent(core.EventSelect)
	g.Tick()

	if err := g.apply(Push(newGameOverState(g.s, 10, 1))); err != nil {
		t.Fatal(err)
	}

	scr := render(g)
	out := scr.String()
	if !strings.Contains(out, "GAME OVER") || !strings.Contains(out, "Score: 10") {
		t.Errorf("game over box missing:\n%s", out)
	}
	if scr.Get(0, 0) != '█' {
		t.Error("level beneath the overlay should be drawn")
	}
	if strings.Contains(out, "X O N I X") {
		t.Error("welcome screen below an opaque level should not be drawn")
	}

	st := g.State()
	if !st.GameOver || st.Playing || st.Score != 10 {
		t.Errorf("State() = %+v, expected game over", st)
	}
}

func TestGameOverReturnsToWelcome(t *testing.T) {
	for _, e := range []core.Event{core.EventSelect, core.EventBack} {
		t.Run(e.String(), func(t *testing.T) {
			g := newTestGame(t, 1)
			g.PushEvent(core.EventSelect)
			g.Tick()
			g.apply(Push(newGameOverState(g.s, 10, 1)))

			// Directions do nothing on the overlay.
			g.PushEvent(core.EventUp)
			g.Tick()
			if g.Depth() != 3 {
				t.Fatalf("Depth() = %d, expected 3", g.Depth())
			}

			g.PushEvent(e)
			if err := g.Tick(); err != nil {
				t.Fatalf("Tick() failed: %v", err)
			}
			if _, ok := g.Top().(*WelcomeState); !ok || g.Depth() != 1 {
				t.Errorf("top = %T at depth %d, expected welcome", g.Top(), g.Depth())
			}
		})
	}
}

func TestRunEndsInGameOver(t *testing.T) {
	cfg := config.DefaultXonixConfig()
	cfg.Rules.Lives = 1
	g, err := NewGame(cfg, rand.New(rand.NewSource(5)))
	if err != nil {
		t.Fatal(err)
	}
	g.PushEvent(core.EventSelect)
	g.Tick()

	play := g.Top().(*PlayState)
	play.landEnemies = nil
	collisionSetup(play)
	g.Tick()

	if g.Depth() != 3 {
		t.Fatalf("Depth() = %d, expected play under game over", g.Depth())
	}
	if g.stack[1] != State(play) {
		t.Error("play screen should stay beneath the game over screen")
	}
	if _, ok := g.Top().(*GameOverState); !ok {
		t.Errorf("top = %T, expected *GameOverState", g.Top())
	}
}

func TestDeterminism(t *testing.T) {
	script := map[int]core.Event{
		0:   core.EventSelect,
		5:   core.EventDown,
		12:  core.EventRight,
		20:  core.EventUp,
		33:  core.EventLeft,
		47:  core.EventDown,
		60:  core.EventRight,
		90:  core.EventUp,
		150: core.EventSelect,
	}

	run := func() Snapshot {
		g := newTestGame(t, 12345)
		for i := range 300 {
			if e, ok := script[i]; ok {
				g.PushEvent(e)
			}
			g.Tick()
		}
		return g.Snapshot()
	}

	a, b := run(), run()
	if !reflect.DeepEqual(a, b) {
		t.Errorf("snapshots differ:\n%+v\n%+v", a, b)
	}
	if a.Tick != 300 {
		t.Errorf("Tick = %d, expected 300", a.Tick)
	}
}

func TestRegistryVariants(t *testing.T) {
	rcfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1}

	tests := []struct {
		id   string
		w, h int
	}{
		{"xonix", 32, 13},
		{"xonix_wide", 80, 24},
	}
	for _, tc := range tests {
		t.Run(tc.id, func(t *testing.T) {
			g, err := registry.Create(tc.id)
			if err != nil {
				t.Fatalf("Create(%q) failed: %v", tc.id, err)
			}
			if err := g.Reset(rcfg); err != nil {
				t.Fatalf("Reset() failed: %v", err)
			}
			if g.ID() != tc.id {
				t.Errorf("ID() = %q", g.ID())
			}
			if w, h := g.Size(); w != tc.w || h != tc.h {
				t.Errorf("Size() = %dx%d, expected %dx%d", w, h, tc.w, tc.h)
			}

			g.PushEvent(core.EventSelect)
			res, err := g.Step()
			if err != nil || !res.State.Playing {
				t.Errorf("Step() = %+v, %v", res, err)
			}
		})
	}
}

func TestWideResetTooSmall(t *testing.T) {
	g := NewWide()
	err := g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 4, Seed: 1})
	if !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("Reset() = %v, expected ErrInvalidConfig", err)
	}
}

func TestHighScoreBeforeReset(t *testing.T) {
	g := New()
	g.SetHighScore(70)
	if w, h := g.Size(); w != 0 || h != 0 {
		t.Errorf("Size() before Reset = %dx%d, expected 0x0", w, h)
	}

	if err := g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1}); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}
	if w, h := g.Size(); w != 32 || h != 13 {
		t.Errorf("Size() = %dx%d, expected 32x13", w, h)
	}
	if !strings.Contains(render(g).String(), "Best: 70") {
		t.Error("high score set before Reset should reach the title screen")
	}
}
