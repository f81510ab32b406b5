// Package console is a tcell driver for the game, for terminals where the
// Bubble Tea alt screen is unavailable or too slow.
package console

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-xonix/internal/core"
	"github.com/vovakirdan/tui-xonix/internal/platform/runner"
	"github.com/vovakirdan/tui-xonix/internal/registry"
)

// Driver runs a game on a tcell screen.
type Driver struct {
	screen        tcell.Screen
	game          registry.Game
	recorder      *runner.Recorder
	logger        *log.Logger
	tickRate      int
	buf           *core.Screen
	screenshotDir string
}

// New creates a driver for a game that has already been Reset.
func New(screen tcell.Screen, game registry.Game, store runner.ScoreStore, tickRate int, logger *log.Logger) *Driver {
	if tickRate <= 0 {
		tickRate = 10
	}
	w, h := game.Size()
	rec := runner.NewRecorder(game, store, logger)
	rec.SyncHighScore()

	return &Driver{
		screen:        screen,
		game:          game,
		recorder:      rec,
		logger:        logger,
		tickRate:      tickRate,
		buf:           core.NewScreen(w, h),
		screenshotDir: runner.ScreenshotDir(),
	}
}

// Run polls input and ticks the game until the player leaves or ctx is done.
func (d *Driver) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / time.Duration(d.tickRate))
	defer ticker.Stop()

	events := make(chan tcell.Event, 32)
	go func() {
		for {
			ev := d.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	d.draw()
	for {
		select {
		case <-ctx.Done():
			d.recorder.Observe(core.GameState{})
			return nil

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if d.handleKey(ev) {
					d.recorder.Observe(core.GameState{})
					return nil
				}
			case *tcell.EventResize:
				d.screen.Sync()
			}

		case <-ticker.C:
			done, err := d.step()
			if err != nil {
				return err
			}
			if done {
				return nil
			}
			d.draw()
		}
	}
}

// step advances the game. done is true when the player backed out of the title screen.
func (d *Driver) step() (done bool, err error) {
	res, err := d.game.Step()
	if errors.Is(err, core.ErrEmptyStack) {
		return true, nil
	}
	if err != nil {
		d.logger.Error("step failed", "game", d.game.ID(), "error", err)
	}
	d.recorder.Observe(res.State)
	return false, nil
}

// handleKey forwards engine keys and handles driver keys. Returns true to quit.
func (d *Driver) handleKey(ev *tcell.EventKey) bool {
	switch {
	case ev.Key() == tcell.KeyCtrlC, ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
		return true
	case ev.Key() == tcell.KeyCtrlS:
		d.buf.Clear()
		d.game.Render(d.buf)
		path, err := runner.SaveScreenshot(d.screenshotDir, d.game.ID(), d.buf, d.logger)
		if err != nil {
			d.logger.Error("screenshot failed", "error", err)
		} else {
			d.logger.Info("screenshot saved", "path", path)
		}
		return false
	}

	if e, ok := EventFor(ev); ok {
		d.game.PushEvent(e)
	}
	return false
}

// draw renders the game centered on the terminal.
func (d *Driver) draw() {
	d.buf.Clear()
	d.game.Render(d.buf)

	sw, sh := d.screen.Size()
	ox := max(0, (sw-d.buf.Width())/2)
	oy := max(0, (sh-d.buf.Height())/2)

	d.screen.Clear()
	for y := range d.buf.Height() {
		for x := range d.buf.Width() {
			c := d.buf.GetCell(x, y)
			d.screen.SetContent(ox+x, oy+y, c.Rune, nil, StyleFor(c.Color))
		}
	}
	d.screen.Show()
}

// EventFor maps a key to an engine event.
func EventFor(ev *tcell.EventKey) (core.Event, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return core.EventUp, true
	case tcell.KeyDown:
		return core.EventDown, true
	case tcell.KeyLeft:
		return core.EventLeft, true
	case tcell.KeyRight:
		return core.EventRight, true
	case tcell.KeyEnter:
		return core.EventSelect, true
	case tcell.KeyEscape:
		return core.EventBack, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'k':
			return core.EventUp, true
		case 's', 'j':
			return core.EventDown, true
		case 'a', 'h':
			return core.EventLeft, true
		case 'd', 'l':
			return core.EventRight, true
		case ' ':
			return core.EventSelect, true
		case 'b':
			return core.EventBack, true
		}
	}
	return core.EventTick, false
}

// StyleFor maps a core.Color onto the terminal palette.
func StyleFor(c core.Color) tcell.Style {
	n, err := strconv.Atoi(c.ANSI())
	if err != nil {
		return tcell.StyleDefault
	}
	return tcell.StyleDefault.Foreground(tcell.PaletteColor(n))
}

// Run opens the terminal, resets the game and drives it until the player leaves.
func Run(ctx context.Context, game registry.Game, store runner.ScoreStore, cfg core.RuntimeConfig, logger *log.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if err := game.Reset(cfg); err != nil {
		return err
	}

	return New(screen, game, store, cfg.TickRate, logger).Run(ctx)
}
