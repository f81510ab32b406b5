package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-xonix/internal/core"
	"github.com/vovakirdan/tui-xonix/internal/platform/runner"
	"github.com/vovakirdan/tui-xonix/internal/registry"
)

// footerRows is the height kept below the game for the help and status lines.
const footerRows = 2

// Model is the Bubble Tea model for running a game.
type Model struct {
	game          registry.Game
	screen        *core.Screen
	recorder      *runner.Recorder
	logger        *log.Logger
	config        core.RuntimeConfig
	keys          KeyMap
	help          help.Model
	width         int
	height        int
	status        string
	screenshotDir string
	quitting      bool
}

// NewModel creates a Bubble Tea model for a game that has already been Reset.
func NewModel(game registry.Game, store runner.ScoreStore, cfg core.RuntimeConfig, logger *log.Logger) Model {
	w, h := game.Size()
	rec := runner.NewRecorder(game, store, logger)
	rec.SyncHighScore()

	return Model{
		game:          game,
		screen:        core.NewScreen(w, h),
		recorder:      rec,
		logger:        logger,
		config:        cfg,
		keys:          DefaultKeyMap(),
		help:          help.New(),
		width:         cfg.ScreenW,
		height:        cfg.ScreenH,
		screenshotDir: runner.ScreenshotDir(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.recorder.Observe(core.GameState{})
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if e, ok := m.keys.EventFor(msg); ok {
		m.game.PushEvent(e)
	}
	return m, nil
}

// handleTick advances the game one step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	res, err := m.game.Step()
	if errors.Is(err, core.ErrEmptyStack) {
		m.quitting = true
		return m, tea.Quit
	}
	if err != nil {
		m.logger.Error("step failed", "game", m.game.ID(), "error", err)
	}

	if m.recorder.Observe(res.State) {
		m.status = fmt.Sprintf("score %d saved", res.State.Score)
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current frame to a file and the clipboard.
func (m *Model) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	path, err := runner.SaveScreenshot(m.screenshotDir, m.game.ID(), m.screen, m.logger)
	if err != nil {
		m.logger.Error("screenshot failed", "error", err)
		m.status = "screenshot failed"
		return
	}
	m.logger.Info("screenshot saved", "path", path)
	m.status = "saved " + path
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)

	_, gameH := m.game.Size()
	content := RenderScreen(m.screen)
	for _, line := range m.footer(m.height - gameH) {
		content += "\n" + line
	}

	if m.width <= 0 || m.height <= 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// footer returns the help and status lines, cut to room rows when the
// terminal height is known. The status line wins over help.
func (m Model) footer(room int) []string {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	lines := strings.Split(style.Render(m.help.View(m.keys)), "\n")
	if m.status != "" {
		lines = append(lines, style.Render(m.status))
	}
	if m.height <= 0 || len(lines) <= room {
		return lines
	}
	if room <= 0 {
		return nil
	}
	if m.status != "" {
		return append(lines[:room-1:room-1], lines[len(lines)-1])
	}
	return lines[:room]
}

// fitConfig shrinks the screen handed to the game by the footer rows.
func fitConfig(cfg core.RuntimeConfig) core.RuntimeConfig {
	cfg.ScreenH = max(0, cfg.ScreenH-footerRows)
	return cfg
}

// Run resets the game and runs it until the player leaves.
func Run(game registry.Game, store runner.ScoreStore, cfg core.RuntimeConfig, logger *log.Logger) error {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if err := game.Reset(fitConfig(cfg)); err != nil {
		return err
	}

	p := tea.NewProgram(
		NewModel(game, store, cfg, logger),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
