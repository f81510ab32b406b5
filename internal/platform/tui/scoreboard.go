package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-xonix/internal/registry"
	"github.com/vovakirdan/tui-xonix/internal/storage"
)

// ScoreSource is the read side of storage.Store.
type ScoreSource interface {
	TopScores(gameID string, limit int) ([]storage.ScoreEntry, error)
	Stats(gameID string) (*storage.GameStats, error)
}

const boardRows = 50

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardTabStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	boardActiveTab  = boardTabStyle.Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	boardFrameStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	boardDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

type scoreboardKeys struct {
	Scroll key.Binding
	Switch key.Binding
	Leave  key.Binding
}

func (k scoreboardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Scroll, k.Switch, k.Leave}
}

func (k scoreboardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func defaultScoreboardKeys() scoreboardKeys {
	return scoreboardKeys{
		Scroll: key.NewBinding(key.WithKeys("up", "down", "k", "j"), key.WithHelp("↑/↓", "scroll")),
		Switch: key.NewBinding(key.WithKeys("tab", "shift+tab", "left", "right"), key.WithHelp("tab/←/→", "variant")),
		Leave:  key.NewBinding(key.WithKeys("esc", "q", "ctrl+c"), key.WithHelp("esc/q", "close")),
	}
}

// ScoreboardModel browses the finished runs of every registered variant.
type ScoreboardModel struct {
	variants []registry.GameInfo
	current  int
	store    ScoreSource
	rows     int
	stats    *storage.GameStats
	table    table.Model
	help     help.Model
	keys     scoreboardKeys
	width    int
	height   int
}

// NewScoreboardModel opens the scoreboard on startID, or on the first variant
// when startID is not registered.
func NewScoreboardModel(store ScoreSource, startID string, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		variants: registry.List(),
		store:    store,
		help:     help.New(),
		keys:     defaultScoreboardKeys(),
		width:    width,
		height:   height,
	}
	for i, v := range m.variants {
		if v.ID == startID {
			m.current = i
		}
	}
	m.table = newScoreTable(width, height)
	m.load()
	return m
}

func newScoreTable(width, height int) table.Model {
	dateWidth := 12
	if width > 60 {
		dateWidth = 18
	}
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Rank", Width: 5},
			{Title: "Score", Width: 10},
			{Title: "Level", Width: 6},
			{Title: "Date", Width: dateWidth},
		}),
		table.WithFocused(true),
		table.WithHeight(max(3, height-10)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// Variant returns the ID of the variant on screen.
func (m ScoreboardModel) Variant() string {
	if len(m.variants) == 0 {
		return ""
	}
	return m.variants[m.current].ID
}

// load refreshes rows and stats for the current variant.
func (m *ScoreboardModel) load() {
	m.rows, m.stats = 0, nil
	m.table.SetRows(nil)
	id := m.Variant()
	if m.store == nil || id == "" {
		return
	}

	entries, err := m.store.TopScores(id, boardRows)
	if err != nil {
		log.Warn("cannot load scores", "variant", id, "error", err)
		return
	}
	rows := make([]table.Row, len(entries))
	for i, e := range entries {
		rows[i] = table.Row{
			strconv.Itoa(i + 1),
			strconv.Itoa(e.Score),
			strconv.Itoa(e.Level),
			e.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
	m.rows = len(rows)

	if m.stats, err = m.store.Stats(id); err != nil {
		log.Warn("cannot load stats", "variant", id, "error", err)
	}
}

// switchBy moves to the variant delta steps away, wrapping around.
func (m *ScoreboardModel) switchBy(delta int) {
	n := len(m.variants)
	if n == 0 {
		return
	}
	m.current = ((m.current+delta)%n + n) % n
	m.load()
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Leave):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Switch):
			if msg.String() == "shift+tab" || msg.String() == "left" {
				m.switchBy(-1)
			} else {
				m.switchBy(1)
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = newScoreTable(m.width, m.height)
		m.load()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m ScoreboardModel) View() string {
	title := "HIGH SCORES"
	if len(m.variants) > 0 {
		title += " - " + m.variants[m.current].Title
	}

	tabs := make([]string, len(m.variants))
	for i, v := range m.variants {
		style := boardTabStyle
		if i == m.current {
			style = boardActiveTab
		}
		tabs[i] = style.Render(v.Title)
	}

	body := boardDimStyle.Italic(true).Padding(1, 2).Render("No finished runs yet.")
	if m.rows > 0 {
		body = m.table.View()
	}

	sections := []string{
		boardTitleStyle.Render(title),
		lipgloss.JoinHorizontal(lipgloss.Top, tabs...),
		boardFrameStyle.Render(body),
	}
	if m.stats != nil && m.stats.GamesCount > 0 {
		sections = append(sections, boardDimStyle.Render(fmt.Sprintf(
			"Runs: %d  Best: %d (level %d)  Average: %.0f",
			m.stats.GamesCount, m.stats.HighScore, m.stats.BestLevel, m.stats.AvgScore)))
	}
	sections = append(sections, boardDimStyle.Render(m.help.View(m.keys)))

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, strings.TrimRight(content, "\n"))
}

// RunScoreboard shows the scoreboard until the user closes it.
func RunScoreboard(store ScoreSource, startID string, width, height int) error {
	_, err := tea.NewProgram(NewScoreboardModel(store, startID, width, height), tea.WithAltScreen()).Run()
	return err
}
