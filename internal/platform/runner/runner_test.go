package runner

import (
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-xonix/internal/core"
)

type savedRun struct {
	game         string
	score, level int
}

type fakeStore struct {
	saved []savedRun
	err   error
}

func (s *fakeStore) SaveScore(gameID string, score, level int) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	s.saved = append(s.saved, savedRun{gameID, score, level})
	return int64(len(s.saved)), nil
}

func (s *fakeStore) HighScore(string) (int, error) {
	best := 0
	for _, r := range s.saved {
		best = max(best, r.score)
	}
	return best, nil
}

type fakeGame struct {
	high int
}

func (g *fakeGame) ID() string { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }
func (g *fakeGame) Reset(core.RuntimeConfig) error { return nil }
func (g *fakeGame) Size() (int, int) { return 4, 2 }
func (g *fakeGame) PushEvent(core.Event) {}
func (g *fakeGame) Step() (core.StepResult, error) { return core.StepResult{}, nil }
func (g *fakeGame) Render(core.Canvas) {}
func (g *fakeGame) State() core.GameState { return core.GameState{} }
func (g *fakeGame) SetHighScore(score int) { g.high = score }

func TestRecorderSavesOncePerRun(t *testing.T) {
	store := &fakeStore{}
	game := &fakeGame{}
	r := NewRecorder(game, store, log.New(io.Discard))

	states := []core.GameState{
		{},
		{Playing: true, Level: 1, Lives: 3},
		{Playing: true, Level: 2, Lives: 1, Score: 300},
		{GameOver: true, Level: 2, Score: 300},
		{GameOver: true, Level: 2, Score: 300},
		{},
		{Playing: true, Level: 1, Lives: 3, Score: 50},
		{},
	}
	for _, st := range states {
		r.Observe(st)
	}

	expected := []savedRun{{"fake", 300, 2}, {"fake", 50, 1}}
	if len(store.saved) != len(expected) {
		t.Fatalf("saved %v, expected %v", store.saved, expected)
	}
	for i := range expected {
		if store.saved[i] != expected[i] {
			t.Errorf("saved[%d] = %v, expected %v", i, store.saved[i], expected[i])
		}
	}
	if game.high != 300 {
		t.Errorf("high score pushed to game = %d, expected 300", game.high)
	}
}

func TestRecorderWithoutStore(t *testing.T) {
	r := NewRecorder(&fakeGame{}, nil, log.New(io.Discard))
	r.Observe(core.GameState{Playing: true, Score: 10})
	if r.Observe(core.GameState{GameOver: true, Score: 10}) {
		t.Error("nothing should be saved without a store")
	}
}

func TestRecorderStoreError(t *testing.T) {
	store := &fakeStore{err: errors.New("disk full")}
	r := NewRecorder(&fakeGame{}, store, log.New(io.Discard))
	r.Observe(core.GameState{Playing: true, Score: 10})
	if r.Observe(core.GameState{GameOver: true, Score: 10}) {
		t.Error("failed save reported as saved")
	}
}

func TestSaveScreenshot(t *testing.T) {
	scr := core.NewScreen(4, 2)
	core.DrawText(scr, 0, 0, "ab", core.ColorRed)

	path, err := SaveScreenshot(t.TempDir(), "fake", scr, log.New(io.Discard))
	if err != nil {
		t.Fatalf("SaveScreenshot() failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "ab  \n    " {
		t.Errorf("screenshot = %q", data)
	}
	if !strings.Contains(path, "fake_") {
		t.Errorf("path %q should carry the game id", path)
	}
}
