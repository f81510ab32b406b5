// Package runner holds the pieces every terminal driver shares:
// recording finished runs and saving screenshots.
package runner

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-xonix/internal/core"
	"github.com/vovakirdan/tui-xonix/internal/registry"
)

// ScoreStore is the part of storage.Store a driver needs.
type ScoreStore interface {
	SaveScore(gameID string, score, level int) (int64, error)
	HighScore(gameID string) (int, error)
}

// Recorder watches game states between ticks and saves each finished run once.
type Recorder struct {
	game   registry.Game
	store  ScoreStore
	logger *log.Logger
	prev   core.GameState
}

// NewRecorder creates a recorder. A nil store disables saving.
func NewRecorder(game registry.Game, store ScoreStore, logger *log.Logger) *Recorder {
	if logger == nil {
		logger = log.New(os.Stderr)
	}
	return &Recorder{game: game, store: store, logger: logger}
}

// Observe compares cur with the previous state and saves the run if it just ended.
// Returns true when a score was saved.
func (r *Recorder) Observe(cur core.GameState) bool {
	prev := r.prev
	r.prev = cur

	ended, ok := core.RunEnded(prev, cur)
	if !ok || r.store == nil || ended.Score <= 0 {
		return false
	}

	if _, err := r.store.SaveScore(r.game.ID(), ended.Score, ended.Level); err != nil {
		r.logger.Error("cannot save score", "game", r.game.ID(), "error", err)
		return false
	}
	r.logger.Info("score saved", "game", r.game.ID(), "score", ended.Score, "level", ended.Level)
	r.SyncHighScore()
	return true
}

// SyncHighScore passes the stored best score to games that display it.
func (r *Recorder) SyncHighScore() {
	setter, ok := r.game.(registry.HighScoreSetter)
	if !ok || r.store == nil {
		return
	}
	high, err := r.store.HighScore(r.game.ID())
	if err != nil {
		r.logger.Warn("cannot load high score", "game", r.game.ID(), "error", err)
		return
	}
	setter.SetHighScore(high)
}

// ScreenshotDir returns the directory screenshots are written to.
func ScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".xonix", "screenshots")
}

// SaveScreenshot writes the plain text of scr to dir and copies it to the
// clipboard. Returns the file path. A clipboard failure is logged, not returned.
func SaveScreenshot(dir, gameID string, scr *core.Screen, logger *log.Logger) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: cannot create directory %s: %w", dir, err)
	}

	text := scr.String()
	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", gameID, timestamp))
	if err := os.WriteFile(path, []byte(text), 0o600); err != nil {
		return "", fmt.Errorf("screenshot: cannot write %s: %w", path, err)
	}

	if err := clipboard.WriteAll(text); err != nil && logger != nil {
		logger.Debug("clipboard unavailable", "error", err)
	}
	return path, nil
}
