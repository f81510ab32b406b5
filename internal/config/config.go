// Package config provides YAML-based game configuration loading and
// difficulty presets for xonix.
package config

import (
	"errors"
	"fmt"
)

// BorderWidth is the width of the land frame around every board.
const BorderWidth = 2

// XonixConfig contains all configuration for the Xonix game.
type XonixConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Rules   RulesConfig   `yaml:"rules"`
	Enemies EnemiesConfig `yaml:"enemies"`
}

// BoardConfig defines the playfield size, border included.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// RulesConfig defines lives, delays, the level threshold and scoring.
type RulesConfig struct {
	Lives             int     `yaml:"lives"`
	FillThreshold     float64 `yaml:"fill_threshold"`
	DeathDelay        int     `yaml:"death_delay"`
	NextLevelDelay    int     `yaml:"next_level_delay"`
	ScorePerPercent   int     `yaml:"score_per_percent"`
	MaxSampleAttempts int     `yaml:"max_sample_attempts"`
}

// EnemiesConfig defines how enemy counts grow with the level.
type EnemiesConfig struct {
	SeaPerLevel     int `yaml:"sea_per_level"`
	LandBase        int `yaml:"land_base"`
	LandEveryLevels int `yaml:"land_every_levels"`
}

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks that the configuration describes a playable game.
func (c XonixConfig) Validate() error {
	minSide := 2*BorderWidth + 1
	switch {
	case c.Board.Width < minSide || c.Board.Height < minSide:
		return fmt.Errorf("%w: board must be at least %dx%d, got %dx%d",
			ErrInvalidConfig, minSide, minSide, c.Board.Width, c.Board.Height)
	case c.Rules.Lives <= 0:
		return fmt.Errorf("%w: lives must be positive, got %d", ErrInvalidConfig, c.Rules.Lives)
	case c.Rules.FillThreshold <= 0 || c.Rules.FillThreshold >= 1:
		return fmt.Errorf("%w: fill_threshold must be in (0, 1), got %g", ErrInvalidConfig, c.Rules.FillThreshold)
	case c.Rules.DeathDelay < 0 || c.Rules.NextLevelDelay < 0:
		return fmt.Errorf("%w: delays must not be negative", ErrInvalidConfig)
	case c.Rules.MaxSampleAttempts <= 0:
		return fmt.Errorf("%w: max_sample_attempts must be positive", ErrInvalidConfig)
	case c.Enemies.SeaPerLevel < 0 || c.Enemies.LandBase < 0 || c.Enemies.LandEveryLevels < 0:
		return fmt.Errorf("%w: enemy counts must not be negative", ErrInvalidConfig)
	}
	return nil
}

// SeaEnemies returns the number of sea enemies for a level (1-based).
func (c XonixConfig) SeaEnemies(level int) int {
	return c.Enemies.SeaPerLevel * level
}

// LandEnemies returns the number of land enemies for a level (1-based).
func (c XonixConfig) LandEnemies(level int) int {
	n := c.Enemies.LandBase
	if c.Enemies.LandEveryLevels > 0 {
		n += (level - 1) / c.Enemies.LandEveryLevels
	}
	return n
}
