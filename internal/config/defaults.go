package config

import (
	_ "embed"
)

//go:embed defaults/xonix.yaml
var defaultXonixYAML []byte

// DefaultXonixConfig returns the default Xonix configuration.
func DefaultXonixConfig() XonixConfig {
	return XonixConfig{
		Board: BoardConfig{
			Width:  32,
			Height: 12,
		},
		Rules: RulesConfig{
			Lives:             3,
			FillThreshold:     0.2,
			DeathDelay:        20,
			NextLevelDelay:    20,
			ScorePerPercent:   10,
			MaxSampleAttempts: 10000,
		},
		Enemies: EnemiesConfig{
			SeaPerLevel:     1,
			LandBase:        1,
			LandEveryLevels: 0,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultXonixYAML
}
