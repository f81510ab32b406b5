package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
// Presets only choose starting lives and the capture threshold;
// the level progression itself is always the same.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty converts a flag value into a preset.
// The empty string selects DifficultyNormal.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyHard:
		return DifficultyHard, nil
	default:
		return DifficultyNormal, fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyXonixPreset modifies the config based on a difficulty preset.
func ApplyXonixPreset(cfg *XonixConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Rules.Lives = 5
		cfg.Rules.FillThreshold = 0.15
	case DifficultyHard:
		cfg.Rules.Lives = 2
		cfg.Rules.FillThreshold = 0.3
	}
}
