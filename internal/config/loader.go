package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadXonix loads Xonix configuration.
// Search order: customPath -> ~/.xonix/configs/xonix.yaml -> ./configs/xonix.yaml -> embedded default.
// Files only need to name the keys they override.
func LoadXonix(customPath string) (XonixConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultXonixConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := ParseXonix(data)
		if err != nil {
			return DefaultXonixConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("xonix.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := ParseXonix(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "xonix.yaml")); err == nil {
		if cfg, err := ParseXonix(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := ParseXonix(defaultXonixYAML)
	if err != nil {
		return DefaultXonixConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParseXonix decodes YAML on top of the defaults and validates the result.
func ParseXonix(data []byte) (XonixConfig, error) {
	cfg := DefaultXonixConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".xonix", "configs", filename)
}
