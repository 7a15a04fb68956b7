package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "solo.yaml"

// LoadSolo loads Solo Mission configuration.
// Search order: customPath -> ~/.solo/configs/solo.yaml -> ./configs/solo.yaml -> embedded default.
// Files are decoded over the defaults, so a partial file only overrides what it names.
func LoadSolo(customPath string) (SoloConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return SoloConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return SoloConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", configFile)); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if cfg, err := parse(defaultSoloYAML); err == nil {
		return cfg, nil
	}
	return DefaultSoloConfig(), nil // Fallback to hardcoded if embed fails
}

// parse decodes YAML over the hardcoded defaults and validates the result.
func parse(data []byte) (SoloConfig, error) {
	cfg := DefaultSoloConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SoloConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return SoloConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".solo", "configs", filename)
}

// ApplySoloPreset modifies the config based on a difficulty preset.
func ApplySoloPreset(cfg *SoloConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Bonus.MaxInterval = cfg.Bonus.MinInterval + (cfg.Bonus.MaxInterval-cfg.Bonus.MinInterval)/2
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
	}
}
