package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadPlatformer loads the platformer configuration.
// Search order: customPath -> ~/.desert/configs/platformer.yaml -> ./configs/platformer.yaml -> embedded default.
// Files are decoded over the defaults, so partial files only override what they name.
func LoadPlatformer(customPath string) (PlatformerConfig, error) {
	cfg := DefaultPlatformerConfig()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath("platformer.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
			cfg = DefaultPlatformerConfig()
		}
	}

	if data, err := os.ReadFile("configs/platformer.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
		cfg = DefaultPlatformerConfig()
	}

	if err := yaml.Unmarshal(defaultPlatformerYAML, &cfg); err != nil {
		return DefaultPlatformerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".desert", "configs", filename)
}

// ApplyPlatformerPreset modifies the config based on a difficulty preset.
// Enemies patrol faster on harder presets and stomps bounce less.
func ApplyPlatformerPreset(cfg *PlatformerConfig, preset DifficultyPreset) {
	cfg.Enemy.SpeedFactor = EnemySpeedFactor(preset)

	switch preset {
	case DifficultyEasy:
		cfg.Enemy.StompRebound = -9
	case DifficultyHard:
		cfg.Enemy.StompRebound = -5
	}
}
