package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"
)

// Load loads configuration for a variant.
// Search order: customPath -> ~/.shooters/configs/<variant>.yaml ->
// ./configs/<variant>.yaml -> embedded default -> built-in default.
// Files are decoded over the built-in default, so partial files only
// override the keys they set.
func Load(variant string, customPath string) (ShooterConfig, error) {
	if !slices.Contains(Variants, variant) {
		return ShooterConfig{}, fmt.Errorf("unknown variant %q", variant)
	}
	filename := variant + ".yaml"

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return ShooterConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := decode(variant, data)
		if err != nil {
			return ShooterConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := decode(variant, data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", filename)); err == nil {
		if cfg, err := decode(variant, data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if cfg, err := decode(variant, embeddedDefaults[variant]); err == nil {
		return cfg, nil
	}
	return Default(variant), nil // Fallback to hardcoded if embed fails
}

// LoadWithPreset loads a variant and applies a difficulty preset on top.
func LoadWithPreset(variant, customPath string, preset DifficultyPreset) (ShooterConfig, error) {
	cfg, err := Load(variant, customPath)
	if err != nil {
		return cfg, err
	}
	ApplyPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid %s config: %w", variant, err)
	}
	return cfg, nil
}

func decode(variant string, data []byte) (ShooterConfig, error) {
	cfg := Default(variant)
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ShooterConfig{}, err
	}
	switch cfg.Variant {
	case "":
		cfg.Variant = variant
	case variant:
	default:
		return ShooterConfig{}, fmt.Errorf("config is for variant %q, not %q", cfg.Variant, variant)
	}
	if err := cfg.Validate(); err != nil {
		return ShooterConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".shooters", "configs", filename)
}
