package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SourceEmbedded is reported by LoadSurvival when no file was found.
const SourceEmbedded = "embedded"

const configFileName = "survival.yaml"

// LoadSurvival loads the game configuration and reports where it came from.
// Search order: customPath -> ~/.survival/configs/survival.yaml ->
// ./configs/survival.yaml -> embedded default.
//
// Files are decoded over the defaults, so a file only needs the keys it
// changes. A custom path that cannot be read, parsed or validated is an
// error; broken files on the search path are skipped.
func LoadSurvival(customPath string) (SurvivalConfig, string, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return SurvivalConfig{}, customPath, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return SurvivalConfig{}, customPath, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	for _, path := range searchPaths() {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := Parse(data); err == nil {
			return cfg, path, nil
		}
	}

	cfg, err := Parse(defaultSurvivalYAML)
	if err != nil {
		return DefaultSurvivalConfig(), SourceEmbedded, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// Parse decodes a YAML document over the defaults and validates the result.
func Parse(data []byte) (SurvivalConfig, error) {
	cfg := DefaultSurvivalConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SurvivalConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return SurvivalConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes the config as YAML.
func Marshal(cfg SurvivalConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

func searchPaths() []string {
	paths := make([]string, 0, 2)
	if p := userConfigPath(configFileName); p != "" {
		paths = append(paths, p)
	}
	return append(paths, filepath.Join("configs", configFileName))
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".survival", "configs", filename)
}
