package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SourceEmbedded is reported by Load when no file was found.
const SourceEmbedded = "embedded"

// localConfigPath is checked relative to the working directory.
var localConfigPath = filepath.Join("configs", "snake.yaml")

// Load loads the configuration and reports where it came from.
// Search order: customPath -> ~/.snake/config.yaml -> ./configs/snake.yaml -> embedded default.
// Files are layered over the defaults, so a file only needs the keys it changes.
func Load(customPath string) (Config, string, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := LoadFile(customPath)
		if err != nil {
			return Config{}, "", err
		}
		return cfg, customPath, nil
	}

	candidates := []string{userConfigPath(), localConfigPath}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		cfg, err := LoadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return Config{}, "", err
		}
		return cfg, path, nil
	}

	// Use embedded default YAML
	cfg, err := parse(defaultYAML)
	if err != nil {
		return Default(), SourceEmbedded, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// LoadFile reads and validates a single configuration file.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Marshal renders a configuration as YAML.
func Marshal(cfg Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}

// parse decodes data over the defaults and validates the result.
func parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snake", "config.yaml")
}
