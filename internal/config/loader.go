package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const stackDuelFile = "stackduel.yaml"

// LoadStackDuel loads the stack duel configuration.
// Search order: customPath -> ~/.stackduel/configs/stackduel.yaml ->
// ./configs/stackduel.yaml -> embedded default -> built-in default.
// Fields missing from a file keep their default values.
func LoadStackDuel(customPath string) (StackDuelConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return StackDuelConfig{}, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := parseStackDuel(data)
		if err != nil {
			return StackDuelConfig{}, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	for _, path := range []string{userConfigPath(stackDuelFile), filepath.Join("configs", stackDuelFile)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parseStackDuel(data); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	cfg, err := parseStackDuel(defaultStackDuelYAML)
	if err != nil || cfg.Validate() != nil {
		return DefaultStackDuelConfig(), nil
	}
	return cfg, nil
}

func parseStackDuel(data []byte) (StackDuelConfig, error) {
	cfg := DefaultStackDuelConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return StackDuelConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".stackduel", "configs", filename)
}
