package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const configName = "calendar-cli.toml"

type cliConfig struct {
	APIURL      string `toml:"api_url"`
	Origin      string `toml:"origin"`
	SessionFile string `toml:"session_file"`
	Timezone    string `toml:"timezone"`
	LogLevel    string `toml:"log_level"`
}

func defaultConfig() cliConfig {
	return cliConfig{
		APIURL:      "http://localhost:5000/api",
		Origin:      "http://localhost:3000",
		SessionFile: filepath.Join(configDir(), "session.toml"),
		LogLevel:    "warn",
	}
}

func configDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "calendar-cli")
	}
	return "."
}

// loadConfig reads path, or when empty tries the current directory and then
// the user config directory. No file at all means defaults.
func loadConfig(path string) (cliConfig, error) {
	cfg := defaultConfig()

	candidates := []string{path}
	if path == "" {
		candidates = []string{configName, filepath.Join(configDir(), configName)}
	}

	for _, p := range candidates {
		data, err := os.ReadFile(p)
		if errors.Is(err, os.ErrNotExist) && path == "" {
			continue
		}
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", p, err)
		}
		return cfg, nil
	}
	return cfg, nil
}
