package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	str2duration "github.com/xhit/go-str2duration/v2"
)

const defaultConfigPath = "~/.config/apibay/config.toml"

// Config captures the CLI's settings. Everything is optional; the
// defaults talk to the canonical API address.
type Config struct {
	BaseURL  string
	Timeout  time.Duration
	Trackers []string
}

// loadConfig parses the TOML config, falling back to defaults when the
// file is missing. APIBAY_TIMEOUT overrides the file value and accepts
// extended units like "1d" via str2duration.
func loadConfig(path string) (Config, error) {
	var cfg Config

	resolved, err := resolvePath(path)
	if err != nil {
		return cfg, err
	}

	data, err := os.ReadFile(resolved)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err == nil {
		var raw struct {
			BaseURL  string   `toml:"base_url"`
			Timeout  string   `toml:"timeout"`
			Trackers []string `toml:"trackers"`
		}
		if err := toml.Unmarshal(data, &raw); err != nil {
			return cfg, fmt.Errorf("parse config: %w", err)
		}
		cfg.BaseURL = strings.TrimSpace(raw.BaseURL)
		cfg.Trackers = raw.Trackers
		if raw.Timeout != "" {
			cfg.Timeout, err = str2duration.ParseDuration(raw.Timeout)
			if err != nil {
				return cfg, fmt.Errorf("parse config timeout: %w", err)
			}
		}
	}

	if env := os.Getenv("APIBAY_TIMEOUT"); env != "" {
		cfg.Timeout, err = str2duration.ParseDuration(env)
		if err != nil {
			return cfg, fmt.Errorf("parse APIBAY_TIMEOUT: %w", err)
		}
	}
	return cfg, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		path = defaultConfigPath
	}
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return filepath.Abs(path)
}
