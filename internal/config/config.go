package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config holds all mindsift configuration.
type Config struct {
	DataPath     string `toml:"data_path"`     // review data root
	Inbox        string `toml:"inbox"`         // capture inbox watched in watch mode
	TimingExport string `toml:"timing_export"` // default timing export location

	Archive ArchiveConfig `toml:"archive"`
	History HistoryConfig `toml:"history"`
	Graph   GraphConfig   `toml:"graph"`
}

type ArchiveConfig struct {
	Compress bool `toml:"compress"`
}

type HistoryConfig struct {
	Enabled bool `toml:"enabled"`
}

// GraphConfig configures the optional knowledge-graph service.
type GraphConfig struct {
	Enabled        bool   `toml:"enabled"`
	BaseURL        string `toml:"base_url"`
	APIKeyEnv      string `toml:"api_key_env"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// DefaultConfig returns config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		DataPath: "~/mindsift",
		Inbox:    "~/mindsift/inbox",
		Archive: ArchiveConfig{
			Compress: true,
		},
		History: HistoryConfig{
			Enabled: true,
		},
		Graph: GraphConfig{
			Enabled:        false,
			APIKeyEnv:      "MINDSIFT_GRAPH_KEY",
			TimeoutSeconds: 10,
		},
	}
}

// Load reads config from the standard path, falling back to defaults.
func Load() (Config, error) {
	cfg := DefaultConfig()

	for _, p := range configPaths() {
		if _, err := os.Stat(p); err == nil {
			if _, err := toml.DecodeFile(p, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config %s: %w", p, err)
			}
			break
		}
	}

	// Expand ~ in paths
	cfg.DataPath = expandHome(cfg.DataPath)
	cfg.Inbox = expandHome(cfg.Inbox)
	cfg.TimingExport = expandHome(cfg.TimingExport)

	return cfg, nil
}

func configPaths() []string {
	var paths []string

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		paths = append(paths, filepath.Join(xdg, "mindsift", "config.toml"))
	}

	home, _ := os.UserHomeDir()
	if home != "" {
		paths = append(paths, filepath.Join(home, ".config", "mindsift", "config.toml"))
	}

	return paths
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}

// ReviewsDir returns the directory where review reports are written.
func (c Config) ReviewsDir() string {
	return filepath.Join(c.DataPath, "Reviews")
}

// StateDir returns the .mindsift state directory inside the data root.
func (c Config) StateDir() string {
	return filepath.Join(c.DataPath, ".mindsift")
}

// ArchiveDir returns the directory for compressed capture files.
func (c Config) ArchiveDir() string {
	return filepath.Join(c.StateDir(), "archive")
}

// HistoryPath returns the SQLite history database path.
func (c Config) HistoryPath() string {
	return filepath.Join(c.StateDir(), "history.db")
}
