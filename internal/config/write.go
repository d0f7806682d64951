package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ConfigDir returns the mindsift config directory path.
// Uses $XDG_CONFIG_HOME/mindsift if set, otherwise ~/.config/mindsift.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "mindsift")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "mindsift")
}

// WriteDefault writes a default config.toml pointing to dataPath.
// Returns the config file path. Skips if config.toml already exists.
func WriteDefault(dataPath string) (string, error) {
	dir := ConfigDir()
	path := filepath.Join(dir, "config.toml")

	if _, err := os.Stat(path); err == nil {
		return path, nil // already exists
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create config dir: %w", err)
	}

	portablePath := CompressHome(dataPath)

	content := fmt.Sprintf(`data_path = %q
inbox = %q
timing_export = ""

[archive]
compress = true

[history]
enabled = true

[graph]
enabled = false
base_url = ""
api_key_env = "MINDSIFT_GRAPH_KEY"
timeout_seconds = 10
`, portablePath, portablePath+"/inbox")

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("write config: %w", err)
	}

	return path, nil
}

// CompressHome replaces $HOME prefix with ~/ for portable config values.
func CompressHome(path string) string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return path
	}
	if strings.HasPrefix(path, home+"/") {
		return "~/" + path[len(home)+1:]
	}
	return path
}
