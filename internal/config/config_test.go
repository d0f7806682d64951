package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.DataPath != "~/mindsift" {
		t.Errorf("DataPath = %q", cfg.DataPath)
	}
	if cfg.Inbox != "~/mindsift/inbox" {
		t.Errorf("Inbox = %q", cfg.Inbox)
	}
	if !cfg.Archive.Compress {
		t.Error("Archive.Compress should default to true")
	}
	if !cfg.History.Enabled {
		t.Error("History.Enabled should default to true")
	}
	if cfg.Graph.Enabled {
		t.Error("Graph.Enabled should default to false")
	}
	if cfg.Graph.TimeoutSeconds != 10 {
		t.Errorf("Graph.TimeoutSeconds = %d", cfg.Graph.TimeoutSeconds)
	}
	if cfg.Graph.APIKeyEnv != "MINDSIFT_GRAPH_KEY" {
		t.Errorf("Graph.APIKeyEnv = %q", cfg.Graph.APIKeyEnv)
	}
}

func TestLoad_NoConfig(t *testing.T) {
	// Point XDG to an empty dir so no config file is found
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	// Should have expanded defaults (DataPath no longer starts with ~/)
	if strings.HasPrefix(cfg.DataPath, "~/") {
		t.Errorf("DataPath not expanded: %q", cfg.DataPath)
	}
	if !strings.HasSuffix(cfg.DataPath, "mindsift") {
		t.Errorf("DataPath = %q, want suffix mindsift", cfg.DataPath)
	}
}

func TestLoad_ValidConfig(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	t.Setenv("HOME", t.TempDir())

	configDir := filepath.Join(xdg, "mindsift")
	os.MkdirAll(configDir, 0o755)

	tomlContent := `data_path = "/custom/data"
inbox = "/custom/inbox"
timing_export = "/custom/timing.json"

[archive]
compress = false

[history]
enabled = false

[graph]
enabled = true
base_url = "http://localhost:7474"
timeout_seconds = 30
`
	os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(tomlContent), 0o644)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.DataPath != "/custom/data" {
		t.Errorf("DataPath = %q", cfg.DataPath)
	}
	if cfg.Inbox != "/custom/inbox" {
		t.Errorf("Inbox = %q", cfg.Inbox)
	}
	if cfg.TimingExport != "/custom/timing.json" {
		t.Errorf("TimingExport = %q", cfg.TimingExport)
	}
	if cfg.Archive.Compress {
		t.Error("Archive.Compress should be false")
	}
	if cfg.History.Enabled {
		t.Error("History.Enabled should be false")
	}
	if !cfg.Graph.Enabled {
		t.Error("Graph.Enabled should be true")
	}
	if cfg.Graph.BaseURL != "http://localhost:7474" {
		t.Errorf("Graph.BaseURL = %q", cfg.Graph.BaseURL)
	}
	if cfg.Graph.TimeoutSeconds != 30 {
		t.Errorf("Graph.TimeoutSeconds = %d", cfg.Graph.TimeoutSeconds)
	}
}

func TestLoad_ExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	configDir := filepath.Join(xdg, "mindsift")
	os.MkdirAll(configDir, 0o755)
	os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(`data_path = "~/my-data"`), 0o644)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := filepath.Join(home, "my-data")
	if cfg.DataPath != want {
		t.Errorf("DataPath = %q, want %q", cfg.DataPath, want)
	}
}

func TestLoad_XDGPriority(t *testing.T) {
	xdg := t.TempDir()
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	t.Setenv("HOME", home)

	// Create config at XDG path
	xdgDir := filepath.Join(xdg, "mindsift")
	os.MkdirAll(xdgDir, 0o755)
	os.WriteFile(filepath.Join(xdgDir, "config.toml"), []byte(`data_path = "/from-xdg"`), 0o644)

	// Also create config at ~/.config path
	homeDir := filepath.Join(home, ".config", "mindsift")
	os.MkdirAll(homeDir, 0o755)
	os.WriteFile(filepath.Join(homeDir, "config.toml"), []byte(`data_path = "/from-home"`), 0o644)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.DataPath != "/from-xdg" {
		t.Errorf("DataPath = %q, want /from-xdg (XDG should take priority)", cfg.DataPath)
	}
}

func TestLoad_InvalidTOML(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	t.Setenv("HOME", t.TempDir())

	configDir := filepath.Join(xdg, "mindsift")
	os.MkdirAll(configDir, 0o755)
	os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(`data_path = [broken`), 0o644)

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for invalid TOML")
	}
}

func TestDerivedPaths(t *testing.T) {
	cfg := Config{DataPath: "/home/user/mindsift"}

	if got := cfg.ReviewsDir(); got != "/home/user/mindsift/Reviews" {
		t.Errorf("ReviewsDir = %q", got)
	}
	if got := cfg.StateDir(); got != "/home/user/mindsift/.mindsift" {
		t.Errorf("StateDir = %q", got)
	}
	if got := cfg.ArchiveDir(); got != "/home/user/mindsift/.mindsift/archive" {
		t.Errorf("ArchiveDir = %q", got)
	}
	if got := cfg.HistoryPath(); got != "/home/user/mindsift/.mindsift/history.db" {
		t.Errorf("HistoryPath = %q", got)
	}
}

func TestWriteDefault(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	t.Setenv("HOME", t.TempDir())

	path, err := WriteDefault("/data/mindsift")
	if err != nil {
		t.Fatalf("WriteDefault: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	if !strings.Contains(string(data), `data_path = "/data/mindsift"`) {
		t.Errorf("config missing data_path: %s", data)
	}

	// Second call should not overwrite.
	if _, err := WriteDefault("/other/path"); err != nil {
		t.Fatalf("WriteDefault (second): %v", err)
	}
	again, _ := os.ReadFile(path)
	if string(again) != string(data) {
		t.Error("WriteDefault overwrote an existing config")
	}
}
