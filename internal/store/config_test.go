package store

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_MissingFileYieldsDefaults(t *testing.T) {
	t.Setenv("TASKDECK_CONFIG_DIR", t.TempDir())

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !cfg.MouseEnabled() {
		t.Fatalf("expected mouse enabled by default")
	}
	dir, err := cfg.DataDir()
	if err != nil {
		t.Fatalf("data dir: %v", err)
	}
	if filepath.Base(dir) != "data" {
		t.Fatalf("expected default data dir under config dir, got %q", dir)
	}
}

func TestLoadConfig_ParsesYAML(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TASKDECK_CONFIG_DIR", dir)

	body := "storage:\n  backend: sqlite\n  dir: /tmp/td\ntui:\n  theme: light\n  mouse: false\ndebug:\n  log_level: debug\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Storage.Backend != "sqlite" || cfg.Storage.Dir != "/tmp/td" {
		t.Fatalf("unexpected storage config: %+v", cfg.Storage)
	}
	if cfg.TUI.Theme != "light" || cfg.MouseEnabled() {
		t.Fatalf("unexpected tui config: theme=%q mouse=%v", cfg.TUI.Theme, cfg.MouseEnabled())
	}
	if cfg.Debug.LogLevel != "debug" {
		t.Fatalf("unexpected debug config: %+v", cfg.Debug)
	}
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	t.Setenv("TASKDECK_CONFIG_DIR", t.TempDir())

	off := false
	in := &Config{Storage: StorageConfig{Backend: "memory"}, TUI: TUIConfig{Mouse: &off}}
	if err := SaveConfig(in); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := LoadConfig()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Storage.Backend != "memory" || got.MouseEnabled() {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}
