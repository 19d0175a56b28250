package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("missing file should not be an error: %v", err)
	}
	if cfg.Paths.Bindings == "" || cfg.Paths.Users == "" || cfg.Paths.Session == "" {
		t.Errorf("derived paths not filled: %+v", cfg.Paths)
	}
}

func TestLoadTOMLDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	doc := `
[paths]
data_dir = "/tmp/kbd"

[logging]
file = "/tmp/kbd/log.txt"
contains = ["ERROR"]
patterns = ['\bWARN\b']
`
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Paths.DataDir != "/tmp/kbd" {
		t.Errorf("data dir = %q", cfg.Paths.DataDir)
	}
	if cfg.Paths.Bindings != filepath.Join("/tmp/kbd", "bindings.json") {
		t.Errorf("bindings = %q", cfg.Paths.Bindings)
	}
	if cfg.Logging.File != "/tmp/kbd/log.txt" {
		t.Errorf("log file = %q", cfg.Logging.File)
	}
	if len(cfg.Logging.Contains) != 1 || len(cfg.Logging.Patterns) != 1 {
		t.Errorf("filters = %+v", cfg.Logging)
	}
}

func TestLoadDocumentExplicitPathsWin(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	doc := `
[paths]
data_dir = "/tmp/kbd"
bindings = "/etc/kbd/bindings.json"
`
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Paths.Bindings != "/etc/kbd/bindings.json" {
		t.Errorf("bindings = %q, want the document's path", cfg.Paths.Bindings)
	}
	if cfg.Paths.Users != filepath.Join("/tmp/kbd", "users") {
		t.Errorf("users not rederived: %q", cfg.Paths.Users)
	}
}

func TestLoadMalformedDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[paths\n="), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestEnvironmentAppliesOnMalformedDocument(t *testing.T) {
	t.Setenv("VIRTKBD_DATA_DIR", "/tmp/env-kbd")

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[paths\n="), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err == nil {
		t.Error("expected parse error")
	}
	if cfg.Paths.DataDir != "/tmp/env-kbd" {
		t.Errorf("data dir = %q, want the environment override", cfg.Paths.DataDir)
	}
	if cfg.Paths.Bindings != filepath.Join("/tmp/env-kbd", "bindings.json") {
		t.Errorf("bindings not rederived: %q", cfg.Paths.Bindings)
	}
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("VIRTKBD_DATA_DIR", "/tmp/env-kbd")
	t.Setenv("VIRTKBD_LOG", "/tmp/env-kbd/log.txt")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Paths.DataDir != "/tmp/env-kbd" {
		t.Errorf("data dir = %q", cfg.Paths.DataDir)
	}
	if cfg.Paths.Bindings != filepath.Join("/tmp/env-kbd", "bindings.json") {
		t.Errorf("bindings not rederived: %q", cfg.Paths.Bindings)
	}
	if cfg.Logging.File != "/tmp/env-kbd/log.txt" {
		t.Errorf("log file = %q", cfg.Logging.File)
	}
}
