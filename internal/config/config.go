// Package config loads the application configuration.
//
// Configuration comes from an optional TOML document overlaid with
// VIRTKBD_* environment variables. A missing file is not an error;
// defaults place all state under the user config directory.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config is the application configuration.
type Config struct {
	Paths   Paths   `toml:"paths"`
	Logging Logging `toml:"logging"`
}

// Paths locates the persisted state.
type Paths struct {
	// DataDir is the root for all state files. Derived paths left
	// empty are filled relative to it.
	DataDir string `toml:"data_dir"`

	// Bindings is the key-binding document.
	Bindings string `toml:"bindings"`

	// Users is the user repository directory.
	Users string `toml:"users"`

	// Session is the persisted session file.
	Session string `toml:"session"`
}

// Logging configures the durable log sink. The console sink is always
// on; the file sink is enabled by setting File.
type Logging struct {
	// File is the append-only log path. Empty disables the file sink.
	File string `toml:"file"`

	// Contains are substring filters applied to the file sink.
	Contains []string `toml:"contains"`

	// Patterns are regular-expression filters applied to the file sink.
	Patterns []string `toml:"patterns"`
}

// Default returns the built-in configuration.
func Default() Config {
	dataDir := "."
	if dir, err := os.UserConfigDir(); err == nil {
		dataDir = filepath.Join(dir, "virtkbd")
	}
	cfg := Config{Paths: Paths{DataDir: dataDir}}
	cfg.normalize()
	return cfg
}

// Load reads the TOML document at path, overlays the environment, and
// fills derived paths. A missing file yields the defaults. On a read or
// parse failure the document is ignored but the environment overlay
// still applies; the error is returned for the caller to report.
func Load(path string) (Config, error) {
	cfg := Default()
	var loadErr error

	if data, err := os.ReadFile(path); err != nil {
		if !os.IsNotExist(err) {
			loadErr = fmt.Errorf("reading config %s: %w", path, err)
		}
	} else {
		var doc Config
		if err := toml.Unmarshal(data, &doc); err != nil {
			loadErr = fmt.Errorf("parsing config %s: %w", path, err)
		} else {
			cfg.overlay(doc)
		}
	}

	cfg.applyEnv()
	cfg.normalize()
	return cfg, loadErr
}

// overlay applies the document's set fields over the defaults. A
// document data_dir drops the default derived paths so normalize
// rederives them under the new root; paths the document sets
// explicitly win over rederivation.
func (c *Config) overlay(doc Config) {
	if doc.Paths.DataDir != "" {
		c.Paths.DataDir = doc.Paths.DataDir
		c.Paths.Bindings = ""
		c.Paths.Users = ""
		c.Paths.Session = ""
	}
	if doc.Paths.Bindings != "" {
		c.Paths.Bindings = doc.Paths.Bindings
	}
	if doc.Paths.Users != "" {
		c.Paths.Users = doc.Paths.Users
	}
	if doc.Paths.Session != "" {
		c.Paths.Session = doc.Paths.Session
	}
	if doc.Logging.File != "" {
		c.Logging.File = doc.Logging.File
	}
	if len(doc.Logging.Contains) > 0 {
		c.Logging.Contains = doc.Logging.Contains
	}
	if len(doc.Logging.Patterns) > 0 {
		c.Logging.Patterns = doc.Logging.Patterns
	}
}

// applyEnv overlays VIRTKBD_* environment variables.
func (c *Config) applyEnv() {
	if v, ok := os.LookupEnv("VIRTKBD_DATA_DIR"); ok {
		c.Paths.DataDir = v
		// Rederive paths under the new root unless set explicitly.
		c.Paths.Bindings = ""
		c.Paths.Users = ""
		c.Paths.Session = ""
	}
	if v, ok := os.LookupEnv("VIRTKBD_BINDINGS"); ok {
		c.Paths.Bindings = v
	}
	if v, ok := os.LookupEnv("VIRTKBD_LOG"); ok {
		c.Logging.File = v
	}
}

// normalize fills derived paths relative to the data directory.
func (c *Config) normalize() {
	if c.Paths.Bindings == "" {
		c.Paths.Bindings = filepath.Join(c.Paths.DataDir, "bindings.json")
	}
	if c.Paths.Users == "" {
		c.Paths.Users = filepath.Join(c.Paths.DataDir, "users")
	}
	if c.Paths.Session == "" {
		c.Paths.Session = filepath.Join(c.Paths.DataDir, "session.json")
	}
}

// EnsureDataDir creates the data directory if needed.
func (c *Config) EnsureDataDir() error {
	if err := os.MkdirAll(c.Paths.DataDir, 0755); err != nil {
		return fmt.Errorf("creating data dir %s: %w", c.Paths.DataDir, err)
	}
	return nil
}
