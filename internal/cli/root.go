// Package cli implements the virtkbd command tree.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dshills/virtkbd/internal/command"
	"github.com/dshills/virtkbd/internal/config"
	"github.com/dshills/virtkbd/internal/engine"
	"github.com/dshills/virtkbd/internal/keymap"
	"github.com/dshills/virtkbd/internal/logging"
)

const (
	appName      = "virtkbd"
	shortAppDesc = "A simulated keyboard with rebindable, reversible key commands."
)

// New builds the root command.
func New() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           appName,
		Short:         shortAppDesc,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to configuration file")

	root.AddCommand(
		bindCmd(&configPath),
		keysCmd(&configPath),
		demoCmd(),
		interactiveCmd(&configPath),
		bannerCmd(),
		userCmd(&configPath),
		versionCmd(),
	)
	return root
}

// app bundles the configured collaborators the subcommands share.
type app struct {
	cfg config.Config
	log *logging.Logger
}

// newApp loads configuration and assembles the log pipeline. A config
// parse failure is reported and the defaults are used; it never aborts
// the command.
func newApp(configPath string) (*app, error) {
	path := configPath
	if path == "" {
		if dir, err := os.UserConfigDir(); err == nil {
			path = filepath.Join(dir, appName, "config.toml")
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}
	if err := cfg.EnsureDataDir(); err != nil {
		return nil, err
	}

	log := logging.New(nil, logging.NewConsoleHandler())
	if cfg.Logging.File != "" {
		log.AddHandler(&logging.FilteredHandler{
			Filters: fileFilters(cfg.Logging),
			Handler: logging.NewFileHandler(cfg.Logging.File),
		})
	}

	return &app{cfg: cfg, log: log}, nil
}

// fileFilters builds the configured filters for the durable sink.
func fileFilters(cfg config.Logging) []logging.Filter {
	var filters []logging.Filter
	for _, pattern := range cfg.Contains {
		filters = append(filters, logging.NewContainsFilter(pattern))
	}
	for _, pattern := range cfg.Patterns {
		f, err := logging.NewRegexpFilter(pattern)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		}
		filters = append(filters, f)
	}
	return filters
}

// keyboard assembles an engine over the configured binding store.
func (a *app) keyboard() *engine.Keyboard {
	registry := command.NewRegistry()
	command.RegisterDefaults(registry)
	return engine.New(keymap.NewStore(a.cfg.Paths.Bindings), registry, a.log)
}
