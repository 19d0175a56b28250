package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dshills/virtkbd/internal/command"
	"github.com/dshills/virtkbd/internal/engine"
	"github.com/dshills/virtkbd/internal/keymap"
	"github.com/dshills/virtkbd/internal/logging"
)

func demoCmd() *cobra.Command {
	var logPath string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run a scripted press/undo/redo session",
		Long: `Run a scripted session against a throwaway binding store,
demonstrating key dispatch, the undo/redo history, and the lossy
volume inversion. The configured bindings are not touched.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := os.MkdirTemp("", "virtkbd-demo-")
			if err != nil {
				return err
			}
			defer os.RemoveAll(dir)

			log := logging.New(nil, logging.NewConsoleHandler())
			if logPath != "" {
				log.AddHandler(logging.NewFileHandler(logPath))
			}

			registry := command.NewRegistry()
			command.RegisterDefaults(registry)
			kb := engine.New(keymap.NewStore(filepath.Join(dir, "bindings.json")), registry, log)

			for _, b := range []struct {
				key  string
				desc command.Descriptor
			}{
				{"a", command.Descriptor{Command: command.KindChar, Arg: "a"}},
				{"b", command.Descriptor{Command: command.KindChar, Arg: "b"}},
				{"c", command.Descriptor{Command: command.KindChar, Arg: "c"}},
				{"d", command.Descriptor{Command: command.KindChar, Arg: "d"}},
				{"ctrl++", command.Descriptor{Command: command.KindVolumeUp}},
				{"ctrl+-", command.Descriptor{Command: command.KindVolumeDown}},
				{"ctrl+p", command.Descriptor{Command: command.KindMediaPlayer}},
			} {
				kb.Bind(b.key, b.desc)
			}

			kb.Press("a")
			kb.Press("b")
			kb.Press("c")
			kb.Undo()
			kb.Undo()
			kb.Redo()
			kb.Press("ctrl++")
			kb.Press("ctrl+-")
			kb.Press("ctrl+p")
			kb.Press("d")
			kb.Undo()
			kb.Undo()
			return nil
		},
	}
	cmd.Flags().StringVar(&logPath, "log", "", "also append the session log to a file")
	return cmd
}
