package cli

import (
	"fmt"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dshills/virtkbd/internal/command"
)

func bindCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "bind <key> <command> [arg]",
		Short: "Associate a key with a command",
		Long: `Associate a key identifier with a command descriptor and persist it.

Reference commands: char (requires an argument), volume_up,
volume_down, media_player. Rebinding a key overwrites the previous
association.`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(*configPath)
			if err != nil {
				return err
			}

			desc := command.Descriptor{Command: args[1]}
			if len(args) == 3 {
				desc.Arg = args[2]
			}
			a.keyboard().Bind(args[0], desc)
			return nil
		},
	}
}

func keysCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "List the persisted key bindings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(*configPath)
			if err != nil {
				return err
			}

			bindings := a.keyboard().Bindings()
			if len(bindings) == 0 {
				fmt.Fprintln(color.Output, "no bindings")
				return nil
			}

			keys := make([]string, 0, len(bindings))
			for key := range bindings {
				keys = append(keys, key)
			}
			sort.Strings(keys)

			bold := color.New(color.Bold)
			_, _ = bold.Fprintln(color.Output, "KEY\tCOMMAND")
			for _, key := range keys {
				fmt.Fprintf(color.Output, "%s\t%s\n", key, bindings[key])
			}
			return nil
		},
	}
}
