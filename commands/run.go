package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func addRun(topLevel *cobra.Command, o *rootOptions) {
	cmd := &cobra.Command{
		Use:   "run <id>",
		Short: "Run a configured command by its id.",
		Example: `
vulp run git.status
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := o.Config.PaletteOptions()
			if err != nil {
				return err
			}

			l, err := newLauncher(opts, o.Config.Commands, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			idx, err := l.palette.Commands().Resolve(args[0])
			if err != nil {
				return err
			}

			proc := l.processes[idx]
			if proc == nil {
				return fmt.Errorf("command %q has nothing to run", args[0])
			}

			if !l.palette.Trigger(idx) {
				return fmt.Errorf("command %q is disabled", args[0])
			}

			return proc.err
		},
	}

	topLevel.AddCommand(cmd)
}
