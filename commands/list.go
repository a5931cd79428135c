package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/oliverbestmann/vulp/palette"
	"github.com/spf13/cobra"
)

func addList(topLevel *cobra.Command, o *rootOptions) {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the configured commands.",
		Example: `
vulp list
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := o.Config.PaletteOptions()
			if err != nil {
				return err
			}

			l, err := newLauncher(opts, o.Config.Commands, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			bold := color.New(color.Bold)
			faint := color.New(color.Faint)

			tbl := uitable.New()
			tbl.Separator = "  "
			tbl.AddRow(bold.Sprint("ID"), bold.Sprint("COMMAND"), bold.Sprint("MENU"), bold.Sprint("SHORTCUT"), bold.Sprint("RUNS"))

			for idx, c := range l.palette.Commands().All() {
				runs := "-"
				if c.Disabled {
					runs = faint.Sprint("disabled")
				} else if proc := l.processes[palette.Index(idx)]; proc != nil {
					runs = fmt.Sprint(proc.argv)
				}

				tbl.AddRow(c.ID, c.Detail, orDash(c.Path), orDash(c.Shortcut.String()), runs)
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), tbl)
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}

func orDash(value string) string {
	if value == "" {
		return "-"
	}

	return value
}
