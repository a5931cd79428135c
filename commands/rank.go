package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"
)

func addRank(topLevel *cobra.Command, o *rootOptions) {
	limit := 10

	cmd := &cobra.Command{
		Use:   "rank [filter...]",
		Short: "Rank the configured commands against a filter.",
		Example: `
vulp rank git
vulp rank "st.tus"
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := o.Config.PaletteOptions()
			if err != nil {
				return err
			}

			l, err := newLauncher(opts, o.Config.Commands, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			l.palette.SetFilter(strings.Join(args, " "))

			ranking := l.palette.Ranking()
			if limit > 0 && len(ranking) > limit {
				ranking = ranking[:limit]
			}

			bold := color.New(color.Bold)
			faint := color.New(color.Faint)

			tbl := uitable.New()
			tbl.Separator = "  "
			tbl.AddRow(bold.Sprint("#"), bold.Sprint("SCORE"), bold.Sprint("COMMAND"), bold.Sprint("ID"))

			registered := l.palette.Commands()
			for pos, ranked := range ranking {
				c, _ := registered.Get(ranked.Index)

				detail := c.Detail
				if c.Disabled {
					detail = faint.Sprint(detail + " (disabled)")
				}

				tbl.AddRow(strconv.Itoa(pos+1), strconv.Itoa(ranked.Score), detail, orDash(c.ID))
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), tbl)
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", limit, "Number of results to print, zero prints all.")

	topLevel.AddCommand(cmd)
}
