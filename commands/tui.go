package commands

import (
	"bytes"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/oliverbestmann/vulp/glimpse"
	"github.com/oliverbestmann/vulp/palette"
	"github.com/oliverbestmann/vulp/palette/termui"
	"github.com/spf13/cobra"
)

func addTUI(topLevel *cobra.Command, o *rootOptions) {
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Open the command palette in the terminal.",
		Example: `
vulp tui
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := o.Config.TerminalPaletteOptions()
			if err != nil {
				return err
			}

			model, err := newTUIModel(opts, o)
			if err != nil {
				return err
			}

			p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithReportFocus())
			_, err = p.Run()
			return err
		},
	}

	topLevel.AddCommand(cmd)
}

func newTUIModel(opts palette.Options, o *rootOptions) (*termui.Model, error) {
	output := &statusWriter{}

	l, err := newLauncher(opts, o.Config.Commands, output)
	if err != nil {
		return nil, err
	}

	model := termui.New(l.palette)
	output.model = model

	_, err = l.palette.Register(palette.Command{
		ID:       "app.quit",
		Detail:   "Quit",
		Shortcut: glimpse.MustParseChord("ctrl+q"),
		Handler:  palette.Funcs{Action: model.Quit},
	})
	if err != nil {
		return nil, err
	}

	model.SetStatus(opts.OpenChord.String() + " opens the palette, q quits")
	return model, nil
}

// statusWriter shows the last line of process output in the status line.
type statusWriter struct {
	model *termui.Model
	buf   bytes.Buffer
}

func (w *statusWriter) Write(p []byte) (int, error) {
	w.buf.Write(p)

	lines := strings.Split(strings.TrimSpace(w.buf.String()), "\n")
	w.model.SetStatus(lines[len(lines)-1])

	return len(p), nil
}
