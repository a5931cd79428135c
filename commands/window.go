package commands

import (
	"github.com/oliverbestmann/vulp/demo"
	"github.com/oliverbestmann/vulp/orion"
	"github.com/spf13/cobra"
)

func addWindow(topLevel *cobra.Command, o *rootOptions) {
	var profileMode string

	cmd := &cobra.Command{
		Use:   "window",
		Short: "Orbit a culled terrain in a desktop window.",
		Long: `Opens a window showing culling statistics of a terrain in its title.
Drag with the mouse or use the arrow keys to orbit the camera. The command
palette opens in the title as well.`,
		Example: `
vulp window
vulp window --profile cpu
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := o.Config

			opts, err := cfg.PaletteOptions()
			if err != nil {
				return err
			}

			commands, err := processCommands(cfg.Commands, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			if profileMode == "" {
				profileMode = cfg.Window.Profile
			}

			game := demo.NewGame(demo.Options{
				Palette:  opts,
				Camera:   cfg.Camera.OrbitCamera(),
				Terrain:  cfg.Scene.TerrainOptions(),
				Workers:  cfg.Scene.Workers,
				Commands: commands,
			})

			return orion.RunGame(orion.RunGameOptions{
				Game:         game,
				WindowWidth:  cfg.Window.Width,
				WindowHeight: cfg.Window.Height,
				WindowTitle:  cfg.Window.Title,
				Profile:      profileMode,
			})
		},
	}

	cmd.Flags().StringVar(&profileMode, "profile", "", "Profile while the window is open, either cpu or mem.")

	topLevel.AddCommand(cmd)
}
