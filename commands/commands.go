package commands

import (
	"log/slog"

	"github.com/oliverbestmann/vulp/config"
	"github.com/spf13/cobra"
)

// rootOptions are shared by all sub commands.
type rootOptions struct {
	ConfigPath string
	Verbose    bool

	// Config is loaded before any sub command runs
	Config config.Config
}

func New() *cobra.Command {
	o := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "vulp",
		Short:        "Command palette and frustum culling playground.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return o.load(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVarP(&o.ConfigPath, "config", "c", "",
		"Config file to read, yaml or toml. Defaults to ./vulp.yaml or ~/.config/vulp/vulp.yaml.")
	cmd.PersistentFlags().BoolVarP(&o.Verbose, "verbose", "v", false,
		"Log debug messages.")

	addCommands(cmd, o)
	return cmd
}

func addCommands(topLevel *cobra.Command, o *rootOptions) {
	addList(topLevel, o)
	addRank(topLevel, o)
	addRun(topLevel, o)
	addTUI(topLevel, o)
	addWindow(topLevel, o)
	addCull(topLevel, o)
}

func (o *rootOptions) load(cmd *cobra.Command) error {
	cfg, err := config.Load(o.ConfigPath)
	if err != nil {
		return err
	}

	level, err := cfg.Log.SlogLevel()
	if err != nil {
		return err
	}

	if o.Verbose {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{AddSource: true, Level: level})
	slog.SetDefault(slog.New(handler))

	o.Config = cfg
	return nil
}
