package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os/exec"

	"github.com/oliverbestmann/vulp/config"
	"github.com/oliverbestmann/vulp/palette"
)

// process runs the argv of a configured command when triggered.
type process struct {
	argv []string
	out  io.Writer

	// result of the most recent run
	err error
}

func (p *process) OnAction() {
	p.err = p.run(context.Background())
	if p.err != nil {
		slog.Error("Command failed", slog.Any("argv", p.argv), slog.String("error", p.err.Error()))
	}
}

func (p *process) OnUpdate(*palette.Command) {}

func (p *process) IsChecked() bool {
	return false
}

func (p *process) run(ctx context.Context) error {
	slog.Debug("Start process", slog.Any("argv", p.argv))

	cmd := exec.CommandContext(ctx, p.argv[0], p.argv[1:]...)
	cmd.Stdout = p.out
	cmd.Stderr = p.out

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("run %q: %w", p.argv[0], err)
	}

	return nil
}

// launcher is a palette with the configured commands registered.
type launcher struct {
	palette   *palette.Palette
	processes map[palette.Index]*process
}

func newLauncher(opts palette.Options, commands []config.CommandConfig, out io.Writer) (*launcher, error) {
	l := &launcher{
		palette:   palette.New(opts),
		processes: map[palette.Index]*process{},
	}

	if err := l.register(commands, out); err != nil {
		return nil, err
	}

	return l, nil
}

func (l *launcher) register(commands []config.CommandConfig, out io.Writer) error {
	cmds, err := processCommands(commands, out)
	if err != nil {
		return err
	}

	for _, cmd := range cmds {
		idx, err := l.palette.Register(cmd)
		if err != nil {
			return err
		}

		// a replaced command may have dropped its process
		delete(l.processes, idx)

		if proc, ok := cmd.Handler.(*process); ok {
			l.processes[idx] = proc
		}
	}

	return nil
}

// processCommands converts the configured commands. Commands with an argv
// start a process when triggered.
func processCommands(commands []config.CommandConfig, out io.Writer) ([]palette.Command, error) {
	result := make([]palette.Command, 0, len(commands))

	for _, cc := range commands {
		cmd, err := cc.Command()
		if err != nil {
			return nil, err
		}

		if len(cc.Exec) > 0 {
			cmd.Handler = &process{argv: cc.Exec, out: out}
		}

		result = append(result, cmd)
	}

	return result, nil
}
