package orion

import (
	"errors"
	"fmt"

	"github.com/oliverbestmann/vulp/glimpse"
)

type RunGameOptions struct {
	// game to run. This is the only field that is required
	Game Game

	WindowWidth  int
	WindowHeight int
	WindowTitle  string

	// Profile is passed on to the window, either "cpu", "mem" or empty
	Profile string
}

func RunGame(opts RunGameOptions) error {
	game := opts.Game
	if game == nil {
		return errors.New("game must not be nil")
	}

	if opts.WindowWidth == 0 {
		opts.WindowWidth = 1000
	}

	if opts.WindowHeight == 0 {
		opts.WindowHeight = 600
	}

	if opts.WindowTitle == "" {
		opts.WindowTitle = "Orion"
	}

	win, err := glimpse.NewWindow(glimpse.WindowOptions{
		Width:   opts.WindowWidth,
		Height:  opts.WindowHeight,
		Title:   opts.WindowTitle,
		Profile: opts.Profile,
	})
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}

	defer win.Terminate()

	return RunWindow(win, game)
}

// RunWindow runs game in an already opened window until the window is
// closed or the game returns an error.
func RunWindow(win glimpse.Window, game Game) error {
	currentWindow.set(win)
	defer currentWindow.reset()
	defer currentInputState.reset()

	loopState := &LoopState{
		Window: win,
		Game:   game,
	}

	return win.Run(func(inputState glimpse.UpdateInputState) error {
		return loopOnce(loopState, inputState)
	})
}

// Exit closes the window after the current frame, which ends RunGame.
func Exit() {
	currentWindow.Get().Close()
}
