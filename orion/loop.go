package orion

import (
	"fmt"
	"log/slog"

	"github.com/oliverbestmann/vulp/glimpse"
)

type LoopState struct {
	Window        glimpse.Window
	Game          Game
	SurfaceWidth  uint32
	SurfaceHeight uint32
	Initialized   bool

	Screen Screen

	// the title currently shown by the window
	title string
}

func loopOnce(loopState *LoopState, inputState glimpse.UpdateInputState) error {
	DebugOverlay.StartFrame()

	surfaceWidth, surfaceHeight := loopState.Window.GetSize()

	if loopState.SurfaceWidth != surfaceWidth || loopState.SurfaceHeight != surfaceHeight {
		slog.Debug("Resize surface",
			slog.Int("width", int(surfaceWidth)),
			slog.Int("height", int(surfaceHeight)),
		)

		loopState.SurfaceWidth = surfaceWidth
		loopState.SurfaceHeight = surfaceHeight
	}

	DebugOverlay.StartPollEvents()

	currentInputState.reset()
	currentInputState.set(inputState())

	// run game.Initialize and game.Update
	err := performGameUpdate(loopState)
	if err != nil {
		return fmt.Errorf("update game: %w", err)
	}

	DebugOverlay.StartGameDraw()

	loopState.Screen.reset(surfaceWidth, surfaceHeight)
	loopState.Game.Draw(&loopState.Screen)

	// the title is a window system call, only update it when it changed
	if title := loopState.Screen.String(); title != loopState.title {
		loopState.Window.SetTitle(title)
		loopState.title = title
	}

	DebugOverlay.EndFrame()

	return nil
}

func performGameUpdate(loopState *LoopState) error {
	DebugOverlay.StartGameUpdate()

	if !loopState.Initialized {
		loopState.Initialized = true

		if err := loopState.Game.Initialize(); err != nil {
			return fmt.Errorf("initialize game: %w", err)
		}
	}

	if err := loopState.Game.Update(); err != nil {
		return fmt.Errorf("update game: %w", err)
	}

	return nil
}
