package orion

import (
	"github.com/oliverbestmann/vulp/glimpse"
	"github.com/oliverbestmann/vulp/glm"
)

type KeyCode = glimpse.Key
type MouseButton = glimpse.MouseButton

// CurrentInput returns the input state of the current frame.
func CurrentInput() *glimpse.InputState {
	return currentInputState.ptr()
}

// MouseDelta returns the cursor movement since the previous frame.
func MouseDelta() glm.Vec2f {
	inputState := currentInputState.Get()

	return glm.Vec2f{
		inputState.Mouse.DeltaX,
		inputState.Mouse.DeltaY,
	}
}

func IsKeyPressed(key KeyCode) bool {
	inputState := currentInputState.Get()
	return inputState.Keys.Pressed[key]
}

func IsMouseButtonPressed(button MouseButton) bool {
	inputState := currentInputState.Get()
	return inputState.Mouse.Pressed[button]
}
