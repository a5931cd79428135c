//go:build !js

package glimpse

import (
	"fmt"
	"log/slog"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pkg/profile"
)

// upper bound for waiting on events between two frames, in seconds
const frameInterval = 1.0 / 60.0

func init() {
	// glfw must only be called from the main thread
	runtime.LockOSThread()
}

type glfwWindow struct {
	win   *glfw.Window
	prof  interface{ Stop() }
	input InputState
}

// NewWindow opens a desktop window that only collects input. No client
// graphics api is attached to it.
func NewWindow(opts WindowOptions) (Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("initialize glfw: %w", err)
	}

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)

	window, err := glfw.CreateWindow(opts.Width, opts.Height, opts.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}

	w := &glfwWindow{
		win:   window,
		input: InputState{Focused: true},
	}

	switch opts.Profile {
	case "":
	case "cpu":
		w.prof = profile.Start(profile.CPUProfile, profile.NoShutdownHook)
	case "mem":
		w.prof = profile.Start(profile.MemProfile, profile.NoShutdownHook)
	default:
		slog.Warn("Unknown profile mode, profiling disabled", slog.String("mode", opts.Profile))
	}

	configureInput(window, &w.input)

	return w, nil
}

func (g *glfwWindow) ShouldClose() bool {
	return g.win.ShouldClose()
}

func (g *glfwWindow) GetSize() (uint32, uint32) {
	width, height := g.win.GetSize()
	return uint32(width), uint32(height)
}

func (g *glfwWindow) SetTitle(title string) {
	g.win.SetTitle(title)
}

func (g *glfwWindow) Close() {
	g.win.SetShouldClose(true)
}

func (g *glfwWindow) Terminate() {
	if g.prof != nil {
		g.prof.Stop()
	}

	g.win.Destroy()
	glfw.Terminate()
}

func (g *glfwWindow) Run(render func(input UpdateInputState) error) error {
	var updateInputState UpdateInputState = func() InputState {
		g.input.NextTick()

		// nothing is presented, so there is no vsync to pace the loop
		glfw.WaitEventsTimeout(frameInterval)
		return g.input
	}

	for !g.win.ShouldClose() {
		if err := render(updateInputState); err != nil {
			return err
		}
	}

	return nil
}

func configureInput(window *glfw.Window, input *InputState) {
	window.SetKeyCallback(func(_win *glfw.Window, glfwKey glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		input.Keys.Mods = modsOf(mods)

		// backspace repeats so holding it keeps deleting text
		if action == glfw.Repeat && glfwKey != glfw.KeyBackspace {
			return
		}

		key, ok := keyOf(glfwKey)
		if !ok {
			return
		}

		switch action {
		case glfw.Press, glfw.Repeat:
			input.Keys.Press(key)

		case glfw.Release:
			input.Keys.Release(key)
		}
	})

	window.SetCharCallback(func(_win *glfw.Window, char rune) {
		input.Keys.Type(char)
	})

	window.SetFocusCallback(func(_win *glfw.Window, focused bool) {
		input.Focused = focused
	})

	window.SetMouseButtonCallback(func(_win *glfw.Window, btn glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		button := MouseButton(btn)

		switch action {
		case glfw.Press:
			input.Mouse.Press(button)
		case glfw.Release:
			input.Mouse.Release(button)
		}
	})

	window.SetCursorPosCallback(func(_win *glfw.Window, xpos float64, ypos float64) {
		input.Mouse.Position(float32(xpos), float32(ypos))
	})
}

func modsOf(mods glfw.ModifierKey) Mod {
	var result Mod

	if mods&glfw.ModControl != 0 {
		result |= ModCtrl
	}

	if mods&glfw.ModShift != 0 {
		result |= ModShift
	}

	if mods&glfw.ModAlt != 0 {
		result |= ModAlt
	}

	if mods&glfw.ModSuper != 0 {
		result |= ModSuper
	}

	return result
}

func keyOf(glfwKey glfw.Key) (key Key, ok bool) {
	if modifierKeys[glfwKey] {
		return KeyUnknown, false
	}

	key, ok = glfwToKey[glfwKey]
	if !ok {
		slog.Warn(
			"Unknown key code",
			slog.String("key", glfw.GetKeyName(glfwKey, 0)),
		)
	}

	return
}

var modifierKeys = map[glfw.Key]bool{
	glfw.KeyLeftShift:    true,
	glfw.KeyRightShift:   true,
	glfw.KeyLeftControl:  true,
	glfw.KeyRightControl: true,
	glfw.KeyLeftAlt:      true,
	glfw.KeyRightAlt:     true,
	glfw.KeyLeftSuper:    true,
	glfw.KeyRightSuper:   true,
}

var glfwToKey = map[glfw.Key]Key{
	glfw.KeyA: KeyA,
	glfw.KeyB: KeyB,
	glfw.KeyC: KeyC,
	glfw.KeyD: KeyD,
	glfw.KeyE: KeyE,
	glfw.KeyF: KeyF,
	glfw.KeyG: KeyG,
	glfw.KeyH: KeyH,
	glfw.KeyI: KeyI,
	glfw.KeyJ: KeyJ,
	glfw.KeyK: KeyK,
	glfw.KeyL: KeyL,
	glfw.KeyM: KeyM,
	glfw.KeyN: KeyN,
	glfw.KeyO: KeyO,
	glfw.KeyP: KeyP,
	glfw.KeyQ: KeyQ,
	glfw.KeyR: KeyR,
	glfw.KeyS: KeyS,
	glfw.KeyT: KeyT,
	glfw.KeyU: KeyU,
	glfw.KeyV: KeyV,
	glfw.KeyW: KeyW,
	glfw.KeyX: KeyX,
	glfw.KeyY: KeyY,
	glfw.KeyZ: KeyZ,

	glfw.Key0: Key0,
	glfw.Key1: Key1,
	glfw.Key2: Key2,
	glfw.Key3: Key3,
	glfw.Key4: Key4,
	glfw.Key5: Key5,
	glfw.Key6: Key6,
	glfw.Key7: Key7,
	glfw.Key8: Key8,
	glfw.Key9: Key9,

	glfw.KeySpace:     KeySpace,
	glfw.KeyEnter:     KeyEnter,
	glfw.KeyKPEnter:   KeyEnter,
	glfw.KeyEscape:    KeyEscape,
	glfw.KeyBackspace: KeyBackspace,
	glfw.KeyTab:       KeyTab,
	glfw.KeyDelete:    KeyDelete,
	glfw.KeyUp:        KeyUp,
	glfw.KeyDown:      KeyDown,
	glfw.KeyLeft:      KeyLeft,
	glfw.KeyRight:     KeyRight,
	glfw.KeyHome:      KeyHome,
	glfw.KeyEnd:       KeyEnd,
	glfw.KeyPageUp:    KeyPageUp,
	glfw.KeyPageDown:  KeyPageDown,

	glfw.KeyMinus:     KeyMinus,
	glfw.KeyEqual:     KeyEqual,
	glfw.KeyComma:     KeyComma,
	glfw.KeyPeriod:    KeyPeriod,
	glfw.KeySlash:     KeySlash,
	glfw.KeySemicolon: KeySemicolon,
	glfw.KeyKPAdd:     KeyPlus,

	glfw.KeyF1:  KeyF1,
	glfw.KeyF2:  KeyF2,
	glfw.KeyF3:  KeyF3,
	glfw.KeyF4:  KeyF4,
	glfw.KeyF5:  KeyF5,
	glfw.KeyF6:  KeyF6,
	glfw.KeyF7:  KeyF7,
	glfw.KeyF8:  KeyF8,
	glfw.KeyF9:  KeyF9,
	glfw.KeyF10: KeyF10,
	glfw.KeyF11: KeyF11,
	glfw.KeyF12: KeyF12,
}
