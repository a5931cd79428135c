package glimpse

import (
	"log/slog"
	"unicode/utf8"
)

type UpdateInputState func() InputState

type MouseButton uint32

type KeysState struct {
	// the keys that are currently marked as "pressed"
	Pressed map[Key]bool

	// keys that where just pressed after the last call to NextTick()
	JustPressed map[Key]bool

	// keys that were just released after the last call to NextTick()
	JustReleased map[Key]bool

	// modifiers held during the most recent key event
	Mods Mod

	// text typed since the last call to NextTick(). Backspace presses are
	// recorded in order as '\b'.
	Text []rune
}

func (k *KeysState) Press(key Key) {
	slog.Debug("Key just pressed", slog.String("key", key.String()))

	setTrue(&k.Pressed, key)
	setTrue(&k.JustPressed, key)

	if key == KeyBackspace {
		k.Text = append(k.Text, '\b')
	}
}

func (k *KeysState) Release(key Key) {
	setFalse(&k.Pressed, key)
	setTrue(&k.JustReleased, key)
}

// ReleaseAll releases every pressed key. Hosts that only see key presses,
// like terminals, call this at the end of a frame.
func (k *KeysState) ReleaseAll() {
	for key, pressed := range k.Pressed {
		if pressed {
			k.Release(key)
		}
	}

	k.Mods = 0
}

// Type records a typed character.
func (k *KeysState) Type(r rune) {
	k.Text = append(k.Text, r)
}

func (k *KeysState) nextTick() {
	clear(k.JustPressed)
	clear(k.JustReleased)
	k.Text = k.Text[:0]
}

type MouseState struct {
	CursorX, CursorY float32

	// recorded movement since last tick
	DeltaX, DeltaY float32

	Pressed map[MouseButton]bool

	// mouse buttons that were just clicked after the last call to NextTick()
	JustPressed map[MouseButton]bool

	// mouse buttons that were just released after the last call to NextTick()
	JustReleased map[MouseButton]bool

	hasPosition bool
}

func (m *MouseState) Press(button MouseButton) {
	setTrue(&m.Pressed, button)
	setTrue(&m.JustPressed, button)
}

func (m *MouseState) Release(button MouseButton) {
	setFalse(&m.Pressed, button)
	setTrue(&m.JustReleased, button)
}

func (m *MouseState) Position(x, y float32) {
	if m.hasPosition {
		m.DeltaX += x - m.CursorX
		m.DeltaY += y - m.CursorY
	}

	m.CursorX = x
	m.CursorY = y
	m.hasPosition = true
}

func (m *MouseState) nextTick() {
	clear(m.JustPressed)
	clear(m.JustReleased)

	m.DeltaX = 0
	m.DeltaY = 0
}

type InputState struct {
	Keys  KeysState
	Mouse MouseState

	// true while the window (or terminal) has input focus
	Focused bool
}

// NextTick clears all per-frame state. Call it once before collecting
// the events of the next frame.
func (s *InputState) NextTick() {
	s.Keys.nextTick()
	s.Mouse.nextTick()
}

func (s *InputState) IsKeyPressed(key Key) bool {
	return s.Keys.Pressed[key]
}

func (s *InputState) IsKeyJustPressed(key Key) bool {
	return s.Keys.JustPressed[key]
}

// IsChordJustPressed reports whether the chord's key was pressed this frame
// while exactly the chord's modifiers were held.
func (s *InputState) IsChordJustPressed(chord Chord) bool {
	if chord.IsZero() {
		return false
	}

	return s.Keys.JustPressed[chord.Key] && s.Keys.Mods == chord.Mods
}

// EditText applies this frame's typed characters and backspace presses to
// text, in the order they happened. It reports whether text changed.
func EditText(text *string, input *InputState) bool {
	before := *text

	value := []byte(*text)
	for _, r := range input.Keys.Text {
		if r != '\b' {
			value = utf8.AppendRune(value, r)
			continue
		}

		if len(value) > 0 {
			_, size := utf8.DecodeLastRune(value)
			value = value[:len(value)-size]
		}
	}

	*text = string(value)
	return *text != before
}

func setTrue[K comparable](m *map[K]bool, key K) {
	if *m == nil {
		*m = map[K]bool{}
	}

	(*m)[key] = true
}

func setFalse[K comparable](m *map[K]bool, key K) {
	if *m == nil {
		*m = map[K]bool{}
	}

	(*m)[key] = false
}
