package glimpse

import (
	"strconv"
	"strings"
)

type Key uint32

const (
	KeyUnknown Key = iota

	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9

	KeySpace
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyTab
	KeyDelete
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	KeyMinus
	KeyEqual
	KeyComma
	KeyPeriod
	KeySlash
	KeySemicolon

	// KeyPlus is the keypad plus in a window. Terminals report it for a typed '+'.
	KeyPlus

	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

var keyNames = map[Key]string{
	KeySpace:     "space",
	KeyEnter:     "enter",
	KeyEscape:    "esc",
	KeyBackspace: "backspace",
	KeyTab:       "tab",
	KeyDelete:    "delete",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyPageUp:    "pgup",
	KeyPageDown:  "pgdown",
	KeyMinus:     "-",
	KeyEqual:     "=",
	KeyComma:     ",",
	KeyPeriod:    ".",
	KeySlash:     "/",
	KeySemicolon: ";",
	KeyPlus:      "+",
}

// additional spellings accepted by ParseKey
var keyAliases = map[string]Key{
	"escape":   KeyEscape,
	"return":   KeyEnter,
	"del":      KeyDelete,
	"pageup":   KeyPageUp,
	"pagedown": KeyPageDown,
	" ":        KeySpace,
}

var keysByName = func() map[string]Key {
	byName := make(map[string]Key, len(keyNames)+len(keyAliases)+64)

	for key := KeyA; key <= KeyF12; key++ {
		byName[key.String()] = key
	}

	for name, key := range keyAliases {
		byName[name] = key
	}

	return byName
}()

func (k Key) String() string {
	switch {
	case k >= KeyA && k <= KeyZ:
		return string(rune('a' + (k - KeyA)))

	case k >= Key0 && k <= Key9:
		return string(rune('0' + (k - Key0)))

	case k >= KeyF1 && k <= KeyF12:
		return "f" + strconv.Itoa(int(k-KeyF1)+1)
	}

	if name, ok := keyNames[k]; ok {
		return name
	}

	return "unknown"
}

// ParseKey looks up a key by its name as returned by Key.String.
// Lookup is case-insensitive.
func ParseKey(name string) (Key, bool) {
	if name != " " {
		name = strings.ToLower(strings.TrimSpace(name))
	}

	key, ok := keysByName[name]
	return key, ok
}
