package glimpse

import (
	"fmt"
	"strings"
)

// Mod is a bit mask of modifier keys.
type Mod uint8

const (
	ModCtrl Mod = 1 << iota
	ModShift
	ModAlt
	ModSuper
)

var modNames = []struct {
	mod  Mod
	name string
}{
	{ModCtrl, "ctrl"},
	{ModShift, "shift"},
	{ModAlt, "alt"},
	{ModSuper, "super"},
}

var modAliases = map[string]Mod{
	"ctrl":    ModCtrl,
	"control": ModCtrl,
	"shift":   ModShift,
	"alt":     ModAlt,
	"option":  ModAlt,
	"meta":    ModAlt,
	"super":   ModSuper,
	"cmd":     ModSuper,
}

// Chord is a key pressed together with an exact set of modifiers.
// The zero value is "no chord" and never matches.
type Chord struct {
	Mods Mod
	Key  Key
}

func ChordOf(mods Mod, key Key) Chord {
	return Chord{Mods: mods, Key: key}
}

func (c Chord) IsZero() bool {
	return c.Key == KeyUnknown
}

// String formats the chord as "ctrl+shift+p". ParseChord accepts the result.
func (c Chord) String() string {
	if c.IsZero() {
		return ""
	}

	var parts []string
	for _, m := range modNames {
		if c.Mods&m.mod != 0 {
			parts = append(parts, m.name)
		}
	}

	parts = append(parts, c.Key.String())
	return strings.Join(parts, "+")
}

// ParseChord parses chords like "ctrl+shift+p", "alt+1" or "esc".
// The plus key itself is written as "+", e.g. "ctrl++".
// An empty string yields the zero chord.
func ParseChord(value string) (Chord, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return Chord{}, nil
	}

	fields := strings.Split(value, "+")

	// a trailing "++" splits into two empty fields
	if n := len(fields); n >= 2 && fields[n-1] == "" && fields[n-2] == "" {
		fields = append(fields[:n-2], "+")
	}

	var chord Chord
	for idx, field := range fields {
		if idx < len(fields)-1 {
			mod, ok := modAliases[strings.ToLower(field)]
			if !ok {
				return Chord{}, fmt.Errorf("parse chord %q: unknown modifier %q", value, field)
			}

			chord.Mods |= mod
			continue
		}

		key, ok := ParseKey(field)
		if !ok {
			return Chord{}, fmt.Errorf("parse chord %q: unknown key %q", value, field)
		}

		chord.Key = key
	}

	return chord, nil
}

// MustParseChord is like ParseChord but panics on error. Use it for
// chords known at compile time.
func MustParseChord(value string) Chord {
	chord, err := ParseChord(value)
	if err != nil {
		panic(err)
	}

	return chord
}
