package termui

import (
	"log/slog"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/oliverbestmann/vulp/glimpse"
)

// translateKey converts a terminal key event into the chord pressed and
// the text typed by it. Either may be empty.
func translateKey(msg tea.KeyMsg) (glimpse.Chord, []rune) {
	switch msg.Type {
	case tea.KeySpace:
		return glimpse.ChordOf(0, glimpse.KeySpace), []rune{' '}

	case tea.KeyRunes:
		if msg.Alt {
			// alt+1 selects a result and is not typed
			return parseChord(msg.String()), nil
		}

		if len(msg.Runes) != 1 {
			// pasted text
			return glimpse.Chord{}, msg.Runes
		}

		r := msg.Runes[0]

		var mods glimpse.Mod
		if unicode.IsUpper(r) {
			mods = glimpse.ModShift
		}

		key, ok := glimpse.ParseKey(string(unicode.ToLower(r)))
		if !ok {
			return glimpse.Chord{}, msg.Runes
		}

		return glimpse.ChordOf(mods, key), msg.Runes
	}

	return parseChord(msg.String()), nil
}

func parseChord(name string) glimpse.Chord {
	chord, err := glimpse.ParseChord(name)
	if err != nil {
		slog.Debug("Ignore terminal key", slog.String("key", name), slog.String("error", err.Error()))
		return glimpse.Chord{}
	}

	return chord
}
