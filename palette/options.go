package palette

import (
	"github.com/oliverbestmann/vulp/glimpse"
	"github.com/oliverbestmann/vulp/glm"
)

type Options struct {
	// OpenChord toggles the palette. The zero chord disables it.
	OpenChord glimpse.Chord

	// Size of the palette relative to the viewport. X scales the width
	// and Y the height of the result list.
	Size glm.Vec2f

	// RespondShortcuts triggers commands by their shortcut
	RespondShortcuts bool

	// AltBindings binds alt+1 to alt+9 to the first nine results while the palette is open
	AltBindings bool

	// ShowScores shows the fuzzy score next to each result
	ShowScores bool

	// MenuBarCaret adds a ">" entry to the menu bar that opens the palette
	MenuBarCaret bool

	// MenuBarItems adds every command with a path to the menu bar
	MenuBarItems bool

	Duplicates DuplicatePolicy

	// PatternCacheSize is the number of compiled filter tokens to keep
	PatternCacheSize int
}

func DefaultOptions() Options {
	return Options{
		OpenChord:        glimpse.ChordOf(glimpse.ModCtrl|glimpse.ModShift, glimpse.KeyP),
		Size:             glm.Vec2f{0.3, 0.5},
		RespondShortcuts: true,
		AltBindings:      true,
		Duplicates:       DuplicateReject,
		PatternCacheSize: defaultPatternCacheSize,
	}
}
