package palette

import (
	"github.com/oliverbestmann/vulp/glimpse"
	"github.com/oliverbestmann/vulp/glm"
)

// Layout places the overlay in the viewport.
type Layout struct {
	// X is the horizontal center of the overlay, its top edge is at the top of the viewport
	X float32

	Width float32

	// ListHeight is the height of the result list below the filter field
	ListHeight float32
}

// Item is one entry in a menu or the result list.
type Item struct {
	Label    string
	Shortcut glimpse.Chord

	// QuickKey is the alt binding of the entry while the palette is open
	QuickKey glimpse.Chord

	Checked bool
	Enabled bool

	// Score is set if scores should be shown
	Score     int
	ShowScore bool
}

// Surface is the immediate mode ui the palette draws into, once per frame.
// Every Begin call must be followed by its End call, even if it returned false.
type Surface interface {
	// Input returns the input state of the current frame.
	Input() *glimpse.InputState

	Viewport() glm.Vec2f

	BeginMenuBar() bool
	EndMenuBar()

	BeginMenu(label string) bool
	EndMenu()

	BeginOverlay(layout Layout) bool
	EndOverlay()

	// OverlayFocused reports whether the overlay has input focus.
	OverlayFocused() bool

	// InputText edits text and reports whether it changed. With focus set
	// the field takes the keyboard focus.
	InputText(text *string, focus bool) bool

	// MenuItem draws an entry and reports whether it was clicked.
	MenuItem(item Item) bool
}
