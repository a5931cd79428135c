package orion

import (
	"fmt"
	"strings"

	"github.com/oliverbestmann/vulp/glimpse"
	"github.com/oliverbestmann/vulp/glm"
	"github.com/oliverbestmann/vulp/palette"
)

// number of results listed in the title
const titleResultCount = 5

// TitleSurface draws a palette into the window title. It has no menu bar
// and nothing can be clicked, results are picked with enter or the alt
// bindings.
type TitleSurface struct {
	input    *glimpse.InputState
	viewport glm.Vec2f

	overlay bool
	filter  string
	items   []palette.Item
}

// Begin starts a new frame on the given input.
func (s *TitleSurface) Begin(input *glimpse.InputState, viewport glm.Vec2f) {
	s.input = input
	s.viewport = viewport
	s.overlay = false
	s.items = s.items[:0]
}

func (s *TitleSurface) Input() *glimpse.InputState {
	return s.input
}

func (s *TitleSurface) Viewport() glm.Vec2f {
	return s.viewport
}

func (s *TitleSurface) BeginMenuBar() bool {
	return false
}

func (s *TitleSurface) EndMenuBar() {}

func (s *TitleSurface) BeginMenu(label string) bool {
	return false
}

func (s *TitleSurface) EndMenu() {}

func (s *TitleSurface) BeginOverlay(layout palette.Layout) bool {
	s.overlay = true
	return true
}

func (s *TitleSurface) EndOverlay() {}

func (s *TitleSurface) OverlayFocused() bool {
	return s.input.Focused
}

func (s *TitleSurface) InputText(text *string, focus bool) bool {
	changed := glimpse.EditText(text, s.input)
	s.filter = *text
	return changed
}

func (s *TitleSurface) MenuItem(item palette.Item) bool {
	if s.overlay {
		s.items = append(s.items, item)
	}

	return false
}

// String returns the title text of the palette, or an empty string if the
// palette was not shown this frame.
func (s *TitleSurface) String() string {
	if !s.overlay {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "> %s_", s.filter)

	for idx, item := range s.items {
		if idx == titleResultCount {
			fmt.Fprintf(&b, "   (+%d)", len(s.items)-idx)
			break
		}

		b.WriteString("   ")

		if !item.QuickKey.IsZero() {
			fmt.Fprintf(&b, "%d:", idx+1)
		}

		b.WriteString(item.Label)

		if !item.Enabled {
			b.WriteString(" (disabled)")
		}

		if item.ShowScore {
			fmt.Fprintf(&b, " [%d]", item.Score)
		}
	}

	return b.String()
}
