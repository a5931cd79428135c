package termui

import (
	"github.com/oliverbestmann/vulp/glimpse"
	"github.com/oliverbestmann/vulp/glm"
	"github.com/oliverbestmann/vulp/palette"
)

// surface records one frame of the palette for View to draw. Menus are
// shown collapsed and nothing can be clicked, results are picked with
// enter or the alt bindings.
type surface struct {
	input glimpse.InputState

	width, height int

	// top level menu labels
	bar       []string
	menuDepth int

	overlay bool
	layout  palette.Layout
	filter  string
	items   []palette.Item
}

func (s *surface) reset() {
	s.bar = s.bar[:0]
	s.menuDepth = 0
	s.overlay = false
	s.items = s.items[:0]
}

func (s *surface) Input() *glimpse.InputState {
	return &s.input
}

func (s *surface) Viewport() glm.Vec2f {
	return glm.Vec2f{float32(s.width), float32(s.height)}
}

func (s *surface) BeginMenuBar() bool {
	return true
}

func (s *surface) EndMenuBar() {}

func (s *surface) BeginMenu(label string) bool {
	if s.menuDepth == 0 {
		s.bar = append(s.bar, label)
	}

	return false
}

func (s *surface) EndMenu() {}

func (s *surface) BeginOverlay(layout palette.Layout) bool {
	s.overlay = true
	s.layout = layout
	return true
}

func (s *surface) EndOverlay() {}

func (s *surface) OverlayFocused() bool {
	return s.input.Focused
}

func (s *surface) InputText(text *string, focus bool) bool {
	changed := glimpse.EditText(text, &s.input)
	s.filter = *text
	return changed
}

func (s *surface) MenuItem(item palette.Item) bool {
	if s.overlay {
		s.items = append(s.items, item)
	} else if s.menuDepth == 0 {
		s.bar = append(s.bar, item.Label)
	}

	return false
}
