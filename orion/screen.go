package orion

import (
	"fmt"
	"strings"

	"github.com/oliverbestmann/vulp/glm"
)

// Screen collects the text of one frame.
type Screen struct {
	width, height uint32
	parts         []string
}

func (s *Screen) reset(width, height uint32) {
	s.width = width
	s.height = height
	s.parts = s.parts[:0]
}

func (s *Screen) Width() uint32 {
	return s.width
}

func (s *Screen) Height() uint32 {
	return s.height
}

func (s *Screen) Sizef() glm.Vec2f {
	return glm.Vec2f{float32(s.width), float32(s.height)}
}

// Print appends a section to the screen text. Empty sections are dropped.
func (s *Screen) Print(text string) {
	if text != "" {
		s.parts = append(s.parts, text)
	}
}

func (s *Screen) Printf(format string, args ...any) {
	s.Print(fmt.Sprintf(format, args...))
}

func (s *Screen) String() string {
	return strings.Join(s.parts, "  |  ")
}
