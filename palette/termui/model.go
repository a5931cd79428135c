package termui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/oliverbestmann/vulp/glimpse"
	"github.com/oliverbestmann/vulp/palette"
)

// narrowest overlay that still fits a label and its shortcut
const minOverlayWidth = 40

var (
	barStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("236")).Padding(0, 1)
	overlayStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	promptStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	disabledStyle = lipgloss.NewStyle().Faint(true)
	hintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

var (
	chordInterrupt = glimpse.ChordOf(glimpse.ModCtrl, glimpse.KeyC)
	chordQuit      = glimpse.ChordOf(0, glimpse.KeyQ)
)

// Model hosts a palette in the terminal. Every message renders one frame
// of the palette.
type Model struct {
	palette *palette.Palette
	surface surface

	status   string
	quitting bool
}

func New(p *palette.Palette) *Model {
	m := &Model{palette: p}
	m.surface.width = 80
	m.surface.height = 24
	m.surface.input.Focused = true
	return m
}

// Quit stops the program after the current frame. Commands call it from
// their action.
func (m *Model) Quit() {
	m.quitting = true
}

// SetStatus sets the text shown below the palette.
func (m *Model) SetStatus(status string) {
	m.status = status
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	input := &m.surface.input
	input.NextTick()

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.surface.width = msg.Width
		m.surface.height = msg.Height

	case tea.FocusMsg:
		input.Focused = true

	case tea.BlurMsg:
		input.Focused = false

	case tea.KeyMsg:
		chord, text := translateKey(msg)

		if chord == chordInterrupt || (chord == chordQuit && !m.palette.Visible()) {
			return m, tea.Quit
		}

		if !chord.IsZero() {
			input.Keys.Mods = chord.Mods
			input.Keys.Press(chord.Key)
		}

		for _, r := range text {
			input.Keys.Type(r)
		}
	}

	m.surface.reset()
	m.palette.Render(&m.surface)

	// terminals do not report key releases
	input.Keys.ReleaseAll()

	if m.quitting {
		return m, tea.Quit
	}

	return m, nil
}

func (m *Model) View() string {
	var sections []string

	if len(m.surface.bar) > 0 {
		sections = append(sections, barStyle.Width(m.surface.width).Render(strings.Join(m.surface.bar, "   ")))
	}

	if m.surface.overlay {
		overlay := m.overlayView()
		sections = append(sections, lipgloss.PlaceHorizontal(m.surface.width, lipgloss.Center, overlay))
	}

	status := m.status
	if status == "" {
		status = m.hint()
	}

	sections = append(sections, statusStyle.Render(status))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) hint() string {
	open := m.palette.Options().OpenChord
	if open.IsZero() {
		return "q quit"
	}

	return fmt.Sprintf("%s palette · q quit", open)
}

func (m *Model) overlayView() string {
	layout := m.surface.layout

	width := max(int(layout.Width), minOverlayWidth)
	width = min(width, max(m.surface.width-4, 1))

	rows := max(int(layout.ListHeight), 1)

	lines := []string{promptStyle.Render("> ") + m.surface.filter + "█", ""}

	for idx, item := range m.surface.items {
		if idx == rows {
			lines = append(lines, hintStyle.Render(fmt.Sprintf("… %d more", len(m.surface.items)-rows)))
			break
		}

		lines = append(lines, itemLine(item))
	}

	return overlayStyle.Width(width).Render(strings.Join(lines, "\n"))
}

func itemLine(item palette.Item) string {
	var line strings.Builder

	if item.Checked {
		line.WriteString("[x] ")
	}

	line.WriteString(item.Label)

	var hints []string
	if !item.Shortcut.IsZero() {
		hints = append(hints, item.Shortcut.String())
	}

	if !item.QuickKey.IsZero() {
		hints = append(hints, item.QuickKey.String())
	}

	if item.ShowScore {
		hints = append(hints, fmt.Sprintf("(%d)", item.Score))
	}

	text := line.String()
	if !item.Enabled {
		text = disabledStyle.Render(text)
	}

	if len(hints) == 0 {
		return text
	}

	return text + "  " + hintStyle.Render(strings.Join(hints, "  "))
}
