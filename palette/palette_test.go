package palette

import (
	"fmt"
	"testing"

	"github.com/oliverbestmann/vulp/glimpse"
	"github.com/oliverbestmann/vulp/glm"
	"github.com/stretchr/testify/require"
)

// fakeSurface records what the palette draws
type fakeSurface struct {
	input    glimpse.InputState
	viewport glm.Vec2f
	focused  bool

	// labels of items clicked in the next frame
	click map[string]bool

	layout     Layout
	overlay    bool
	focusCalls int
	items      []Item
	menuLog    []string
}

func newFakeSurface() *fakeSurface {
	return &fakeSurface{
		viewport: glm.Vec2f{1000, 800},
		focused:  true,
		click:    map[string]bool{},
	}
}

func (s *fakeSurface) Input() *glimpse.InputState { return &s.input }
func (s *fakeSurface) Viewport() glm.Vec2f        { return s.viewport }

func (s *fakeSurface) BeginMenuBar() bool {
	s.menuLog = append(s.menuLog, "bar")
	return true
}

func (s *fakeSurface) EndMenuBar() {
	s.menuLog = append(s.menuLog, "/bar")
}

func (s *fakeSurface) BeginMenu(label string) bool {
	s.menuLog = append(s.menuLog, label)
	return true
}

func (s *fakeSurface) EndMenu() {
	s.menuLog = append(s.menuLog, "/")
}

func (s *fakeSurface) BeginOverlay(layout Layout) bool {
	s.layout = layout
	s.overlay = true
	return true
}

func (s *fakeSurface) EndOverlay() {}

func (s *fakeSurface) OverlayFocused() bool { return s.focused }

func (s *fakeSurface) InputText(text *string, focus bool) bool {
	if focus {
		s.focusCalls++
	}

	return glimpse.EditText(text, &s.input)
}

func (s *fakeSurface) MenuItem(item Item) bool {
	s.items = append(s.items, item)
	s.menuLog = append(s.menuLog, "item:"+item.Label)
	return s.click[item.Label]
}

// frame renders one frame with text typed and chords pressed.
func (s *fakeSurface) frame(p *Palette, text string, chords ...glimpse.Chord) {
	s.input.NextTick()
	s.items = nil
	s.menuLog = nil
	s.overlay = false

	for _, chord := range chords {
		s.input.Keys.Mods = chord.Mods
		s.input.Keys.Press(chord.Key)
	}

	for _, r := range text {
		s.input.Keys.Type(r)
	}

	p.Render(s)

	s.input.Keys.ReleaseAll()
	clear(s.click)
}

func chord(value string) glimpse.Chord {
	return glimpse.MustParseChord(value)
}

type counter struct {
	actions int
	updates int
}

func (c *counter) handler() Funcs {
	return Funcs{
		Action: func() { c.actions++ },
		Update: func(*Command) { c.updates++ },
	}
}

func mustRegister(t *testing.T, p *Palette, cmd Command) Index {
	t.Helper()

	idx, err := p.Register(cmd)
	require.NoError(t, err)
	return idx
}

func TestOpenAndCloseByChord(t *testing.T) {
	p := New(DefaultOptions())
	s := newFakeSurface()

	s.frame(p, "")
	require.Equal(t, StateClosed, p.State())
	require.False(t, s.overlay)

	s.frame(p, "", chord("ctrl+shift+p"))
	require.Equal(t, StateOpen, p.State())
	require.True(t, s.overlay)
	require.Equal(t, 1, s.focusCalls)

	require.Equal(t, Layout{X: 500, Width: 300, ListHeight: 400}, s.layout)

	// focus is only requested when opening
	s.frame(p, "")
	require.True(t, p.Visible())
	require.Equal(t, 1, s.focusCalls)

	s.frame(p, "", chord("ctrl+shift+p"))
	require.False(t, p.Visible())

	s.frame(p, "", chord("ctrl+shift+p"))
	require.True(t, p.Visible())

	s.frame(p, "", chord("esc"))
	require.False(t, p.Visible())
}

func TestZeroOpenChordIsDisabled(t *testing.T) {
	opts := DefaultOptions()
	opts.OpenChord = glimpse.Chord{}

	p := New(opts)
	s := newFakeSurface()

	s.frame(p, "", chord("ctrl+shift+p"))
	require.False(t, p.Visible())
}

func TestOpenResetsFilter(t *testing.T) {
	p := New(DefaultOptions())
	mustRegister(t, p, Command{Detail: "Open File"})
	mustRegister(t, p, Command{Detail: "Save"})

	p.SetFilter("file")
	require.Equal(t, 101, p.Ranking()[0].Score)
	require.False(t, p.Visible())

	p.Open()
	require.Equal(t, "", p.Filter())
	for _, ranked := range p.Ranking() {
		require.Zero(t, ranked.Score)
	}

	// opening again keeps the filter
	p.SetFilter("save")
	p.Open()
	require.Equal(t, "save", p.Filter())
}

func TestTypingRanks(t *testing.T) {
	p := New(DefaultOptions())
	mustRegister(t, p, Command{Detail: "Open File"})
	mustRegister(t, p, Command{Detail: "Close File"})
	mustRegister(t, p, Command{Detail: "Save"})

	s := newFakeSurface()
	p.Open()

	s.frame(p, "sa")
	require.Equal(t, "sa", p.Filter())
	require.Equal(t, "Save", s.items[0].Label)

	s.frame(p, "", chord("backspace"))
	s.frame(p, "", chord("backspace"))
	require.Equal(t, "", p.Filter())

	var labels []string
	for _, item := range s.items {
		labels = append(labels, item.Label)
	}

	require.Equal(t, []string{"Save", "Open File", "Close File"}, labels)
}

func TestRegisterWhileOpenRanks(t *testing.T) {
	p := New(DefaultOptions())
	mustRegister(t, p, Command{Detail: "Save"})

	p.Open()
	p.SetFilter("file")
	mustRegister(t, p, Command{Detail: "Open File"})

	require.Len(t, p.Ranking(), 2)
	require.Equal(t, Index(1), p.Ranking()[0].Index)
	require.Equal(t, 101, p.Ranking()[0].Score)
}

func TestTriggerDisabledIsNoop(t *testing.T) {
	var c counter

	p := New(DefaultOptions())
	idx := mustRegister(t, p, Command{Detail: "Save", Disabled: true, Handler: c.handler()})

	p.Open()
	require.False(t, p.Trigger(idx))
	require.True(t, p.Visible())
	require.Zero(t, c.actions)

	p.Close()
	require.False(t, p.Trigger(idx))
	require.False(t, p.Visible())

	require.False(t, p.Trigger(42))
}

func TestTriggerClosesAndRuns(t *testing.T) {
	var c counter

	p := New(DefaultOptions())
	idx := mustRegister(t, p, Command{Detail: "Freeze", Toggle: true, Handler: c.handler()})

	p.Open()
	require.True(t, p.Trigger(idx))
	require.False(t, p.Visible())
	require.Equal(t, 1, c.actions)
	cmd, _ := p.Commands().Get(idx)
	require.True(t, cmd.Selected)

	require.True(t, p.Trigger(idx))
	cmd, _ = p.Commands().Get(idx)
	require.False(t, cmd.Selected)
}

func TestBoolToggleCommand(t *testing.T) {
	var wireframe bool

	p := New(DefaultOptions())
	idx := mustRegister(t, p, Command{Detail: "Wireframe", Handler: BoolToggle{Value: &wireframe}})

	require.True(t, p.Trigger(idx))
	require.True(t, wireframe)
	cmd, ok := p.Commands().Get(idx)
	require.True(t, ok)
	require.True(t, cmd.Checked())
}

func TestEnterTriggersTopResult(t *testing.T) {
	var open, save counter

	p := New(DefaultOptions())
	mustRegister(t, p, Command{Detail: "Open File", Handler: open.handler()})
	mustRegister(t, p, Command{Detail: "Save File", Handler: save.handler()})

	s := newFakeSurface()
	p.Open()
	s.frame(p, "save")
	s.frame(p, "", chord("enter"))

	require.False(t, p.Visible())
	require.Equal(t, 1, save.actions)
	require.Zero(t, open.actions)
}

func TestEnterOnDisabledRefocuses(t *testing.T) {
	var save counter

	p := New(DefaultOptions())
	mustRegister(t, p, Command{Detail: "Open File"})
	mustRegister(t, p, Command{Detail: "Save File", Disabled: true, Handler: save.handler()})

	s := newFakeSurface()
	p.Open()
	s.frame(p, "save")
	require.Equal(t, 1, s.focusCalls)

	s.frame(p, "", chord("enter"))
	require.True(t, p.Visible())
	require.True(t, p.PendingRefocus())
	require.Zero(t, save.actions)

	// focus is applied, even though the overlay lost it
	s.focused = false
	s.frame(p, "")
	require.True(t, p.Visible())
	require.Equal(t, 2, s.focusCalls)
	require.False(t, p.PendingRefocus())
}

func TestLosingFocusCloses(t *testing.T) {
	p := New(DefaultOptions())
	s := newFakeSurface()

	p.Open()
	s.frame(p, "")
	require.True(t, p.Visible())

	s.focused = false
	s.frame(p, "")
	require.False(t, p.Visible())
}

func registerNumbered(t *testing.T, p *Palette, count int) []*counter {
	counters := make([]*counter, count)

	for idx := range count {
		counters[idx] = &counter{}
		mustRegister(t, p, Command{
			Detail:  fmt.Sprintf("Command %02d", idx+1),
			Handler: counters[idx].handler(),
		})
	}

	return counters
}

func TestAltBindings(t *testing.T) {
	p := New(DefaultOptions())
	counters := registerNumbered(t, p, 12)

	s := newFakeSurface()

	// not bound while closed
	s.frame(p, "", chord("alt+3"))
	require.Zero(t, counters[2].actions)

	p.Open()
	s.frame(p, "")
	require.Len(t, s.items, 12)
	require.Equal(t, chord("alt+1"), s.items[0].QuickKey)
	require.Equal(t, chord("alt+9"), s.items[8].QuickKey)
	require.True(t, s.items[9].QuickKey.IsZero())

	s.frame(p, "", chord("alt+3"))
	require.Equal(t, 1, counters[2].actions)
	require.False(t, p.Visible())
}

func TestAltBindingsDisabled(t *testing.T) {
	opts := DefaultOptions()
	opts.AltBindings = false

	p := New(opts)
	counters := registerNumbered(t, p, 3)

	s := newFakeSurface()
	p.Open()
	s.frame(p, "", chord("alt+1"))

	require.True(t, p.Visible())
	require.Zero(t, counters[0].actions)
	require.True(t, s.items[0].QuickKey.IsZero())
}

func TestShortcutFirstMatchWins(t *testing.T) {
	var first, second, other counter

	p := New(DefaultOptions())
	mustRegister(t, p, Command{Detail: "Other", Handler: other.handler()})
	mustRegister(t, p, Command{Detail: "First", Shortcut: chord("ctrl+s"), Handler: first.handler()})
	mustRegister(t, p, Command{Detail: "Second", Shortcut: chord("ctrl+s"), Handler: second.handler()})

	s := newFakeSurface()
	s.frame(p, "", chord("ctrl+s"))

	require.Equal(t, 1, first.actions)
	require.Zero(t, second.actions)

	// updates run for every command, also after a shortcut fired
	require.Equal(t, 1, first.updates)
	require.Equal(t, 1, second.updates)
	require.Equal(t, 1, other.updates)

	// modifiers must match exactly
	s.frame(p, "", chord("ctrl+shift+s"))
	require.Equal(t, 1, first.actions)
}

func TestShortcutSkipsDisabled(t *testing.T) {
	var first, second counter

	p := New(DefaultOptions())
	mustRegister(t, p, Command{Detail: "First", Disabled: true, Shortcut: chord("ctrl+s"), Handler: first.handler()})
	mustRegister(t, p, Command{Detail: "Second", Shortcut: chord("ctrl+s"), Handler: second.handler()})

	s := newFakeSurface()
	s.frame(p, "", chord("ctrl+s"))

	require.Zero(t, first.actions)
	require.Equal(t, 1, second.actions)
}

func TestShortcutClosesPalette(t *testing.T) {
	var save counter

	p := New(DefaultOptions())
	mustRegister(t, p, Command{Detail: "Save", Shortcut: chord("ctrl+s"), Handler: save.handler()})

	s := newFakeSurface()
	p.Open()
	s.frame(p, "", chord("ctrl+s"))

	require.Equal(t, 1, save.actions)
	require.False(t, p.Visible())
}

func TestPlainKeyShortcutIgnoredWhileOpen(t *testing.T) {
	var reload counter

	p := New(DefaultOptions())
	mustRegister(t, p, Command{Detail: "Reload", Shortcut: chord("r"), Handler: reload.handler()})

	s := newFakeSurface()
	p.Open()
	s.frame(p, "r", chord("r"))
	require.Zero(t, reload.actions)
	require.Equal(t, "r", p.Filter())

	p.Close()
	s.frame(p, "", chord("r"))
	require.Equal(t, 1, reload.actions)
}

func TestShortcutsDisabled(t *testing.T) {
	var save counter

	opts := DefaultOptions()
	opts.RespondShortcuts = false

	p := New(opts)
	mustRegister(t, p, Command{Detail: "Save", Shortcut: chord("ctrl+s"), Handler: save.handler()})

	s := newFakeSurface()
	s.frame(p, "", chord("ctrl+s"))
	require.Zero(t, save.actions)
	require.Equal(t, 1, save.updates)
}

func TestUpdateMayDisable(t *testing.T) {
	var save counter
	enabled := false

	p := New(DefaultOptions())
	idx := mustRegister(t, p, Command{
		Detail:   "Save",
		Shortcut: chord("ctrl+s"),
		Handler: Funcs{
			Action: func() { save.actions++ },
			Update: func(cmd *Command) { cmd.Disabled = !enabled },
		},
	})

	s := newFakeSurface()
	s.frame(p, "", chord("ctrl+s"))
	require.Zero(t, save.actions)
	cmd, _ := p.Commands().Get(idx)
	require.True(t, cmd.Disabled)

	enabled = true
	s.frame(p, "", chord("ctrl+s"))
	require.Equal(t, 1, save.actions)
}

func TestShowScores(t *testing.T) {
	opts := DefaultOptions()
	opts.ShowScores = true

	p := New(opts)
	mustRegister(t, p, Command{Detail: "Open File"})

	s := newFakeSurface()
	p.Open()
	s.frame(p, "file")

	require.True(t, s.items[0].ShowScore)
	require.Equal(t, 101, s.items[0].Score)
}

func TestMenuBarCaretOpens(t *testing.T) {
	opts := DefaultOptions()
	opts.MenuBarCaret = true

	p := New(opts)
	s := newFakeSurface()

	s.frame(p, "")
	require.Equal(t, []string{"bar", "item:>", "/bar"}, s.menuLog)
	require.False(t, p.Visible())

	s.click[">"] = true
	s.frame(p, "")
	require.True(t, p.Visible())
}

func TestReplaceKeepsRanking(t *testing.T) {
	opts := DefaultOptions()
	opts.Duplicates = DuplicateReplace

	p := New(opts)
	mustRegister(t, p, Command{ID: "a", Detail: "Alpha", Path: "Old/Alpha"})
	mustRegister(t, p, Command{ID: "a", Detail: "Beta", Path: "New/Beta"})

	require.Len(t, p.Ranking(), 1)
	require.Equal(t, 1, p.Commands().Len())

	require.Len(t, p.menu.children, 1)
	require.Equal(t, "New", p.menu.children[0].label)
}

func TestCommandsViewKeepsRankingInSync(t *testing.T) {
	p := New(DefaultOptions())
	mustRegister(t, p, Command{ID: "a", Detail: "Alpha"})
	mustRegister(t, p, Command{ID: "b", Detail: "Beta", Path: "Edit/Beta"})

	// every registered command is ranked and in the menu without a new filter
	commands := p.Commands()
	require.Equal(t, 2, commands.Len())
	require.Len(t, p.Ranking(), commands.Len())
	require.Len(t, p.menu.children, 1)
	require.Equal(t, "Edit", p.menu.children[0].label)

	// changes to copies do not leak into the palette
	all := commands.All()
	all[0].Detail = "Changed"

	cmd, ok := commands.Get(0)
	require.True(t, ok)
	require.Equal(t, "Alpha", cmd.Detail)

	cmd.Disabled = true
	cmd, _ = commands.Get(0)
	require.False(t, cmd.Disabled)

	_, ok = commands.Get(2)
	require.False(t, ok)

	idx, err := commands.Resolve("b")
	require.NoError(t, err)
	require.Equal(t, Index(1), idx)

	_, err = commands.Resolve("c")
	require.ErrorIs(t, err, ErrUnknownCommand)
}
