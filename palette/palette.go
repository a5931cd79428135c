package palette

import (
	"log/slog"

	"github.com/oliverbestmann/vulp/glimpse"
	"github.com/oliverbestmann/vulp/glm"
)

// the number of results reachable by alt+1 to alt+9
const quickKeyCount = 9

var (
	chordEscape = glimpse.ChordOf(0, glimpse.KeyEscape)
	chordEnter  = glimpse.ChordOf(0, glimpse.KeyEnter)
)

type State int

const (
	StateClosed State = iota
	StateOpen
)

func (s State) String() string {
	if s == StateOpen {
		return "open"
	}

	return "closed"
}

// Palette is a searchable list of commands shown as an overlay.
// It is driven by calling Render once per frame and is not safe for
// concurrent use.
type Palette struct {
	opts Options

	registry *Registry
	scorer   *Scorer
	menu     *menuNode

	visible bool
	filter  string
	ranking []Ranked

	// focus the filter field on the next frame
	focusFilter bool

	// enter hit a disabled command, keep the focus on the filter field
	pendingRefocus bool
}

func New(opts Options) *Palette {
	if opts.Size == (glm.Vec2f{}) {
		opts.Size = DefaultOptions().Size
	}

	return &Palette{
		opts:     opts,
		registry: NewRegistry(opts.Duplicates),
		scorer:   NewScorer(opts.PatternCacheSize),
		menu:     newMenuRoot(),
	}
}

func (p *Palette) Options() Options {
	return p.opts
}

// Commands returns a read-only view of the registered commands. Use
// Register to add commands.
func (p *Palette) Commands() Commands {
	return Commands{registry: p.registry}
}

// Register adds a command and ranks it against the current filter.
func (p *Palette) Register(cmd Command) (Index, error) {
	count := p.registry.Len()

	idx, err := p.registry.Register(cmd)
	if err != nil {
		return 0, err
	}

	if p.registry.Len() > count {
		p.menu.insert(cmd.Path, idx)
	} else {
		// a replaced command may have moved in the menu
		p.rebuildMenu()
	}

	p.rerank()

	return idx, nil
}

func (p *Palette) rebuildMenu() {
	p.menu = newMenuRoot()

	for idx, cmd := range p.registry.All() {
		p.menu.insert(cmd.Path, Index(idx))
	}
}

func (p *Palette) Filter() string {
	return p.filter
}

// SetFilter replaces the filter text and ranks all commands against it.
func (p *Palette) SetFilter(filter string) {
	p.filter = filter
	p.rerank()
}

// Ranking returns all commands ordered by their score for the current filter.
// The slice is owned by the palette and changes with the next re-ranking.
func (p *Palette) Ranking() []Ranked {
	return p.ranking
}

func (p *Palette) rerank() {
	p.ranking = p.registry.Rank(p.scorer, p.filter, p.ranking)
}

func (p *Palette) State() State {
	if p.visible {
		return StateOpen
	}

	return StateClosed
}

func (p *Palette) Visible() bool {
	return p.visible
}

// Open shows the palette with an empty filter. Opening an open palette does nothing.
func (p *Palette) Open() {
	if p.visible {
		return
	}

	p.visible = true
	p.filter = ""
	p.focusFilter = true
	p.rerank()
}

func (p *Palette) Close() {
	p.visible = false
	p.pendingRefocus = false
}

func (p *Palette) Toggle() {
	if p.visible {
		p.Close()
	} else {
		p.Open()
	}
}

// PendingRefocus reports whether the filter field gets the focus back on
// the next frame, after enter was pressed on a disabled command.
func (p *Palette) PendingRefocus() bool {
	return p.pendingRefocus
}

// Trigger runs the command at idx and closes the palette. Disabled
// commands are not run and leave the palette as it is.
func (p *Palette) Trigger(idx Index) bool {
	cmd := p.registry.Get(idx)
	if cmd == nil || cmd.Disabled {
		return false
	}

	if cmd.Toggle {
		cmd.Selected = !cmd.Selected
	}

	p.Close()

	slog.Debug(
		"Trigger command",
		slog.String("id", cmd.ID),
		slog.String("detail", cmd.Detail),
	)

	cmd.action()
	return true
}

// Render runs one frame of the palette on the given surface.
func (p *Palette) Render(surface Surface) {
	input := surface.Input()

	if input.IsChordJustPressed(p.opts.OpenChord) {
		p.Toggle()
	}

	if input.IsChordJustPressed(chordEscape) {
		p.Close()
	}

	if p.opts.MenuBarCaret {
		if surface.BeginMenuBar() {
			if surface.MenuItem(Item{Label: ">", Enabled: true}) {
				p.Open()
			}
		}

		surface.EndMenuBar()
	}

	commands := p.registry.All()

	for idx := range commands {
		commands[idx].update()
	}

	if p.opts.RespondShortcuts {
		p.handleShortcuts(input)
	}

	if p.opts.MenuBarItems {
		if surface.BeginMenuBar() {
			p.renderMenu(surface)
		}

		surface.EndMenuBar()
	}

	if p.visible {
		p.renderOverlay(surface)
	}
}

// handleShortcuts triggers the first command whose shortcut was pressed.
func (p *Palette) handleShortcuts(input *glimpse.InputState) {
	commands := p.registry.All()

	for idx := range commands {
		cmd := &commands[idx]

		if cmd.Disabled || cmd.Shortcut.IsZero() {
			continue
		}

		// plain keys are typed into the filter while the palette is open
		if p.visible && cmd.Shortcut.Mods == 0 {
			continue
		}

		if input.IsChordJustPressed(cmd.Shortcut) {
			p.Trigger(Index(idx))
			return
		}
	}
}

func (p *Palette) renderMenu(surface Surface) {
	p.menu.walk(
		surface.BeginMenu,
		func(node *menuNode) {
			item := p.item(node.command)
			item.Label = node.label

			if surface.MenuItem(item) {
				p.Trigger(node.command)
			}
		},
		surface.EndMenu,
	)
}

func (p *Palette) renderOverlay(surface Surface) {
	viewport := surface.Viewport()

	layout := Layout{
		X:          viewport[0] / 2,
		Width:      viewport[0] * p.opts.Size[0],
		ListHeight: viewport[1] * p.opts.Size[1],
	}

	defer surface.EndOverlay()

	if !surface.BeginOverlay(layout) {
		return
	}

	focus := p.focusFilter || p.pendingRefocus

	if !focus && !surface.OverlayFocused() {
		p.Close()
		return
	}

	p.focusFilter = false
	p.pendingRefocus = false

	if surface.InputText(&p.filter, focus) {
		p.rerank()
	}

	input := surface.Input()

	if input.IsChordJustPressed(chordEnter) && len(p.ranking) > 0 {
		if p.Trigger(p.ranking[0].Index) {
			return
		}

		p.pendingRefocus = true
	}

	for pos, ranked := range p.ranking {
		item := p.item(ranked.Index)

		if p.opts.ShowScores {
			item.Score = ranked.Score
			item.ShowScore = true
		}

		if p.opts.AltBindings && pos < quickKeyCount {
			item.QuickKey = glimpse.ChordOf(glimpse.ModAlt, glimpse.Key1+glimpse.Key(pos))
		}

		clicked := surface.MenuItem(item)
		if !clicked && !item.QuickKey.IsZero() {
			clicked = input.IsChordJustPressed(item.QuickKey)
		}

		if clicked && p.Trigger(ranked.Index) {
			return
		}
	}
}

func (p *Palette) item(idx Index) Item {
	cmd := p.registry.Get(idx)

	return Item{
		Label:    cmd.Detail,
		Shortcut: cmd.Shortcut,
		Checked:  cmd.Checked(),
		Enabled:  !cmd.Disabled,
	}
}
