package palette

import "github.com/oliverbestmann/vulp/glimpse"

// Handler receives the callbacks of a command.
type Handler interface {
	// OnAction runs when the command is triggered.
	OnAction()

	// OnUpdate runs once per frame, whether the palette is visible or not.
	// It may modify the command, e.g. to enable or disable it.
	OnUpdate(cmd *Command)

	// IsChecked reports whether a check mark is shown next to the command.
	IsChecked() bool
}

// Funcs is a Handler built from closures. Each of them may be nil.
type Funcs struct {
	Action  func()
	Update  func(cmd *Command)
	Checked func() bool
}

func (f Funcs) OnAction() {
	if f.Action != nil {
		f.Action()
	}
}

func (f Funcs) OnUpdate(cmd *Command) {
	if f.Update != nil {
		f.Update(cmd)
	}
}

func (f Funcs) IsChecked() bool {
	return f.Checked != nil && f.Checked()
}

// BoolToggle flips a caller owned bool when triggered and shows its value as check mark.
type BoolToggle struct {
	Value *bool
}

func (b BoolToggle) OnAction() {
	*b.Value = !*b.Value
}

func (b BoolToggle) OnUpdate(*Command) {}

func (b BoolToggle) IsChecked() bool {
	return *b.Value
}

type Command struct {
	// ID is an optional key to look up the command by
	ID string

	// Detail is the text shown in the palette and matched against the filter
	Detail string

	// Path places the command into the menu bar, e.g. "View/Culling/Freeze".
	// Commands without a path only show up in the palette.
	Path string

	// Shortcut triggers the command from anywhere, the zero chord means none
	Shortcut glimpse.Chord

	Disabled bool

	// Toggle commands flip Selected every time they are triggered
	// and show it as check mark.
	Toggle   bool
	Selected bool

	Handler Handler
}

// Checked reports whether the command is shown with a check mark.
func (c *Command) Checked() bool {
	if c.Toggle {
		return c.Selected
	}

	return c.Handler != nil && c.Handler.IsChecked()
}

func (c *Command) update() {
	if c.Handler != nil {
		c.Handler.OnUpdate(c)
	}
}

func (c *Command) action() {
	if c.Handler != nil {
		c.Handler.OnAction()
	}
}
