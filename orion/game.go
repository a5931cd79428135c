package orion

type Game interface {
	Initialize() error
	Update() error

	// Draw presents the state of the game. Without a graphics api the
	// screen is only a line of text shown in the window title.
	Draw(screen *Screen)
}
