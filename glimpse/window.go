package glimpse

type Window interface {
	GetSize() (uint32, uint32)
	SetTitle(title string)
	Run(render func(input UpdateInputState) error) error

	// Close stops Run after the current frame.
	Close()

	Terminate()
}

type WindowOptions struct {
	Width  int
	Height int
	Title  string

	// Profile enables profiling while the window is open, either "cpu" or "mem".
	Profile string
}
