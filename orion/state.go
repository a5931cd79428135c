package orion

import (
	"github.com/oliverbestmann/vulp/glimpse"
)

var currentWindow global[glimpse.Window]
var currentInputState global[glimpse.InputState]

// global holds a value that is only available while RunGame is running.
type global[T any] struct {
	value    T
	hasValue bool
}

func (g *global[T]) set(value T) *global[T] {
	if g.hasValue {
		panic("value already set")
	}

	g.value = value
	g.hasValue = true
	return g
}

func (g *global[T]) reset() {
	var tZero T
	g.value = tZero
	g.hasValue = false
}

func (g *global[T]) Get() T {
	if !g.hasValue {
		panic("must only be called after RunGame")
	}

	return g.value
}

// ptr is like Get but returns the stored value itself.
func (g *global[T]) ptr() *T {
	if !g.hasValue {
		panic("must only be called after RunGame")
	}

	return &g.value
}

// CurrentWindow exposes the window of the running game.
func CurrentWindow() glimpse.Window {
	return currentWindow.Get()
}
