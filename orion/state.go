package orion

import (
	"github.com/oliverbestmann/vecmesh/glimpse"
)

// Trans is the transition a State requests after handling an event.
type Trans int

const (
	TransNone Trans = iota
	TransQuit
)

// State holds the application logic. All methods are called on the
// main thread, before the render groups prepare the frame.
type State interface {
	OnStart(world *World) error
	HandleEvent(world *World, input glimpse.InputState) Trans
	Update(world *World, times FrameTimes) error
}

// EmptyState can be embedded to implement only some methods of State.
type EmptyState struct{}

func (EmptyState) OnStart(*World) error {
	return nil
}

func (EmptyState) HandleEvent(*World, glimpse.InputState) Trans {
	return TransNone
}

func (EmptyState) Update(*World, FrameTimes) error {
	return nil
}
