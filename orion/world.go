package orion

import (
	"fmt"
	"reflect"
)

// World holds the resources shared between states, plugins and render groups.
// Resources are keyed by their type, at most one value per type is stored.
// Store pointers to share mutable state.
type World struct {
	resources map[reflect.Type]any
}

func NewWorld() *World {
	return &World{resources: map[reflect.Type]any{}}
}

// Insert adds a resource to the world, replacing any previous value of the same type.
func Insert[T any](w *World, value T) {
	w.resources[reflect.TypeFor[T]()] = value
}

// InsertDefault adds the value returned by newValue, but only if the world
// does not yet hold a value of type T. It returns the stored value.
func InsertDefault[T any](w *World, newValue func() T) T {
	if value, ok := Fetch[T](w); ok {
		return value
	}

	value := newValue()
	Insert(w, value)

	return value
}

// Fetch looks up the resource of type T.
func Fetch[T any](w *World) (T, bool) {
	value, ok := w.resources[reflect.TypeFor[T]()]
	if !ok {
		var tZero T
		return tZero, false
	}

	return value.(T), true
}

// MustFetch looks up the resource of type T and panics if it is missing.
func MustFetch[T any](w *World) T {
	value, ok := Fetch[T](w)
	if !ok {
		panic(fmt.Sprintf("resource %s not found in world", reflect.TypeFor[T]()))
	}

	return value
}

// Remove deletes the resource of type T. It reports whether a value was present.
func Remove[T any](w *World) bool {
	typ := reflect.TypeFor[T]()

	_, ok := w.resources[typ]
	delete(w.resources, typ)

	return ok
}
