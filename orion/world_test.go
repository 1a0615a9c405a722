package orion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type counter struct {
	value int
}

func TestWorld(t *testing.T) {
	world := NewWorld()

	_, ok := Fetch[*counter](world)
	assert.False(t, ok)

	Insert(world, &counter{value: 1})
	MustFetch[*counter](world).value += 1

	assert.Equal(t, 2, MustFetch[*counter](world).value)

	// values are keyed by their exact type
	_, ok = Fetch[counter](world)
	assert.False(t, ok)

	assert.True(t, Remove[*counter](world))
	assert.False(t, Remove[*counter](world))

	assert.Panics(t, func() { MustFetch[*counter](world) })
}

func TestWorldInsertDefault(t *testing.T) {
	world := NewWorld()

	first := InsertDefault(world, func() *counter { return &counter{value: 5} })
	second := InsertDefault(world, func() *counter { return &counter{} })

	assert.Same(t, first, second)
	assert.Equal(t, 5, second.value)
}
