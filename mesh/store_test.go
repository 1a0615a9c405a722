package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreSpawnOrder(t *testing.T) {
	store := NewStore()

	a := store.Spawn(MustNew(vertices(3), []uint16{0, 1, 2}))
	b := store.Spawn(MustNew(vertices(4), []uint16{0, 1, 2, 0, 2, 3}))
	c := store.Spawn(Mesh{})

	records := store.Records(nil)
	require.Len(t, records, 3)

	assert.Equal(t, a, records[0].Entity)
	assert.Equal(t, b, records[1].Entity)
	assert.Equal(t, c, records[2].Entity)
	assert.Equal(t, 4, records[1].Mesh.VertexCount())
}

func TestStoreDespawn(t *testing.T) {
	store := NewStore()

	a := store.Spawn(Mesh{})
	b := store.Spawn(Mesh{})
	c := store.Spawn(Mesh{})

	assert.True(t, store.Despawn(b))
	assert.False(t, store.Despawn(b))
	assert.False(t, store.Valid(b))
	assert.Equal(t, 2, store.Len())

	records := store.Records(nil)
	require.Len(t, records, 2)
	assert.Equal(t, a, records[0].Entity)
	assert.Equal(t, c, records[1].Entity)

	// slot is reused with a new version
	d := store.Spawn(Mesh{})
	assert.Equal(t, b.ID, d.ID)
	assert.NotEqual(t, b.Version, d.Version)
	assert.False(t, store.Valid(b))
	assert.True(t, store.Valid(d))

	// new entities are appended at the end
	records = store.Records(records[:0])
	require.Len(t, records, 3)
	assert.Equal(t, d, records[2].Entity)
}

func TestStoreReplace(t *testing.T) {
	store := NewStore()

	e := store.Spawn(Mesh{})
	assert.True(t, store.Replace(e, MustNew(vertices(3), []uint16{0, 1, 2})))

	m, ok := store.Get(e)
	require.True(t, ok)
	assert.Equal(t, 3, m.VertexCount())

	store.Despawn(e)
	assert.False(t, store.Replace(e, Mesh{}))

	_, ok = store.Get(e)
	assert.False(t, ok)

	assert.False(t, store.Valid(Entity{}))
	assert.False(t, store.Valid(Entity{ID: 42, Version: 1}))
}
