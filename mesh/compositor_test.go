package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type drawCall struct {
	IndexCount uint32
	FirstIndex uint32
	BaseVertex int32
}

func recordDraws(batch *Batch) []drawCall {
	var calls []drawCall

	batch.Draw(func(indexCount, firstIndex uint32, baseVertex int32) {
		calls = append(calls, drawCall{indexCount, firstIndex, baseVertex})
	})

	return calls
}

func twoMeshes() (*Store, Entity, Entity) {
	store := NewStore()
	a := store.Spawn(MustNew(vertices(3), []uint16{0, 1, 2}))
	b := store.Spawn(MustNew(vertices(4), []uint16{0, 1, 2, 0, 2, 3}))
	return store, a, b
}

func TestCompositeAll(t *testing.T) {
	store, a, b := twoMeshes()

	var c Compositor
	batch := c.Composite(store.Records(nil), ActiveMesh{})

	assert.Len(t, batch.Vertices, 7)
	assert.Equal(t, []uint16{0, 1, 2, 0, 1, 2, 0, 2, 3}, batch.Indices)

	require.Len(t, batch.Ranges, 2)
	assert.Equal(t, DrawRange{Entity: a, Vertices: Range{0, 3}, Indices: Range{0, 3}}, batch.Ranges[0])
	assert.Equal(t, DrawRange{Entity: b, Vertices: Range{3, 7}, Indices: Range{3, 9}}, batch.Ranges[1])

	// vertices are copied in input order
	assert.Equal(t, vertices(3)[2].Position, batch.Vertices[2].Position)
	assert.Equal(t, vertices(4)[0].Position, batch.Vertices[3].Position)
	assert.Equal(t, vertices(4)[3].Color, batch.Vertices[6].Color)

	assert.Equal(t, []drawCall{
		{IndexCount: 3, FirstIndex: 0, BaseVertex: 0},
		{IndexCount: 6, FirstIndex: 3, BaseVertex: 3},
	}, recordDraws(batch))
}

func TestCompositeEmpty(t *testing.T) {
	var c Compositor
	batch := c.Composite(nil, ActiveMesh{})

	assert.Empty(t, batch.Vertices)
	assert.Empty(t, batch.Indices)
	assert.Empty(t, batch.Ranges)
	assert.False(t, batch.Changed)
	assert.Empty(t, recordDraws(batch))
}

func TestCompositeSumsCounts(t *testing.T) {
	store := NewStore()

	var wantVertices, wantIndices int
	for n := 3; n < 12; n++ {
		indices := make([]uint16, 0, 3*(n-2))
		for idx := 2; idx < n; idx++ {
			indices = append(indices, 0, uint16(idx-1), uint16(idx))
		}

		store.Spawn(MustNew(vertices(n), indices))

		wantVertices += n
		wantIndices += len(indices)
	}

	var c Compositor
	batch := c.Composite(store.Records(nil), ActiveMesh{})

	assert.Len(t, batch.Vertices, wantVertices)
	assert.Len(t, batch.Indices, wantIndices)
	assert.Len(t, batch.Ranges, store.Len())

	// ranges are contiguous
	var vertexEnd, indexEnd uint32
	for _, r := range batch.Ranges {
		assert.Equal(t, vertexEnd, r.Vertices.Start)
		assert.Equal(t, indexEnd, r.Indices.Start)
		vertexEnd, indexEnd = r.Vertices.End, r.Indices.End
	}
}

func TestCompositeSelected(t *testing.T) {
	store, _, b := twoMeshes()

	var selector ActiveMesh
	selector.Select(b)

	var c Compositor
	batch := c.Composite(store.Records(nil), selector)

	require.Len(t, batch.Ranges, 1)
	assert.Equal(t, DrawRange{Entity: b, Vertices: Range{0, 4}, Indices: Range{0, 6}}, batch.Ranges[0])
	assert.Len(t, batch.Vertices, 4)
	assert.Equal(t, []uint16{0, 1, 2, 0, 2, 3}, batch.Indices)

	assert.Equal(t, []drawCall{{IndexCount: 6, FirstIndex: 0, BaseVertex: 0}}, recordDraws(batch))

	// the selector is not modified
	assert.Equal(t, b, *selector.Entity)
}

func TestCompositeSelectedDespawned(t *testing.T) {
	store, a, _ := twoMeshes()

	var selector ActiveMesh
	selector.Select(a)
	store.Despawn(a)

	var c1, c2 Compositor
	selected := c1.Composite(store.Records(nil), selector)
	all := c2.Composite(store.Records(nil), ActiveMesh{})

	assert.Equal(t, all, selected)
	assert.Len(t, selected.Ranges, 1)
}

func TestCompositeSelectedUnknown(t *testing.T) {
	store, _, _ := twoMeshes()

	var selector ActiveMesh
	selector.Select(Entity{ID: 17, Version: 3})

	var c Compositor
	batch := c.Composite(store.Records(nil), selector)
	assert.Len(t, batch.Ranges, 2)
}

func TestCompositeChanged(t *testing.T) {
	store, a, b := twoMeshes()

	var c Compositor

	batch := c.Composite(store.Records(nil), ActiveMesh{})
	assert.True(t, batch.Changed)

	batch = c.Composite(store.Records(nil), ActiveMesh{})
	assert.False(t, batch.Changed)

	// same counts, different values are not detected
	store.Replace(a, MustNew(vertices(3), []uint16{2, 1, 0}))
	batch = c.Composite(store.Records(nil), ActiveMesh{})
	assert.False(t, batch.Changed)

	// selecting a single mesh reduces the totals
	var selector ActiveMesh
	selector.Select(b)
	batch = c.Composite(store.Records(nil), selector)
	assert.True(t, batch.Changed)

	store.Despawn(a)
	store.Despawn(b)
	batch = c.Composite(store.Records(nil), selector)
	assert.True(t, batch.Changed)
	assert.True(t, batch.IsEmpty())
}

func TestCompositeDoesNotModifyInput(t *testing.T) {
	store, a, _ := twoMeshes()

	var c Compositor
	c.Composite(store.Records(nil), ActiveMesh{})

	m, _ := store.Get(a)
	assert.Equal(t, []uint16{0, 1, 2}, m.Indices())
	assert.Equal(t, vertices(3), m.Vertices())
}

func TestCompositeSkipsEmptyDraws(t *testing.T) {
	store := NewStore()
	store.Spawn(Mesh{})
	store.Spawn(MustNew(vertices(3), []uint16{0, 1, 2}))

	var c Compositor
	batch := c.Composite(store.Records(nil), ActiveMesh{})

	require.Len(t, batch.Ranges, 2)
	assert.Equal(t, []drawCall{{IndexCount: 3, FirstIndex: 0, BaseVertex: 0}}, recordDraws(batch))
}
