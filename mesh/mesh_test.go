package mesh

import (
	"testing"

	"github.com/oliverbestmann/vecmesh/glm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vertices(n int) []Vertex {
	var result []Vertex
	for idx := range n {
		result = append(result, Vertex{
			Position: glm.Vec2f{float32(idx), float32(2 * idx)},
			Color:    glm.Vec4f{1, 0, 0, 1},
		})
	}

	return result
}

func TestNew(t *testing.T) {
	m, err := New(vertices(3), []uint16{0, 1, 2})
	require.NoError(t, err)

	assert.Equal(t, 3, m.VertexCount())
	assert.Equal(t, 3, m.IndexCount())
	assert.False(t, m.IsEmpty())
}

func TestNewRejectsInvalidIndices(t *testing.T) {
	_, err := New(vertices(3), []uint16{0, 1, 3})
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = New(vertices(3), []uint16{0, 1})
	assert.ErrorIs(t, err, ErrIncompleteTriangle)

	_, err = New(vertices(MaxVertices+1), nil)
	assert.ErrorIs(t, err, ErrTooManyVertices)
}

func TestEmptyMesh(t *testing.T) {
	m, err := New(nil, nil)
	require.NoError(t, err)
	assert.True(t, m.IsEmpty())

	var zero Mesh
	assert.Equal(t, 0, zero.VertexCount())
}

func TestGeometryAppend(t *testing.T) {
	var geom Geometry

	red := glm.Vec4f{1, 0, 0, 1}
	a := geom.AddVertex(glm.Vec2f{0, 0}, red)
	b := geom.AddVertex(glm.Vec2f{1, 0}, red)
	c := geom.AddVertex(glm.Vec2f{0, 1}, red)
	geom.AddTriangle(a, b, c)

	other := MustNew(vertices(3), []uint16{2, 1, 0})
	geom.Append(&other)

	m, err := geom.Mesh()
	require.NoError(t, err)

	assert.Equal(t, 6, m.VertexCount())
	assert.Equal(t, []uint16{0, 1, 2, 5, 4, 3}, m.Indices())

	// geometry is empty after building the mesh
	assert.Empty(t, geom.Vertices)
}

func TestGeometryOverflow(t *testing.T) {
	var geom Geometry
	for range MaxVertices + 1 {
		geom.AddVertex(glm.Vec2f{}, glm.Vec4f{})
	}

	_, err := geom.Mesh()
	assert.ErrorIs(t, err, ErrTooManyVertices)

	geom.Reset()
	_, err = geom.Mesh()
	assert.NoError(t, err)
}

func TestGeometryReuseAfterMesh(t *testing.T) {
	var geom Geometry

	red := glm.Vec4f{1, 0, 0, 1}
	geom.AddTriangle(
		geom.AddVertex(glm.Vec2f{0, 0}, red),
		geom.AddVertex(glm.Vec2f{1, 0}, red),
		geom.AddVertex(glm.Vec2f{0, 1}, red),
	)

	first, err := geom.Mesh()
	require.NoError(t, err)

	blue := glm.Vec4f{0, 0, 1, 1}
	geom.AddTriangle(
		geom.AddVertex(glm.Vec2f{5, 5}, blue),
		geom.AddVertex(glm.Vec2f{6, 5}, blue),
		geom.AddVertex(glm.Vec2f{5, 6}, blue),
	)

	second, err := geom.Mesh()
	require.NoError(t, err)

	// building the second mesh does not touch the first one
	assert.Equal(t, 3, first.VertexCount())
	assert.Equal(t, glm.Vec2f{0, 0}, first.Vertices()[0].Position)
	assert.Equal(t, red, first.Vertices()[0].Color)

	assert.Equal(t, []uint16{0, 1, 2}, second.Indices())
	assert.Equal(t, glm.Vec2f{5, 5}, second.Vertices()[0].Position)
}
