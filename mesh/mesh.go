// Package mesh holds triangle meshes produced by tessellation and merges
// them into one consolidated vertex and index buffer per frame.
package mesh

import (
	"errors"
	"fmt"
	"math"

	"github.com/oliverbestmann/vecmesh/glm"
)

// MaxVertices is the maximum number of vertices in a single Mesh. Indices
// are stored as uint16 and are local to their mesh.
const MaxVertices = math.MaxUint16 + 1

var ErrIndexOutOfRange = errors.New("index out of range")
var ErrIncompleteTriangle = errors.New("index count is not a multiple of three")
var ErrTooManyVertices = errors.New("too many vertices")

// Vertex is a single vertex of a Mesh. Position is given in pixels with
// the origin at the top left, Color is a straight alpha rgba color in linear rgb.
type Vertex struct {
	Position glm.Vec2f
	Color    glm.Vec4f
}

// Mesh is a list of triangles. Every index references a vertex of the
// same Mesh. Use New to construct a Mesh, the zero value is an empty mesh.
type Mesh struct {
	vertices []Vertex
	indices  []uint16
}

// New creates a new Mesh after validating that each index references
// one of the given vertices. The mesh takes ownership of both slices.
func New(vertices []Vertex, indices []uint16) (Mesh, error) {
	if len(vertices) > MaxVertices {
		return Mesh{}, fmt.Errorf("%w: %d > %d", ErrTooManyVertices, len(vertices), MaxVertices)
	}

	if len(indices)%3 != 0 {
		return Mesh{}, fmt.Errorf("%w: %d indices", ErrIncompleteTriangle, len(indices))
	}

	for pos, idx := range indices {
		if int(idx) >= len(vertices) {
			return Mesh{}, fmt.Errorf("%w: indices[%d]=%d, vertex count is %d",
				ErrIndexOutOfRange, pos, idx, len(vertices))
		}
	}

	return Mesh{vertices: vertices, indices: indices}, nil
}

// MustNew is like New but panics on invalid input.
func MustNew(vertices []Vertex, indices []uint16) Mesh {
	m, err := New(vertices, indices)
	if err != nil {
		panic(err)
	}

	return m
}

// Vertices returns the vertices of the mesh. The slice must not be modified.
func (m *Mesh) Vertices() []Vertex {
	return m.vertices
}

// Indices returns the mesh local indices. The slice must not be modified.
func (m *Mesh) Indices() []uint16 {
	return m.indices
}

func (m *Mesh) VertexCount() int {
	return len(m.vertices)
}

func (m *Mesh) IndexCount() int {
	return len(m.indices)
}

func (m *Mesh) IsEmpty() bool {
	return len(m.indices) == 0
}
