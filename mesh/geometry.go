package mesh

import (
	"fmt"

	"github.com/oliverbestmann/vecmesh/glm"
)

// Geometry accumulates the output of one or more tessellation passes.
// Indices are relative to the start of the geometry, so multiple shapes can
// be collected into a single Mesh.
type Geometry struct {
	Vertices []Vertex
	Indices  []uint16

	// set if more vertices than MaxVertices were appended
	overflow bool
}

// Base returns the index of the next vertex that will be added.
func (g *Geometry) Base() uint16 {
	return uint16(len(g.Vertices))
}

// AddVertex adds a vertex and returns its index.
func (g *Geometry) AddVertex(pos glm.Vec2f, color glm.Vec4f) uint16 {
	if len(g.Vertices) >= MaxVertices {
		g.overflow = true
	}

	idx := uint16(len(g.Vertices))
	g.Vertices = append(g.Vertices, Vertex{Position: pos, Color: color})
	return idx
}

func (g *Geometry) AddTriangle(a, b, c uint16) {
	g.Indices = append(g.Indices, a, b, c)
}

// Append copies another mesh into this geometry, offsetting its indices.
func (g *Geometry) Append(m *Mesh) {
	if len(g.Vertices)+len(m.vertices) > MaxVertices {
		g.overflow = true
	}

	base := g.Base()

	g.Vertices = append(g.Vertices, m.vertices...)
	for _, idx := range m.indices {
		g.Indices = append(g.Indices, base+idx)
	}
}

// Mesh validates the collected geometry and returns it as a Mesh. The mesh takes
// over the collected slices, the geometry is empty afterward and can be reused.
// On error the geometry is left unchanged.
func (g *Geometry) Mesh() (Mesh, error) {
	if g.overflow {
		return Mesh{}, fmt.Errorf("%w: geometry exceeds %d vertices", ErrTooManyVertices, MaxVertices)
	}

	m, err := New(g.Vertices, g.Indices)
	if err != nil {
		return Mesh{}, fmt.Errorf("build mesh from geometry: %w", err)
	}

	*g = Geometry{}

	return m, nil
}

// Reset discards the collected geometry and keeps the allocated capacity.
func (g *Geometry) Reset() {
	g.Vertices = g.Vertices[:0]
	g.Indices = g.Indices[:0]
	g.overflow = false
}
