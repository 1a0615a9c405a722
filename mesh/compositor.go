package mesh

import (
	"structs"

	"github.com/oliverbestmann/vecmesh/glm"
)

// GPUVertex is the vertex layout as consumed by the mesh shader.
type GPUVertex struct {
	_ structs.HostLayout

	Position glm.Vec2f
	Color    glm.Vec4f
}

// Range is a half open range [Start, End).
type Range struct {
	Start uint32
	End   uint32
}

func (r Range) Len() uint32 {
	return r.End - r.Start
}

// DrawRange describes where a single mesh is located within a Batch.
type DrawRange struct {
	Entity   Entity
	Vertices Range
	Indices  Range
}

// DrawIndexedFunc issues a single indexed draw call. baseVertex is added to
// each index value before the vertex is fetched.
type DrawIndexedFunc func(indexCount, firstIndex uint32, baseVertex int32)

// Batch contains all meshes of a frame merged into one vertex and one index buffer.
type Batch struct {
	Vertices []GPUVertex

	// Indices are copied from the meshes as is, they are local to
	// the mesh they belong to. See DrawRange.
	Indices []uint16

	Ranges []DrawRange

	// Changed is set if the total vertex or index count differs from
	// the previous frame. Changes to vertex values that keep the counts
	// unchanged are not detected.
	Changed bool
}

func (b *Batch) IsEmpty() bool {
	return len(b.Vertices) == 0
}

// Draw calls draw once for each mesh in the batch, using the start of the meshes
// vertex range as base vertex. Nothing is drawn if the batch has no vertices.
func (b *Batch) Draw(draw DrawIndexedFunc) {
	if b.IsEmpty() {
		return
	}

	for _, r := range b.Ranges {
		if r.Indices.Len() == 0 {
			continue
		}

		draw(r.Indices.Len(), r.Indices.Start, int32(r.Vertices.Start))
	}
}

// Compositor merges meshes into a Batch once per frame. The only state kept
// between frames are the totals of the previous frame.
type Compositor struct {
	vertexCount int
	indexCount  int

	batch    Batch
	selected [1]Record
}

// Composite builds the Batch for the current frame. If the selector references one of
// the records, only that record is included. The returned Batch is owned by the
// Compositor and is valid until the next call to Composite.
func (c *Compositor) Composite(records []Record, selector ActiveMesh) *Batch {
	records = c.filter(records, selector)

	var vertexCount, indexCount int
	for _, rec := range records {
		vertexCount += rec.Mesh.VertexCount()
		indexCount += rec.Mesh.IndexCount()
	}

	changed := vertexCount != c.vertexCount || indexCount != c.indexCount
	c.vertexCount = vertexCount
	c.indexCount = indexCount

	batch := &c.batch
	batch.Vertices = batch.Vertices[:0]
	batch.Indices = batch.Indices[:0]
	batch.Ranges = batch.Ranges[:0]
	batch.Changed = changed

	batch.Vertices = growCap(batch.Vertices, vertexCount)
	batch.Indices = growCap(batch.Indices, indexCount)

	var vertexCursor, indexCursor uint32

	for _, rec := range records {
		vertices := rec.Mesh.Vertices()
		indices := rec.Mesh.Indices()

		batch.Ranges = append(batch.Ranges, DrawRange{
			Entity:   rec.Entity,
			Vertices: Range{Start: vertexCursor, End: vertexCursor + uint32(len(vertices))},
			Indices:  Range{Start: indexCursor, End: indexCursor + uint32(len(indices))},
		})

		for _, v := range vertices {
			batch.Vertices = append(batch.Vertices, GPUVertex{
				Position: v.Position,
				Color:    v.Color,
			})
		}

		// no rebasing, the draw call applies the vertex offset
		batch.Indices = append(batch.Indices, indices...)

		vertexCursor += uint32(len(vertices))
		indexCursor += uint32(len(indices))
	}

	return batch
}

func (c *Compositor) filter(records []Record, selector ActiveMesh) []Record {
	if selector.Entity == nil {
		return records
	}

	for _, rec := range records {
		if rec.Entity == *selector.Entity {
			c.selected[0] = rec
			return c.selected[:]
		}
	}

	// selected entity is gone, render everything
	return records
}

func growCap[T any](values []T, n int) []T {
	if cap(values) >= n {
		return values
	}

	return make([]T, 0, n)
}
