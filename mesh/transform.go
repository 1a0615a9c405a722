package mesh

import (
	"github.com/oliverbestmann/vecmesh/glm"
)

// FrameTransform maps pixel coordinates to normalized device coordinates.
// It is uploaded to the gpu as four float32 values.
type FrameTransform struct {
	Scale       glm.Vec2f
	Translation glm.Vec2f
}

// DefaultFrameTransform does not change the coordinates at all.
var DefaultFrameTransform = FrameTransform{
	Scale:       glm.Vec2f{1, 1},
	Translation: glm.Vec2f{0, 0},
}

// NewFrameTransform calculates the transform for a viewport of the given size in
// pixels. density is the ratio of physical pixels to logical pixels of the display.
func NewFrameTransform(width, height uint32, density float32) FrameTransform {
	return FrameTransform{
		Scale: glm.Vec2f{
			scaleOf(width, density),
			scaleOf(height, density),
		},
		Translation: glm.Vec2f{-1, -1},
	}
}

// Apply transforms a point the same way the vertex shader does, before the y axis is flipped.
func (t FrameTransform) Apply(pos glm.Vec2f) glm.Vec2f {
	return pos.Mul(t.Scale).Add(t.Translation)
}

// Raw returns the values as laid out in the uniform buffer.
func (t FrameTransform) Raw() [4]float32 {
	return [4]float32{
		t.Scale[0], t.Scale[1],
		t.Translation[0], t.Translation[1],
	}
}

func scaleOf(size uint32, density float32) float32 {
	if size == 0 {
		return 0
	}

	return density * (2.0 / float32(size))
}
