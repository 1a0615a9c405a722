package mesh

import (
	"testing"

	"github.com/oliverbestmann/vecmesh/glm"
	"github.com/stretchr/testify/assert"
)

func TestNewFrameTransform(t *testing.T) {
	tr := NewFrameTransform(800, 600, 1.0)

	assert.InDelta(t, 0.0025, tr.Scale[0], 1e-7)
	assert.InDelta(t, 0.0033333, tr.Scale[1], 1e-6)
	assert.Equal(t, glm.Vec2f{-1, -1}, tr.Translation)

	assert.Equal(t, glm.Vec2f{-1, -1}, tr.Apply(glm.Vec2f{0, 0}))

	corner := tr.Apply(glm.Vec2f{800, 600})
	assert.InDelta(t, 1, corner[0], 1e-6)
	assert.InDelta(t, 1, corner[1], 1e-6)
}

func TestNewFrameTransformDensity(t *testing.T) {
	tr := NewFrameTransform(800, 600, 2.0)

	assert.InDelta(t, 0.005, tr.Scale[0], 1e-7)

	// logical pixels cover the full physical surface
	corner := tr.Apply(glm.Vec2f{400, 300})
	assert.InDelta(t, 1, corner[0], 1e-6)
	assert.InDelta(t, 1, corner[1], 1e-6)
}

func TestFrameTransformZeroSize(t *testing.T) {
	tr := NewFrameTransform(0, 600, 1.0)
	assert.Equal(t, float32(0), tr.Scale[0])
}

func TestFrameTransformRaw(t *testing.T) {
	assert.Equal(t, [4]float32{1, 1, 0, 0}, DefaultFrameTransform.Raw())

	tr := FrameTransform{Scale: glm.Vec2f{2, 3}, Translation: glm.Vec2f{4, 5}}
	assert.Equal(t, [4]float32{2, 3, 4, 5}, tr.Raw())
}
