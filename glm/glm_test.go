package glm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMat3TranslateScale(t *testing.T) {
	m := TranslationMat3[float32](10, 20).Scale(2, 3)

	assert.Equal(t, Vec2f{12, 23}, m.Transform2(Vec2f{1, 1}))
	assert.Equal(t, Vec2f{10, 20}, m.Transform2(Vec2f{}))
}

func TestMat3Rotate(t *testing.T) {
	m := IdentityMat3[float32]().Rotate(math.Pi / 2)
	p := m.Transform2(Vec2f{1, 0})

	assert.InDelta(t, 0, p[0], 1e-4)
	assert.InDelta(t, 1, p[1], 1e-4)
}

func TestVec2(t *testing.T) {
	v := Vec2f{3, 4}

	assert.Equal(t, float32(5), v.Length())
	assert.Equal(t, Vec2f{-4, 3}, v.Perp())
	assert.Equal(t, float32(0), v.Cross(v))
	assert.Equal(t, Vec2f{}, Vec2f{}.Normalize())
	assert.Equal(t, Vec2f{1.5, 2}, Vec2f{}.Lerp(v, 0.5))

	n := v.Normalize()
	assert.InDelta(t, 1, n.Length(), 1e-6)
}

func TestUnitVec2(t *testing.T) {
	v := UnitVec2(math.Pi)
	assert.InDelta(t, -1, v[0], 1e-4)
	assert.InDelta(t, 0, v[1], 1e-4)

	assert.InDelta(t, math.Pi/2, float64(Atan2(1, 0)), 1e-6)
}
