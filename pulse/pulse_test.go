package pulse

import (
	"testing"

	"github.com/oliverbestmann/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
)

func TestNextBufferSize(t *testing.T) {
	assert.Equal(t, uint64(minBufferSize), nextBufferSize(0))
	assert.Equal(t, uint64(minBufferSize), nextBufferSize(minBufferSize))
	assert.Equal(t, uint64(2*minBufferSize), nextBufferSize(minBufferSize+1))
	assert.Equal(t, uint64(64*1024), nextBufferSize(40_000))
}

func TestAlignTo4(t *testing.T) {
	assert.Equal(t, uint64(0), alignTo4(0))
	assert.Equal(t, uint64(4), alignTo4(1))
	assert.Equal(t, uint64(4), alignTo4(4))
	assert.Equal(t, uint64(20), alignTo4(18))
}

func TestAsByteSlice(t *testing.T) {
	value := [2]uint16{0x0102, 0x0304}

	bytes := AsByteSlice(&value)
	assert.Len(t, bytes, 4)

	bytes[0] = 0xff
	assert.Equal(t, uint16(0xff), value[0]&0xff)
}

func TestColor(t *testing.T) {
	var zero Color
	assert.Equal(t, ColorWhite, zero)

	c := ColorLinearRGBA(0.25, 0.5, 0.75, 1)
	assert.Equal(t, 0.25, c.ToWGPUColor().R)
	assert.Equal(t, 0.5, c.ToWGPUColor().G)

	assert.InDelta(t, 0.2140411, ColorSRGBA(0.5, 0.5, 0.5, 1).Red(), 1e-5)
	assert.Equal(t, float32(0.5), c.WithAlpha(0.5).Alpha())
}

func TestParseLogLevel(t *testing.T) {
	_, ok := parseLogLevel("nope")
	assert.False(t, ok)

	level, ok := parseLogLevel("warn")
	assert.True(t, ok)
	assert.Equal(t, wgpu.LogLevelWarn, level)
}
