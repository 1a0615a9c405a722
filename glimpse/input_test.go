package glimpse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeysState(t *testing.T) {
	var input InputState

	input.Keys.press(KeyA)
	assert.True(t, input.IsKeyPressed(KeyA))
	assert.True(t, input.IsKeyJustPressed(KeyA))

	input.nextTick()
	assert.True(t, input.IsKeyPressed(KeyA))
	assert.False(t, input.IsKeyJustPressed(KeyA))

	input.Keys.release(KeyA)
	assert.False(t, input.IsKeyPressed(KeyA))
	assert.True(t, input.Keys.JustReleased[KeyA])

	input.nextTick()
	assert.False(t, input.Keys.JustReleased[KeyA])
}

func TestMouseDelta(t *testing.T) {
	var input InputState

	input.Mouse.position(10, 20)
	assert.Equal(t, float32(0), input.Mouse.DeltaX)

	input.Mouse.position(15, 18)
	input.Mouse.position(20, 16)
	assert.Equal(t, float32(10), input.Mouse.DeltaX)
	assert.Equal(t, float32(-4), input.Mouse.DeltaY)

	input.nextTick()
	assert.Equal(t, float32(0), input.Mouse.DeltaX)
	assert.Equal(t, float32(20), input.Mouse.CursorX)
}

func TestMouseButtons(t *testing.T) {
	var input InputState

	input.Mouse.press(0)
	assert.True(t, input.Mouse.Pressed[0])
	assert.True(t, input.Mouse.JustPressed[0])

	input.nextTick()
	input.Mouse.release(0)
	assert.False(t, input.Mouse.Pressed[0])
	assert.True(t, input.Mouse.JustReleased[0])
}

func TestKeyString(t *testing.T) {
	assert.Equal(t, "KeyEscape", KeyEscape.String())
	assert.Equal(t, "Key1", Key1.String())
	assert.Equal(t, "KeyZ", KeyZ.String())
	assert.Equal(t, "KeyF12", KeyF12.String())
	assert.Equal(t, "Key(1000)", Key(1000).String())
}
