package orion

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFrameTimes(t *testing.T) {
	var times FrameTimes

	start := time.Unix(1000, 0)

	var ticks int
	for idx := range 120 {
		if times.Tick(start.Add(time.Duration(idx) * 20 * time.Millisecond)) {
			ticks++
		}
	}

	assert.Equal(t, 2, ticks)
	assert.Equal(t, uint64(120), times.FrameCount)
	assert.Equal(t, 20*time.Millisecond, times.Delta)
	assert.Equal(t, 119*20*time.Millisecond, times.Elapsed)
	assert.InDelta(t, 50, times.FPS(), 0.01)
}

func TestFrameTimesEmpty(t *testing.T) {
	var times FrameTimes
	assert.Equal(t, float64(0), times.FPS())
}

func TestFrameProfilerAverage(t *testing.T) {
	var profiler frameProfiler

	start := time.Unix(1000, 0)
	for idx := range 3 {
		frameStart := start.Add(time.Duration(idx) * 10 * time.Millisecond)

		profiler.StartFrame(frameStart)
		profiler.StartGetCurrentTexture(frameStart)
		profiler.StartUpdate(frameStart.Add(2 * time.Millisecond))
		profiler.StartPrepare(frameStart.Add(3 * time.Millisecond))
		profiler.StartDraw(frameStart.Add(5 * time.Millisecond))
		profiler.EndFrame(frameStart.Add(9 * time.Millisecond))
	}

	// the third frame is recorded when the next one starts
	profiler.StartFrame(start.Add(30 * time.Millisecond))

	avg := profiler.average()
	assert.Equal(t, 10*time.Millisecond, avg.Total)
	assert.Equal(t, 2*time.Millisecond, avg.GetCurrentTexture)
	assert.Equal(t, time.Millisecond, avg.Update)
	assert.Equal(t, 2*time.Millisecond, avg.Prepare)
	assert.Equal(t, 4*time.Millisecond, avg.Draw)
	assert.Equal(t, 3, profiler.frameCount)
}

func TestHandle(t *testing.T) {
	assert.NotPanics(t, func() { Handle(nil, "nothing") })

	cause := errors.New("boom")

	defer func() {
		err, ok := recover().(error)
		assert.True(t, ok)
		assert.ErrorIs(t, err, cause)
		assert.EqualError(t, err, "load mesh 3: boom")
	}()

	Handle(cause, "load mesh %d", 3)
}

func TestScreenDimensionsLogicalSize(t *testing.T) {
	w, h := ScreenDimensions{Width: 1600, Height: 1200, Density: 2}.LogicalSize()
	assert.Equal(t, float32(800), w)
	assert.Equal(t, float32(600), h)

	w, _ = ScreenDimensions{Width: 100}.LogicalSize()
	assert.Equal(t, float32(100), w)
}
