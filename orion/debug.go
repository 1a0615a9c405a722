package orion

import (
	"log/slog"
	"runtime"
	"time"
)

type framePhases struct {
	Total time.Duration

	GetCurrentTexture time.Duration
	Update            time.Duration
	Prepare           time.Duration
	Draw              time.Duration
}

// frameProfiler records how long each phase of the last frames took.
type frameProfiler struct {
	frameCount int
	frames     [60 * 10]framePhases

	timeStartFrame             time.Time
	timeStartGetCurrentTexture time.Time
	timeStartUpdate            time.Time
	timeStartPrepare           time.Time
	timeStartDraw              time.Time
	timeEndFrame               time.Time

	mem runtime.MemStats
}

func (d *frameProfiler) StartFrame(now time.Time) {
	if !d.timeStartFrame.IsZero() && !d.timeEndFrame.IsZero() {
		d.frames[d.frameCount%len(d.frames)] = framePhases{
			Total:             now.Sub(d.timeStartFrame),
			GetCurrentTexture: d.timeStartUpdate.Sub(d.timeStartGetCurrentTexture),
			Update:            d.timeStartPrepare.Sub(d.timeStartUpdate),
			Prepare:           d.timeStartDraw.Sub(d.timeStartPrepare),
			Draw:              d.timeEndFrame.Sub(d.timeStartDraw),
		}

		d.frameCount += 1
	}

	d.timeStartFrame = now
	d.timeEndFrame = time.Time{}
}

func (d *frameProfiler) StartGetCurrentTexture(now time.Time) {
	d.timeStartGetCurrentTexture = now
}

func (d *frameProfiler) StartUpdate(now time.Time) {
	d.timeStartUpdate = now
}

func (d *frameProfiler) StartPrepare(now time.Time) {
	d.timeStartPrepare = now
}

func (d *frameProfiler) StartDraw(now time.Time) {
	d.timeStartDraw = now
}

func (d *frameProfiler) EndFrame(now time.Time) {
	d.timeEndFrame = now
}

// average returns the mean duration of each phase over the recorded frames.
func (d *frameProfiler) average() framePhases {
	var avg framePhases
	var count time.Duration

	for _, frame := range d.frames {
		if frame.Total <= 0 {
			continue
		}

		count += 1
		avg.Total += frame.Total
		avg.GetCurrentTexture += frame.GetCurrentTexture
		avg.Update += frame.Update
		avg.Prepare += frame.Prepare
		avg.Draw += frame.Draw
	}

	if count == 0 {
		return framePhases{}
	}

	avg.Total /= count
	avg.GetCurrentTexture /= count
	avg.Update /= count
	avg.Prepare /= count
	avg.Draw /= count

	return avg
}

func (d *frameProfiler) Log() {
	runtime.ReadMemStats(&d.mem)

	lastCycle := (d.mem.NumGC + 255) % 256
	lastCycleDur := time.Duration(d.mem.PauseNs[lastCycle])

	avg := d.average()

	slog.Debug("Frame stats",
		slog.Int("frames", d.frameCount),
		slog.Duration("total", avg.Total),
		slog.Duration("getCurrentTexture", avg.GetCurrentTexture),
		slog.Duration("update", avg.Update),
		slog.Duration("prepare", avg.Prepare),
		slog.Duration("draw", avg.Draw),
		slog.Group("mem",
			slog.Uint64("heapObjects", d.mem.HeapObjects),
			slog.Uint64("heapInUse", d.mem.HeapInuse),
		),
		slog.Group("gc",
			slog.Uint64("cycles", uint64(d.mem.NumGC)),
			slog.Float64("fraction", d.mem.GCCPUFraction),
			slog.Duration("lastPause", lastCycleDur),
		),
	)
}
