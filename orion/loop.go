package orion

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/oliverbestmann/vecmesh/glimpse"
	"github.com/oliverbestmann/vecmesh/pulse"
	"github.com/oliverbestmann/webgpu/wgpu"
)

type loopState struct {
	Window glimpse.Window
	View   *pulse.View
	Plan   *RenderPlan
	World  *World
	State  State

	ClearColor pulse.Color

	SurfaceWidth  uint32
	SurfaceHeight uint32

	Times    FrameTimes
	Profiler frameProfiler
}

func (l *loopState) loopOnce(inputState glimpse.UpdateInputState) error {
	l.Profiler.StartFrame(time.Now())

	// get surface size for next frame
	surfaceWidth, surfaceHeight := l.Window.GetSize()

	if surfaceWidth == 0 || surfaceHeight == 0 {
		// minimized, nothing to render to. Keep processing events.
		_ = inputState()
		time.Sleep(10 * time.Millisecond)
		return nil
	}

	// reconfigure surface if needed
	if l.SurfaceWidth != surfaceWidth || l.SurfaceHeight != surfaceHeight {
		slog.Debug("Resize surface",
			slog.Int("width", int(surfaceWidth)),
			slog.Int("height", int(surfaceHeight)),
		)

		l.View.Configure(surfaceWidth, surfaceHeight)

		l.SurfaceWidth = surfaceWidth
		l.SurfaceHeight = surfaceHeight
	}

	l.Profiler.StartGetCurrentTexture(time.Now())

	// get the surface texture (the actual screen)
	surface, err := l.View.Surface.GetCurrentTexture()
	if err != nil {
		return fmt.Errorf("get current texture: %w", err)
	}

	surfaceGuard := pulse.NewReleaseGuard(surface)
	defer surfaceGuard.Release()

	l.Profiler.StartUpdate(time.Now())

	// get input after waiting for a texture to keep input lag low
	input := inputState()

	if l.Times.Tick(time.Now()) {
		slog.Debug("Frame times",
			slog.Float64("fps", l.Times.FPS()),
			slog.Duration("max", l.Times.MaxDuration),
		)
	}

	if l.Times.FrameCount%600 == 0 {
		l.Profiler.Log()
	}

	if err := l.update(input); err != nil {
		return err
	}

	surfaceView := surface.CreateView(nil)
	defer surfaceView.Release()

	frame := &Frame{
		World:   l.World,
		Context: l.View.Context,
		Target:  l.View.SurfaceTarget(surface, surfaceView),
		Screen: ScreenDimensions{
			Width:   surfaceWidth,
			Height:  surfaceHeight,
			Density: l.Window.GetContentScale(),
		},
		Times: l.Times,
	}

	l.Profiler.StartPrepare(time.Now())

	groups := l.Plan.Groups(TargetMain)
	for _, group := range groups {
		if err := group.Prepare(frame); err != nil {
			return fmt.Errorf("prepare %T: %w", group, err)
		}
	}

	l.Profiler.StartDraw(time.Now())

	l.draw(frame.Target, groups)

	// present the rendered image
	l.View.Surface.Present()

	// we do not need to release the screen if present was successful
	surfaceGuard.Keep()

	l.Profiler.EndFrame(time.Now())

	return nil
}

// update runs the application state for this frame.
func (l *loopState) update(input glimpse.InputState) error {
	if input.IsKeyJustPressed(glimpse.KeyEscape) {
		l.Window.Close()
	}

	if l.State.HandleEvent(l.World, input) == TransQuit {
		slog.Info("State requested to quit")
		l.Window.Close()
	}

	if err := l.State.Update(l.World, l.Times); err != nil {
		return fmt.Errorf("update state: %w", err)
	}

	return nil
}

// draw records all groups into one render pass that clears the target first.
func (l *loopState) draw(target pulse.RenderTarget, groups []RenderGroup) {
	ctx := l.View.Context

	encoder := ctx.CreateCommandEncoder(&wgpu.CommandEncoderDescriptor{Label: "Frame"})
	defer encoder.Release()

	pass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		Label:            "RenderPassMain",
		ColorAttachments: []wgpu.RenderPassColorAttachment{target.ColorAttachment(&l.ClearColor)},
	})

	for _, group := range groups {
		group.Draw(pass)
	}

	pass.End()

	// must release pass before finishing the encoder
	pass.Release()

	cmdBuffer := encoder.Finish(nil)
	defer cmdBuffer.Release()

	ctx.Submit(cmdBuffer)
}
