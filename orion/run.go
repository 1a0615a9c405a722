package orion

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/oliverbestmann/vecmesh/glimpse"
	"github.com/oliverbestmann/vecmesh/pulse"
)

type RunOptions struct {
	// state to run. This is the only field that is required
	State State

	// uses DefaultDisplayConfig if nil
	Display *DisplayConfig

	Plugins []Plugin

	// a new world is created if nil
	World *World
}

// Run opens a window and runs the frame loop until the window is closed
// or an error occurs.
func Run(opts RunOptions) error {
	if opts.State == nil {
		return errors.New("State must not be nil")
	}

	display := DefaultDisplayConfig()
	if opts.Display != nil {
		display = *opts.Display
	}

	if err := display.validate(); err != nil {
		return fmt.Errorf("display config: %w", err)
	}

	world := opts.World
	if world == nil {
		world = NewWorld()
	}

	win, err := glimpse.NewWindow(glimpse.WindowOptions{
		Width:     display.Width,
		Height:    display.Height,
		Title:     display.Title,
		Resizable: display.Resizable,
		Profile:   display.Profile,
	})
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}

	defer win.Terminate()

	// initialize the webgpu device
	ctx, err := pulse.New(win.SurfaceDescriptor())
	if err != nil {
		return fmt.Errorf("initializing wgpu: %w", err)
	}

	defer ctx.Release()

	view := pulse.NewView(ctx, display.MSAA)
	defer view.Release()

	if err := buildPlugins(world, opts.Plugins); err != nil {
		return err
	}

	if err := opts.State.OnStart(world); err != nil {
		return fmt.Errorf("start state: %w", err)
	}

	plan := NewRenderPlan(view.Format(), view.SampleCount())
	defer plan.Release()

	if err := planPlugins(plan, ctx, opts.Plugins); err != nil {
		return err
	}

	slog.Info("Starting frame loop",
		slog.String("title", display.Title),
		slog.Bool("msaa", display.MSAA),
		slog.Int("groups", len(plan.Groups(TargetMain))),
	)

	loop := &loopState{
		Window:     win,
		View:       view,
		Plan:       plan,
		World:      world,
		State:      opts.State,
		ClearColor: display.Clear(),
	}

	return win.Run(loop.loopOnce)
}
