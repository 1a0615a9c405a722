package orion

import (
	"fmt"

	"github.com/oliverbestmann/vecmesh/pulse"
)

// Plugin extends the application with resources and render groups.
type Plugin interface {
	// Build registers the resources of the plugin in the world.
	Build(world *World) error

	// Plan adds the render groups of the plugin to the plan.
	Plan(plan *RenderPlan, ctx *pulse.Context) error
}

func buildPlugins(world *World, plugins []Plugin) error {
	for idx, plugin := range plugins {
		if err := plugin.Build(world); err != nil {
			return fmt.Errorf("build plugin %d (%T): %w", idx, plugin, err)
		}
	}

	return nil
}

func planPlugins(plan *RenderPlan, ctx *pulse.Context, plugins []Plugin) error {
	for idx, plugin := range plugins {
		if err := plugin.Plan(plan, ctx); err != nil {
			return fmt.Errorf("plan plugin %d (%T): %w", idx, plugin, err)
		}
	}

	return nil
}
