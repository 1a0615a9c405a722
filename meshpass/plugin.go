// Package meshpass plugs the mesh render group into an orion application.
package meshpass

import (
	"fmt"

	"github.com/oliverbestmann/vecmesh/mesh"
	"github.com/oliverbestmann/vecmesh/orion"
	"github.com/oliverbestmann/vecmesh/pulse"
	"github.com/oliverbestmann/vecmesh/pulse/commands"
	"github.com/oliverbestmann/webgpu/wgpu"
)

// Plugin registers the mesh resources and draws all meshes of the
// mesh.Store onto the main target.
type Plugin struct {
	// uses orion.OrderTransparent if nil
	Order *orion.RenderOrder

	// uses orion.BlendStateDefault if nil
	BlendState *wgpu.BlendState
}

// Build inserts an empty *mesh.Store and *mesh.ActiveMesh, unless
// the world already holds them.
func (p Plugin) Build(world *orion.World) error {
	orion.InsertDefault(world, mesh.NewStore)
	orion.InsertDefault(world, func() *mesh.ActiveMesh { return &mesh.ActiveMesh{} })
	return nil
}

func (p Plugin) Plan(plan *orion.RenderPlan, ctx *pulse.Context) error {
	cmd, err := commands.NewMeshCommand(ctx, commands.MeshCommandOptions{
		TargetFormat:      plan.TargetFormat,
		TargetSampleCount: plan.TargetSampleCount,
		BlendState:        p.BlendState,
	})

	if err != nil {
		return fmt.Errorf("create mesh command: %w", err)
	}

	plan.ExtendTarget(orion.TargetMain, p.renderOrder(), cmd)

	return nil
}

func (p Plugin) renderOrder() orion.RenderOrder {
	if p.Order == nil {
		return orion.OrderTransparent
	}

	return *p.Order
}
