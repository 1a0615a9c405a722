package orion

import (
	"slices"

	"github.com/oliverbestmann/vecmesh/pulse"
	"github.com/oliverbestmann/webgpu/wgpu"
)

// TargetName identifies a render target in a RenderPlan.
type TargetName string

// TargetMain is the window surface.
const TargetMain TargetName = "main"

// RenderOrder sorts the groups of a target. Lower values are drawn first.
type RenderOrder int

const (
	OrderBackground  RenderOrder = 0
	OrderOpaque      RenderOrder = 1000
	OrderTransparent RenderOrder = 2000
	OrderOverlay     RenderOrder = 3000
)

// RenderGroup draws a part of a frame. Prepare is called once per frame
// before the render pass begins, Draw records commands into the pass.
type RenderGroup interface {
	Prepare(frame *Frame) error
	Draw(pass *wgpu.RenderPassEncoder)
	Release()
}

// Frame is the per frame input to RenderGroup.Prepare.
type Frame struct {
	World   *World
	Context *pulse.Context

	// the target the frame is rendered to
	Target pulse.RenderTarget

	Screen ScreenDimensions
	Times  FrameTimes
}

type plannedGroup struct {
	order RenderOrder
	group RenderGroup
}

// RenderPlan collects the render groups of each target.
type RenderPlan struct {
	// format and sample count of the main target
	TargetFormat      wgpu.TextureFormat
	TargetSampleCount uint32

	targets map[TargetName][]plannedGroup
}

func NewRenderPlan(format wgpu.TextureFormat, sampleCount uint32) *RenderPlan {
	return &RenderPlan{
		TargetFormat:      format,
		TargetSampleCount: sampleCount,
		targets:           map[TargetName][]plannedGroup{},
	}
}

// ExtendTarget adds a group to the target. Groups with equal order
// keep the order in which they were added.
func (p *RenderPlan) ExtendTarget(target TargetName, order RenderOrder, group RenderGroup) {
	groups := append(p.targets[target], plannedGroup{order: order, group: group})

	slices.SortStableFunc(groups, func(a, b plannedGroup) int {
		return int(a.order) - int(b.order)
	})

	p.targets[target] = groups
}

// Groups returns the groups of the target in draw order.
func (p *RenderPlan) Groups(target TargetName) []RenderGroup {
	var groups []RenderGroup
	for _, planned := range p.targets[target] {
		groups = append(groups, planned.group)
	}

	return groups
}

// Release releases all groups of all targets.
func (p *RenderPlan) Release() {
	for _, groups := range p.targets {
		for _, planned := range groups {
			planned.group.Release()
		}
	}

	clear(p.targets)
}
