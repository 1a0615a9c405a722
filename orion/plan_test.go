package orion

import (
	"testing"

	"github.com/oliverbestmann/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
)

type namedGroup struct {
	name     string
	released *[]string
}

func (g namedGroup) Prepare(*Frame) error {
	return nil
}

func (g namedGroup) Draw(*wgpu.RenderPassEncoder) {
}

func (g namedGroup) Release() {
	*g.released = append(*g.released, g.name)
}

func names(groups []RenderGroup) []string {
	var result []string
	for _, group := range groups {
		result = append(result, group.(namedGroup).name)
	}

	return result
}

func TestRenderPlanOrder(t *testing.T) {
	var released []string
	group := func(name string) namedGroup {
		return namedGroup{name: name, released: &released}
	}

	plan := NewRenderPlan(wgpu.TextureFormatBGRA8Unorm, 1)
	plan.ExtendTarget(TargetMain, OrderOverlay, group("overlay"))
	plan.ExtendTarget(TargetMain, OrderTransparent, group("meshes"))
	plan.ExtendTarget(TargetMain, OrderBackground, group("background"))
	plan.ExtendTarget(TargetMain, OrderTransparent, group("meshes2"))
	plan.ExtendTarget("other", OrderOpaque, group("other"))

	assert.Equal(t,
		[]string{"background", "meshes", "meshes2", "overlay"},
		names(plan.Groups(TargetMain)),
	)

	assert.Equal(t, []string{"other"}, names(plan.Groups("other")))
	assert.Empty(t, plan.Groups("missing"))

	plan.Release()
	assert.Len(t, released, 5)
	assert.Empty(t, plan.Groups(TargetMain))
}
