package meshpass

import (
	"testing"

	"github.com/oliverbestmann/vecmesh/mesh"
	"github.com/oliverbestmann/vecmesh/orion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildInsertsResources(t *testing.T) {
	world := orion.NewWorld()
	require.NoError(t, Plugin{}.Build(world))

	store, ok := orion.Fetch[*mesh.Store](world)
	require.True(t, ok)
	assert.Equal(t, 0, store.Len())

	active, ok := orion.Fetch[*mesh.ActiveMesh](world)
	require.True(t, ok)
	assert.False(t, active.IsSet())
}

func TestBuildKeepsExistingResources(t *testing.T) {
	world := orion.NewWorld()

	store := mesh.NewStore()
	orion.Insert(world, store)

	require.NoError(t, Plugin{}.Build(world))
	assert.Same(t, store, orion.MustFetch[*mesh.Store](world))
}

func TestRenderOrder(t *testing.T) {
	assert.Equal(t, orion.OrderTransparent, Plugin{}.renderOrder())

	background := orion.OrderBackground
	assert.Equal(t, orion.OrderBackground, Plugin{Order: &background}.renderOrder())

	overlay := orion.OrderOverlay
	assert.Equal(t, orion.OrderOverlay, Plugin{Order: &overlay}.renderOrder())
}

func TestPluginInterface(t *testing.T) {
	var _ orion.Plugin = Plugin{}
}
