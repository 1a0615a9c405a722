package mesh

// ActiveMesh selects a single mesh for rendering. If no entity is selected,
// or the selected entity no longer exists, all meshes are rendered.
type ActiveMesh struct {
	Entity *Entity
}

// Select marks the given entity as the only one to render.
func (a *ActiveMesh) Select(e Entity) {
	a.Entity = &e
}

// Clear removes the selection.
func (a *ActiveMesh) Clear() {
	a.Entity = nil
}

func (a ActiveMesh) IsSet() bool {
	return a.Entity != nil
}
