package mesh

import "fmt"

// Entity identifies a Mesh within a Store. An Entity becomes invalid once its
// mesh is despawned, even if the slot is reused for a new mesh.
type Entity struct {
	ID      uint32
	Version uint32
}

func (e Entity) String() string {
	return fmt.Sprintf("Entity(%d v%d)", e.ID, e.Version)
}

// Record is a mesh together with the entity owning it.
type Record struct {
	Entity Entity
	Mesh   *Mesh
}

type slot struct {
	version uint32
	alive   bool

	// position of this slot within Store.order
	order int

	mesh Mesh
}

// Store owns all meshes that are rendered. Iteration follows spawn order.
// A Store is not safe for concurrent use, it must only be modified
// between two frames.
type Store struct {
	slots []slot
	free  []uint32

	// ids of live slots in spawn order
	order []uint32
}

func NewStore() *Store {
	return &Store{}
}

// Spawn adds a new mesh to the store and returns its entity.
func (s *Store) Spawn(m Mesh) Entity {
	var id uint32

	if n := len(s.free); n > 0 {
		id = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		id = uint32(len(s.slots))
		s.slots = append(s.slots, slot{})
	}

	sl := &s.slots[id]
	sl.version += 1
	sl.alive = true
	sl.mesh = m
	sl.order = len(s.order)

	s.order = append(s.order, id)

	return Entity{ID: id, Version: sl.version}
}

// Despawn removes the mesh of the given entity. Returns false if
// the entity was not valid.
func (s *Store) Despawn(e Entity) bool {
	sl := s.slot(e)
	if sl == nil {
		return false
	}

	// remove from order, keeping the order of the remaining entities
	pos := sl.order
	s.order = append(s.order[:pos], s.order[pos+1:]...)
	for idx := pos; idx < len(s.order); idx++ {
		s.slots[s.order[idx]].order = idx
	}

	sl.alive = false
	sl.mesh = Mesh{}
	s.free = append(s.free, e.ID)

	return true
}

// Replace swaps the mesh of an entity. Meshes are never modified in place.
func (s *Store) Replace(e Entity, m Mesh) bool {
	sl := s.slot(e)
	if sl == nil {
		return false
	}

	sl.mesh = m
	return true
}

func (s *Store) Get(e Entity) (*Mesh, bool) {
	sl := s.slot(e)
	if sl == nil {
		return nil, false
	}

	return &sl.mesh, true
}

func (s *Store) Valid(e Entity) bool {
	return s.slot(e) != nil
}

func (s *Store) Len() int {
	return len(s.order)
}

// Records appends all live meshes in spawn order to dst and returns
// the extended slice. The meshes must not be modified, and the records
// are only valid until the next call to Spawn, Despawn or Replace.
func (s *Store) Records(dst []Record) []Record {
	for _, id := range s.order {
		sl := &s.slots[id]
		dst = append(dst, Record{
			Entity: Entity{ID: id, Version: sl.version},
			Mesh:   &sl.mesh,
		})
	}

	return dst
}

func (s *Store) slot(e Entity) *slot {
	if int(e.ID) >= len(s.slots) {
		return nil
	}

	sl := &s.slots[e.ID]
	if !sl.alive || sl.version != e.Version {
		return nil
	}

	return sl
}
