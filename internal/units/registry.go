package units

import (
	"fmt"

	"github.com/talgya/hex-tactics/internal/world"
)

// Registry is the ordered, mutable collection of living units.
// Order is insertion order and survives removals; lookups are by ID.
type Registry struct {
	list  []*Unit
	index map[ID]*Unit
}

// NewRegistry creates a registry holding the given units in order.
// Units with a zero ID are issued a fresh one.
func NewRegistry(us ...*Unit) (*Registry, error) {
	r := &Registry{index: make(map[ID]*Unit, len(us))}
	for _, u := range us {
		if err := r.Add(u); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Add appends a unit. Duplicate IDs are rejected.
func (r *Registry) Add(u *Unit) error {
	if u.ID == NoID {
		u.ID = NewID()
	}
	if _, dup := r.index[u.ID]; dup {
		return fmt.Errorf("duplicate unit id %s", u.ID)
	}
	r.list = append(r.list, u)
	r.index[u.ID] = u
	return nil
}

// Get returns the unit with the given ID, or nil if it does not exist.
func (r *Registry) Get(id ID) *Unit {
	return r.index[id]
}

// Remove deletes a unit by ID. Returns false if no such unit exists.
func (r *Registry) Remove(id ID) bool {
	if _, ok := r.index[id]; !ok {
		return false
	}
	delete(r.index, id)
	// Fresh backing array: slices handed out by All stay valid for the caller.
	kept := make([]*Unit, 0, len(r.list)-1)
	for _, u := range r.list {
		if u.ID != id {
			kept = append(kept, u)
		}
	}
	r.list = kept
	return true
}

// All returns the units in registry order. The slice is shared; callers
// must not append to it.
func (r *Registry) All() []*Unit {
	return r.list
}

// Len returns the number of units.
func (r *Registry) Len() int {
	return len(r.list)
}

// At returns the unit standing on c, or nil.
// Linear in the unit count; fine for skirmish-sized armies.
func (r *Registry) At(c world.HexCoord) *Unit {
	for _, u := range r.list {
		if u.Position == c {
			return u
		}
	}
	return nil
}

// OwnedBy returns the units belonging to a player, in registry order.
func (r *Registry) OwnedBy(player int) []*Unit {
	var out []*Unit
	for _, u := range r.list {
		if u.Player == player {
			out = append(out, u)
		}
	}
	return out
}

// Hostile returns the units not belonging to a player, in registry order.
func (r *Registry) Hostile(player int) []*Unit {
	var out []*Unit
	for _, u := range r.list {
		if u.Player != player {
			out = append(out, u)
		}
	}
	return out
}

// Clone deep-copies every unit. IDs are preserved so commands generated
// against the original resolve against the clone.
func (r *Registry) Clone() *Registry {
	cp := &Registry{
		list:  make([]*Unit, len(r.list)),
		index: make(map[ID]*Unit, len(r.list)),
	}
	for i, u := range r.list {
		c := *u
		cp.list[i] = &c
		cp.index[c.ID] = &c
	}
	return cp
}
