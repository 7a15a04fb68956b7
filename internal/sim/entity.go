package sim

import (
	"reflect"
	"strings"

	"github.com/vovakirdan/solo-mission/internal/core"
)

// Category is a bitmask classifying entities for contact resolution.
// Contact pairs are ordered by this value, so the declaration order matters.
type Category uint32

const (
	CategoryPlayer Category = 1 << iota
	CategoryBullet
	CategoryEnemy
	CategoryBonus
	CategoryBackground
	CategoryDecoration
	CategoryEffect
)

// CategoryNone matches nothing; CategoryAll matches every entity.
const (
	CategoryNone Category = 0
	CategoryAll  Category = ^Category(0)
)

// String returns the category names joined with '|'.
func (c Category) String() string {
	if c == CategoryNone {
		return "None"
	}
	names := []struct {
		c    Category
		name string
	}{
		{CategoryPlayer, "Player"},
		{CategoryBullet, "Bullet"},
		{CategoryEnemy, "Enemy"},
		{CategoryBonus, "Bonus"},
		{CategoryBackground, "Background"},
		{CategoryDecoration, "Decoration"},
		{CategoryEffect, "Effect"},
	}
	var parts []string
	for _, n := range names {
		if c&n.c != 0 {
			parts = append(parts, n.name)
		}
	}
	if len(parts) == 0 {
		return "Unknown"
	}
	return strings.Join(parts, "|")
}

// EntityID identifies an entity for the lifetime of a World.
type EntityID uint64

// Entity is a single record for everything on screen. Behavior comes from
// its category and from the systems that hold state keyed by its ID.
type Entity struct {
	ID       EntityID
	Category Category
	Visual   string
	Pos      core.Vec // Center position in world units
	Size     core.Vec
	Scale    float64
	Alpha    float64
	Handle   Handle

	removed bool
}

// Box returns the entity's collision box.
func (e *Entity) Box() core.Box {
	return core.NewBox(e.Pos, e.Size)
}

// Removed reports whether the entity has been destroyed.
// A removed entity stays in storage until the next World.Flush.
func (e *Entity) Removed() bool {
	return e.removed
}

// World owns every entity. Removal is two-phase: Remove marks the entity dead
// immediately, Flush drops it from storage and tells the host, so systems can
// destroy entities while iterating.
type World struct {
	host     Host
	nextID   EntityID
	entities map[EntityID]*Entity
	handles  map[Handle]EntityID
	order    []EntityID
	dirty    bool
}

// NewWorld creates an empty world reporting to host.
func NewWorld(host Host) *World {
	if host == nil {
		host = NopHost{}
	}
	return &World{
		host:     host,
		entities: make(map[EntityID]*Entity),
		handles:  make(map[Handle]EntityID),
	}
}

// Spawn creates an entity at pos and registers it with the host.
func (w *World) Spawn(cat Category, visual string, pos, size core.Vec) *Entity {
	w.nextID++
	e := &Entity{
		ID:       w.nextID,
		Category: cat,
		Visual:   visual,
		Pos:      pos,
		Size:     size,
		Scale:    1,
		Alpha:    1,
	}
	e.Handle = w.host.CreateEntity(visual, size, cat)
	if indexable(e.Handle) {
		w.handles[e.Handle] = e.ID
	}
	w.host.SetPosition(e.Handle, pos)
	w.entities[e.ID] = e
	w.order = append(w.order, e.ID)
	return e
}

// Get returns a live entity by ID.
func (w *World) Get(id EntityID) (*Entity, bool) {
	e, ok := w.entities[id]
	if !ok || e.removed {
		return nil, false
	}
	return e, true
}

// Lookup returns the live entity the host knows by handle.
func (w *World) Lookup(h Handle) (*Entity, bool) {
	if !indexable(h) {
		return nil, false
	}
	id, ok := w.handles[h]
	if !ok {
		return nil, false
	}
	return w.Get(id)
}

// indexable reports whether h can key the handle index.
// Nil and non-comparable handles are never looked up.
func indexable(h Handle) bool {
	return h != nil && reflect.TypeOf(h).Comparable()
}

// Move sets the entity position.
func (w *World) Move(e *Entity, pos core.Vec) {
	e.Pos = pos
	w.host.SetPosition(e.Handle, pos)
}

// SetAppearance sets scale and alpha.
func (w *World) SetAppearance(e *Entity, scale, alpha float64) {
	e.Scale = scale
	e.Alpha = alpha
	w.host.SetAppearance(e.Handle, scale, alpha)
}

// Remove marks the entity as destroyed. Removing twice is a no-op.
func (w *World) Remove(e *Entity) {
	if e == nil || e.removed {
		return
	}
	e.removed = true
	w.dirty = true
}

// Flush drops removed entities from storage and notifies the host.
func (w *World) Flush() {
	if !w.dirty {
		return
	}
	kept := w.order[:0]
	for _, id := range w.order {
		e := w.entities[id]
		if e.removed {
			delete(w.entities, id)
			if indexable(e.Handle) && w.handles[e.Handle] == id {
				delete(w.handles, e.Handle)
			}
			w.host.RemoveEntity(e.Handle)
			continue
		}
		kept = append(kept, id)
	}
	w.order = kept
	w.dirty = false
}

// Each calls fn for every live entity matching mask, in creation order.
// Entities spawned during the walk are not visited.
func (w *World) Each(mask Category, fn func(*Entity)) {
	n := len(w.order)
	for i := 0; i < n; i++ {
		e := w.entities[w.order[i]]
		if e == nil || e.removed || e.Category&mask == 0 {
			continue
		}
		fn(e)
	}
}

// Live returns a snapshot of live entities matching mask, in creation order.
func (w *World) Live(mask Category) []*Entity {
	var out []*Entity
	w.Each(mask, func(e *Entity) {
		out = append(out, e)
	})
	return out
}

// Count returns the number of live entities matching mask.
func (w *World) Count(mask Category) int {
	n := 0
	w.Each(mask, func(*Entity) { n++ })
	return n
}

// Len returns the number of stored entities, including removed ones not yet flushed.
func (w *World) Len() int {
	return len(w.order)
}
