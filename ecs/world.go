package ecs

import (
	"errors"
	"fmt"

	"github.com/milk9111/slope/ecs/component"
)

var (
	// ErrNoSingleton is returned by Single when no entity has the kind.
	ErrNoSingleton = errors.New("ecs: no entity with component")
	// ErrManySingletons is returned by Single when more than one entity
	// has a kind the caller declared exactly-one.
	ErrManySingletons = errors.New("ecs: multiple entities with component")
)

// World owns entities, component tables, and the event queue. Systems
// mutate it synchronously once per tick; it is not safe for concurrent
// use.
type World struct {
	entities entityStore
	tables   map[component.ComponentID]*SparseSet
	events   EventQueue
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{tables: make(map[component.ComponentID]*SparseSet)}
}

func (w *World) table(id component.ComponentID) *SparseSet {
	t, ok := w.tables[id]
	if !ok {
		t = &SparseSet{}
		w.tables[id] = t
	}
	return t
}

// CreateEntity allocates a new entity.
func CreateEntity(w *World) Entity {
	return w.entities.create()
}

// DestroyEntity removes an entity and all its components. It reports
// whether the entity was alive.
func DestroyEntity(w *World, e Entity) bool {
	if !w.entities.destroy(e) {
		return false
	}
	for _, t := range w.tables {
		t.Remove(e)
	}
	return true
}

// IsAlive reports whether an entity handle is valid.
func IsAlive(w *World, e Entity) bool {
	return w.entities.isAlive(e)
}

// Entities returns all live entities.
func Entities(w *World) []Entity {
	return w.entities.all()
}

// First returns any one entity holding the kind.
func (w *World) First(k component.Kind) (Entity, bool) {
	t, ok := w.tables[k.ID()]
	if !ok || t.Len() == 0 {
		return 0, false
	}
	return t.Entities()[0], true
}

// Single returns the one entity holding the kind. Zero or many matches
// are configuration errors, not panics.
func (w *World) Single(k component.Kind) (Entity, error) {
	t, ok := w.tables[k.ID()]
	if !ok || t.Len() == 0 {
		return 0, fmt.Errorf("kind %d: %w", k.ID(), ErrNoSingleton)
	}
	if t.Len() > 1 {
		return 0, fmt.Errorf("kind %d has %d entities: %w", k.ID(), t.Len(), ErrManySingletons)
	}
	return t.Entities()[0], nil
}

// Query returns entities holding every given kind.
func (w *World) Query(kinds ...component.Kind) []Entity {
	if len(kinds) == 0 {
		return nil
	}
	smallest := w.table(kinds[0].ID())
	for _, k := range kinds[1:] {
		if t := w.table(k.ID()); t.Len() < smallest.Len() {
			smallest = t
		}
	}
	out := make([]Entity, 0, smallest.Len())
outer:
	for _, e := range smallest.Entities() {
		for _, k := range kinds {
			if !w.table(k.ID()).Has(e) {
				continue outer
			}
		}
		out = append(out, e)
	}
	return out
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	return &w.events
}
