package ecs

import "github.com/milk9111/slope/ecs/component"

// Add attaches a component value to an entity, replacing any existing
// value of the same kind.
func Add[T any](w *World, e Entity, k component.ComponentKind[T], value *T) error {
	if !k.Valid() {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	if !w.entities.isAlive(e) {
		return component.ErrEntityNotAlive
	}
	w.table(k.ID()).Set(e, value)
	return nil
}

// Get returns the entity's component of the given kind, if present.
func Get[T any](w *World, e Entity, k component.ComponentKind[T]) (*T, bool) {
	v := w.table(k.ID()).Get(e)
	if v == nil {
		return nil, false
	}
	cast, ok := v.(*T)
	return cast, ok
}

// Has reports whether the entity holds the kind.
func Has[T any](w *World, e Entity, k component.ComponentKind[T]) bool {
	return w.table(k.ID()).Has(e)
}

// Remove detaches the component. It reports whether one was present.
func Remove[T any](w *World, e Entity, k component.ComponentKind[T]) bool {
	return w.table(k.ID()).Remove(e)
}

// ForEach visits every entity holding the kind.
func ForEach[T any](w *World, k component.ComponentKind[T], fn func(Entity, *T)) {
	t := w.table(k.ID())
	for i, e := range t.Entities() {
		if cast, ok := t.denseValues[i].(*T); ok {
			fn(e, cast)
		}
	}
}
