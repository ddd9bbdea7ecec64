package system

import (
	"github.com/milk9111/slope/ecs"
	"github.com/milk9111/slope/ecs/component"
)

// PlayerControllerSystem translates held movement axes into fixed
// velocity deltas. Accumulation is unconditional with no decay or
// clamping; only contact friction in the physics step bounds speed.
type PlayerControllerSystem struct{}

func NewPlayerControllerSystem() *PlayerControllerSystem {
	return &PlayerControllerSystem{}
}

func (pc *PlayerControllerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	for _, e := range w.Query(
		component.PlayerTagComponent.Kind(),
		component.InputComponent.Kind(),
		component.VelocityComponent.Kind(),
		component.PlayerComponent.Kind(),
	) {
		input, ok := ecs.Get(w, e, component.InputComponent.Kind())
		if !ok {
			continue
		}
		vel, ok := ecs.Get(w, e, component.VelocityComponent.Kind())
		if !ok {
			continue
		}
		player, ok := ecs.Get(w, e, component.PlayerComponent.Kind())
		if !ok {
			continue
		}

		vel.Linear.X += input.MoveX * player.MoveDelta
		vel.Linear.Z += input.MoveZ * player.MoveDelta
	}
}
