package entity

import (
	"fmt"

	"github.com/milk9111/slope/common"
	"github.com/milk9111/slope/ecs"
	"github.com/milk9111/slope/ecs/component"
	"github.com/milk9111/slope/prefabs"
)

func NewPlayer(w *ecs.World) (ecs.Entity, error) {
	spec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return 0, fmt.Errorf("player: load spec: %w", err)
	}

	player := ecs.CreateEntity(w)
	if err := ecs.Add(w, player, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		return 0, fmt.Errorf("player: add player tag: %w", err)
	}

	if err := ecs.Add(w, player, component.TransformComponent.Kind(), &component.Transform{
		Position: common.Vec3{
			X: spec.Transform.Position.X,
			Y: spec.Transform.Position.Y,
			Z: spec.Transform.Position.Z,
		},
	}); err != nil {
		return 0, fmt.Errorf("player: add transform: %w", err)
	}

	if err := ecs.Add(w, player, component.PlayerComponent.Kind(), &component.Player{
		MoveDelta: spec.MoveDelta,
		Radius:    spec.Radius,
	}); err != nil {
		return 0, fmt.Errorf("player: add player component: %w", err)
	}

	if err := ecs.Add(w, player, component.VelocityComponent.Kind(), &component.Velocity{}); err != nil {
		return 0, fmt.Errorf("player: add velocity: %w", err)
	}

	if err := ecs.Add(w, player, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return 0, fmt.Errorf("player: add input: %w", err)
	}

	if err := ecs.Add(w, player, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Radius:     spec.Radius,
		Mass:       spec.Mass,
		Friction:   spec.Friction,
		Elasticity: spec.Elasticity,
	}); err != nil {
		return 0, fmt.Errorf("player: add physics body: %w", err)
	}

	return player, nil
}
