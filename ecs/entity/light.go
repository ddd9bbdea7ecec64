package entity

import (
	"fmt"

	"github.com/milk9111/slope/common"
	"github.com/milk9111/slope/ecs"
	"github.com/milk9111/slope/ecs/component"
	"github.com/milk9111/slope/prefabs"
)

func NewLight(w *ecs.World) (ecs.Entity, error) {
	spec, err := prefabs.LoadLightSpec()
	if err != nil {
		return 0, fmt.Errorf("light: load spec: %w", err)
	}

	light := ecs.CreateEntity(w)
	if err := ecs.Add(w, light, component.TransformComponent.Kind(), &component.Transform{
		Position: common.Vec3{
			X: spec.Transform.Position.X,
			Y: spec.Transform.Position.Y,
			Z: spec.Transform.Position.Z,
		},
	}); err != nil {
		return 0, fmt.Errorf("light: add transform: %w", err)
	}

	if err := ecs.Add(w, light, component.PointLightComponent.Kind(), &component.PointLight{
		Intensity: spec.Intensity,
		Range:     spec.Range,
	}); err != nil {
		return 0, fmt.Errorf("light: add point light: %w", err)
	}

	return light, nil
}
