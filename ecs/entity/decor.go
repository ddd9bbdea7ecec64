package entity

import (
	"fmt"

	"github.com/milk9111/slope/common"
	"github.com/milk9111/slope/ecs"
	"github.com/milk9111/slope/ecs/component"
)

// NewDecorAt creates a prop box whose base rests at pos.
func NewDecorAt(w *ecs.World, pos common.Vec3, height float64) (ecs.Entity, error) {
	decor := ecs.CreateEntity(w)
	size := common.Vec3{X: 1, Y: height, Z: 1}

	if err := ecs.Add(w, decor, component.TransformComponent.Kind(), &component.Transform{
		Position: common.Vec3{X: pos.X, Y: pos.Y + height/2, Z: pos.Z},
	}); err != nil {
		return 0, fmt.Errorf("decor: add transform: %w", err)
	}

	if err := ecs.Add(w, decor, component.DecorComponent.Kind(), &component.Decor{Size: size}); err != nil {
		return 0, fmt.Errorf("decor: add decor: %w", err)
	}

	return decor, nil
}
