package entity

import (
	"fmt"

	"github.com/milk9111/slope/common"
	"github.com/milk9111/slope/ecs"
	"github.com/milk9111/slope/ecs/component"
	"github.com/milk9111/slope/prefabs"
)

// NewInitialFloor creates the flat starting plane the ball drops onto.
func NewInitialFloor(w *ecs.World, spec *prefabs.FloorSpec) (ecs.Entity, error) {
	size := common.Vec3{X: spec.PlaneSize, Y: 0.2, Z: spec.PlaneSize}
	pos := common.Vec3{X: 0, Y: spec.YOffset, Z: 0}
	return newSegment(w, spec, pos, size, 0, 0)
}

// NewFloorSegmentAt creates one tilted track segment at pos. Segments
// are immutable after creation and never destroyed.
func NewFloorSegmentAt(w *ecs.World, spec *prefabs.FloorSpec, pos common.Vec3, index int) (ecs.Entity, error) {
	size := common.Vec3{X: spec.Size.X, Y: spec.Size.Y, Z: spec.Size.Z}
	return newSegment(w, spec, pos, size, common.Deg2Rad(spec.TiltDeg), index)
}

func newSegment(w *ecs.World, spec *prefabs.FloorSpec, pos, size common.Vec3, pitch float64, index int) (ecs.Entity, error) {
	seg := ecs.CreateEntity(w)
	if err := ecs.Add(w, seg, component.TransformComponent.Kind(), &component.Transform{
		Position: pos,
		Pitch:    pitch,
	}); err != nil {
		return 0, fmt.Errorf("floor: add transform: %w", err)
	}

	if err := ecs.Add(w, seg, component.FloorSegmentComponent.Kind(), &component.FloorSegment{
		Size:  size,
		Index: index,
	}); err != nil {
		return 0, fmt.Errorf("floor: add segment: %w", err)
	}

	friction := spec.Friction
	if friction == 0 {
		friction = 0.8
	}
	if err := ecs.Add(w, seg, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Static:   true,
		Friction: friction,
	}); err != nil {
		return 0, fmt.Errorf("floor: add physics body: %w", err)
	}

	return seg, nil
}

// NewFloorGenerator creates the singleton trigger-state entity.
func NewFloorGenerator(w *ecs.World) (ecs.Entity, error) {
	gen := ecs.CreateEntity(w)
	if err := ecs.Add(w, gen, component.FloorGeneratorComponent.Kind(), &component.FloorGenerator{
		Mode: component.GenIdle,
	}); err != nil {
		return 0, fmt.Errorf("floor: add generator: %w", err)
	}
	return gen, nil
}
