package entity

import (
	"fmt"

	"github.com/milk9111/slope/common"
	"github.com/milk9111/slope/ecs"
	"github.com/milk9111/slope/ecs/component"
	"github.com/milk9111/slope/prefabs"
)

func NewCamera(w *ecs.World) (ecs.Entity, error) {
	spec, err := prefabs.LoadCameraSpec()
	if err != nil {
		return 0, fmt.Errorf("camera: load spec: %w", err)
	}

	camera := ecs.CreateEntity(w)
	if err := ecs.Add(w, camera, component.CameraTagComponent.Kind(), &component.CameraTag{}); err != nil {
		return 0, fmt.Errorf("camera: add camera tag: %w", err)
	}

	if err := ecs.Add(w, camera, component.TransformComponent.Kind(), &component.Transform{
		Position: common.Vec3{
			X: spec.Transform.Position.X,
			Y: spec.Transform.Position.Y,
			Z: spec.Transform.Position.Z,
		},
		Yaw:   common.Deg2Rad(spec.Transform.YawDeg),
		Pitch: common.Deg2Rad(spec.Transform.PitchDeg),
	}); err != nil {
		return 0, fmt.Errorf("camera: add transform: %w", err)
	}

	if err := ecs.Add(w, camera, component.CameraComponent.Kind(), &component.Camera{
		TargetName: spec.Target,
		Offset:     common.Vec3{X: spec.Offset.X, Y: spec.Offset.Y, Z: spec.Offset.Z},
		FovDeg:     spec.FovDeg,
		Near:       spec.Near,
	}); err != nil {
		return 0, fmt.Errorf("camera: add camera component: %w", err)
	}

	return camera, nil
}
