package entity

import (
	"fmt"

	"github.com/milk9111/slope/ecs"
	"github.com/milk9111/slope/ecs/component"
	"github.com/milk9111/slope/prefabs"
)

// NewSkybox creates the skybox entity in the Pending state. The
// corrector system flips it to Loaded once the strip image arrives.
func NewSkybox(w *ecs.World) (ecs.Entity, *prefabs.SkyboxSpec, error) {
	spec, err := prefabs.LoadSkyboxSpec()
	if err != nil {
		return 0, nil, fmt.Errorf("skybox: load spec: %w", err)
	}

	sky := ecs.CreateEntity(w)
	if err := ecs.Add(w, sky, component.SkyboxComponent.Kind(), &component.Skybox{
		Source: spec.Image,
		Status: component.SkyboxPending,
	}); err != nil {
		return 0, nil, fmt.Errorf("skybox: add skybox: %w", err)
	}

	return sky, spec, nil
}
