package system

import (
	"log"

	"github.com/milk9111/slope/assets"
	"github.com/milk9111/slope/ecs"
	"github.com/milk9111/slope/ecs/component"
)

// SkyboxCorrectorSystem waits for the skybox image load future, then
// reinterprets the 2D strip as stacked cube faces and attaches them to
// every skybox entity. Its body runs exactly once; afterwards the
// system is inert.
type SkyboxCorrectorSystem struct {
	load *assets.ImageLoad
	done bool
}

func NewSkyboxCorrectorSystem(load *assets.ImageLoad) *SkyboxCorrectorSystem {
	return &SkyboxCorrectorSystem{load: load}
}

func (sc *SkyboxCorrectorSystem) Update(w *ecs.World) {
	if sc == nil || w == nil || sc.done || sc.load == nil {
		return
	}
	if !sc.load.Ready() {
		return
	}
	sc.done = true

	img, err := sc.load.Result()
	if err != nil {
		sc.fail(w, err)
		return
	}
	faces, err := assets.SliceStrip(img)
	if err != nil {
		sc.fail(w, err)
		return
	}

	ecs.ForEach(w, component.SkyboxComponent.Kind(), func(e ecs.Entity, sky *component.Skybox) {
		if sky.Status != component.SkyboxPending {
			return
		}
		sky.Faces = faces
		sky.Layers = len(faces)
		sky.Status = component.SkyboxLoaded
	})
}

func (sc *SkyboxCorrectorSystem) fail(w *ecs.World, err error) {
	log.Printf("skybox corrector: %v", err)
	ecs.ForEach(w, component.SkyboxComponent.Kind(), func(e ecs.Entity, sky *component.Skybox) {
		if sky.Status == component.SkyboxPending {
			sky.Status = component.SkyboxFailed
		}
	})
}
