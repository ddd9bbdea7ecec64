package system

import (
	"log"

	"github.com/aquilax/go-perlin"
	"github.com/milk9111/slope/common"
	"github.com/milk9111/slope/ecs"
	"github.com/milk9111/slope/ecs/component"
	"github.com/milk9111/slope/ecs/entity"
	"github.com/milk9111/slope/prefabs"
)

// DecorSystem scatters non-colliding prop boxes beside every spawned
// track segment. Placement samples a perlin field keyed by segment
// index, so a given run of track always decorates the same way.
type DecorSystem struct {
	spec  *prefabs.DecorSpec
	noise *perlin.Perlin
}

func NewDecorSystem(spec *prefabs.DecorSpec) *DecorSystem {
	seed := int64(1)
	if spec != nil && spec.Seed != 0 {
		seed = spec.Seed
	}
	return &DecorSystem{
		spec:  spec,
		noise: perlin.NewPerlin(2, 2, 3, seed),
	}
}

func (ds *DecorSystem) Update(w *ecs.World) {
	if ds == nil || w == nil || ds.spec == nil {
		return
	}

	for _, evt := range w.Events().Pending() {
		if evt.Type != EventSegmentSpawned {
			continue
		}
		spawned, ok := evt.Data.(SegmentSpawned)
		if !ok {
			continue
		}
		ds.decorate(w, spawned)
	}
}

func (ds *DecorSystem) decorate(w *ecs.World, spawned SegmentSpawned) {
	seg, ok := ecs.Get(w, spawned.Entity, component.FloorSegmentComponent.Kind())
	if !ok {
		return
	}
	for i := 0; i < ds.spec.PerSeg; i++ {
		n := ds.noise.Noise2D(float64(spawned.Index), float64(i)*0.731)
		side := 1.0
		if i%2 == 1 {
			side = -1.0
		}
		pos := common.Vec3{
			X: spawned.Position.X + side*(seg.Size.X/2+1+ds.spec.Spread*(n+1)/2),
			Y: spawned.Position.Y,
			Z: spawned.Position.Z - float64(i)*seg.Size.Z/float64(ds.spec.PerSeg+1),
		}
		height := 0.5 + ds.spec.MaxHeight*(n+1)/2
		if _, err := entity.NewDecorAt(w, pos, height); err != nil {
			log.Printf("decor: spawn: %v", err)
			return
		}
	}
}
