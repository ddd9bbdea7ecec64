package system

import (
	"log"
	"math"

	"github.com/milk9111/slope/common"
	"github.com/milk9111/slope/ecs"
	"github.com/milk9111/slope/ecs/component"
	"github.com/milk9111/slope/ecs/entity"
	"github.com/milk9111/slope/prefabs"
)

// FloorExtenderSystem decides when to extend the track ahead of the
// player. The trigger is distance-based: a tick where
// ceil(|player.z|) mod interval == 0 is a threshold crossing. The
// Idle/Generated mode suppresses duplicate spawns while the condition
// stays true across consecutive ticks; any non-crossing tick re-arms
// the trigger.
//
// A threshold window jumped over in a single fast tick (e.g. |z| going
// 8.7 to 10.3, never landing where ceil == 10) spawns nothing and
// leaves a gap in the floor. That matches the shipped behavior and the
// tests pin it.
type FloorExtenderSystem struct {
	spec   *prefabs.FloorSpec
	script *generatorScript
}

func NewFloorExtenderSystem(spec *prefabs.FloorSpec) *FloorExtenderSystem {
	fe := &FloorExtenderSystem{spec: spec}
	if spec != nil && spec.Script != "" {
		script, err := loadGeneratorScript(spec.Script)
		if err != nil {
			log.Printf("floor extender: script %s disabled: %v", spec.Script, err)
		} else {
			fe.script = script
		}
	}
	return fe
}

// SetSpec swaps tuning in, used by prefab hot reload.
func (fe *FloorExtenderSystem) SetSpec(spec *prefabs.FloorSpec) {
	if spec != nil {
		fe.spec = spec
	}
}

func (fe *FloorExtenderSystem) Update(w *ecs.World) {
	if fe == nil || w == nil {
		return
	}

	genEntity, ok := w.First(component.FloorGeneratorComponent.Kind())
	if !ok {
		return
	}
	gen, ok := ecs.Get(w, genEntity, component.FloorGeneratorComponent.Kind())
	if !ok {
		return
	}

	player, err := w.Single(component.PlayerTagComponent.Kind())
	if err != nil {
		return
	}
	transform, ok := ecs.Get(w, player, component.TransformComponent.Kind())
	if !ok {
		return
	}

	interval := 10.0
	if fe.spec != nil && fe.spec.Interval > 0 {
		interval = fe.spec.Interval
	}

	if !atThreshold(transform.Position.Z, interval) {
		gen.Mode = component.GenIdle
		return
	}
	if gen.Mode == component.GenGenerated {
		return
	}

	fe.spawnSegment(w, gen, transform.Position)
	gen.Mode = component.GenGenerated
}

// atThreshold reports whether z sits on a spawn boundary this tick.
func atThreshold(z, interval float64) bool {
	d := math.Ceil(math.Abs(z))
	return math.Mod(d, interval) == 0
}

func (fe *FloorExtenderSystem) spawnSegment(w *ecs.World, gen *component.FloorGenerator, playerPos common.Vec3) {
	spec := fe.spec
	if spec == nil {
		s := prefabs.FloorSpec{
			Size:    prefabs.Vec3Spec{X: 10, Y: 1, Z: 50},
			TiltDeg: -22.5,
			YOffset: -2,
		}
		spec = &s
	}

	gen.SpawnCount++
	pos := common.Vec3{
		X: playerPos.X,
		Y: playerPos.Y + spec.YOffset,
		Z: playerPos.Z,
	}
	if fe.script != nil {
		offset, err := fe.script.placementOffset(playerPos, gen.SpawnCount)
		if err != nil {
			log.Printf("floor extender: script error, falling back: %v", err)
			fe.script = nil
		} else {
			pos = pos.Add(offset)
		}
	}

	seg, err := entity.NewFloorSegmentAt(w, spec, pos, gen.SpawnCount)
	if err != nil {
		log.Printf("floor extender: spawn segment %d: %v", gen.SpawnCount, err)
		return
	}

	w.Events().Push(ecs.Event{
		Type: EventSegmentSpawned,
		Data: SegmentSpawned{Entity: seg, Index: gen.SpawnCount, Position: pos},
	})
}
