package system

import (
	"github.com/milk9111/slope/common"
	"github.com/milk9111/slope/ecs"
)

// EventSegmentSpawned is pushed by the floor extender when a new track
// segment is created; later stages of the same tick can react to it.
const EventSegmentSpawned = "floor:segment_spawned"

type SegmentSpawned struct {
	Entity   ecs.Entity
	Index    int
	Position common.Vec3
}
