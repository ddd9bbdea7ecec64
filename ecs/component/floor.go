package component

import "github.com/milk9111/slope/common"

// FloorSegment is one static piece of the track. Segments are immutable
// after creation and are never destroyed.
type FloorSegment struct {
	Size  common.Vec3
	Index int
}

var FloorSegmentComponent = NewComponent[FloorSegment]()

// GenMode gates whether the extender may request a spawn this tick.
type GenMode int

const (
	GenIdle GenMode = iota
	GenGenerated
)

func (m GenMode) String() string {
	switch m {
	case GenIdle:
		return "idle"
	case GenGenerated:
		return "generated"
	default:
		return "unknown"
	}
}

// FloorGenerator tracks the extender's trigger state and spawn count.
type FloorGenerator struct {
	Mode       GenMode
	SpawnCount int
}

var FloorGeneratorComponent = NewComponent[FloorGenerator]()
