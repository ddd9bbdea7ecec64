package component

import "github.com/milk9111/slope/common"

// Transform is an entity's pose in world space. Yaw/Pitch are radians;
// pitch doubles as the tilt angle for track geometry.
type Transform struct {
	Position common.Vec3
	Yaw      float64
	Pitch    float64
}

var TransformComponent = NewComponent[Transform]()
