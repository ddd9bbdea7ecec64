package component

import "github.com/milk9111/slope/common"

// Velocity mirrors the physics body's linear and angular velocity.
// The controller writes deltas here; the physics system integrates.
type Velocity struct {
	Linear  common.Vec3
	Angular common.Vec3
}

var VelocityComponent = NewComponent[Velocity]()
