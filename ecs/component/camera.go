package component

import "github.com/milk9111/slope/common"

// CameraTag marks the single scene camera.
type CameraTag struct{}

var CameraTagComponent = NewComponent[CameraTag]()

// Camera holds the follow configuration: the camera sits at the target's
// position plus Offset and looks back at the target.
type Camera struct {
	TargetName string
	Offset     common.Vec3
	FovDeg     float64
	Near       float64
}

var CameraComponent = NewComponent[Camera]()
