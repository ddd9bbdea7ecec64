package system

import (
	"log"

	"github.com/milk9111/slope/common"
	"github.com/milk9111/slope/ecs"
	"github.com/milk9111/slope/ecs/component"
)

// CameraFollowSystem pins the camera to the player's position plus the
// configured offset and re-orients it to look at the player. It is a
// pure function of the player transform; prior camera state is ignored.
type CameraFollowSystem struct {
	lastErr string
}

func NewCameraFollowSystem() *CameraFollowSystem {
	return &CameraFollowSystem{}
}

func (cs *CameraFollowSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	camEntity, err := w.Single(component.CameraTagComponent.Kind())
	if err != nil {
		cs.reportOnce("camera", err)
		return
	}
	target, err := w.Single(component.PlayerTagComponent.Kind())
	if err != nil {
		cs.reportOnce("player", err)
		return
	}
	cs.lastErr = ""

	targetTransform, ok := ecs.Get(w, target, component.TransformComponent.Kind())
	if !ok {
		return
	}
	camTransform, ok := ecs.Get(w, camEntity, component.TransformComponent.Kind())
	if !ok {
		return
	}

	offset := common.Vec3{X: 0, Y: 5, Z: 10}
	if cam, ok := ecs.Get(w, camEntity, component.CameraComponent.Kind()); ok {
		offset = cam.Offset
	}

	camTransform.Position = targetTransform.Position.Add(offset)
	camTransform.Yaw, camTransform.Pitch = common.LookRotation(camTransform.Position, targetTransform.Position)
}

// reportOnce logs a configuration error only when it changes, so a
// missing or duplicated entity doesn't spam the log every tick.
func (cs *CameraFollowSystem) reportOnce(what string, err error) {
	msg := what + ": " + err.Error()
	if cs.lastErr == msg {
		return
	}
	cs.lastErr = msg
	log.Printf("camera follow: %s", msg)
}
