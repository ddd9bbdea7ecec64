package system

import (
	"testing"

	"github.com/milk9111/slope/common"
	"github.com/milk9111/slope/ecs"
	"github.com/milk9111/slope/ecs/component"
	"github.com/milk9111/slope/prefabs"
)

func newPhysicsWorld(t *testing.T, ballPos common.Vec3) (*ecs.World, ecs.Entity) {
	t.Helper()
	w := ecs.NewWorld()
	ball := ecs.CreateEntity(w)
	for _, add := range []func() error{
		func() error {
			return ecs.Add(w, ball, component.TransformComponent.Kind(), &component.Transform{Position: ballPos})
		},
		func() error {
			return ecs.Add(w, ball, component.VelocityComponent.Kind(), &component.Velocity{})
		},
		func() error {
			return ecs.Add(w, ball, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
				Radius:     0.5,
				Mass:       1,
				Friction:   0.6,
				Elasticity: 0.7,
			})
		},
	} {
		if err := add(); err != nil {
			t.Fatalf("setup: %v", err)
		}
	}
	return w, ball
}

func addStaticSegmentEntity(t *testing.T, w *ecs.World, pos, size common.Vec3, pitch float64) {
	t.Helper()
	seg := ecs.CreateEntity(w)
	if err := ecs.Add(w, seg, component.TransformComponent.Kind(), &component.Transform{
		Position: pos,
		Pitch:    pitch,
	}); err != nil {
		t.Fatalf("add transform: %v", err)
	}
	if err := ecs.Add(w, seg, component.FloorSegmentComponent.Kind(), &component.FloorSegment{Size: size}); err != nil {
		t.Fatalf("add segment: %v", err)
	}
	if err := ecs.Add(w, seg, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Static:   true,
		Friction: 0.8,
	}); err != nil {
		t.Fatalf("add physics body: %v", err)
	}
}

func TestBallFallsUnderGravity(t *testing.T) {
	w, ball := newPhysicsWorld(t, common.Vec3{Y: 4})
	ps := NewPhysicsSystem()

	for i := 0; i < 30; i++ {
		ps.Update(w)
	}

	transform, _ := ecs.Get(w, ball, component.TransformComponent.Kind())
	if transform.Position.Y >= 4 {
		t.Fatalf("ball should fall, y=%v", transform.Position.Y)
	}
	vel, _ := ecs.Get(w, ball, component.VelocityComponent.Kind())
	if vel.Linear.Y >= 0 {
		t.Fatalf("fall should mirror a downward velocity, got %v", vel.Linear.Y)
	}
}

func TestBallComesToRestOnPlane(t *testing.T) {
	w, ball := newPhysicsWorld(t, common.Vec3{Y: 4})
	addStaticSegmentEntity(t, w, common.Vec3{Y: -2}, common.Vec3{X: 200, Y: 0.2, Z: 200}, 0)
	ps := NewPhysicsSystem()

	for i := 0; i < 900; i++ {
		ps.Update(w)
	}

	transform, _ := ecs.Get(w, ball, component.TransformComponent.Kind())
	// plane surface at y=-1.9, ball radius 0.5
	if transform.Position.Y < -2 || transform.Position.Y > 0 {
		t.Fatalf("ball should settle on the plane, y=%v", transform.Position.Y)
	}
}

func TestControllerVelocityMovesBallForward(t *testing.T) {
	w, ball := newPhysicsWorld(t, common.Vec3{Y: -1.3})
	addStaticSegmentEntity(t, w, common.Vec3{Y: -2}, common.Vec3{X: 200, Y: 0.2, Z: 200}, 0)
	ps := NewPhysicsSystem()
	ps.Update(w) // sync bodies

	vel, _ := ecs.Get(w, ball, component.VelocityComponent.Kind())
	vel.Linear.Z = -2 // forward

	start, _ := ecs.Get(w, ball, component.TransformComponent.Kind())
	startZ := start.Position.Z
	for i := 0; i < 30; i++ {
		ps.Update(w)
	}

	transform, _ := ecs.Get(w, ball, component.TransformComponent.Kind())
	if transform.Position.Z >= startZ {
		t.Fatalf("forward velocity should decrease z, start=%v end=%v", startZ, transform.Position.Z)
	}
}

func TestLateralAxisIntegratesDirectly(t *testing.T) {
	w, ball := newPhysicsWorld(t, common.Vec3{Y: 4})
	ps := NewPhysicsSystem()
	ps.Update(w)

	vel, _ := ecs.Get(w, ball, component.VelocityComponent.Kind())
	vel.Linear.X = 3

	for i := 0; i < 60; i++ {
		ps.Update(w)
	}

	transform, _ := ecs.Get(w, ball, component.TransformComponent.Kind())
	if transform.Position.X <= 2.5 {
		t.Fatalf("expected roughly 3 units of lateral drift per second, got %v", transform.Position.X)
	}
}

func TestTiltedSegmentAcceleratesBallDownhill(t *testing.T) {
	spec := &prefabs.FloorSpec{
		Size:    prefabs.Vec3Spec{X: 10, Y: 1, Z: 50},
		TiltDeg: -22.5,
		YOffset: -2,
	}
	size := common.Vec3{X: spec.Size.X, Y: spec.Size.Y, Z: spec.Size.Z}

	w, ball := newPhysicsWorld(t, common.Vec3{Y: 0, Z: 0})
	addStaticSegmentEntity(t, w, common.Vec3{Y: -2}, size, common.Deg2Rad(spec.TiltDeg))
	ps := NewPhysicsSystem()

	for i := 0; i < 240; i++ {
		ps.Update(w)
	}

	transform, _ := ecs.Get(w, ball, component.TransformComponent.Kind())
	if transform.Position.Z >= 0 {
		t.Fatalf("ball should roll down the slope toward -z, z=%v", transform.Position.Z)
	}
	if transform.Position.Y >= 0 {
		t.Fatalf("ball should descend with the slope, y=%v", transform.Position.Y)
	}
}
