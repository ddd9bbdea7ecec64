package system

import (
	"math"
	"testing"

	"github.com/milk9111/slope/common"
	"github.com/milk9111/slope/ecs"
	"github.com/milk9111/slope/ecs/component"
)

func newCameraWorld(t *testing.T, playerPos common.Vec3) (*ecs.World, ecs.Entity, ecs.Entity) {
	t.Helper()
	w := ecs.NewWorld()

	cam := ecs.CreateEntity(w)
	if err := ecs.Add(w, cam, component.CameraTagComponent.Kind(), &component.CameraTag{}); err != nil {
		t.Fatalf("add camera tag: %v", err)
	}
	if err := ecs.Add(w, cam, component.TransformComponent.Kind(), &component.Transform{}); err != nil {
		t.Fatalf("add camera transform: %v", err)
	}
	if err := ecs.Add(w, cam, component.CameraComponent.Kind(), &component.Camera{
		Offset: common.Vec3{X: 0, Y: 5, Z: 10},
	}); err != nil {
		t.Fatalf("add camera component: %v", err)
	}

	player := ecs.CreateEntity(w)
	if err := ecs.Add(w, player, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		t.Fatalf("add player tag: %v", err)
	}
	if err := ecs.Add(w, player, component.TransformComponent.Kind(), &component.Transform{Position: playerPos}); err != nil {
		t.Fatalf("add player transform: %v", err)
	}

	return w, cam, player
}

func TestCameraFollowOffset(t *testing.T) {
	cases := []struct {
		name string
		pos  common.Vec3
	}{
		{"origin", common.Vec3{}},
		{"downhill", common.Vec3{X: 2, Y: -8, Z: -37.5}},
		{"far_run", common.Vec3{X: -11, Y: -120, Z: -310}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w, cam, _ := newCameraWorld(t, c.pos)
			cs := NewCameraFollowSystem()

			cs.Update(w)

			transform, _ := ecs.Get(w, cam, component.TransformComponent.Kind())
			want := c.pos.Add(common.Vec3{X: 0, Y: 5, Z: 10})
			if transform.Position != want {
				t.Fatalf("expected camera at %+v, got %+v", want, transform.Position)
			}

			// orientation looks back at the player
			basis := common.BasisFromYawPitch(transform.Yaw, transform.Pitch)
			wantDir := c.pos.Sub(transform.Position).Normalize()
			if basis.Forward.Sub(wantDir).Length() > 1e-9 {
				t.Fatalf("expected forward %+v, got %+v", wantDir, basis.Forward)
			}
		})
	}
}

func TestCameraFollowIgnoresPriorState(t *testing.T) {
	pos := common.Vec3{X: 1, Y: 2, Z: -30}
	w, cam, _ := newCameraWorld(t, pos)
	cs := NewCameraFollowSystem()

	// scribble over the camera transform between ticks
	for _, junk := range []common.Vec3{{X: 500}, {Y: -999, Z: 123}} {
		transform, _ := ecs.Get(w, cam, component.TransformComponent.Kind())
		transform.Position = junk
		transform.Yaw = 2.5

		cs.Update(w)

		want := pos.Add(common.Vec3{X: 0, Y: 5, Z: 10})
		if transform.Position != want {
			t.Fatalf("camera should be a pure function of player position, got %+v", transform.Position)
		}
	}
}

func TestCameraFollowConfigurationErrors(t *testing.T) {
	t.Run("no_player", func(t *testing.T) {
		w := ecs.NewWorld()
		cam := ecs.CreateEntity(w)
		if err := ecs.Add(w, cam, component.CameraTagComponent.Kind(), &component.CameraTag{}); err != nil {
			t.Fatalf("add camera tag: %v", err)
		}
		start := common.Vec3{X: 7, Y: 8, Z: 9}
		if err := ecs.Add(w, cam, component.TransformComponent.Kind(), &component.Transform{Position: start}); err != nil {
			t.Fatalf("add transform: %v", err)
		}

		cs := NewCameraFollowSystem()
		cs.Update(w) // must not panic

		transform, _ := ecs.Get(w, cam, component.TransformComponent.Kind())
		if transform.Position != start {
			t.Fatalf("camera should be untouched without a player, got %+v", transform.Position)
		}
	})

	t.Run("two_players", func(t *testing.T) {
		w, cam, _ := newCameraWorld(t, common.Vec3{})
		extra := ecs.CreateEntity(w)
		if err := ecs.Add(w, extra, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
			t.Fatalf("add extra player: %v", err)
		}

		transform, _ := ecs.Get(w, cam, component.TransformComponent.Kind())
		transform.Position = common.Vec3{X: 42}

		cs := NewCameraFollowSystem()
		cs.Update(w) // must not panic

		if transform.Position != (common.Vec3{X: 42}) {
			t.Fatalf("camera should be untouched with duplicate players")
		}
	})
}

func TestLookRotationRoundTrip(t *testing.T) {
	eye := common.Vec3{X: 0, Y: 5, Z: 10}
	target := common.Vec3{}
	yaw, pitch := common.LookRotation(eye, target)
	basis := common.BasisFromYawPitch(yaw, pitch)

	wantDir := target.Sub(eye).Normalize()
	if basis.Forward.Sub(wantDir).Length() > 1e-9 {
		t.Fatalf("expected forward %+v, got %+v", wantDir, basis.Forward)
	}
	if math.Abs(basis.Up.Dot(basis.Forward)) > 1e-9 || math.Abs(basis.Right.Dot(basis.Up)) > 1e-9 {
		t.Fatalf("basis should be orthonormal")
	}
	if basis.Up.Y <= 0 {
		t.Fatalf("up vector should point skyward, got %+v", basis.Up)
	}
}
