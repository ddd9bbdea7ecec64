package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/slope/common"
	"github.com/milk9111/slope/ecs"
	"github.com/milk9111/slope/ecs/component"
)

const (
	gravityY  = -9.81
	fixedStep = 1.0 / 60.0
)

// PhysicsSystem delegates rigid-body simulation to Chipmunk. The track
// game's dynamics are planar: gravity, slope contact, restitution and
// rolling all happen in the forward/vertical plane, so the ball is a
// circle body in that plane and each floor segment a static tilted
// segment shape. Lateral X has nothing to collide with and is
// integrated directly from the velocity component.
//
// Plane mapping: plane x = -world z (advancing forward grows plane x),
// plane y = world y.
type PhysicsSystem struct {
	space  *cp.Space
	synced map[ecs.Entity]*cp.Body
}

func NewPhysicsSystem() *PhysicsSystem {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{X: 0, Y: gravityY})
	return &PhysicsSystem{
		space:  space,
		synced: make(map[ecs.Entity]*cp.Body),
	}
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}

	ps.syncEntities(w)
	ps.pushVelocities(w)
	ps.space.Step(fixedStep)
	ps.mirrorBodies(w)
}

// syncEntities creates Chipmunk bodies and shapes for entities that
// gained a PhysicsBody since last tick. Floor segments never move, so
// their shapes attach to the space's static body.
func (ps *PhysicsSystem) syncEntities(w *ecs.World) {
	for _, e := range w.Query(component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind()) {
		pb, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
		if !ok || pb.Body != nil || pb.Shape != nil {
			continue
		}
		transform, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		if pb.Static {
			ps.addStaticSegment(w, e, pb, transform)
		} else {
			ps.addDynamicBall(e, pb, transform)
		}
	}
}

func (ps *PhysicsSystem) addDynamicBall(e ecs.Entity, pb *component.PhysicsBody, transform *component.Transform) {
	moment := cp.MomentForCircle(pb.Mass, 0, pb.Radius, cp.Vector{})
	body := cp.NewBody(pb.Mass, moment)
	body.SetPosition(cp.Vector{X: planeX(transform.Position), Y: transform.Position.Y})
	ps.space.AddBody(body)

	shape := cp.NewCircle(body, pb.Radius, cp.Vector{})
	shape.SetElasticity(pb.Elasticity)
	shape.SetFriction(pb.Friction)
	ps.space.AddShape(shape)

	pb.Body = body
	pb.Shape = shape
	ps.synced[e] = body
}

// addStaticSegment places the segment's tilted midline in the plane,
// thickened to half the box height.
func (ps *PhysicsSystem) addStaticSegment(w *ecs.World, e ecs.Entity, pb *component.PhysicsBody, transform *component.Transform) {
	length := 50.0
	thickness := 0.5
	if seg, ok := ecs.Get(w, e, component.FloorSegmentComponent.Kind()); ok {
		length = seg.Size.Z
		thickness = seg.Size.Y / 2
	}

	half := common.RotateAboutX(common.Vec3{Z: -length / 2}, transform.Pitch)
	center := transform.Position
	a := center.Add(half)
	b := center.Sub(half)

	shape := cp.NewSegment(
		ps.space.StaticBody,
		cp.Vector{X: planeX(a), Y: a.Y},
		cp.Vector{X: planeX(b), Y: b.Y},
		thickness,
	)
	shape.SetElasticity(pb.Elasticity)
	shape.SetFriction(pb.Friction)
	ps.space.AddShape(shape)

	pb.Shape = shape
}

// pushVelocities applies controller-written velocity into the bodies.
func (ps *PhysicsSystem) pushVelocities(w *ecs.World) {
	for e, body := range ps.synced {
		if !ecs.IsAlive(w, e) {
			continue
		}
		vel, ok := ecs.Get(w, e, component.VelocityComponent.Kind())
		if !ok {
			continue
		}
		body.SetVelocityVector(cp.Vector{X: -vel.Linear.Z, Y: vel.Linear.Y})
	}
}

// mirrorBodies writes integrated body state back to the components.
func (ps *PhysicsSystem) mirrorBodies(w *ecs.World) {
	for e, body := range ps.synced {
		if !ecs.IsAlive(w, e) {
			continue
		}
		transform, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		pos := body.Position()
		transform.Position.Z = -pos.X
		transform.Position.Y = pos.Y

		vel, ok := ecs.Get(w, e, component.VelocityComponent.Kind())
		if !ok {
			continue
		}
		vel.Linear.Z = -body.Velocity().X
		vel.Linear.Y = body.Velocity().Y
		vel.Angular.X = body.AngularVelocity()

		// lateral axis is unconstrained
		transform.Position.X += vel.Linear.X * fixedStep
		transform.Pitch = math.Mod(transform.Pitch+vel.Angular.X*fixedStep, 2*math.Pi)
	}
}

func planeX(p common.Vec3) float64 {
	return -p.Z
}
