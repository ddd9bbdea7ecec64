package component

import "github.com/jakecoffman/cp"

// PhysicsBody stores Chipmunk runtime data and collider configuration.
// The simulation runs in the forward/vertical plane; see system.Physics.
type PhysicsBody struct {
	Body       *cp.Body
	Shape      *cp.Shape
	Radius     float64
	Mass       float64
	Friction   float64
	Elasticity float64
	Static     bool
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()
