package component

import "github.com/milk9111/slope/common"

// Decor is a non-colliding trackside prop box.
type Decor struct {
	Size common.Vec3
}

var DecorComponent = NewComponent[Decor]()
