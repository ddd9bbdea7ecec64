package component

// Input stores per-frame input state for an entity.
type Input struct {
	MoveX             float64
	MoveZ             float64
	FullscreenPressed bool
	PausePressed      bool
}

var InputComponent = NewComponent[Input]()
