package component

// PlayerTag marks the single user-controlled ball.
type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

// Player holds movement tuning loaded from the player prefab.
type Player struct {
	MoveDelta float64
	Radius    float64
}

var PlayerComponent = NewComponent[Player]()
