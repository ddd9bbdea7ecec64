package component

// PointLight illuminates the scene from its transform position.
type PointLight struct {
	Intensity float64
	Range     float64
}

var PointLightComponent = NewComponent[PointLight]()
