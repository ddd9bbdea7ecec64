package component

import "image"

// SkyboxStatus is the load lifecycle of the skybox texture.
type SkyboxStatus int

const (
	SkyboxPending SkyboxStatus = iota
	SkyboxLoaded
	SkyboxFailed
)

func (s SkyboxStatus) String() string {
	switch s {
	case SkyboxPending:
		return "pending"
	case SkyboxLoaded:
		return "loaded"
	case SkyboxFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Skybox holds the background texture. The source image is a vertical
// strip of square faces; the corrector slices it into Faces once the
// async load completes.
type Skybox struct {
	Source string
	Status SkyboxStatus
	Faces  []image.Image
	Layers int
}

var SkyboxComponent = NewComponent[Skybox]()
