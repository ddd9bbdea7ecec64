package render

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

var images = map[string]*ebiten.Image{}

// RegisterImage stores an image by key.
func RegisterImage(key string, img *ebiten.Image) {
	if key == "" || img == nil {
		return
	}
	images[key] = img
}

// GetImage returns a cached image by key.
func GetImage(key string) *ebiten.Image {
	if key == "" {
		return nil
	}
	return images[key]
}

// FromImage returns the cached GPU image for key, uploading src on
// first use. Skybox faces land here after the corrector slices them.
func FromImage(key string, src image.Image) *ebiten.Image {
	if key == "" || src == nil {
		return nil
	}
	if img, ok := images[key]; ok {
		return img
	}
	img := ebiten.NewImageFromImage(src)
	images[key] = img
	return img
}
