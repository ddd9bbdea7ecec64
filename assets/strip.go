package assets

import (
	"fmt"
	"image"
)

// SliceStrip reinterprets a vertical strip image as stacked square
// layers: layer count is height divided by width. A cubemap strip has
// six layers, but any positive count is accepted.
func SliceStrip(img image.Image) ([]image.Image, error) {
	if img == nil {
		return nil, fmt.Errorf("assets: nil strip image")
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("assets: empty strip image")
	}
	if h%w != 0 {
		return nil, fmt.Errorf("assets: strip height %d is not a multiple of width %d", h, w)
	}
	layers := h / w
	sub, ok := img.(interface {
		SubImage(r image.Rectangle) image.Image
	})
	if !ok {
		return nil, fmt.Errorf("assets: strip image type %T does not support slicing", img)
	}
	faces := make([]image.Image, 0, layers)
	for i := 0; i < layers; i++ {
		r := image.Rect(b.Min.X, b.Min.Y+i*w, b.Min.X+w, b.Min.Y+(i+1)*w)
		faces = append(faces, sub.SubImage(r))
	}
	return faces, nil
}
