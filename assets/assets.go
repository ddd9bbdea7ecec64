package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"
)

//go:embed skybox.png
var assetsFS embed.FS

// LoadImage decodes an image from the embedded assets, falling back to
// disk so a replacement texture can be dropped in next to the binary.
func LoadImage(path string) (image.Image, error) {
	if path == "" {
		return nil, fmt.Errorf("assets: empty image path")
	}
	name := filepath.Base(path)
	if b, err := assetsFS.ReadFile(name); err == nil {
		return decode(name, b)
	}
	for _, p := range []string{path, filepath.Join("assets", name)} {
		if b, err := os.ReadFile(p); err == nil {
			return decode(p, b)
		}
	}
	return nil, fmt.Errorf("assets: image %s not found", path)
}

func decode(name string, b []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", name, err)
	}
	return img, nil
}
