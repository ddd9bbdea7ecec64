package assets

import "image"

// ImageLoad is a one-shot future for a background image decode. The
// result is valid only after Done is closed, and fires exactly once.
type ImageLoad struct {
	done chan struct{}
	img  image.Image
	err  error
}

// LoadImageAsync starts decoding path off the game loop and returns a
// handle the caller can poll or select on.
func LoadImageAsync(path string) *ImageLoad {
	l := &ImageLoad{done: make(chan struct{})}
	go func() {
		l.img, l.err = LoadImage(path)
		close(l.done)
	}()
	return l
}

// Done is closed when the decode has finished, successfully or not.
func (l *ImageLoad) Done() <-chan struct{} {
	return l.done
}

// Ready reports completion without blocking.
func (l *ImageLoad) Ready() bool {
	select {
	case <-l.done:
		return true
	default:
		return false
	}
}

// Result returns the decoded image or the decode error. Call only
// after Done.
func (l *ImageLoad) Result() (image.Image, error) {
	return l.img, l.err
}

// CompletedImageLoad wraps an already-decoded image as a finished
// future. Used by tests and by synchronous boot paths.
func CompletedImageLoad(img image.Image, err error) *ImageLoad {
	l := &ImageLoad{done: make(chan struct{}), img: img, err: err}
	close(l.done)
	return l
}
