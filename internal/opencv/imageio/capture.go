package imageio

import (
	"fmt"

	"mouse-roi/internal/opencv/safe"

	"github.com/kbinani/screenshot"
)

// CaptureDisplay grabs the full contents of display index.
func CaptureDisplay(index int) (*safe.Mat, error) {
	n := screenshot.NumActiveDisplays()
	if n == 0 {
		return nil, fmt.Errorf("%w: no active displays found", ErrImageNotLoaded)
	}
	if index < 0 || index >= n {
		return nil, fmt.Errorf("%w: display %d out of range [0, %d)", ErrImageNotLoaded, index, n)
	}

	img, err := screenshot.CaptureDisplay(index)
	if err != nil {
		return nil, fmt.Errorf("%w: capture display %d: %v", ErrImageNotLoaded, index, err)
	}

	return FromImage(img, fmt.Sprintf("display_%d", index))
}
