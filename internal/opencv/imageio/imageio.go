// Package imageio moves pixels between files, the screen and safe.Mat.
package imageio

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"mouse-roi/internal/opencv/safe"

	"gocv.io/x/gocv"
)

var ErrImageNotLoaded = errors.New("image could not be loaded")

// Load reads path as a 3-channel BGR image.
func Load(path string) (*safe.Mat, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrImageNotLoaded, path, err)
	}

	mat := gocv.IMRead(path, gocv.IMReadColor)
	if mat.Empty() {
		mat.Close()
		return nil, fmt.Errorf("%w: %s: unsupported or corrupt image", ErrImageNotLoaded, path)
	}

	return safe.Wrap(mat, filepath.Base(path))
}

// Save writes mat to path, creating the parent directory. The encoder is
// chosen from the file extension.
func Save(path string, mat *safe.Mat) error {
	if err := safe.ValidateMatForOperation(mat, "Save"); err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	if !gocv.IMWrite(path, mat.GetMat()) {
		return fmt.Errorf("write image %s: encoder rejected the image", path)
	}
	return nil
}

// EncodePNG returns mat as PNG bytes.
func EncodePNG(mat *safe.Mat) ([]byte, error) {
	if err := safe.ValidateMatForOperation(mat, "EncodePNG"); err != nil {
		return nil, err
	}

	buf, err := gocv.IMEncode(gocv.PNGFileExt, mat.GetMat())
	if err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	defer buf.Close()

	out := make([]byte, buf.Len())
	copy(out, buf.GetBytes())
	return out, nil
}

// ToImage converts mat for display in fyne.
func ToImage(mat *safe.Mat) (image.Image, error) {
	if err := safe.ValidateMatForOperation(mat, "ToImage"); err != nil {
		return nil, err
	}

	m := mat.GetMat()
	img, err := m.ToImage()
	if err != nil {
		return nil, fmt.Errorf("convert %s to image: %w", mat.Tag(), err)
	}
	return img, nil
}

// FromImage converts a Go image into a BGR Mat.
func FromImage(img image.Image, tag string) (*safe.Mat, error) {
	if img == nil {
		return nil, fmt.Errorf("input image is nil")
	}

	mat, err := gocv.ImageToMatRGB(img)
	if err != nil {
		return nil, fmt.Errorf("convert image to Mat: %w", err)
	}
	return safe.Wrap(mat, tag)
}
