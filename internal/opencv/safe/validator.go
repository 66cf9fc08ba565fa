package safe

import (
	"errors"
	"fmt"
	"image"
)

var ErrEmptyRegion = errors.New("region is empty")

func ValidateMatForOperation(mat *Mat, operation string) error {
	if mat == nil {
		return fmt.Errorf("Mat is nil for operation: %s", operation)
	}

	if !mat.IsValid() {
		return fmt.Errorf("%w for operation: %s", ErrInvalidMat, operation)
	}

	if mat.Empty() {
		return fmt.Errorf("Mat is empty for operation: %s", operation)
	}

	if mat.Rows() <= 0 || mat.Cols() <= 0 {
		return fmt.Errorf("Mat has invalid dimensions %dx%d for operation: %s",
			mat.Cols(), mat.Rows(), operation)
	}

	return nil
}

// ValidateRegion requires rect to be non-empty and fully inside mat.
func ValidateRegion(mat *Mat, rect image.Rectangle, operation string) error {
	if err := ValidateMatForOperation(mat, operation); err != nil {
		return err
	}

	if rect.Empty() {
		return fmt.Errorf("%w: %v for operation: %s", ErrEmptyRegion, rect, operation)
	}

	if !rect.In(mat.Bounds()) {
		return fmt.Errorf("region %v outside image bounds %v for operation: %s",
			rect, mat.Bounds(), operation)
	}

	return nil
}

func ValidateDimensions(width, height int, operation string) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid dimensions %dx%d for operation: %s", width, height, operation)
	}

	if width > 32768 || height > 32768 {
		return fmt.Errorf("dimensions %dx%d exceed maximum size for operation: %s", width, height, operation)
	}

	return nil
}
