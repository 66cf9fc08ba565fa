// Package annotate draws selection overlays onto images.
package annotate

import (
	"fmt"
	"image"
	"image/color"

	"mouse-roi/internal/interaction"
	"mouse-roi/internal/opencv/safe"

	"gocv.io/x/gocv"
)

var SelectionColor = color.RGBA{G: 255}

const (
	RectThickness  = 2
	LabelThickness = 1
	LabelScale     = 0.5
)

var (
	widthLabelOrigin  = image.Pt(10, 20)
	heightLabelOrigin = image.Pt(10, 40)
)

func WidthLabel(width int) string   { return fmt.Sprintf("Width: %dpx", width) }
func HeightLabel(height int) string { return fmt.Sprintf("Height: %dpx", height) }

// Selection draws the selection rectangle and its size labels in place.
func Selection(mat *safe.Mat, sel interaction.Selection) error {
	if err := safe.ValidateMatForOperation(mat, "annotate selection"); err != nil {
		return err
	}

	return mat.With(func(m *gocv.Mat) error {
		gocv.Rectangle(m, sel.Rect(), SelectionColor, RectThickness)
		gocv.PutText(m, WidthLabel(sel.Width), widthLabelOrigin,
			gocv.FontHersheySimplex, LabelScale, SelectionColor, LabelThickness)
		gocv.PutText(m, HeightLabel(sel.Height), heightLabelOrigin,
			gocv.FontHersheySimplex, LabelScale, SelectionColor, LabelThickness)
		return nil
	})
}
