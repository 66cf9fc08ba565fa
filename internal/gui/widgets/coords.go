package widgets

import (
	"image"
	"math"

	"fyne.io/fyne/v2"
)

// Placement describes where an image of a given pixel size is drawn inside a
// widget when scaled to fit while keeping its aspect ratio.
type Placement struct {
	Offset fyne.Position
	Scale  float32
	Pixels image.Point
}

func Fit(size fyne.Size, imgW, imgH int) Placement {
	p := Placement{Pixels: image.Pt(imgW, imgH)}
	if imgW <= 0 || imgH <= 0 || size.Width <= 0 || size.Height <= 0 {
		return p
	}

	p.Scale = float32(math.Min(
		float64(size.Width)/float64(imgW),
		float64(size.Height)/float64(imgH),
	))
	drawn := p.DrawnSize()
	p.Offset = fyne.NewPos((size.Width-drawn.Width)/2, (size.Height-drawn.Height)/2)
	return p
}

func (p Placement) DrawnSize() fyne.Size {
	return fyne.NewSize(float32(p.Pixels.X)*p.Scale, float32(p.Pixels.Y)*p.Scale)
}

// PixelAt maps a widget position to the image pixel under it. The point is
// clamped to the image; inside is false when pos lies in the letterbox.
func (p Placement) PixelAt(pos fyne.Position) (pt image.Point, inside bool) {
	if p.Scale <= 0 {
		return image.Point{}, false
	}

	fx := (pos.X - p.Offset.X) / p.Scale
	fy := (pos.Y - p.Offset.Y) / p.Scale
	inside = fx >= 0 && fy >= 0 && fx < float32(p.Pixels.X) && fy < float32(p.Pixels.Y)

	pt = image.Pt(
		clamp(int(math.Floor(float64(fx))), 0, p.Pixels.X-1),
		clamp(int(math.Floor(float64(fy))), 0, p.Pixels.Y-1),
	)
	return pt, inside
}

// PositionOf is the inverse of PixelAt for the top-left corner of a pixel.
func (p Placement) PositionOf(pt image.Point) fyne.Position {
	return fyne.NewPos(
		p.Offset.X+float32(pt.X)*p.Scale,
		p.Offset.Y+float32(pt.Y)*p.Scale,
	)
}

// PixelAt is a convenience wrapper for a single lookup.
func PixelAt(pos fyne.Position, size fyne.Size, imgW, imgH int) (image.Point, bool) {
	return Fit(size, imgW, imgH).PixelAt(pos)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
