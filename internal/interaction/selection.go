package interaction

import "image"

// Selection is a finished press-drag-release gesture.
type Selection struct {
	Start  image.Point
	End    image.Point
	Width  int
	Height int
}

func NewSelection(start, end image.Point) Selection {
	return Selection{
		Start:  start,
		End:    end,
		Width:  abs(end.X - start.X),
		Height: abs(end.Y - start.Y),
	}
}

// Empty reports a selection that covers no pixels in one of its axes.
func (s Selection) Empty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Rect spans both corners regardless of drag direction.
func (s Selection) Rect() image.Rectangle {
	return image.Rectangle{Min: s.Start, Max: s.End}.Canon()
}

// ClipTo limits the selection to bounds. Width and height follow the clipped
// rectangle, so a selection entirely outside bounds becomes empty.
func (s Selection) ClipTo(bounds image.Rectangle) Selection {
	r := s.Rect().Intersect(bounds)
	if r.Empty() {
		return Selection{Start: s.Start, End: s.Start}
	}

	clipped := s
	clipped.Start = clampPoint(s.Start, r)
	clipped.End = clampPoint(s.End, r)
	clipped.Width = r.Dx()
	clipped.Height = r.Dy()
	return clipped
}

func clampPoint(p image.Point, r image.Rectangle) image.Point {
	if p.X < r.Min.X {
		p.X = r.Min.X
	}
	if p.X > r.Max.X {
		p.X = r.Max.X
	}
	if p.Y < r.Min.Y {
		p.Y = r.Min.Y
	}
	if p.Y > r.Max.Y {
		p.Y = r.Max.Y
	}
	return p
}
