package interaction

import (
	"image"
	"sync"
)

// CropSelector turns press, move and release events into a Selection.
// The only state is the anchor and end points, the running size and
// whether a drag is in progress.
type CropSelector struct {
	mu          sync.Mutex
	coordinates []image.Point
	width       int
	height      int
	cropping    bool
}

func NewCropSelector() *CropSelector {
	return &CropSelector{}
}

// Handle applies one event. The boolean is true only for the release that
// completes a drag.
func (c *CropSelector) Handle(event Event) (Selection, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch event.Type {
	case EventLButtonDown:
		c.coordinates = []image.Point{event.Point}
		c.cropping = true

	case EventMouseMove:
		if !c.cropping {
			return Selection{}, false
		}
		anchor := c.coordinates[0]
		c.width = abs(event.Point.X - anchor.X)
		c.height = abs(event.Point.Y - anchor.Y)

	case EventLButtonUp:
		if !c.cropping {
			return Selection{}, false
		}
		c.coordinates = append(c.coordinates, event.Point)
		c.cropping = false

		sel := NewSelection(c.coordinates[0], c.coordinates[1])
		c.width = sel.Width
		c.height = sel.Height
		return sel, true
	}

	return Selection{}, false
}

func (c *CropSelector) Cropping() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cropping
}

func (c *CropSelector) Size() (width, height int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.width, c.height
}

// Anchor returns the press point of the current or last drag.
func (c *CropSelector) Anchor() (image.Point, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.coordinates) == 0 {
		return image.Point{}, false
	}
	return c.coordinates[0], true
}

func (c *CropSelector) Coordinates() []image.Point {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]image.Point, len(c.coordinates))
	copy(out, c.coordinates)
	return out
}

func (c *CropSelector) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.coordinates = nil
	c.width = 0
	c.height = 0
	c.cropping = false
}
