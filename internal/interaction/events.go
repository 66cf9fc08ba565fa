// Package interaction holds the mouse bookkeeping for the click detector and
// the crop selector. It knows nothing about windows or pixel buffers.
package interaction

import (
	"fmt"
	"image"
)

type EventType int

const (
	EventLButtonDown EventType = iota
	EventMouseMove
	EventLButtonUp
)

func (t EventType) String() string {
	switch t {
	case EventLButtonDown:
		return "lbutton_down"
	case EventMouseMove:
		return "mouse_move"
	case EventLButtonUp:
		return "lbutton_up"
	default:
		return fmt.Sprintf("event(%d)", int(t))
	}
}

// Event is a mouse event already translated to image pixel coordinates.
type Event struct {
	Type  EventType
	Point image.Point
}

func Press(x, y int) Event   { return Event{Type: EventLButtonDown, Point: image.Pt(x, y)} }
func Move(x, y int) Event    { return Event{Type: EventMouseMove, Point: image.Pt(x, y)} }
func Release(x, y int) Event { return Event{Type: EventLButtonUp, Point: image.Pt(x, y)} }

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
