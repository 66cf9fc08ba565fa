package interaction

import (
	"image"
	"sync"
)

// ClickRecorder keeps every primary-button press in arrival order.
type ClickRecorder struct {
	mu          sync.Mutex
	coordinates []image.Point
}

func NewClickRecorder() *ClickRecorder {
	return &ClickRecorder{}
}

// Handle records presses and reports whether the event was one.
func (r *ClickRecorder) Handle(event Event) bool {
	if event.Type != EventLButtonDown {
		return false
	}

	r.mu.Lock()
	r.coordinates = append(r.coordinates, event.Point)
	r.mu.Unlock()
	return true
}

func (r *ClickRecorder) Coordinates() []image.Point {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]image.Point, len(r.coordinates))
	copy(out, r.coordinates)
	return out
}

func (r *ClickRecorder) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.coordinates)
}

func (r *ClickRecorder) Reset() {
	r.mu.Lock()
	r.coordinates = nil
	r.mu.Unlock()
}
