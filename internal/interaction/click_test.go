package interaction

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClickRecorderRecordsPressesOnly(t *testing.T) {
	r := NewClickRecorder()

	assert.True(t, r.Handle(Press(10, 20)))
	assert.False(t, r.Handle(Move(11, 21)))
	assert.False(t, r.Handle(Release(12, 22)))
	assert.True(t, r.Handle(Press(0, 0)))

	assert.Equal(t, []image.Point{{10, 20}, {0, 0}}, r.Coordinates())
	assert.Equal(t, 2, r.Count())
}

func TestClickRecorderCoordinatesIsACopy(t *testing.T) {
	r := NewClickRecorder()
	r.Handle(Press(1, 2))

	coords := r.Coordinates()
	coords[0] = image.Pt(99, 99)

	assert.Equal(t, image.Pt(1, 2), r.Coordinates()[0])

	r.Reset()
	assert.Empty(t, r.Coordinates())
}

func TestEventTypeString(t *testing.T) {
	assert.Equal(t, "lbutton_down", EventLButtonDown.String())
	assert.Equal(t, "mouse_move", EventMouseMove.String())
	assert.Equal(t, "lbutton_up", EventLButtonUp.String())
	assert.Equal(t, "event(7)", EventType(7).String())
}
