package app

import (
	"bytes"
	"image"
	"testing"

	"mouse-roi/internal/interaction"
	"mouse-roi/internal/logger"

	"github.com/stretchr/testify/assert"
)

func TestClickSessionPrintsEachPress(t *testing.T) {
	var out bytes.Buffer
	s := NewClickSession(&out, logger.Nop())

	s.HandleEvent(interaction.Press(12, 34))
	s.HandleEvent(interaction.Move(13, 35))
	s.HandleEvent(interaction.Release(13, 35))
	s.HandleEvent(interaction.Press(0, 7))

	want := "================================\n" +
		"Mouse Click detected at:  (12, 34)\n" +
		"Recorded clicks: 1\n" +
		"================================\n" +
		"Mouse Click detected at:  (0, 7)\n" +
		"Recorded clicks: 2\n"
	assert.Equal(t, want, out.String())
	assert.Equal(t, []image.Point{{12, 34}, {0, 7}}, s.Recorder().Coordinates())
}
