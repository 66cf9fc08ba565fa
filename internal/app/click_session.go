package app

import (
	"fmt"
	"io"

	"mouse-roi/internal/interaction"
	"mouse-roi/internal/logger"
)

const clickSeparator = "================================"

// ClickSession records clicks and reports each one on out.
type ClickSession struct {
	recorder *interaction.ClickRecorder
	out      io.Writer
	logger   logger.Logger
}

func NewClickSession(out io.Writer, log logger.Logger) *ClickSession {
	return &ClickSession{
		recorder: interaction.NewClickRecorder(),
		out:      out,
		logger:   log,
	}
}

func (s *ClickSession) HandleEvent(ev interaction.Event) {
	if !s.recorder.Handle(ev) {
		return
	}

	count := s.recorder.Count()
	fmt.Fprintln(s.out, clickSeparator)
	fmt.Fprintf(s.out, "Mouse Click detected at:  (%d, %d)\n", ev.Point.X, ev.Point.Y)
	fmt.Fprintf(s.out, "Recorded clicks: %d\n", count)

	s.logger.Debug("ClickSession", "click recorded", map[string]interface{}{
		"x":     ev.Point.X,
		"y":     ev.Point.Y,
		"count": count,
	})
}

func (s *ClickSession) Recorder() *interaction.ClickRecorder {
	return s.recorder
}
