package app

import (
	"errors"
	"fmt"
	"image"
	"io"
	"sync"

	"mouse-roi/internal/export"
	"mouse-roi/internal/interaction"
	"mouse-roi/internal/logger"
	"mouse-roi/internal/opencv/annotate"
	"mouse-roi/internal/opencv/imageio"
	"mouse-roi/internal/opencv/safe"
)

const emptySelectionMessage = "Please select the image region to crop"

var (
	ErrNoSelection    = errors.New("no finished selection")
	ErrEmptySelection = errors.New("selection has no area")
)

// CropUpdate describes what a mouse event changed.
type CropUpdate struct {
	Cropping  bool
	Width     int
	Height    int
	Finished  bool
	Selection interaction.Selection
	// Annotated is set when Finished is true and holds the frame to show.
	Annotated image.Image
}

// CropSession owns the source image and the selection state. The source is
// never drawn on; annotations go to a fresh copy for each selection.
type CropSession struct {
	mu       sync.Mutex
	source   *safe.Mat
	selector *interaction.CropSelector
	pending  *interaction.Selection
	exporter *export.Exporter
	out      io.Writer
	logger   logger.Logger
}

// NewCropSession takes ownership of source.
func NewCropSession(source *safe.Mat, exporter *export.Exporter, out io.Writer, log logger.Logger) (*CropSession, error) {
	if err := safe.ValidateMatForOperation(source, "crop session"); err != nil {
		return nil, err
	}

	return &CropSession{
		source:   source,
		selector: interaction.NewCropSelector(),
		exporter: exporter,
		out:      out,
		logger:   log,
	}, nil
}

// Frame renders the unannotated source.
func (s *CropSession) Frame() (image.Image, error) {
	return imageio.ToImage(s.source)
}

func (s *CropSession) Bounds() image.Rectangle {
	return s.source.Bounds()
}

func (s *CropSession) HandleEvent(ev interaction.Event) (CropUpdate, error) {
	sel, finished := s.selector.Handle(ev)
	w, h := s.selector.Size()
	update := CropUpdate{Cropping: s.selector.Cropping(), Width: w, Height: h}

	if ev.Type == interaction.EventLButtonDown {
		s.mu.Lock()
		s.pending = nil
		s.mu.Unlock()
	}

	if !finished {
		return update, nil
	}

	s.mu.Lock()
	s.pending = &sel
	s.mu.Unlock()

	s.logger.Info("CropSession", "selection finished", map[string]interface{}{
		"start_x": sel.Start.X,
		"start_y": sel.Start.Y,
		"end_x":   sel.End.X,
		"end_y":   sel.End.Y,
		"width":   sel.Width,
		"height":  sel.Height,
	})

	annotated, err := s.annotate(sel)
	if err != nil {
		return update, err
	}

	update.Finished = true
	update.Selection = sel
	update.Annotated = annotated
	return update, nil
}

func (s *CropSession) annotate(sel interaction.Selection) (image.Image, error) {
	frame, err := s.source.Clone()
	if err != nil {
		return nil, fmt.Errorf("copy source for annotation: %w", err)
	}
	defer frame.Close()

	if err := annotate.Selection(frame, sel); err != nil {
		return nil, fmt.Errorf("annotate selection: %w", err)
	}
	return imageio.ToImage(frame)
}

// Pending returns the finished selection awaiting confirmation.
func (s *CropSession) Pending() (interaction.Selection, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending == nil {
		return interaction.Selection{}, false
	}
	return *s.pending, true
}

// Crop consumes the pending selection and returns the selected pixels. An
// empty selection prints a hint on out and returns ErrEmptySelection.
func (s *CropSession) Crop() (*safe.Mat, error) {
	s.mu.Lock()
	pending := s.pending
	s.pending = nil
	s.mu.Unlock()

	if pending == nil {
		return nil, ErrNoSelection
	}

	sel := pending.ClipTo(s.source.Bounds())
	if sel.Empty() {
		fmt.Fprintln(s.out, emptySelectionMessage)
		s.logger.Debug("CropSession", "empty selection ignored", map[string]interface{}{
			"width":  pending.Width,
			"height": pending.Height,
		})
		return nil, ErrEmptySelection
	}

	crop, err := s.source.Region(sel.Rect(), "cropped")
	if err != nil {
		return nil, fmt.Errorf("crop %v: %w", sel.Rect(), err)
	}

	s.logger.Info("CropSession", "image cropped", map[string]interface{}{
		"x":      sel.Rect().Min.X,
		"y":      sel.Rect().Min.Y,
		"width":  crop.Cols(),
		"height": crop.Rows(),
	})

	if s.exporter != nil && s.exporter.Enabled() {
		if path, err := s.exporter.Export(crop); err != nil {
			s.logger.Error("CropSession", err, map[string]interface{}{"stage": "export"})
		} else if path != "" {
			fmt.Fprintf(s.out, "Cropped image saved to %s\n", path)
		}
	}

	return crop, nil
}

// Shutdown releases the source image.
func (s *CropSession) Shutdown() {
	s.source.Close()
}
