package app

import (
	"errors"
	"fmt"
	"image"

	"mouse-roi/internal/gui/components"
	"mouse-roi/internal/gui/widgets"
	"mouse-roi/internal/interaction"
	"mouse-roi/internal/logger"
	"mouse-roi/internal/opencv/imageio"
	"mouse-roi/internal/opencv/safe"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
)

const (
	cropIdleStatus    = "Drag to select a region, press any key to quit"
	cropConfirmStatus = "Press any key to crop"
)

// MouseCrop lets the user drag out a rectangle, shows it with its size and
// opens the cropped region in its own window on the next key press.
type MouseCrop struct {
	fyneApp    fyne.App
	window     fyne.Window
	cropWindow fyne.Window
	image      *widgets.InteractiveImage
	status     *components.StatusBar
	session    *CropSession
	pristine   image.Image
	annotated  bool
	lifecycle  *Lifecycle
	logger     logger.Logger
}

// NewMouseCrop takes ownership of source.
func NewMouseCrop(fyneApp fyne.App, source *safe.Mat, opts Options) (*MouseCrop, error) {
	opts = opts.withDefaults()

	session, err := NewCropSession(source, opts.Exporter, opts.Out, opts.Logger)
	if err != nil {
		source.Close()
		return nil, err
	}

	frame, err := session.Frame()
	if err != nil {
		session.Shutdown()
		return nil, fmt.Errorf("prepare image for display: %w", err)
	}

	m := &MouseCrop{
		fyneApp:   fyneApp,
		status:    components.NewStatusBar(cropIdleStatus),
		session:   session,
		pristine:  frame,
		lifecycle: NewLifecycle(fyneApp, opts.Logger),
		logger:    opts.Logger,
	}
	m.lifecycle.Register(session)

	m.image = widgets.NewInteractiveImage(frame, m.handleEvent)
	m.image.SetRubberBand(true)
	m.image.SetOnHover(m.status.SetPosition)

	m.window = newImageWindow(fyneApp, ImageWindowTitle, m.image, m.status)
	m.window.Canvas().SetOnTypedKey(m.handleKey)
	m.lifecycle.Bind(m.window)

	opts.Logger.Info("MouseCrop", "window created", map[string]interface{}{
		"width":  frame.Bounds().Dx(),
		"height": frame.Bounds().Dy(),
	})

	return m, nil
}

func (m *MouseCrop) handleEvent(ev interaction.Event) {
	if ev.Type == interaction.EventLButtonDown && m.annotated {
		m.showPristine()
	}

	update, err := m.session.HandleEvent(ev)
	if err != nil {
		m.logger.Error("MouseCrop", err, map[string]interface{}{"event": ev.Type.String()})
		return
	}

	if update.Cropping || update.Finished {
		m.status.SetSelection(update.Width, update.Height)
	}

	if update.Finished {
		m.image.SetImage(update.Annotated)
		m.annotated = true
		m.status.SetStatus(cropConfirmStatus)
	}
}

func (m *MouseCrop) handleKey(ev *fyne.KeyEvent) {
	if _, ok := m.session.Pending(); !ok {
		m.logger.Debug("MouseCrop", "key pressed without selection, closing", map[string]interface{}{
			"key": string(ev.Name),
		})
		m.lifecycle.Quit()
		return
	}

	crop, err := m.session.Crop()
	m.showPristine()

	switch {
	case errors.Is(err, ErrEmptySelection):
		m.status.SetStatus(emptySelectionMessage)
	case err != nil:
		m.logger.Error("MouseCrop", err, nil)
		m.status.SetStatus("Crop failed")
	default:
		m.showCrop(crop)
	}
}

func (m *MouseCrop) showPristine() {
	m.image.SetImage(m.pristine)
	m.annotated = false
	m.status.SetStatus(cropIdleStatus)
	m.status.ClearSelection()
}

func (m *MouseCrop) showCrop(crop *safe.Mat) {
	defer crop.Close()

	img, err := imageio.ToImage(crop)
	if err != nil {
		m.logger.Error("MouseCrop", err, map[string]interface{}{"stage": "display crop"})
		return
	}

	if m.cropWindow != nil {
		m.closeCropWindow(m.cropWindow)
	}

	raster := canvas.NewImageFromImage(img)
	raster.FillMode = canvas.ImageFillOriginal
	raster.ScaleMode = canvas.ImageScalePixels

	window := m.fyneApp.NewWindow(CroppedWindowTitle)
	window.SetContent(raster)
	window.SetPadded(false)
	window.Canvas().SetOnTypedKey(func(*fyne.KeyEvent) {
		m.closeCropWindow(window)
	})
	window.SetOnClosed(func() {
		m.forgetCropWindow(window)
	})
	window.Show()
	m.cropWindow = window
}

func (m *MouseCrop) closeCropWindow(window fyne.Window) {
	m.forgetCropWindow(window)
	window.Close()
}

func (m *MouseCrop) forgetCropWindow(window fyne.Window) {
	if m.cropWindow == window {
		m.cropWindow = nil
	}
}

func (m *MouseCrop) Window() fyne.Window {
	return m.window
}

// CropWindow returns the open cropped-image window, if any.
func (m *MouseCrop) CropWindow() fyne.Window {
	return m.cropWindow
}

func (m *MouseCrop) Session() *CropSession {
	return m.session
}

// Run blocks until the window is closed.
func (m *MouseCrop) Run() {
	m.lifecycle.ListenForSignals()
	m.window.ShowAndRun()
}
