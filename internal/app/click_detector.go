package app

import (
	"fmt"

	"mouse-roi/internal/gui/components"
	"mouse-roi/internal/gui/widgets"
	"mouse-roi/internal/interaction"
	"mouse-roi/internal/logger"
	"mouse-roi/internal/opencv/imageio"
	"mouse-roi/internal/opencv/safe"

	"fyne.io/fyne/v2"
)

// ClickDetector shows an image and prints the pixel under every click.
// Any key closes it.
type ClickDetector struct {
	fyneApp   fyne.App
	window    fyne.Window
	image     *widgets.InteractiveImage
	status    *components.StatusBar
	session   *ClickSession
	lifecycle *Lifecycle
	logger    logger.Logger
}

// NewClickDetector takes ownership of source.
func NewClickDetector(fyneApp fyne.App, source *safe.Mat, opts Options) (*ClickDetector, error) {
	opts = opts.withDefaults()
	defer source.Close()

	frame, err := imageio.ToImage(source)
	if err != nil {
		return nil, fmt.Errorf("prepare image for display: %w", err)
	}

	d := &ClickDetector{
		fyneApp:   fyneApp,
		status:    components.NewStatusBar("Click to record a point, press any key to quit"),
		session:   NewClickSession(opts.Out, opts.Logger),
		lifecycle: NewLifecycle(fyneApp, opts.Logger),
		logger:    opts.Logger,
	}

	d.image = widgets.NewInteractiveImage(frame, d.handleEvent)
	d.image.SetOnHover(d.status.SetPosition)

	d.window = newImageWindow(fyneApp, ClickWindowTitle, d.image, d.status)
	d.window.Canvas().SetOnTypedKey(d.handleKey)
	d.lifecycle.Bind(d.window)

	opts.Logger.Info("ClickDetector", "window created", map[string]interface{}{
		"width":  frame.Bounds().Dx(),
		"height": frame.Bounds().Dy(),
	})

	return d, nil
}

func (d *ClickDetector) handleEvent(ev interaction.Event) {
	d.session.HandleEvent(ev)
	if ev.Type == interaction.EventLButtonDown {
		d.status.SetStatus(fmt.Sprintf("%d click(s) recorded", d.session.Recorder().Count()))
	}
}

func (d *ClickDetector) handleKey(ev *fyne.KeyEvent) {
	d.logger.Debug("ClickDetector", "key pressed, closing", map[string]interface{}{
		"key": string(ev.Name),
	})
	d.lifecycle.Quit()
}

func (d *ClickDetector) Window() fyne.Window {
	return d.window
}

func (d *ClickDetector) Session() *ClickSession {
	return d.session
}

// Run blocks until the window is closed.
func (d *ClickDetector) Run() {
	d.lifecycle.ListenForSignals()
	d.window.ShowAndRun()
}
