package app

import (
	"io"
	"os"

	"mouse-roi/internal/export"
	"mouse-roi/internal/gui/components"
	"mouse-roi/internal/gui/widgets"
	"mouse-roi/internal/logger"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
)

const (
	AppID      = "io.github.mouseroi"
	AppName    = "Mouse ROI"
	AppVersion = "1.0.0"

	ClickWindowTitle   = "Mouse Click"
	ImageWindowTitle   = "Image"
	CroppedWindowTitle = "Cropped Image"

	statusBarHeight = 40
)

// Options carries the collaborators shared by both tools.
type Options struct {
	Out      io.Writer
	Logger   logger.Logger
	Exporter *export.Exporter
}

func (o Options) withDefaults() Options {
	if o.Out == nil {
		o.Out = os.Stdout
	}
	if o.Logger == nil {
		o.Logger = logger.Nop()
	}
	return o
}

func NewFyneApp() fyne.App {
	fyneApp := fyneapp.NewWithID(AppID)
	fyneapp.SetMetadata(fyne.AppMetadata{
		ID:      AppID,
		Name:    AppName,
		Version: AppVersion,
	})
	return fyneApp
}

// newImageWindow lays out an interactive image above a status bar and sizes
// the window to fit both.
func newImageWindow(fyneApp fyne.App, title string, image *widgets.InteractiveImage, status *components.StatusBar) fyne.Window {
	window := fyneApp.NewWindow(title)
	window.SetContent(container.NewBorder(nil, status.GetContainer(), nil, nil, image))
	window.SetPadded(false)

	size := image.MinSize()
	window.Resize(fyne.NewSize(size.Width, size.Height+statusBarHeight))
	window.CenterOnScreen()
	return window
}
