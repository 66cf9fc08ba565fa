package app

import (
	"sync"

	"mouse-roi/internal/logger"
	"mouse-roi/internal/shutdown"

	"fyne.io/fyne/v2"
)

// Lifecycle ties window closing, key-to-quit and OS signals to a single
// shutdown path.
type Lifecycle struct {
	fyneApp  fyne.App
	shutdown *shutdown.Manager
	logger   logger.Logger
	once     sync.Once
}

func NewLifecycle(fyneApp fyne.App, log logger.Logger) *Lifecycle {
	return &Lifecycle{
		fyneApp:  fyneApp,
		shutdown: shutdown.NewManager(log),
		logger:   log,
	}
}

func (l *Lifecycle) Register(component shutdown.Shutdownable) {
	l.shutdown.Register(component)
}

// Bind makes closing window end the program.
func (l *Lifecycle) Bind(window fyne.Window) {
	window.SetCloseIntercept(func() {
		l.logger.Info("Lifecycle", "window close requested", map[string]interface{}{
			"title": window.Title(),
		})
		l.Quit()
	})
}

// ListenForSignals stops the event loop on SIGINT or SIGTERM.
func (l *Lifecycle) ListenForSignals() {
	l.shutdown.Listen(func() {
		fyne.Do(l.fyneApp.Quit)
	})
}

// Quit releases registered components and stops the event loop, which
// closes every window.
func (l *Lifecycle) Quit() {
	l.once.Do(func() {
		l.shutdown.Shutdown()
		l.fyneApp.Quit()
	})
}

func (l *Lifecycle) Done() <-chan struct{} {
	return l.shutdown.Done()
}
