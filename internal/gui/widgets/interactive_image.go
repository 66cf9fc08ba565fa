package widgets

import (
	"image"
	"image/color"
	"sync"

	"mouse-roi/internal/interaction"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

const (
	MaxDisplayWidth  = 1280
	MaxDisplayHeight = 800
)

var rubberBandColor = color.NRGBA{G: 255, A: 255}

// InteractiveImage shows an image scaled to fit and reports primary-button
// mouse activity in image pixel coordinates.
type InteractiveImage struct {
	widget.BaseWidget

	mu       sync.RWMutex
	img      image.Image
	onEvent  func(interaction.Event)
	onHover  func(image.Point, bool)
	pressed  bool
	anchor   image.Point
	current  image.Point
	showBand bool
}

var (
	_ desktop.Mouseable = (*InteractiveImage)(nil)
	_ desktop.Hoverable = (*InteractiveImage)(nil)
	_ fyne.Draggable    = (*InteractiveImage)(nil)
)

func NewInteractiveImage(img image.Image, onEvent func(interaction.Event)) *InteractiveImage {
	w := &InteractiveImage{img: img, onEvent: onEvent}
	w.ExtendBaseWidget(w)
	return w
}

// SetImage swaps the displayed image, for example after annotation.
func (w *InteractiveImage) SetImage(img image.Image) {
	w.mu.Lock()
	w.img = img
	w.mu.Unlock()
	w.Refresh()
}

func (w *InteractiveImage) Image() image.Image {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.img
}

// SetRubberBand toggles the live outline drawn while dragging.
func (w *InteractiveImage) SetRubberBand(show bool) {
	w.mu.Lock()
	w.showBand = show
	w.mu.Unlock()
}

func (w *InteractiveImage) SetOnHover(fn func(pt image.Point, inside bool)) {
	w.mu.Lock()
	w.onHover = fn
	w.mu.Unlock()
}

func (w *InteractiveImage) placement() Placement {
	w.mu.RLock()
	img := w.img
	w.mu.RUnlock()

	if img == nil {
		return Placement{}
	}
	b := img.Bounds()
	return Fit(w.Size(), b.Dx(), b.Dy())
}

func (w *InteractiveImage) MouseDown(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary {
		return
	}

	pt, inside := w.placement().PixelAt(ev.Position)
	if !inside {
		return
	}

	w.mu.Lock()
	w.pressed = true
	w.anchor = pt
	w.current = pt
	w.mu.Unlock()

	w.emit(interaction.Event{Type: interaction.EventLButtonDown, Point: pt})
	w.Refresh()
}

func (w *InteractiveImage) MouseUp(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary {
		return
	}
	pt, _ := w.placement().PixelAt(ev.Position)
	w.release(pt)
}

func (w *InteractiveImage) MouseIn(ev *desktop.MouseEvent) {
	w.MouseMoved(ev)
}

func (w *InteractiveImage) MouseMoved(ev *desktop.MouseEvent) {
	w.move(ev.Position)
}

func (w *InteractiveImage) MouseOut() {
	w.mu.RLock()
	onHover := w.onHover
	w.mu.RUnlock()

	if onHover != nil {
		onHover(image.Point{}, false)
	}
}

// Dragged covers platforms that route button-held motion to Draggable
// instead of Hoverable.
func (w *InteractiveImage) Dragged(ev *fyne.DragEvent) {
	w.move(ev.Position)
}

// DragEnd finishes a drag whose MouseUp was delivered elsewhere, such as a
// release outside the widget.
func (w *InteractiveImage) DragEnd() {
	w.mu.RLock()
	pt := w.current
	w.mu.RUnlock()
	w.release(pt)
}

func (w *InteractiveImage) move(pos fyne.Position) {
	pt, inside := w.placement().PixelAt(pos)

	w.mu.Lock()
	pressed := w.pressed
	if pressed {
		w.current = pt
	}
	onHover := w.onHover
	w.mu.Unlock()

	if onHover != nil {
		onHover(pt, inside)
	}

	w.emit(interaction.Event{Type: interaction.EventMouseMove, Point: pt})
	if pressed {
		w.Refresh()
	}
}

func (w *InteractiveImage) release(pt image.Point) {
	w.mu.Lock()
	if !w.pressed {
		w.mu.Unlock()
		return
	}
	w.pressed = false
	w.current = pt
	w.mu.Unlock()

	w.emit(interaction.Event{Type: interaction.EventLButtonUp, Point: pt})
	w.Refresh()
}

func (w *InteractiveImage) emit(ev interaction.Event) {
	if w.onEvent != nil {
		w.onEvent(ev)
	}
}

func (w *InteractiveImage) MinSize() fyne.Size {
	img := w.Image()
	if img == nil {
		return fyne.NewSize(1, 1)
	}

	b := img.Bounds()
	p := Fit(fyne.NewSize(MaxDisplayWidth, MaxDisplayHeight), b.Dx(), b.Dy())
	if p.Scale > 1 {
		return fyne.NewSize(float32(b.Dx()), float32(b.Dy()))
	}
	return p.DrawnSize()
}

func (w *InteractiveImage) CreateRenderer() fyne.WidgetRenderer {
	w.ExtendBaseWidget(w)

	raster := canvas.NewImageFromImage(w.Image())
	raster.FillMode = canvas.ImageFillContain
	raster.ScaleMode = canvas.ImageScaleSmooth

	band := canvas.NewRectangle(color.Transparent)
	band.StrokeColor = rubberBandColor
	band.StrokeWidth = 1
	band.Hide()

	return &interactiveImageRenderer{widget: w, raster: raster, band: band}
}

type interactiveImageRenderer struct {
	widget *InteractiveImage
	raster *canvas.Image
	band   *canvas.Rectangle
}

func (r *interactiveImageRenderer) Layout(size fyne.Size) {
	r.raster.Resize(size)
	r.raster.Move(fyne.NewPos(0, 0))
	r.layoutBand()
}

func (r *interactiveImageRenderer) layoutBand() {
	w := r.widget
	w.mu.RLock()
	visible := w.pressed && w.showBand
	sel := interaction.NewSelection(w.anchor, w.current)
	w.mu.RUnlock()

	if !visible {
		r.band.Hide()
		return
	}

	p := w.placement()
	rect := sel.Rect()
	topLeft := p.PositionOf(rect.Min)
	bottomRight := p.PositionOf(rect.Max)
	r.band.Move(topLeft)
	r.band.Resize(fyne.NewSize(bottomRight.X-topLeft.X, bottomRight.Y-topLeft.Y))
	r.band.Show()
}

func (r *interactiveImageRenderer) MinSize() fyne.Size {
	return r.widget.MinSize()
}

func (r *interactiveImageRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.raster, r.band}
}

func (r *interactiveImageRenderer) Refresh() {
	img := r.widget.Image()
	if r.raster.Image != img {
		r.raster.Image = img
		r.raster.Refresh()
	}
	r.layoutBand()
	r.band.Refresh()
}

func (r *interactiveImageRenderer) Destroy() {}
