package components

import (
	"fmt"
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

type StatusBar struct {
	container      *fyne.Container
	statusLabel    *widget.Label
	positionLabel  *widget.Label
	selectionLabel *widget.Label
}

func NewStatusBar(status string) *StatusBar {
	statusLabel := widget.NewLabel(status)
	positionLabel := widget.NewLabel("Position: --")
	selectionLabel := widget.NewLabel("Selection: --")

	metricsContainer := container.NewHBox(
		positionLabel,
		widget.NewSeparator(),
		selectionLabel,
	)

	mainContainer := container.NewBorder(
		nil, nil,
		statusLabel,
		metricsContainer,
	)

	return &StatusBar{
		container:      mainContainer,
		statusLabel:    statusLabel,
		positionLabel:  positionLabel,
		selectionLabel: selectionLabel,
	}
}

func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}

func (sb *StatusBar) SetStatus(status string) {
	sb.statusLabel.SetText(status)
}

func (sb *StatusBar) SetPosition(pt image.Point, inside bool) {
	if !inside {
		sb.positionLabel.SetText("Position: --")
		return
	}
	sb.positionLabel.SetText(fmt.Sprintf("Position: %d, %d", pt.X, pt.Y))
}

func (sb *StatusBar) SetSelection(width, height int) {
	sb.selectionLabel.SetText(fmt.Sprintf("Selection: %dx%d px", width, height))
}

func (sb *StatusBar) ClearSelection() {
	sb.selectionLabel.SetText("Selection: --")
}

func (sb *StatusBar) StatusText() string {
	return sb.statusLabel.Text
}

func (sb *StatusBar) SelectionText() string {
	return sb.selectionLabel.Text
}
