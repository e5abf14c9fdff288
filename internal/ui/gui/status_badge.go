//go:build !headless

package gui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const badgeDotSize = float32(12)

// statusBadge is the colored dot next to the status label.
type statusBadge struct {
	widget.BaseWidget

	dot *canvas.Circle
}

func newStatusBadge(fill color.NRGBA) *statusBadge {
	b := &statusBadge{dot: canvas.NewCircle(fill)}
	b.ExtendBaseWidget(b)
	return b
}

func (b *statusBadge) SetColor(fill color.NRGBA) {
	b.dot.FillColor = fill
	b.dot.Refresh()
}

func (b *statusBadge) MinSize() fyne.Size {
	return fyne.NewSize(badgeDotSize+8, badgeDotSize+8)
}

func (b *statusBadge) CreateRenderer() fyne.WidgetRenderer {
	anchor := canvas.NewRectangle(color.Transparent)
	anchor.SetMinSize(b.MinSize())
	dot := container.NewGridWrap(fyne.NewSize(badgeDotSize, badgeDotSize), b.dot)
	return widget.NewSimpleRenderer(container.NewStack(anchor, container.NewCenter(dot)))
}
