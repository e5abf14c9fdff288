//go:build !headless

package gui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const (
	toggleWidth  = float32(40)
	toggleHeight = float32(22)
)

// toggleSwitch is a small pill-shaped on/off switch.
type toggleSwitch struct {
	widget.BaseWidget

	On        bool
	OnChanged func(bool)

	track *canvas.Rectangle
	knob  *canvas.Circle
}

func newToggleSwitch(onChanged func(bool)) *toggleSwitch {
	t := &toggleSwitch{
		OnChanged: onChanged,
		track:     canvas.NewRectangle(color.NRGBA{R: 115, G: 115, B: 115, A: 255}),
		knob:      canvas.NewCircle(color.NRGBA{R: 245, G: 245, B: 245, A: 255}),
	}
	t.ExtendBaseWidget(t)
	return t
}

func (t *toggleSwitch) SetOn(on bool) {
	if t.On == on {
		return
	}
	t.On = on
	if t.OnChanged != nil {
		t.OnChanged(on)
	}
	t.Refresh()
}

func (t *toggleSwitch) Tapped(*fyne.PointEvent) {
	t.SetOn(!t.On)
}

func (t *toggleSwitch) MinSize() fyne.Size {
	return fyne.NewSize(toggleWidth, toggleHeight)
}

func (t *toggleSwitch) CreateRenderer() fyne.WidgetRenderer {
	return &toggleSwitchRenderer{toggle: t}
}

type toggleSwitchRenderer struct {
	toggle *toggleSwitch
}

func (r *toggleSwitchRenderer) Layout(size fyne.Size) {
	height := min(size.Height, toggleHeight)
	width := max(size.Width, toggleWidth)

	r.toggle.track.CornerRadius = height / 2
	r.toggle.track.Resize(fyne.NewSize(width, height))
	r.toggle.track.Move(fyne.NewPos(0, 0))

	knobSize := height - 4
	knobX := float32(2)
	if r.toggle.On {
		knobX = width - knobSize - 2
	}
	r.toggle.knob.Resize(fyne.NewSize(knobSize, knobSize))
	r.toggle.knob.Move(fyne.NewPos(knobX, (height-knobSize)/2))
}

func (r *toggleSwitchRenderer) MinSize() fyne.Size {
	return fyne.NewSize(toggleWidth, toggleHeight)
}

func (r *toggleSwitchRenderer) Refresh() {
	r.Layout(r.toggle.Size())
	if r.toggle.On {
		r.toggle.track.FillColor = theme.Color(theme.ColorNamePrimary)
	} else {
		r.toggle.track.FillColor = color.NRGBA{R: 115, G: 115, B: 115, A: 255}
	}
	r.toggle.knob.FillColor = theme.Color(theme.ColorNameForeground)
	canvas.Refresh(r.toggle.track)
	canvas.Refresh(r.toggle.knob)
}

func (r *toggleSwitchRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.toggle.track, r.toggle.knob}
}

func (r *toggleSwitchRenderer) Destroy() {}
