//go:build !headless

package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"listclip/internal/ui/gui"
)

func showAlreadyRunningDialog() {
	uiApp := app.New()
	uiApp.SetIcon(gui.AppIconResource())
	win := uiApp.NewWindow("ListClip")
	win.SetFixedSize(true)
	win.Resize(fyne.NewSize(380, 130))
	ok := widget.NewButton("OK", func() {
		uiApp.Quit()
	})
	message := widget.NewLabel("ListClip is already running.\n(Check your system tray?)")
	message.Alignment = fyne.TextAlignCenter
	buttonBar := container.NewHBox(layout.NewSpacer(), ok, layout.NewSpacer())
	win.SetContent(container.NewPadded(container.NewBorder(message, buttonBar, nil, nil, nil)))
	win.SetCloseIntercept(func() {
		uiApp.Quit()
	})
	win.Show()
	uiApp.Run()
}
