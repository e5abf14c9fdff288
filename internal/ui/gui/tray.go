//go:build !headless

package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"listclip/internal/presence"
)

func trayAvailable(uiApp fyne.App) bool {
	_, ok := uiApp.(desktop.App)
	return ok
}

func (c *controller) setupTray() {
	if !trayAvailable(c.app) {
		c.logger.Debug("system tray not supported on this platform")
		return
	}
	c.refreshTrayMenu()
}

func (c *controller) refreshTrayMenu() {
	if c.tracker.State() == presence.Exited {
		return
	}
	desk, ok := c.app.(desktop.App)
	if !ok {
		return
	}

	desk.SetSystemTrayIcon(c.currentIconResource())

	openItem := fyne.NewMenuItem("Open Window", c.restoreWindow)
	copyItem := fyne.NewMenuItem("Format & Copy", func() {
		c.formatAndCopy()
		c.refreshTrayMenu()
	})
	clearItem := fyne.NewMenuItem("Clear", func() {
		c.clearInput()
		c.refreshTrayMenu()
	})
	exitItem := fyne.NewMenuItem("Exit", func() {
		c.logger.Debug("exit requested from tray menu")
		c.quitApp()
	})

	tray := fyne.NewMenu("ListClip",
		openItem,
		copyItem,
		clearItem,
		fyne.NewMenuItemSeparator(),
		exitItem,
	)
	desk.SetSystemTrayMenu(tray)
}
