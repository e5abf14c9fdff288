//go:build !headless

package gui

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"listclip/internal/config"
	"listclip/internal/format"
	"listclip/internal/logging"
	"listclip/internal/presence"
)

var (
	statusReadyColor   = color.NRGBA{R: 145, G: 145, B: 145, A: 255}
	statusCopiedColor  = color.NRGBA{R: 72, G: 189, B: 109, A: 255}
	statusWarningColor = color.NRGBA{R: 219, G: 167, B: 74, A: 255}
	statusErrorColor   = color.NRGBA{R: 220, G: 84, B: 84, A: 255}
)

type controller struct {
	app       fyne.App
	win       fyne.Window
	logger    *logging.Logger
	opts      config.Options
	tracker   *presence.Tracker
	clipboard clipboardWriter

	input       *widget.Entry
	statusBadge *statusBadge
	statusText  *widget.Label
	copyButton  *widget.Button
	clearButton *widget.Button
	closeToTray *toggleSwitch

	cleanupOnce sync.Once
	quitOnce    sync.Once
	bgWG        sync.WaitGroup
	appCtx      context.Context
	appCancel   context.CancelFunc
	iconPath    string
}

// clipboardWriter mirrors clip.Writer for the fyne-backed clipboard so the
// format action has a single write path in both UIs.
type clipboardWriter interface {
	Write(ctx context.Context, text string) error
}

type fyneClipboard struct {
	win fyne.Window
}

func (f fyneClipboard) Write(_ context.Context, text string) error {
	board := f.win.Clipboard()
	if board == nil {
		return errors.New("clipboard unavailable")
	}
	board.SetContent(text)
	return nil
}

func Run(rootCtx context.Context, buildVersion string, opts config.Options) {
	uiApp := app.New()
	uiApp.Settings().SetTheme(newListClipTheme())
	c := newController(rootCtx, uiApp, opts)
	c.logger.Info("starting listclip UI", logging.Field("version", buildVersion))
	c.run()
}

func newController(rootCtx context.Context, uiApp fyne.App, opts config.Options) *controller {
	logger := logging.New(opts.Debug)
	if rootCtx == nil {
		rootCtx = context.Background()
	}
	appCtx, appCancel := context.WithCancel(rootCtx)

	c := &controller{
		app:       uiApp,
		logger:    logger,
		opts:      opts,
		tracker:   presence.New(),
		appCtx:    appCtx,
		appCancel: appCancel,
		iconPath:  opts.IconPath,
	}

	uiApp.SetIcon(c.currentIconResource())
	c.win = uiApp.NewWindow("ListClip")
	c.clipboard = fyneClipboard{win: c.win}
	c.win.SetMaster()
	c.win.Resize(fyne.NewSize(420, 320))
	c.buildUI()
	c.setupTray()
	c.watchIconFile()
	c.app.Lifecycle().SetOnStopped(func() {
		c.logger.Debug("app lifecycle OnStopped hook triggered")
		c.cleanup()
	})
	return c
}

func (c *controller) run() {
	go func() {
		<-c.appCtx.Done()
		fyne.Do(func() {
			if c.tracker.State() == presence.Exited {
				return
			}
			c.logger.Info("root context canceled; shutting down listclip UI")
			c.quitApp()
		})
	}()
	c.win.SetOnClosed(func() {
		c.logger.Debug("main window OnClosed hook triggered")
		if c.tracker.State() == presence.Exited {
			return
		}
		c.cleanup()
	})
	c.win.SetCloseIntercept(func() {
		if c.shouldHideToTrayOnClose() && c.tracker.CloseRequested() {
			c.logger.Debug("main window close intercepted: hiding to tray")
			c.win.Hide()
			c.refreshTrayMenu()
			return
		}
		c.logger.Debug("main window close intercepted: quitting")
		c.quitApp()
	})

	c.win.Show()
	if c.opts.StartMinimized && c.tracker.CloseRequested() {
		c.win.Hide()
		c.refreshTrayMenu()
	}
	c.app.Run()
}

func (c *controller) buildUI() {
	c.input = widget.NewMultiLineEntry()
	c.input.SetPlaceHolder("One item per line...")
	c.input.Wrapping = fyne.TextWrapOff

	c.statusBadge = newStatusBadge(statusReadyColor)
	c.statusText = widget.NewLabel("Ready")

	c.copyButton = widget.NewButton("Format & Copy", c.formatAndCopy)
	c.clearButton = widget.NewButton("Clear", c.clearInput)

	c.closeToTray = newToggleSwitch(func(on bool) {
		c.logger.Debug("close-to-tray toggled", logging.Field("enabled", on))
		c.refreshTrayMenu()
	})
	c.closeToTray.SetOn(true)

	buttonGap := canvas.NewRectangle(color.Transparent)
	buttonGap.SetMinSize(fyne.NewSize(12, 1))
	buttons := container.NewHBox(c.copyButton, buttonGap, c.clearButton)
	statusRow := container.NewHBox(c.statusBadge, c.statusText)
	trayRow := container.NewBorder(nil, nil, widget.NewLabel("Close to tray"), c.closeToTray, nil)

	bottom := container.NewVBox(
		buttons,
		statusRow,
		trayRow,
	)
	c.win.SetContent(container.NewPadded(container.NewBorder(nil, bottom, nil, nil, c.input)))
}

func (c *controller) formatAndCopy() {
	result, err := format.CollapseWith(c.input.Text, c.opts.Separator)
	if errors.Is(err, format.ErrNoItems) {
		c.logger.Warn("format rejected", logging.Field("reason", err))
		c.setStatus("Nothing to copy", statusWarningColor)
		dialog.ShowInformation("Nothing to copy", "Enter at least one non-empty line.", c.win)
		return
	}
	if err != nil {
		c.logger.Error("format failed", logging.Field("error", err))
		c.setStatus("Error", statusErrorColor)
		dialog.ShowError(err, c.win)
		return
	}

	if writeErr := c.clipboard.Write(c.appCtx, result); writeErr != nil {
		c.logger.Error("clipboard write failed", logging.Field("error", writeErr))
		c.setStatus("Clipboard error", statusErrorColor)
		dialog.ShowError(writeErr, c.win)
		return
	}
	count := format.CountItems(c.input.Text)
	c.logger.Info("copied items", logging.Field("count", count), logging.Field("output", logging.Truncate(result)))
	c.setStatus(copiedStatusText(count), statusCopiedColor)
}

func copiedStatusText(count int) string {
	if count == 1 {
		return "Copied 1 item"
	}
	return fmt.Sprintf("Copied %d items", count)
}

func (c *controller) clearInput() {
	c.input.SetText("")
	c.setStatus("Ready", statusReadyColor)
	c.logger.Debug("input cleared")
}

func (c *controller) setStatus(text string, dotColor color.NRGBA) {
	c.statusText.SetText(text)
	c.statusBadge.SetColor(dotColor)
}

func (c *controller) shouldHideToTrayOnClose() bool {
	if !trayAvailable(c.app) {
		return false
	}
	return c.closeToTray != nil && c.closeToTray.On
}

func (c *controller) restoreWindow() {
	c.tracker.Restore()
	c.win.Show()
	c.win.RequestFocus()
	c.refreshTrayMenu()
}

func (c *controller) cleanup() {
	c.cleanupOnce.Do(func() {
		c.tracker.Exit()
		c.logger.Debug("gui cleanup started")
		if c.appCancel != nil {
			c.appCancel()
		}
		if ok := waitGroupWithTimeout(&c.bgWG, 2*time.Second); !ok {
			c.logger.Warn("GUI background loops did not stop within timeout")
		}
		c.logger.Debug("gui cleanup complete")
	})
}

func (c *controller) quitApp() {
	c.quitOnce.Do(func() {
		c.logger.Debug("quit requested")
		c.cleanup()
		c.app.Quit()
	})
}

func (c *controller) startBackgroundLoop(name string, fn func(context.Context)) {
	c.bgWG.Go(func() {
		c.logger.Debug("background loop started", logging.Field("loop", name))
		fn(c.appCtx)
		c.logger.Debug("background loop stopped", logging.Field("loop", name))
	})
}

func waitGroupWithTimeout(wg *sync.WaitGroup, timeout time.Duration) bool {
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	if timeout <= 0 {
		<-done
		return true
	}
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case <-done:
		return true
	case <-timer.C:
		return false
	}
}
