//go:build !headless

package gui

import (
	"context"
	"path/filepath"

	"fyne.io/fyne/v2"
	"github.com/fsnotify/fsnotify"

	"listclip/internal/logging"
	"listclip/internal/runctx"
)

// watchIconFile reloads the tray/window icon when the configured icon file
// changes on disk. Watch failures are logged and otherwise ignored; the app
// keeps whatever icon it last had.
func (c *controller) watchIconFile() {
	if c.iconPath == "" {
		return
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		c.logger.Debug("icon watcher unavailable", logging.Field("error", err))
		return
	}
	// Watch the directory: editors replace files on save, which drops a
	// watch registered on the file itself.
	dir := filepath.Dir(c.iconPath)
	if err := watcher.Add(dir); err != nil {
		c.logger.Debug("icon watcher failed to add directory",
			logging.Field("dir", dir),
			logging.Field("error", err),
		)
		_ = watcher.Close()
		return
	}

	target := filepath.Clean(c.iconPath)
	c.startBackgroundLoop("icon watcher", func(ctx context.Context) {
		defer func() {
			_ = watcher.Close()
		}()
		for {
			event, ok := runctx.RecvOrDone(ctx, "icon watcher", c.logger, watcher.Events)
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			c.logger.Debugf("icon file changed: op=%s path=%s", event.Op.String(), event.Name)
			fyne.Do(func() {
				c.applyIcon()
			})
		}
	})
}

func (c *controller) applyIcon() {
	res := c.currentIconResource()
	c.app.SetIcon(res)
	c.win.SetIcon(res)
	c.refreshTrayMenu()
}
