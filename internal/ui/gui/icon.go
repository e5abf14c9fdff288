//go:build !headless

package gui

import (
	"bytes"
	_ "embed"
	"image/png"
	"os"

	"fyne.io/fyne/v2"

	"listclip/internal/logging"
)

//go:embed assets/listclip-icon.png
var listclipIconPNG []byte

func fallbackIconResource() fyne.Resource {
	return fyne.NewStaticResource("listclip-icon.png", listclipIconPNG)
}

func AppIconResource() fyne.Resource {
	return fallbackIconResource()
}

// currentIconResource prefers the user's icon file when one is configured
// and readable; anything wrong with it falls back to the embedded icon.
func (c *controller) currentIconResource() fyne.Resource {
	if c.iconPath == "" {
		return fallbackIconResource()
	}
	res := loadIconFile(c.iconPath, c.logger)
	if res == nil {
		return fallbackIconResource()
	}
	return res
}

func loadIconFile(path string, logger *logging.Logger) fyne.Resource {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Debug("icon file not loaded", logging.Field("path", path), logging.Field("error", err))
		return nil
	}
	if _, err := png.DecodeConfig(bytes.NewReader(data)); err != nil {
		logger.Debug("icon file is not a valid PNG", logging.Field("path", path), logging.Field("error", err))
		return nil
	}
	return fyne.NewStaticResource("listclip-user-icon.png", data)
}
