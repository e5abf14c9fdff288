//go:build !headless

package gui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

type listclipTheme struct {
	base fyne.Theme
}

func newListClipTheme() fyne.Theme {
	return &listclipTheme{base: theme.DefaultTheme()}
}

func (t *listclipTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if name == theme.ColorNamePrimary {
		return color.NRGBA{R: 72, G: 140, B: 220, A: 255}
	}
	return t.base.Color(name, variant)
}

func (t *listclipTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

func (t *listclipTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

func (t *listclipTheme) Size(name fyne.ThemeSizeName) float32 {
	return t.base.Size(name)
}
