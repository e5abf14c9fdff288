//go:build headless

package gui

import (
	"context"

	"listclip/internal/config"
)

// Available reports whether this build carries the GUI.
func Available() bool {
	return false
}

// Run is never reached in headless builds; main falls through to the TUI.
func Run(context.Context, string, config.Options) {}
