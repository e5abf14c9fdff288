//go:build !headless

package gui

// Available reports whether this build carries the GUI.
func Available() bool {
	return true
}
