//go:build !windows

package main

// Only Windows attaches a console to GUI-subsystem processes.
func hideAndDetachConsoleForGUI() {}
