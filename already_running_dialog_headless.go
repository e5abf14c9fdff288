//go:build headless

package main

// Headless builds report the duplicate instance on stderr before this is
// consulted; nothing to show.
func showAlreadyRunningDialog() {}
