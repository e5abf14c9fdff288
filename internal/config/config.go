package config

import (
	"strings"

	flags "github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
)

type Options struct {
	Headless       bool   `long:"headless" env:"LISTCLIP_HEADLESS" description:"Run in terminal mode (GUI builds only)"`
	Separator      string `long:"separator" env:"LISTCLIP_SEPARATOR" description:"Separator used to join list items (default: comma)"`
	IconPath       string `long:"icon" env:"LISTCLIP_ICON" description:"Path to a PNG used as window and tray icon"`
	StartMinimized bool   `long:"start-minimized" env:"LISTCLIP_START_MINIMIZED" description:"Start hidden to the system tray"`
	Debug          bool   `long:"debug" env:"LISTCLIP_DEBUG" description:"Enable verbose debug output"`
}

func ParseOptions() (Options, error) {
	_ = godotenv.Load()
	opts := Options{}
	if _, err := flags.Parse(&opts); err != nil {
		return Options{}, err
	}
	return Normalize(opts), nil
}

// Normalize fills defaults the flag layer leaves empty. A blank separator
// means the default comma; surrounding whitespace in the separator is
// meaningful and kept.
func Normalize(opts Options) Options {
	if opts.Separator == "" {
		opts.Separator = ","
	}
	opts.IconPath = strings.TrimSpace(opts.IconPath)
	return opts
}
