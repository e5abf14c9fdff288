package config

import "testing"

func TestNormalize_DefaultSeparator(t *testing.T) {
	opts := Normalize(Options{})
	if opts.Separator != "," {
		t.Fatalf("Separator = %q, want %q", opts.Separator, ",")
	}
}

func TestNormalize_KeepsExplicitSeparator(t *testing.T) {
	tests := []struct {
		name string
		sep  string
	}{
		{name: "semicolon", sep: ";"},
		{name: "comma space", sep: ", "},
		{name: "pipe", sep: " | "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := Normalize(Options{Separator: tt.sep})
			if opts.Separator != tt.sep {
				t.Fatalf("Separator = %q, want %q", opts.Separator, tt.sep)
			}
		})
	}
}

func TestNormalize_TrimsIconPath(t *testing.T) {
	opts := Normalize(Options{IconPath: "  /tmp/icon.png  "})
	if opts.IconPath != "/tmp/icon.png" {
		t.Fatalf("IconPath = %q", opts.IconPath)
	}
	opts = Normalize(Options{IconPath: "   "})
	if opts.IconPath != "" {
		t.Fatalf("IconPath = %q, want empty", opts.IconPath)
	}
}
