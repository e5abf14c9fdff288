package format

import (
	"errors"
	"testing"
)

func TestCollapse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "mixed line endings", input: "a\r\nb\n\n c \n", want: "a,b,c"},
		{name: "single line", input: "alpha", want: "alpha"},
		{name: "trims each line", input: "  a  \n\tb\t\n", want: "a,b"},
		{name: "drops blank lines", input: "a\n\n\n\nb", want: "a,b"},
		{name: "preserves order", input: "z\ny\nx", want: "z,y,x"},
		{name: "embedded commas kept", input: "a,b\nc", want: "a,b,c"},
		{name: "lone carriage return is not a separator", input: "a\rb\nc", want: "a\rb,c"},
		{name: "trailing newline no trailing comma", input: "a\nb\n", want: "a,b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Collapse(tt.input)
			if err != nil {
				t.Fatalf("Collapse(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Fatalf("Collapse(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCollapse_RejectsEmptyInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty string", input: ""},
		{name: "spaces only", input: "   "},
		{name: "blank lines", input: "\n\n\r\n\n"},
		{name: "whitespace lines", input: "  \n\t\n \r\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Collapse(tt.input); !errors.Is(err, ErrNoItems) {
				t.Fatalf("Collapse(%q) error = %v, want ErrNoItems", tt.input, err)
			}
		})
	}
}

func TestCollapse_IdempotentOnOwnOutput(t *testing.T) {
	inputs := []string{
		"a\r\nb\n\n c \n",
		"one\ntwo\nthree",
		"solo",
	}
	for _, input := range inputs {
		first, err := Collapse(input)
		if err != nil {
			t.Fatalf("Collapse(%q) error = %v", input, err)
		}
		second, err := Collapse(first)
		if err != nil {
			t.Fatalf("Collapse(%q) error = %v", first, err)
		}
		if second != first {
			t.Fatalf("Collapse not idempotent: %q -> %q", first, second)
		}
	}
}

func TestCollapseWith_CustomSeparator(t *testing.T) {
	got, err := CollapseWith("a\nb\nc", "; ")
	if err != nil {
		t.Fatalf("CollapseWith error = %v", err)
	}
	if got != "a; b; c" {
		t.Fatalf("CollapseWith = %q, want %q", got, "a; b; c")
	}
}

func TestCountItems(t *testing.T) {
	if got := CountItems("a\n\nb\n c \n"); got != 3 {
		t.Fatalf("CountItems = %d, want 3", got)
	}
	if got := CountItems("  \n\n"); got != 0 {
		t.Fatalf("CountItems = %d, want 0", got)
	}
}
