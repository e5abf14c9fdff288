// Package format collapses multiline input into a single delimited string.
package format

import (
	"errors"
	"strings"
)

// DefaultSeparator joins surviving lines unless the caller overrides it.
const DefaultSeparator = ","

// ErrNoItems reports input that contains no usable lines after trimming.
var ErrNoItems = errors.New("input contains no items")

// Collapse splits input on line endings, trims each line, drops empty
// lines and joins the rest with the default comma separator.
func Collapse(input string) (string, error) {
	return CollapseWith(input, DefaultSeparator)
}

// CollapseWith is Collapse with a caller-chosen separator. Order is
// preserved and no trailing separator is emitted. Embedded separators in
// the lines themselves are left alone; the output is intentionally lossy.
func CollapseWith(input string, sep string) (string, error) {
	items := SplitItems(input)
	if len(items) == 0 {
		return "", ErrNoItems
	}
	return strings.Join(items, sep), nil
}

// SplitItems returns the trimmed, non-empty lines of input in order.
// Both \r\n and \n terminate a line; no other normalization is applied.
func SplitItems(input string) []string {
	if input == "" {
		return nil
	}
	normalized := strings.ReplaceAll(input, "\r\n", "\n")
	lines := strings.Split(normalized, "\n")
	items := make([]string, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		items = append(items, trimmed)
	}
	if len(items) == 0 {
		return nil
	}
	return items
}

// CountItems reports how many items Collapse would join.
func CountItems(input string) int {
	return len(SplitItems(input))
}
