package logging

import (
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestFormatEventLine(t *testing.T) {
	event := Event{
		Time:    time.Date(2026, 3, 1, 9, 30, 5, 0, time.UTC),
		Level:   slog.LevelInfo,
		Message: "copied items",
		Fields:  map[string]any{"count": 3, "separator": ","},
	}
	got := FormatEventLine(event)
	want := "09:30:05 [INFO] copied items count=3 separator=,\n"
	if got != want {
		t.Fatalf("FormatEventLine = %q, want %q", got, want)
	}
}

func TestFormatEventLine_QuotesValuesWithWhitespace(t *testing.T) {
	event := Event{
		Time:    time.Date(2026, 3, 1, 9, 30, 5, 0, time.UTC),
		Level:   slog.LevelWarn,
		Message: "rejected input",
		Fields:  map[string]any{"reason": errors.New("input contains no items")},
	}
	got := FormatEventLine(event)
	if !strings.Contains(got, `reason="input contains no items"`) {
		t.Fatalf("FormatEventLine = %q, want quoted reason", got)
	}
	if !strings.Contains(got, "[WARN]") {
		t.Fatalf("FormatEventLine = %q, want WARN level", got)
	}
}

func TestFormatEventLine_SortsFieldKeys(t *testing.T) {
	event := Event{
		Time:    time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		Level:   slog.LevelDebug,
		Message: "m",
		Fields:  map[string]any{"zulu": 1, "alpha": 2, "mike": 3},
	}
	got := FormatEventLine(event)
	a := strings.Index(got, "alpha=")
	m := strings.Index(got, "mike=")
	z := strings.Index(got, "zulu=")
	if a < 0 || m < 0 || z < 0 || !(a < m && m < z) {
		t.Fatalf("FormatEventLine = %q, want alphabetical field order", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("  a\nb\r\nc  "); got != "a b  c" {
		t.Fatalf("Truncate = %q", got)
	}
	if got := Truncate(""); got != "<empty>" {
		t.Fatalf("Truncate empty = %q", got)
	}
	long := strings.Repeat("x", clipLimit+10)
	if got := Truncate(long); len(got) != clipLimit+3 || !strings.HasSuffix(got, "...") {
		t.Fatalf("Truncate long = %d chars", len(got))
	}
}

func TestLoggerSubscribePublishesEvents(t *testing.T) {
	logger := New(false)
	logger.SetTerminalOutputEnabled(false)

	var events []Event
	unsubscribe := logger.Subscribe(func(event Event) {
		events = append(events, event)
	})

	logger.Info("first", Field("k", "v"))
	logger.Debug("suppressed while debug disabled")
	logger.SetDebugEnabled(true)
	logger.Debug("visible now")
	unsubscribe()
	logger.Info("after unsubscribe")

	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if events[0].Message != "first" || events[0].Fields["k"] != "v" {
		t.Fatalf("unexpected first event: %+v", events[0])
	}
	if events[1].Message != "visible now" {
		t.Fatalf("unexpected second event: %+v", events[1])
	}
}
