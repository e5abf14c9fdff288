package headless

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"listclip/internal/config"
	"listclip/internal/format"
	"listclip/internal/logging"
)

type fakeWriter struct {
	written []string
	err     error
}

func (f *fakeWriter) Write(_ context.Context, text string) error {
	if f.err != nil {
		return f.err
	}
	f.written = append(f.written, text)
	return nil
}

func newTestModel(t *testing.T, writer *fakeWriter) *headlessModel {
	t.Helper()
	logger := logging.New(false)
	logger.SetTerminalOutputEnabled(false)
	opts := config.Normalize(config.Options{})
	m := newHeadlessModel(context.Background(), "test", opts, logger, writer)
	t.Cleanup(m.cleanup)
	return m
}

func TestPerformCopy_WritesCollapsedText(t *testing.T) {
	writer := &fakeWriter{}
	m := newTestModel(t, writer)

	msg := m.performCopy("a\r\nb\n\n c \n")
	if msg.err != nil {
		t.Fatalf("performCopy error = %v", msg.err)
	}
	if msg.count != 3 {
		t.Fatalf("count = %d, want 3", msg.count)
	}
	if len(writer.written) != 1 || writer.written[0] != "a,b,c" {
		t.Fatalf("written = %v, want [a,b,c]", writer.written)
	}
}

func TestPerformCopy_EmptyInputLeavesClipboardUntouched(t *testing.T) {
	writer := &fakeWriter{}
	m := newTestModel(t, writer)

	msg := m.performCopy("   \n\n\t\n")
	if !errors.Is(msg.err, format.ErrNoItems) {
		t.Fatalf("performCopy error = %v, want ErrNoItems", msg.err)
	}
	if len(writer.written) != 0 {
		t.Fatalf("clipboard written on empty input: %v", writer.written)
	}

	m.applyCopyResult(msg)
	if m.kind != statusWarning {
		t.Fatalf("status kind = %v, want warning", m.kind)
	}
	if !strings.Contains(m.status, "Nothing to copy") {
		t.Fatalf("status = %q", m.status)
	}
}

func TestPerformCopy_UsesConfiguredSeparator(t *testing.T) {
	writer := &fakeWriter{}
	logger := logging.New(false)
	logger.SetTerminalOutputEnabled(false)
	opts := config.Normalize(config.Options{Separator: "; "})
	m := newHeadlessModel(context.Background(), "test", opts, logger, writer)
	t.Cleanup(m.cleanup)

	msg := m.performCopy("a\nb")
	if msg.err != nil {
		t.Fatalf("performCopy error = %v", msg.err)
	}
	if writer.written[0] != "a; b" {
		t.Fatalf("written = %q, want %q", writer.written[0], "a; b")
	}
}

func TestApplyCopyResult_WriteFailureReportsError(t *testing.T) {
	writer := &fakeWriter{err: errors.New("no clipboard helper")}
	m := newTestModel(t, writer)

	msg := m.performCopy("a\nb")
	if msg.err == nil {
		t.Fatal("performCopy error = nil, want write failure")
	}
	m.applyCopyResult(msg)
	if m.kind != statusError {
		t.Fatalf("status kind = %v, want error", m.kind)
	}
}

func TestClearInput_AlwaysEmptiesBuffer(t *testing.T) {
	m := newTestModel(t, &fakeWriter{})
	m.input.SetValue("a\nb\nc")
	m.clearInput()
	if m.input.Value() != "" {
		t.Fatalf("input after clear = %q, want empty", m.input.Value())
	}
	if m.kind != statusReady || m.status != "Ready" {
		t.Fatalf("status = %q kind = %v, want Ready", m.status, m.kind)
	}

	// Clearing an already empty buffer stays empty.
	m.clearInput()
	if m.input.Value() != "" {
		t.Fatalf("input after second clear = %q", m.input.Value())
	}
}

func TestUpdate_CopyResultSetsCopiedStatus(t *testing.T) {
	m := newTestModel(t, &fakeWriter{})

	next, _ := m.Update(copyResultMsg{count: 2})
	model, ok := next.(*headlessModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	if model.kind != statusCopied {
		t.Fatalf("status kind = %v, want copied", model.kind)
	}
	if model.status != "Copied 2 items" {
		t.Fatalf("status = %q", model.status)
	}
}

func TestUpdate_QuitKeyQuits(t *testing.T) {
	m := newTestModel(t, &fakeWriter{})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if msg := cmd(); msg != tea.Quit() {
		t.Fatalf("cmd() = %v, want tea.Quit", msg)
	}
	if !m.quitting {
		t.Fatal("model not marked quitting")
	}
}
