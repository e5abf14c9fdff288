package clip

import (
	"context"
	"errors"
	"testing"
)

func TestSystemWrite_RetriesTransientFailure(t *testing.T) {
	calls := 0
	var got string
	w := &System{writeAll: func(text string) error {
		calls++
		if calls < 3 {
			return errors.New("selection busy")
		}
		got = text
		return nil
	}}

	if err := w.Write(context.Background(), "a,b,c"); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if calls != 3 {
		t.Fatalf("writeAll called %d times, want 3", calls)
	}
	if got != "a,b,c" {
		t.Fatalf("written text = %q, want %q", got, "a,b,c")
	}
}

func TestSystemWrite_SucceedsFirstTry(t *testing.T) {
	calls := 0
	w := &System{writeAll: func(string) error {
		calls++
		return nil
	}}
	if err := w.Write(context.Background(), "x"); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if calls != 1 {
		t.Fatalf("writeAll called %d times, want 1", calls)
	}
}

func TestSystemWrite_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	w := &System{writeAll: func(string) error {
		return errors.New("selection busy")
	}}
	if err := w.Write(ctx, "x"); err == nil {
		t.Fatal("Write() with canceled context = nil, want error")
	}
}
