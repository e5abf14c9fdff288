// Package clip writes plain text to the system clipboard.
package clip

import (
	"context"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/cenkalti/backoff/v5"
)

// Writer puts text on a clipboard. Implementations must be safe to call
// from the UI thread.
type Writer interface {
	Write(ctx context.Context, text string) error
}

const (
	retryInitialInterval = 50 * time.Millisecond
	retryMaxElapsed      = 2 * time.Second
)

// System writes through the OS clipboard. On X11 the write shells out to
// xclip/xsel, which can fail transiently while another client holds the
// selection, so failed writes are retried with a short exponential backoff.
type System struct {
	// writeAll is swapped in tests.
	writeAll func(string) error
}

func NewSystem() *System {
	return &System{writeAll: clipboard.WriteAll}
}

func (s *System) Write(ctx context.Context, text string) error {
	retry := backoff.NewExponentialBackOff()
	retry.InitialInterval = retryInitialInterval

	_, err := backoff.Retry(ctx, func() (struct{}, error) {
		if writeErr := s.writeAll(text); writeErr != nil {
			return struct{}{}, writeErr
		}
		return struct{}{}, nil
	},
		backoff.WithBackOff(retry),
		backoff.WithMaxElapsedTime(retryMaxElapsed),
	)
	if err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}
	return nil
}
