// Package pause wraps a single timer in a promise.
package pause

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/chebyrash/promise"
)

// Pause returns a promise that resolves once, with no payload, no earlier
// than d after the call. It never rejects. d <= 0 fires immediately.
func Pause(d time.Duration) *promise.Promise[struct{}] {
	return promise.New(func(resolve func(struct{}), reject func(error)) {
		time.AfterFunc(d, func() {
			resolve(struct{}{})
		})
	})
}

// Demo prints a start line, waits d and prints a completion line.
// It only fails when ctx ends before the pause does.
func Demo(ctx context.Context, d time.Duration, out io.Writer) error {
	fmt.Fprintln(out, "Starting pause...")
	start := time.Now()
	if _, err := Pause(d).Await(ctx); err != nil {
		return err
	}
	slog.Debug("Pause resolved", "requested", d, "elapsed", time.Since(start))
	fmt.Fprintf(out, "Pause completed after %g seconds\n", d.Seconds())
	return nil
}
