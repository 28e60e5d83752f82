// Package clock holds context-aware waiting helpers.
package clock

import (
	"context"
	"time"
)

// Wait blocks for d. It returns ctx.Err() as soon as ctx is done, even when d is not positive.
func Wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Step waits attempt*step, a linear schedule starting at attempt 1.
func Step(ctx context.Context, attempt int, step time.Duration) error {
	if attempt < 1 {
		attempt = 1
	}
	return Wait(ctx, time.Duration(attempt)*step)
}
