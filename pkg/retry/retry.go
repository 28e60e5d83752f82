// Package retry runs an operation again after transient failures.
package retry

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
)

// Config describes a linear retry schedule: attempt n waits Delay*n.
type Config struct {
	MaxRetries uint64
	Delay      time.Duration
}

// Default is three retries one, two and three seconds apart.
var Default = Config{MaxRetries: 3, Delay: time.Second}

// linear is a backoff.BackOff that grows by a fixed step.
type linear struct {
	step    time.Duration
	attempt int64
}

func (l *linear) NextBackOff() time.Duration {
	l.attempt++
	return time.Duration(l.attempt) * l.step
}

func (l *linear) Reset() {
	l.attempt = 0
}

// Permanent marks err as not worth retrying.
func Permanent(err error) error {
	return backoff.Permanent(err)
}

// Do runs op until it succeeds, returns a Permanent error, retries run out or ctx is done.
// The last error is returned unwrapped.
func Do(ctx context.Context, logger *zap.Logger, name string, cfg Config, op func(context.Context) error) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	var b backoff.BackOff = &linear{step: cfg.Delay}
	b = backoff.WithMaxRetries(b, cfg.MaxRetries)
	b = backoff.WithContext(b, ctx)

	err := backoff.RetryNotify(func() error {
		return op(ctx)
	}, b, func(err error, wait time.Duration) {
		logger.Warn("retrying",
			zap.String("operation", name),
			zap.Duration("wait", wait),
			zap.Error(err),
		)
	})

	var permanent *backoff.PermanentError
	if errors.As(err, &permanent) {
		return permanent.Err
	}
	return err
}
