package retry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/phamtrung98/tweet-mirror-reddit-bot/pkg/logger"
)

// ErrExhausted tags a result whose operation kept failing through the final
// attempt. The last returned value accompanies it so callers can inspect the
// terminal response, but they must not treat it as usable output.
var ErrExhausted = errors.New("retry attempts exhausted")

type Config struct {
	MaxRetries      uint64
	InitialInterval time.Duration
	MaxInterval     time.Duration
	Multiplier      float64
}

func DefaultConfig() Config {
	return Config{
		MaxRetries:      3,
		InitialInterval: 500 * time.Millisecond,
		MaxInterval:     5 * time.Second,
		Multiplier:      1.5,
	}
}

// FixedConfig drives DoValue: a bounded number of attempts separated by a
// constant interval. Sleep=false skips the wait entirely.
type FixedConfig struct {
	MaxAttempts int
	Interval    time.Duration
	Sleep       bool
}

func Do(ctx context.Context, log logger.Logger, operationName string, operation func() error, cfg Config) error {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = cfg.InitialInterval
	bo.MaxInterval = cfg.MaxInterval
	bo.Multiplier = cfg.Multiplier
	bo.Reset()

	retryable := backoff.WithMaxRetries(bo, cfg.MaxRetries)
	retryableWithContext := backoff.WithContext(retryable, ctx)

	notify := func(err error, t time.Duration) {
		log.Warn(
			"Operation failed, retrying...",
			"operation", operationName,
			"error", err,
			"next_attempt_in", t.Round(time.Millisecond).String(),
		)
	}

	return backoff.RetryNotify(operation, retryableWithContext, notify)
}

// DoValue runs operation up to cfg.MaxAttempts times and returns its value.
// On exhaustion the value of the final attempt is returned together with an
// error wrapping ErrExhausted.
func DoValue[T any](ctx context.Context, log logger.Logger, operationName string, operation func() (T, error), cfg FixedConfig) (T, error) {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	interval := cfg.Interval
	if !cfg.Sleep {
		interval = 0
	}

	bo := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(interval), uint64(cfg.MaxAttempts-1)),
		ctx,
	)

	attempt := 0
	notify := func(err error, t time.Duration) {
		log.Warn(
			"Operation failed, retrying...",
			"operation", operationName,
			"attempt", attempt,
			"max_attempts", cfg.MaxAttempts,
			"error", err,
			"next_attempt_in", t.Round(time.Millisecond).String(),
		)
	}

	val, err := backoff.RetryNotifyWithData(func() (T, error) {
		attempt++
		return operation()
	}, bo, notify)
	if err != nil {
		log.Warn(
			"Operation terminated after max attempts",
			"operation", operationName,
			"attempts", attempt,
			"error", err,
		)
		return val, fmt.Errorf("%w: %s failed after %d attempts: %v", ErrExhausted, operationName, attempt, err)
	}
	return val, nil
}
