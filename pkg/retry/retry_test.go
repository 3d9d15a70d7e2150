package retry

import (
	"context"
	"errors"
	"testing"

	"github.com/phamtrung98/tweet-mirror-reddit-bot/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoValueSucceedsAfterFailures(t *testing.T) {
	attempts := 0
	op := func() (string, error) {
		attempts++
		if attempts < 3 {
			return "", errors.New("transient")
		}
		return "ok", nil
	}

	val, err := DoValue(context.Background(), logger.NewNop(), "upload", op, FixedConfig{
		MaxAttempts: 5,
		Sleep:       false,
	})

	require.NoError(t, err)
	assert.Equal(t, "ok", val)
	assert.Equal(t, 3, attempts)
}

func TestDoValueExhaustionReturnsLastValue(t *testing.T) {
	attempts := 0
	op := func() (string, error) {
		attempts++
		return "last-response", errors.New("still broken")
	}

	val, err := DoValue(context.Background(), logger.NewNop(), "upload", op, FixedConfig{
		MaxAttempts: 5,
		Sleep:       false,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExhausted)
	assert.Equal(t, 5, attempts)
	assert.Equal(t, "last-response", val, "terminal response must survive for inspection")
}

func TestDoValueSingleAttemptMinimum(t *testing.T) {
	attempts := 0
	op := func() (int, error) {
		attempts++
		return 42, nil
	}

	val, err := DoValue(context.Background(), logger.NewNop(), "once", op, FixedConfig{MaxAttempts: 0})

	require.NoError(t, err)
	assert.Equal(t, 42, val)
	assert.Equal(t, 1, attempts)
}

func TestDoValueContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	op := func() (string, error) {
		return "", errors.New("never succeeds")
	}

	_, err := DoValue(ctx, logger.NewNop(), "cancelled", op, FixedConfig{MaxAttempts: 5, Sleep: true, Interval: 1})
	require.Error(t, err)
}
