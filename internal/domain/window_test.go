package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWindowContains(t *testing.T) {
	lower := time.Date(2025, 2, 13, 5, 0, 0, 0, time.UTC)
	upper := time.Date(2025, 2, 14, 5, 0, 0, 0, time.UTC)
	w := SelectionWindow{Lower: lower, Upper: upper}

	assert.True(t, w.Contains(lower), "lower bound is inclusive")
	assert.True(t, w.Contains(lower.Add(time.Hour)))
	assert.False(t, w.Contains(upper), "upper bound is exclusive")
	assert.False(t, w.Contains(lower.Add(-time.Second)))
}

func TestWindowUnboundedAbove(t *testing.T) {
	w := SelectionWindow{Lower: time.Date(2025, 2, 13, 5, 0, 0, 0, time.UTC)}

	assert.True(t, w.Contains(time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)))
}

func TestDailyWindow(t *testing.T) {
	now := time.Date(2025, 2, 14, 12, 30, 0, 0, time.UTC)
	w := DailyWindow(now, 5)

	assert.Equal(t, time.Date(2025, 2, 13, 5, 0, 0, 0, time.UTC), w.Lower)
	assert.True(t, w.Upper.IsZero())
}

func TestRunStatusString(t *testing.T) {
	assert.Equal(t, "success", RunSuccess.String())
	assert.Equal(t, "partial", RunPartial.String())
	assert.Equal(t, "fatal", RunFatal.String())
}
