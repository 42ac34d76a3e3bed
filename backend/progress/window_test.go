package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInteractiveWindowUnlimited(t *testing.T) {
	w := InteractiveWindow(day(t, "2024-01-01"), 0, day(t, "2024-01-10"))

	assert.True(t, w.Contains(day(t, "2024-01-01")))
	assert.True(t, w.Contains(day(t, "2024-01-10")))
	assert.False(t, w.Contains(day(t, "2023-12-31")))
	assert.False(t, w.Contains(day(t, "2024-01-11")))
}

func TestInteractiveWindowBoundedByDuration(t *testing.T) {
	w := InteractiveWindow(day(t, "2024-01-01"), 7, day(t, "2024-02-01"))

	assert.Equal(t, day(t, "2024-01-07"), w.End)
	assert.True(t, w.Contains(day(t, "2024-01-07")))
	assert.False(t, w.Contains(day(t, "2024-01-08")))
}

func TestInteractiveWindowDurationLongerThanElapsed(t *testing.T) {
	w := InteractiveWindow(day(t, "2024-01-01"), 30, day(t, "2024-01-05"))

	assert.Equal(t, day(t, "2024-01-05"), w.End)
	assert.False(t, w.Contains(day(t, "2024-01-06")))
}

func TestInteractiveWindowStartInFuture(t *testing.T) {
	w := InteractiveWindow(day(t, "2024-02-01"), 0, day(t, "2024-01-15"))

	assert.True(t, w.Empty())
	assert.False(t, w.Contains(day(t, "2024-02-01")))
	assert.False(t, w.Contains(day(t, "2024-01-15")))
}
