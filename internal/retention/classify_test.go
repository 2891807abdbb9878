package retention

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAgeDays(t *testing.T) {
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		mod  time.Time
		want int
	}{
		{"same instant", now, 0},
		{"almost a day", now.Add(-day + time.Second), 0},
		{"exactly three days", now.Add(-3 * day), 3},
		{"three days and change", now.Add(-3*day - 23*time.Hour), 3},
		{"ten days", now.Add(-10 * day), 10},
		{"an hour in the future", now.Add(time.Hour), 0},
		{"two days in the future", now.Add(2*day + time.Hour), -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AgeDays(tt.mod, now))
		})
	}
}

func TestDecide(t *testing.T) {
	assert.Equal(t, ActionCopy, Decide(0, 3))
	assert.Equal(t, ActionCopy, Decide(3, 3))
	assert.Equal(t, ActionDelete, Decide(4, 3))
	assert.Equal(t, ActionCopy, Decide(-5, 0))
	assert.Equal(t, ActionDelete, Decide(1, 0))

	assert.Equal(t, "copy", ActionCopy.String())
	assert.Equal(t, "delete", ActionDelete.String())
}
