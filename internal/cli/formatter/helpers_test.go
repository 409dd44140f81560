package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHumanDateFrom(t *testing.T) {
	now := time.Date(2025, 6, 18, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input time.Time
		want  string
	}{
		{"today", now, "Today"},
		{"yesterday", now.AddDate(0, 0, -1), "Yesterday"},
		{"last week", time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC), "Mon Jun 9, 2025"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HumanDateFrom(tt.input, now))
		})
	}
}

func TestHumanTimestamp(t *testing.T) {
	now := time.Now()

	assert.Equal(t, "Just now", HumanTimestamp(now))
	assert.Equal(t, "5m ago", HumanTimestamp(now.Add(-5*time.Minute)))
	assert.Equal(t, "3h ago", HumanTimestamp(now.Add(-3*time.Hour)))
}

func TestElapsed(t *testing.T) {
	assert.Equal(t, "00:00:00", Elapsed(0))
	assert.Equal(t, "00:00:59", Elapsed(59*time.Second))
	assert.Equal(t, "01:02:03", Elapsed(time.Hour+2*time.Minute+3*time.Second))
	assert.Equal(t, "00:00:00", Elapsed(-time.Minute))
}

func TestMinutes(t *testing.T) {
	assert.Equal(t, "0:45", Minutes(45))
	assert.Equal(t, "8:00", Minutes(480))
	assert.Equal(t, "15:30", Minutes(930))
}
