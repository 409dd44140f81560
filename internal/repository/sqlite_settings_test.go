package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/tidvakt/internal/domain"
	"github.com/alexanderramin/tidvakt/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsRepo_SeededDefaults(t *testing.T) {
	repo := NewSQLiteSettingsRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	ts, err := repo.TimerSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultTimerSettings(), ts)

	rs, err := repo.ReminderSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultReminderSettings(), rs)
}

func TestSettingsRepo_TimerSettingsRoundTrip(t *testing.T) {
	repo := NewSQLiteSettingsRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	want := domain.TimerSettings{
		AutoStopAfterMinutes:    240,
		AutoPauseAfterMinutes:   10,
		ReminderIntervalMinutes: 30,
		EnableActivityDetection: false,
		EnableMultipleTimers:    true,
	}
	require.NoError(t, repo.SaveTimerSettings(ctx, want))

	got, err := repo.TimerSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSettingsRepo_ZeroThresholdsFallBackToDefaults(t *testing.T) {
	repo := NewSQLiteSettingsRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.SaveTimerSettings(ctx, domain.TimerSettings{}))

	got, err := repo.TimerSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, 480, got.AutoStopAfterMinutes)
	assert.Equal(t, 15, got.AutoPauseAfterMinutes)
	assert.Equal(t, 60, got.ReminderIntervalMinutes)
}

func TestSettingsRepo_ReminderSettingsRoundTrip(t *testing.T) {
	repo := NewSQLiteSettingsRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	want := domain.ReminderSettings{QuietStart: "20:00", QuietEnd: "06:00", QuietWeekends: false}
	require.NoError(t, repo.SaveReminderSettings(ctx, want))

	got, err := repo.ReminderSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
