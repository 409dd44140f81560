package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/tidvakt/internal/domain"
	"github.com/alexanderramin/tidvakt/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var reminderAt = time.Date(2025, 3, 3, 8, 0, 0, 0, time.UTC)

func TestReminderRepo_CreateBatchAndListByBill(t *testing.T) {
	repo := NewSQLiteReminderRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	batch := []*domain.Reminder{
		testutil.NewTestReminder("bill-1", domain.RemindOverdue3, reminderAt.AddDate(0, 0, 3)),
		testutil.NewTestReminder("bill-1", domain.RemindWeekBefore, reminderAt),
		testutil.NewTestReminder("bill-2", domain.RemindDayBefore, reminderAt),
	}
	require.NoError(t, repo.CreateBatch(ctx, batch))

	got, err := repo.ListByBill(ctx, "bill-1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, domain.RemindWeekBefore, got[0].Kind, "ordered by scheduled_for")
	assert.Equal(t, domain.RemindOverdue3, got[1].Kind)
}

func TestReminderRepo_ListUnsentExcludesSent(t *testing.T) {
	repo := NewSQLiteReminderRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	r1 := testutil.NewTestReminder("bill-1", domain.RemindWeekBefore, reminderAt)
	r2 := testutil.NewTestReminder("bill-1", domain.RemindDayBefore, reminderAt.AddDate(0, 0, 6))
	require.NoError(t, repo.CreateBatch(ctx, []*domain.Reminder{r1, r2}))

	r1.Sent = true
	require.NoError(t, repo.Update(ctx, r1))

	got, err := repo.ListUnsent(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, r2.ID, got[0].ID)
}

func TestReminderRepo_UpdatePersistsSnooze(t *testing.T) {
	repo := NewSQLiteReminderRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	r := testutil.NewTestReminder("bill-1", domain.RemindOverdue10, reminderAt)
	require.NoError(t, repo.CreateBatch(ctx, []*domain.Reminder{r}))

	require.NoError(t, r.Snooze(reminderAt, 3))
	require.NoError(t, repo.Update(ctx, r))

	got, err := repo.GetByID(ctx, r.ID)
	require.NoError(t, err)
	require.NotNil(t, got.SnoozedUntil)
	assert.True(t, got.SnoozedUntil.Equal(*r.SnoozedUntil))
}

func TestReminderRepo_GetMissing(t *testing.T) {
	repo := NewSQLiteReminderRepo(testutil.NewTestDB(t))
	_, err := repo.GetByID(context.Background(), "nope")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReminderRepo_DeleteByBill(t *testing.T) {
	repo := NewSQLiteReminderRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.CreateBatch(ctx, []*domain.Reminder{
		testutil.NewTestReminder("bill-1", domain.RemindWeekBefore, reminderAt),
		testutil.NewTestReminder("bill-1", domain.RemindDayBefore, reminderAt),
	}))

	require.NoError(t, repo.DeleteByBill(ctx, "bill-1"))
	got, err := repo.ListByBill(ctx, "bill-1")
	require.NoError(t, err)
	assert.Empty(t, got)

	// Deleting again is a no-op, not an error.
	require.NoError(t, repo.DeleteByBill(ctx, "bill-1"))
}
