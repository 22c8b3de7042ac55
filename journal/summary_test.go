package journal

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/addness-teambase/kyonodekita-sub002/models"
)

func storeWith(t *testing.T, entries []models.Record) *RecordStore {
	t.Helper()
	store := NewRecordStore(&fakeSource{server: entries}, 1)
	require.NoError(t, store.Reload(context.Background()))
	return store
}

func TestTodayViewUsesCalendarDayEquality(t *testing.T) {
	loc := time.Local
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, loc)

	entries := []models.Record{
		{ID: 1, AccountID: 1, ChildID: 7, Category: "happy", Note: "late night", CreatedAt: time.Date(2024, 5, 1, 23, 59, 0, 0, loc)},
		{ID: 2, AccountID: 1, ChildID: 7, Category: "happy", Note: "early morning", CreatedAt: time.Date(2024, 5, 1, 0, 1, 0, 0, loc)},
		{ID: 3, AccountID: 1, ChildID: 7, Category: "happy", Note: "yesterday", CreatedAt: time.Date(2024, 4, 30, 23, 59, 0, 0, loc)},
		{ID: 4, AccountID: 1, ChildID: 7, Category: "happy", Note: "tomorrow", CreatedAt: time.Date(2024, 5, 2, 0, 1, 0, 0, loc)},
		{ID: 5, AccountID: 1, ChildID: 9, Category: "happy", Note: "other child today", CreatedAt: now},
	}
	store := storeWith(t, entries)

	today := store.TodayView(7, now)
	require.Len(t, today, 2, "23:59 and 00:01 of the same calendar day both qualify")
	notes := []string{today[0].Note, today[1].Note}
	assert.Contains(t, notes, "late night")
	assert.Contains(t, notes, "early morning")

	// One day later the 23:59 entry no longer qualifies.
	nextDay := now.AddDate(0, 0, 1)
	assert.Equal(t, "tomorrow", store.TodayView(7, nextDay)[0].Note)
	assert.Len(t, store.TodayView(7, nextDay), 1)
}

func TestCountByCategory(t *testing.T) {
	loc := time.Local
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, loc)

	entries := []models.Record{
		{ID: 1, AccountID: 1, ChildID: 7, Category: "achievement", CreatedAt: now},
		{ID: 2, AccountID: 1, ChildID: 7, Category: "achievement", CreatedAt: now},
		{ID: 3, AccountID: 1, ChildID: 7, Category: "trouble", CreatedAt: now},
		{ID: 4, AccountID: 1, ChildID: 7, Category: "happy", CreatedAt: now.AddDate(0, 0, -1)}, // yesterday
	}
	store := storeWith(t, entries)

	counts := store.CountByCategory(7, now)
	assert.Equal(t, 2, counts[CategoryAchievement])
	assert.Equal(t, 0, counts[CategoryHappy], "yesterday's entry does not count")
	assert.Equal(t, 0, counts[CategoryFailure])
	assert.Equal(t, 1, counts[CategoryTrouble])
	assert.Len(t, counts, 4, "every category is present for the badges")
}
