package journal

import (
	"time"

	"github.com/addness-teambase/kyonodekita-sub002/models"
)

// TodayView returns the active child's entries created on now's calendar day
// in now's location. Calendar-day equality, not a rolling 24-hour window: an
// entry at 23:59 and one at 00:01 the same day both qualify.
func (s *RecordStore) TodayView(childID uint, now time.Time) []models.Record {
	out := make([]models.Record, 0)
	for _, rec := range s.entries {
		if rec.ChildID != childID {
			continue
		}
		if sameDay(rec.CreatedAt.In(now.Location()), now) {
			out = append(out, rec)
		}
	}
	return out
}

// CountByCategory returns today's per-category entry counts for the
// dashboard badges. Pure derivation over the current list, recomputed on
// every call.
func (s *RecordStore) CountByCategory(childID uint, now time.Time) map[Category]int {
	counts := make(map[Category]int, len(categoryLabels))
	for _, c := range Categories() {
		counts[c] = 0
	}
	for _, rec := range s.TodayView(childID, now) {
		counts[Category(rec.Category)]++
	}
	return counts
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
