package journal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/addness-teambase/kyonodekita-sub002/models"
)

func TestBuildDayScheduleOrdering(t *testing.T) {
	own := []models.CalendarEvent{
		{ID: 1, ChildID: 7, Date: "2024-05-01", Title: "Dentist", Time: "14:30"},
		{ID: 2, ChildID: 7, Date: "2024-05-01", Title: "Pack spare clothes"}, // untimed
		{ID: 3, ChildID: 7, Date: "2024-05-01", Title: "Drop-off", Time: "09:00"},
		{ID: 4, ChildID: 9, Date: "2024-05-01", Title: "Other child", Time: "08:00"},
		{ID: 5, ChildID: 7, Date: "2024-05-02", Title: "Wrong day", Time: "08:00"},
	}
	events := BuildDaySchedule("2024-05-01", 7, own, nil, nil)

	require.Len(t, events, 3)
	assert.Equal(t, "09:00", events[0].Time)
	assert.Equal(t, "14:30", events[1].Time)
	assert.Equal(t, "", events[2].Time, "untimed entries sort after all timed entries")
	assert.Equal(t, "Pack spare clothes", events[2].Title)
}

func TestBuildDayScheduleUntimedStableOrder(t *testing.T) {
	own := []models.CalendarEvent{
		{ID: 1, ChildID: 7, Date: "2024-05-01", Title: "first"},
		{ID: 2, ChildID: 7, Date: "2024-05-01", Title: "second"},
		{ID: 3, ChildID: 7, Date: "2024-05-01", Title: "third"},
	}
	events := BuildDaySchedule("2024-05-01", 7, own, nil, nil)
	require.Len(t, events, 3)
	assert.Equal(t, "first", events[0].Title)
	assert.Equal(t, "second", events[1].Title)
	assert.Equal(t, "third", events[2].Title)
}

func TestBuildDayScheduleFacilityPrefix(t *testing.T) {
	facility := []models.Announcement{
		{ID: 1, Date: "2024-05-01", Title: "Sports day", Time: "10:00"},
		{ID: 2, Date: "2024-05-02", Title: "Wrong day"},
	}
	events := BuildDaySchedule("2024-05-01", 7, nil, facility, nil)

	require.Len(t, events, 1)
	assert.Equal(t, SourceFacility, events[0].Source)
	assert.Equal(t, "[Facility] Sports day", events[0].Title)
}

func TestBuildDayScheduleScheduledAttendance(t *testing.T) {
	attendance := []models.Attendance{{
		ID:                 11,
		ChildID:            7,
		Date:               "2024-05-01",
		Status:             models.AttendanceStatusScheduled,
		ScheduledArrival:   "08:30",
		ScheduledDeparture: "17:00",
	}}
	events := BuildDaySchedule("2024-05-01", 7, nil, nil, attendance)

	require.Len(t, events, 1)
	ev := events[0]
	assert.Equal(t, SourceAttendanceSchedule, ev.Source)
	assert.Equal(t, "08:30", ev.Time)
	assert.Contains(t, ev.Description, "08:30")
	assert.Contains(t, ev.Description, "17:00")
	assert.Nil(t, ev.Attendance, "a plain schedule carries no attendance sub-record")
}

func TestBuildDayScheduleRealizedPrefersScheduledWindow(t *testing.T) {
	attendance := []models.Attendance{{
		ID:                 12,
		ChildID:            7,
		Date:               "2024-05-01",
		Status:             models.AttendanceStatusAttended,
		ScheduledArrival:   "08:30",
		ScheduledDeparture: "17:00",
		ActualArrival:      "08:45",
		ActualDeparture:    "17:10",
		Notes:              "Child condition: cheerful\n\nActivities: water play",
		RecordedBy:         "Ms. Tanaka",
	}}
	events := BuildDaySchedule("2024-05-01", 7, nil, nil, attendance)

	require.Len(t, events, 1)
	ev := events[0]
	assert.Equal(t, SourceAttendanceRecord, ev.Source)
	assert.Equal(t, "08:30", ev.Time, "scheduled arrival wins over actual")
	assert.Equal(t, "08:30 - 17:00", ev.Description)
	require.NotNil(t, ev.Attendance)
	assert.Equal(t, "cheerful", ev.Attendance.Condition)
	assert.Equal(t, "water play", ev.Attendance.Activities)
	assert.Equal(t, "Ms. Tanaka", ev.Attendance.RecordedBy)
}

func TestBuildDayScheduleRealizedFallsBackToActual(t *testing.T) {
	attendance := []models.Attendance{{
		ID:            13,
		ChildID:       7,
		Date:          "2024-05-01",
		Status:        models.AttendanceStatusAttended,
		ActualArrival: "08:45:00", // seconds stripped on read
	}}
	events := BuildDaySchedule("2024-05-01", 7, nil, nil, attendance)

	require.Len(t, events, 1)
	assert.Equal(t, "08:45", events[0].Time)
	require.NotNil(t, events[0].Attendance)
	assert.Equal(t, "08:45", events[0].Attendance.Arrival)
}

func TestBuildDayScheduleMergesAllSources(t *testing.T) {
	own := []models.CalendarEvent{{ID: 1, ChildID: 7, Date: "2024-05-01", Title: "Dentist", Time: "14:30"}}
	facility := []models.Announcement{{ID: 2, Date: "2024-05-01", Title: "Sports day", Time: "10:00"}}
	attendance := []models.Attendance{{
		ID: 3, ChildID: 7, Date: "2024-05-01",
		Status: models.AttendanceStatusScheduled, ScheduledArrival: "08:30", ScheduledDeparture: "17:00",
	}}

	events := BuildDaySchedule("2024-05-01", 7, own, facility, attendance)

	require.Len(t, events, 3)
	assert.Equal(t, SourceAttendanceSchedule, events[0].Source)
	assert.Equal(t, SourceFacility, events[1].Source)
	assert.Equal(t, SourcePlain, events[2].Source)
}

func TestNormalizeTime(t *testing.T) {
	assert.Equal(t, "08:30", NormalizeTime("08:30:00"))
	assert.Equal(t, "08:30", NormalizeTime("08:30"))
	assert.Equal(t, "", NormalizeTime(""))
	assert.Equal(t, "", NormalizeTime("  "))
}
