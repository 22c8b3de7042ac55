package journal

import (
	"fmt"
	"sort"
	"strings"

	"github.com/addness-teambase/kyonodekita-sub002/models"
)

// EventSource tags where a day-schedule entry came from.
type EventSource string

const (
	SourcePlain              EventSource = "plain"
	SourceFacility           EventSource = "facility"
	SourceAttendanceSchedule EventSource = "attendance_schedule"
	SourceAttendanceRecord   EventSource = "attendance_record"
)

// facilityPrefix marks facility-wide entries so they are distinguishable
// from the parent's own entries in a mixed list.
const facilityPrefix = "[Facility] "

// AttendanceDetail is the attendance sub-record attached to realized
// attendance entries. Condition and Activities are derived from the raw
// notes on every build.
type AttendanceDetail struct {
	Status     string `json:"status"`
	Arrival    string `json:"arrival,omitempty"`
	Departure  string `json:"departure,omitempty"`
	Condition  string `json:"condition,omitempty"`
	Activities string `json:"activities,omitempty"`
	RecordedBy string `json:"recorded_by,omitempty"`
}

// DayEvent is one entry in the aggregated per-day schedule.
type DayEvent struct {
	ID          string            `json:"id"`
	Source      EventSource       `json:"source"`
	Title       string            `json:"title"`
	Time        string            `json:"time,omitempty"` // HH:MM, empty = untimed
	Description string            `json:"description,omitempty"`
	Priority    string            `json:"priority,omitempty"`
	Attendance  *AttendanceDetail `json:"attendance,omitempty"`
}

// NormalizeTime strips a trailing seconds component from HH:MM:SS values.
func NormalizeTime(t string) string {
	t = strings.TrimSpace(t)
	if len(t) > 5 && t[2] == ':' && t[5] == ':' {
		return t[:5]
	}
	return t
}

// BuildDaySchedule merges the three event sources for one date and child
// into a single time-ordered list: the child's own calendar entries,
// facility-wide announcements, and attendance-derived entries. The result is
// rebuilt wholesale on every call; derived entries are never patched in
// place. Ordering is ascending by time-of-day string, with untimed entries
// after all timed ones, keeping their relative order.
func BuildDaySchedule(date string, childID uint, own []models.CalendarEvent, facility []models.Announcement, attendance []models.Attendance) []DayEvent {
	events := make([]DayEvent, 0, len(own)+len(facility)+len(attendance))

	for _, ev := range own {
		if ev.Date != date || ev.ChildID != childID {
			continue
		}
		events = append(events, DayEvent{
			ID:          fmt.Sprintf("event-%d", ev.ID),
			Source:      SourcePlain,
			Title:       ev.Title,
			Time:        NormalizeTime(ev.Time),
			Description: ev.Description,
			Priority:    ev.Priority,
		})
	}

	for _, an := range facility {
		if an.Date != date {
			continue
		}
		events = append(events, DayEvent{
			ID:          fmt.Sprintf("announcement-%d", an.ID),
			Source:      SourceFacility,
			Title:       facilityPrefix + an.Title,
			Time:        NormalizeTime(an.Time),
			Description: an.Body,
			Priority:    an.Priority,
		})
	}

	for _, at := range attendance {
		if at.Date != date || at.ChildID != childID {
			continue
		}
		events = append(events, attendanceEvent(at))
	}

	sort.SliceStable(events, func(i, j int) bool {
		ti, tj := events[i].Time, events[j].Time
		if ti == "" || tj == "" {
			return ti != "" && tj == ""
		}
		return ti < tj
	})

	return events
}

func attendanceEvent(at models.Attendance) DayEvent {
	schedArr := NormalizeTime(at.ScheduledArrival)
	schedDep := NormalizeTime(at.ScheduledDeparture)

	if at.Status == models.AttendanceStatusScheduled {
		return DayEvent{
			ID:          fmt.Sprintf("attendance-%d", at.ID),
			Source:      SourceAttendanceSchedule,
			Title:       "Planned attendance",
			Time:        schedArr,
			Description: timeRange(schedArr, schedDep),
		}
	}

	// Realized attendance. The scheduled window wins over actual times when
	// both exist: the calendar shows planned commitments, not just what
	// happened. Actual times only fill in when no schedule was recorded.
	arrival, departure := schedArr, schedDep
	if arrival == "" {
		arrival = NormalizeTime(at.ActualArrival)
	}
	if departure == "" {
		departure = NormalizeTime(at.ActualDeparture)
	}

	condition, activities := ParseAttendanceNotes(at.Notes)

	return DayEvent{
		ID:          fmt.Sprintf("attendance-%d", at.ID),
		Source:      SourceAttendanceRecord,
		Title:       "Attendance",
		Time:        arrival,
		Description: timeRange(arrival, departure),
		Attendance: &AttendanceDetail{
			Status:     at.Status,
			Arrival:    arrival,
			Departure:  departure,
			Condition:  condition,
			Activities: activities,
			RecordedBy: at.RecordedBy,
		},
	}
}

func timeRange(from, to string) string {
	switch {
	case from != "" && to != "":
		return from + " - " + to
	case from != "":
		return from
	default:
		return to
	}
}
