package journal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAttendanceNotes(t *testing.T) {
	tests := []struct {
		name           string
		notes          string
		wantCondition  string
		wantActivities string
	}{
		{
			name:           "both sections",
			notes:          "Child condition: slept well\n\nActivities: finger painting, outdoor play",
			wantCondition:  "slept well",
			wantActivities: "finger painting, outdoor play",
		},
		{
			name:          "condition only",
			notes:         "Child condition: a little feverish in the afternoon",
			wantCondition: "a little feverish in the afternoon",
		},
		{
			name:           "activities only",
			notes:          "Activities: story time",
			wantActivities: "story time",
		},
		{
			name:           "reversed order",
			notes:          "Activities: nap\n\nChild condition: cheerful",
			wantCondition:  "cheerful",
			wantActivities: "nap",
		},
		{name: "empty", notes: ""},
		{name: "unlabeled", notes: "picked up early by grandmother"},
		{name: "unlabeled paragraphs", notes: "first paragraph\n\nsecond paragraph"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			condition, activities := ParseAttendanceNotes(tt.notes)
			assert.Equal(t, tt.wantCondition, condition)
			assert.Equal(t, tt.wantActivities, activities)
		})
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	pairs := [][2]string{
		{"slept well", "outdoor play"},
		{"quiet after lunch", ""},
		{"", "building blocks"},
		{"", ""},
	}
	for _, p := range pairs {
		condition, activities := ParseAttendanceNotes(FormatAttendanceNotes(p[0], p[1]))
		assert.Equal(t, p[0], condition)
		assert.Equal(t, p[1], activities)
	}
}

func TestFormatAttendanceNotesEmpty(t *testing.T) {
	assert.Equal(t, "", FormatAttendanceNotes("", ""))
	assert.Equal(t, "", FormatAttendanceNotes("  ", "\n"))
}
