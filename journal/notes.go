package journal

import "strings"

// Attendance notes store two free-text sections in one column using labeled
// paragraphs separated by a blank line:
//
//	Child condition: slept well, a little quiet after lunch
//
//	Activities: finger painting, outdoor play
const (
	conditionLabel  = "Child condition:"
	activitiesLabel = "Activities:"
)

// ParseAttendanceNotes extracts the condition and activities sections from a
// combined notes string. It is total: empty, absent, or unlabeled input
// yields two empty strings.
func ParseAttendanceNotes(notes string) (condition, activities string) {
	for _, para := range strings.Split(notes, "\n\n") {
		para = strings.TrimSpace(para)
		switch {
		case strings.HasPrefix(para, conditionLabel):
			condition = strings.TrimSpace(strings.TrimPrefix(para, conditionLabel))
		case strings.HasPrefix(para, activitiesLabel):
			activities = strings.TrimSpace(strings.TrimPrefix(para, activitiesLabel))
		}
	}
	return condition, activities
}

// FormatAttendanceNotes renders a (condition, activities) pair back into the
// labeled-paragraph convention. Parsing the result reproduces the pair.
func FormatAttendanceNotes(condition, activities string) string {
	condition = strings.TrimSpace(condition)
	activities = strings.TrimSpace(activities)
	if condition == "" && activities == "" {
		return ""
	}
	var paras []string
	if condition != "" {
		paras = append(paras, conditionLabel+" "+condition)
	}
	if activities != "" {
		paras = append(paras, activitiesLabel+" "+activities)
	}
	return strings.Join(paras, "\n\n")
}
