package journal

// Category classifies a journal record. The set is closed; an unknown value
// reaching Label is a caller bug, not a runtime condition.
type Category string

const (
	CategoryAchievement Category = "achievement"
	CategoryHappy       Category = "happy"
	CategoryFailure     Category = "failure"
	CategoryTrouble     Category = "trouble"
)

var categoryLabels = map[Category]string{
	CategoryAchievement: "Achievement",
	CategoryHappy:       "Happy moment",
	CategoryFailure:     "Setback",
	CategoryTrouble:     "Trouble",
}

// Label returns the human-readable display name for the category.
func (c Category) Label() string {
	return categoryLabels[c]
}

// Valid reports whether c is one of the four known categories.
func (c Category) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}

// Categories returns all categories in display order.
func Categories() []Category {
	return []Category{CategoryAchievement, CategoryHappy, CategoryFailure, CategoryTrouble}
}
