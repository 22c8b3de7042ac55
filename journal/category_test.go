package journal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryLabels(t *testing.T) {
	seen := map[string]Category{}
	for _, c := range Categories() {
		label := c.Label()
		assert.NotEmpty(t, label, "category %q must have a label", c)
		prev, dup := seen[label]
		assert.False(t, dup, "label %q shared by %q and %q", label, prev, c)
		seen[label] = c
	}
	assert.Len(t, seen, 4)
}

func TestCategoryValid(t *testing.T) {
	for _, c := range Categories() {
		assert.True(t, c.Valid())
	}
	assert.False(t, Category("").Valid())
	assert.False(t, Category("angry").Valid())
	assert.False(t, Category("Achievement").Valid(), "labels are not tags")
}
