package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDisplayAgeFromBirthDate(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.Local)

	tests := []struct {
		name  string
		child Child
		want  int
	}{
		{"birthday already passed this year", Child{BirthDate: "2021-02-10", Age: 99}, 3},
		{"birthday later this year", Child{BirthDate: "2021-08-10", Age: 99}, 2},
		{"birthday today", Child{BirthDate: "2021-05-01"}, 3},
		{"no birth date falls back to stored age", Child{Age: 4}, 4},
		{"unparseable birth date falls back", Child{BirthDate: "not-a-date", Age: 5}, 5},
		{"future birth date clamps to zero", Child{BirthDate: "2025-01-01"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.child.DisplayAge(now))
		})
	}
}
