package domain_test

import (
	"strings"
	"testing"
	"time"

	"github.com/comitanigiacomo/kanso-planner/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestNewHabit(t *testing.T) {
	t.Run("Success: Creates valid habit with trimmed name", func(t *testing.T) {
		h, err := domain.NewHabit("  Drink Water  ", 15)

		assert.Nil(t, err)
		assert.NotNil(t, h)
		assert.Equal(t, "Drink Water", h.Name)
		assert.Equal(t, 15, h.Score)
		assert.NotEmpty(t, h.ID)
		assert.Equal(t, 0, h.SortOrder)

		assert.WithinDuration(t, time.Now().UTC(), h.CreatedAt, 2*time.Second)
		assert.Equal(t, h.CreatedAt, h.UpdatedAt)
	})

	t.Run("Success: Unique IDs", func(t *testing.T) {
		a, _ := domain.NewHabit("Read", 5)
		b, _ := domain.NewHabit("Read", 5)
		assert.NotEqual(t, a.ID, b.ID)
	})

	t.Run("Error: Empty Name", func(t *testing.T) {
		_, err := domain.NewHabit("   ", 10)
		assert.Equal(t, domain.ErrHabitNameEmpty, err)
	})

	t.Run("Error: Name Too Long", func(t *testing.T) {
		_, err := domain.NewHabit(strings.Repeat("a", 101), 10)
		assert.Equal(t, domain.ErrHabitNameTooLong, err)
	})
}

func TestClampHabitScore(t *testing.T) {
	tests := []struct {
		name  string
		input int
		want  int
	}{
		{name: "Below range clamps to 1", input: 0, want: 1},
		{name: "Negative clamps to 1", input: -20, want: 1},
		{name: "Lower bound kept", input: 1, want: 1},
		{name: "Inside range kept", input: 27, want: 27},
		{name: "Upper bound kept", input: 50, want: 50},
		{name: "Above range clamps to 50", input: 51, want: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.ClampHabitScore(tt.input))

			h, err := domain.NewHabit("Habit", tt.input)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, h.Score, "NewHabit must clamp the score as well")
		})
	}
}

func TestHabit_Mutations(t *testing.T) {
	t.Run("SetScore clamps and bumps UpdatedAt", func(t *testing.T) {
		h, _ := domain.NewHabit("Run", 10)
		before := h.UpdatedAt
		time.Sleep(time.Millisecond)

		h.SetScore(99)

		assert.Equal(t, domain.MaxHabitScore, h.Score)
		assert.True(t, h.UpdatedAt.After(before))
	})

	t.Run("Rename validates name", func(t *testing.T) {
		h, _ := domain.NewHabit("Run", 10)

		assert.NoError(t, h.Rename(" Walk "))
		assert.Equal(t, "Walk", h.Name)

		assert.Equal(t, domain.ErrHabitNameEmpty, h.Rename(""))
		assert.Equal(t, "Walk", h.Name, "Failed rename must keep the old name")
	})

	t.Run("ChangePosition", func(t *testing.T) {
		h, _ := domain.NewHabit("Run", 10)
		h.ChangePosition(3)
		assert.Equal(t, 3, h.SortOrder)
	})
}
