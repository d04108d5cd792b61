package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/kanso-planner/internal/core/domain"
)

func TestInMemoryHabitRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryHabitRepository()

	h, err := domain.NewHabit("Read", 10)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, h))
	assert.ErrorIs(t, repo.Create(ctx, h), domain.ErrHabitAlreadyExists)

	t.Run("Returned habits are copies", func(t *testing.T) {
		fetched, err := repo.GetByID(ctx, h.ID)
		require.NoError(t, err)
		fetched.Name = "mutated"

		again, _ := repo.GetByID(ctx, h.ID)
		assert.Equal(t, "Read", again.Name)
	})

	t.Run("Missing ids", func(t *testing.T) {
		_, err := repo.GetByID(ctx, "ghost")
		assert.ErrorIs(t, err, domain.ErrHabitNotFound)
		assert.ErrorIs(t, repo.Update(ctx, &domain.Habit{ID: "ghost"}), domain.ErrHabitNotFound)
		assert.ErrorIs(t, repo.Delete(ctx, "ghost"), domain.ErrHabitNotFound)
	})

	t.Run("DeleteAll", func(t *testing.T) {
		require.NoError(t, repo.DeleteAll(ctx))
		list, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, list)
	})
}

func TestInMemorySlotRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemorySlotRepository()
	week := domain.WeekID{Year: 2026, Week: 42}

	require.NoError(t, repo.SetContent(ctx, week, 0, "09:00", "Gym"))
	require.NoError(t, repo.SetCompleted(ctx, week, 0, "09:00", true))
	require.NoError(t, repo.SetContent(ctx, week, 0, "08:00", "Coffee"))

	s, err := repo.Get(ctx, week, 0, "09:00")
	require.NoError(t, err)
	assert.Equal(t, "Gym", s.Content)
	assert.True(t, s.Completed)

	day, err := repo.ListByDay(ctx, week, 0)
	require.NoError(t, err)
	require.Len(t, day, 2)
	assert.Equal(t, "08:00", day[0].Block)

	require.NoError(t, repo.SetContent(ctx, week, 0, "08:00", ""))
	_, err = repo.Get(ctx, week, 0, "08:00")
	assert.ErrorIs(t, err, domain.ErrSlotNotFound)

	require.NoError(t, repo.DeleteWeek(ctx, week))
	all, err := repo.ListByWeek(ctx, week)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestInMemoryCheckmarkAndRatingRepositories(t *testing.T) {
	ctx := context.Background()
	checks := NewInMemoryCheckmarkRepository()
	ratings := NewInMemoryRatingRepository()
	week := domain.WeekID{Year: 2026, Week: 42}

	require.NoError(t, checks.Set(ctx, week, "h1", 3, true))
	require.NoError(t, checks.Set(ctx, week, "h1", 3, true))
	ids, _ := checks.ListByDay(ctx, week, 3)
	assert.Equal(t, []string{"h1"}, ids)

	require.NoError(t, checks.Set(ctx, week, "h1", 3, false))
	ok, _ := checks.IsChecked(ctx, week, "h1", 3)
	assert.False(t, ok)

	require.NoError(t, ratings.Set(ctx, week, 1, 3))
	require.NoError(t, ratings.Set(ctx, week, 1, 6))
	r, err := ratings.Get(ctx, week, 1)
	require.NoError(t, err)
	assert.Equal(t, 6, r.Value)

	require.NoError(t, ratings.DeleteAll(ctx))
	_, err = ratings.Get(ctx, week, 1)
	assert.ErrorIs(t, err, domain.ErrRatingNotFound)
}
