package services_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/kanso-planner/internal/core/domain"
)

func TestPlannerService_OpenWeek(t *testing.T) {
	ctx := context.Background()

	t.Run("Success: Builds the current week", func(t *testing.T) {
		f := newFixture(domain.SlotLayoutThreeHour)
		svc := f.plannerService(nil)
		h := seedHabit(t, f, "Read", 8)

		require.NoError(t, f.slots.SetContent(ctx, currentWeek, mon, "09:00", "Gym"))
		require.NoError(t, f.slots.SetCompleted(ctx, currentWeek, mon, "09:00", true))
		require.NoError(t, f.slots.SetContent(ctx, currentWeek, wed, "12:00", "Lunch"))
		require.NoError(t, f.checks.Set(ctx, currentWeek, h.ID, tue, true))
		require.NoError(t, f.ratings.Set(ctx, currentWeek, fri, 7))

		view, err := svc.OpenWeek(ctx, currentWeek)
		require.NoError(t, err)

		assert.True(t, view.IsCurrent)
		require.NotNil(t, view.Today)
		assert.Equal(t, wed, *view.Today)
		assert.Equal(t, "2026-10-12", view.StartDate)
		assert.Equal(t, "2026-10-18", view.EndDate)
		assert.Equal(t, domain.SlotLayoutThreeHour.Blocks(), view.Blocks)
		require.Len(t, view.Days, domain.DaysPerWeek)

		pastFlags := make([]bool, 0, domain.DaysPerWeek)
		for _, d := range view.Days {
			pastFlags = append(pastFlags, d.IsPast)
		}
		if diff := cmp.Diff([]bool{true, true, false, false, false, false, false}, pastFlags); diff != "" {
			t.Errorf("past days mismatch (-want +got):\n%s", diff)
		}

		require.Len(t, view.Days[mon].Slots, 1)
		gym := view.Days[mon].Slots[0]
		assert.Equal(t, "Mon-09:00", gym.ID)
		assert.True(t, gym.Completed)
		assert.True(t, gym.Past)
		assert.NotNil(t, gym.Color)

		require.Len(t, view.Days[wed].Slots, 1)
		assert.False(t, view.Days[wed].Slots[0].Past, "12:00 has not started at 10:30")

		// Mon: 1 of 16 -> 1. Tue: 8 of 16 -> 5. Fri keeps its manual 7.
		require.NotNil(t, view.Days[mon].Rating)
		assert.Equal(t, 1, *view.Days[mon].Rating)
		require.NotNil(t, view.Days[tue].Rating)
		assert.Equal(t, 5, *view.Days[tue].Rating)
		assert.Nil(t, view.Days[wed].Rating)
		require.NotNil(t, view.Days[fri].Rating)
		assert.Equal(t, 7, *view.Days[fri].Rating)

		require.Len(t, view.Habits, 1)
		want := domain.HabitView{ID: h.ID, Name: "Read", Score: 8, Checked: []bool{false, true, false, false, false, false, false}}
		if diff := cmp.Diff(want, view.Habits[0]); diff != "" {
			t.Errorf("habit view mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("Success: Other weeks have no past days and are never scored", func(t *testing.T) {
		f := newFixture(domain.SlotLayoutHourly)
		svc := f.plannerService(nil)
		require.NoError(t, f.slots.SetCompleted(ctx, lastWeek, mon, "09:00", true))

		view, err := svc.OpenWeek(ctx, lastWeek)
		require.NoError(t, err)
		assert.False(t, view.IsCurrent)
		assert.Nil(t, view.Today)
		for _, d := range view.Days {
			assert.False(t, d.IsPast)
			assert.Nil(t, d.Rating)
			for _, s := range d.Slots {
				assert.False(t, s.Past)
			}
		}
	})

	t.Run("Success: Pending text is flushed before reading", func(t *testing.T) {
		f := newFixture(domain.SlotLayoutHourly)
		queue := new(MockContentQueue)
		svc := f.plannerService(queue)
		queue.On("Flush", mock.Anything).Return(nil).Once()

		_, err := svc.OpenWeek(ctx, currentWeek)
		require.NoError(t, err)
		queue.AssertExpectations(t)
	})

	t.Run("Error: Invalid week", func(t *testing.T) {
		f := newFixture(domain.SlotLayoutHourly)
		_, err := f.plannerService(nil).OpenWeek(ctx, domain.WeekID{Year: 2026, Week: 0})
		assert.ErrorIs(t, err, domain.ErrInvalidWeek)
	})
}

func TestPlannerService_Navigate(t *testing.T) {
	f := newFixture(domain.SlotLayoutHourly)
	svc := f.plannerService(nil)

	assert.Equal(t, currentWeek, svc.CurrentWeek())

	next, err := svc.Navigate(currentWeek, 1)
	require.NoError(t, err)
	assert.Equal(t, domain.WeekID{Year: 2026, Week: 43}, next)

	prev, err := svc.Navigate(domain.WeekID{Year: 2026, Week: 1}, -1)
	require.NoError(t, err)
	assert.Equal(t, domain.WeekID{Year: 2025, Week: 52}, prev)

	_, err = svc.Navigate(domain.WeekID{}, 1)
	assert.ErrorIs(t, err, domain.ErrInvalidWeek)
}

func TestPlannerService_Clear(t *testing.T) {
	ctx := context.Background()

	seed := func(t *testing.T, f *fixture) *domain.Habit {
		h := seedHabit(t, f, "Read", 5)
		for _, w := range []domain.WeekID{currentWeek, lastWeek} {
			require.NoError(t, f.slots.SetContent(ctx, w, mon, "09:00", "Gym"))
			require.NoError(t, f.checks.Set(ctx, w, h.ID, mon, true))
			require.NoError(t, f.ratings.Set(ctx, w, mon, 6))
		}
		return h
	}

	t.Run("Success: ClearWeek only touches that week", func(t *testing.T) {
		f := newFixture(domain.SlotLayoutHourly)
		h := seed(t, f)

		require.NoError(t, f.plannerService(nil).ClearWeek(ctx, lastWeek))

		slots, _ := f.slots.ListByWeek(ctx, lastWeek)
		marks, _ := f.checks.ListByWeek(ctx, lastWeek)
		ratings, _ := f.ratings.ListByWeek(ctx, lastWeek)
		assert.Empty(t, slots)
		assert.Empty(t, marks)
		assert.Empty(t, ratings)

		slots, _ = f.slots.ListByWeek(ctx, currentWeek)
		assert.Len(t, slots, 1)
		_, err := f.habits.GetByID(ctx, h.ID)
		assert.NoError(t, err)
	})

	t.Run("Success: ClearAll removes everything including habits", func(t *testing.T) {
		f := newFixture(domain.SlotLayoutHourly)
		seed(t, f)

		require.NoError(t, f.plannerService(nil).ClearAll(ctx))

		for _, w := range []domain.WeekID{currentWeek, lastWeek} {
			slots, _ := f.slots.ListByWeek(ctx, w)
			marks, _ := f.checks.ListByWeek(ctx, w)
			ratings, _ := f.ratings.ListByWeek(ctx, w)
			assert.Empty(t, slots)
			assert.Empty(t, marks)
			assert.Empty(t, ratings)
		}
		habits, _ := f.habits.List(ctx)
		assert.Empty(t, habits)
	})
}
