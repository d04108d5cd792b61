package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/kanso-planner/internal/core/domain"
)

func TestStatsService_WeeklySummary(t *testing.T) {
	ctx := context.Background()

	t.Run("Success: Aggregates habits, slots and ratings", func(t *testing.T) {
		f := newFixture(domain.SlotLayoutThreeHour)
		read := seedHabit(t, f, "Read", 10)
		run := seedHabit(t, f, "Run", 20)

		for _, d := range []domain.DayIndex{mon, tue, wed, thu, fri} {
			require.NoError(t, f.checks.Set(ctx, currentWeek, read.ID, d, true))
		}
		require.NoError(t, f.checks.Set(ctx, currentWeek, run.ID, sat, true))

		require.NoError(t, f.slots.SetCompleted(ctx, currentWeek, mon, "09:00", true))
		require.NoError(t, f.slots.SetCompleted(ctx, currentWeek, mon, "12:00", true))
		require.NoError(t, f.slots.SetCompleted(ctx, currentWeek, sun, "21:00", true))
		require.NoError(t, f.slots.SetContent(ctx, currentWeek, tue, "09:00", "not done"))

		require.NoError(t, f.ratings.Set(ctx, currentWeek, mon, 8))
		require.NoError(t, f.ratings.Set(ctx, currentWeek, tue, 5))
		require.NoError(t, f.ratings.Set(ctx, currentWeek, wed, domain.RatingNothingToRate))

		summary, err := f.statsService().WeeklySummary(ctx, currentWeek)
		require.NoError(t, err)

		assert.Equal(t, "2026-10-12", summary.StartDate)
		assert.Equal(t, 2, summary.TotalHabits)
		assert.Equal(t, 8, summary.SlotsPerDay)
		assert.Equal(t, []int{2, 0, 0, 0, 0, 0, 1}, summary.CompletedSlots)
		assert.InDelta(t, 3.0/56.0*100, summary.SlotRate, 0.001)

		assert.Equal(t, 2, summary.RatedDays)
		assert.InDelta(t, 6.5, summary.AverageRating, 0.001)

		require.Len(t, summary.HabitStats, 2)
		r := summary.HabitStats[0]
		assert.Equal(t, "Read", r.HabitName)
		assert.Equal(t, 5, r.DaysCompleted)
		assert.Equal(t, 50, r.PointsEarned)
		assert.InDelta(t, 5.0/7.0*100, r.CompletionRate, 0.001)
		assert.Equal(t, []bool{true, true, true, true, true, false, false}, r.DailyProgress)

		assert.Equal(t, 20, summary.HabitStats[1].PointsEarned)
		assert.InDelta(t, 6.0/14.0*100, summary.OverallHabitRate, 0.001)
	})

	t.Run("Success: Empty week", func(t *testing.T) {
		f := newFixture(domain.SlotLayoutHourly)

		summary, err := f.statsService().WeeklySummary(ctx, lastWeek)
		require.NoError(t, err)
		assert.Zero(t, summary.TotalHabits)
		assert.Zero(t, summary.OverallHabitRate)
		assert.Zero(t, summary.AverageRating)
		assert.Equal(t, make([]int, 7), summary.CompletedSlots)
	})

	t.Run("Error: Invalid week", func(t *testing.T) {
		f := newFixture(domain.SlotLayoutHourly)
		_, err := f.statsService().WeeklySummary(ctx, domain.WeekID{Year: 2026, Week: 60})
		assert.ErrorIs(t, err, domain.ErrInvalidWeek)
	})
}
