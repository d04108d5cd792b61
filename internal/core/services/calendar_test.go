package services_test

import (
	"testing"
	"time"

	"github.com/comitanigiacomo/kanso-planner/internal/core/domain"
	"github.com/comitanigiacomo/kanso-planner/internal/core/services"
	"github.com/stretchr/testify/assert"
)

func TestCalendar(t *testing.T) {
	cal := services.NewCalendar(domain.FixedClock(testNow), time.UTC)

	t.Run("Current week and today", func(t *testing.T) {
		assert.Equal(t, currentWeek, cal.CurrentWeek())
		assert.Equal(t, wed, cal.Today())
		assert.True(t, cal.IsCurrentWeek(currentWeek))
		assert.False(t, cal.IsCurrentWeek(lastWeek))
	})

	t.Run("Past days only exist in the current week", func(t *testing.T) {
		assert.True(t, cal.IsPastDay(mon, currentWeek))
		assert.True(t, cal.IsPastDay(tue, currentWeek))
		assert.False(t, cal.IsPastDay(wed, currentWeek))
		assert.False(t, cal.IsPastDay(sun, currentWeek))
		assert.False(t, cal.IsPastDay(mon, lastWeek))
		assert.False(t, cal.IsPastDay(mon, currentWeek.Add(1)))
	})

	t.Run("Past slots follow the hour", func(t *testing.T) {
		assert.True(t, cal.IsPastSlot(wed, 9*time.Hour, currentWeek))
		assert.False(t, cal.IsPastSlot(wed, 10*time.Hour, currentWeek))
		assert.False(t, cal.IsPastSlot(wed, 11*time.Hour, currentWeek))
		assert.True(t, cal.IsPastSlot(tue, 23*time.Hour, currentWeek))
		assert.False(t, cal.IsPastSlot(tue, 0, lastWeek))
	})

	t.Run("Navigate crosses years", func(t *testing.T) {
		// 2026 starts on a Thursday and has 53 ISO weeks.
		assert.Equal(t, domain.WeekID{Year: 2026, Week: 53}, cal.Navigate(domain.WeekID{Year: 2026, Week: 52}, 1))
		assert.Equal(t, domain.WeekID{Year: 2027, Week: 1}, cal.Navigate(domain.WeekID{Year: 2026, Week: 53}, 1))
		assert.Equal(t, lastWeek, cal.Navigate(currentWeek, -1))
	})

	t.Run("Date range", func(t *testing.T) {
		start, end := cal.DateRange(currentWeek)
		assert.Equal(t, "2026-10-12", start)
		assert.Equal(t, "2026-10-18", end)
	})

	t.Run("Defaults", func(t *testing.T) {
		c := services.NewCalendar(nil, nil)
		assert.Equal(t, time.Local, c.Location())
		assert.False(t, c.Now().IsZero())
	})
}
