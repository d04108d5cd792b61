package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/comitanigiacomo/kanso-planner/internal/adapters/repository"
	"github.com/comitanigiacomo/kanso-planner/internal/core/domain"
	"github.com/comitanigiacomo/kanso-planner/internal/core/services"
)

// Wednesday of 2026-W42, mid-morning.
var testNow = time.Date(2026, 10, 14, 10, 30, 0, 0, time.UTC)

var (
	currentWeek = domain.WeekID{Year: 2026, Week: 42}
	lastWeek    = domain.WeekID{Year: 2026, Week: 41}
)

const (
	mon domain.DayIndex = iota
	tue
	wed
	thu
	fri
	sat
	sun
)

type fixture struct {
	habits   *repository.InMemoryHabitRepository
	slots    *repository.InMemorySlotRepository
	checks   *repository.InMemoryCheckmarkRepository
	ratings  *repository.InMemoryRatingRepository
	calendar *services.Calendar
	scoring  *services.ScoringService
}

func newFixture(layout domain.SlotLayout) *fixture {
	f := &fixture{
		habits:   repository.NewInMemoryHabitRepository(),
		slots:    repository.NewInMemorySlotRepository(),
		checks:   repository.NewInMemoryCheckmarkRepository(),
		ratings:  repository.NewInMemoryRatingRepository(),
		calendar: services.NewCalendar(domain.FixedClock(testNow), time.UTC),
	}
	f.scoring = services.NewScoringService(f.slots, f.habits, f.checks, f.ratings, f.calendar, layout, zap.NewNop())
	return f
}

func (f *fixture) slotService(queue services.ContentQueue) *services.SlotService {
	return services.NewSlotService(f.slots, f.scoring, f.calendar, queue)
}

func (f *fixture) habitService() *services.HabitService {
	return services.NewHabitService(f.habits, f.checks, f.scoring, f.calendar)
}

func (f *fixture) plannerService(queue services.ContentQueue) *services.PlannerService {
	return services.NewPlannerService(f.slotService(queue), f.slots, f.habits, f.checks, f.ratings, f.scoring, f.calendar, zap.NewNop())
}

func (f *fixture) statsService() *services.StatsService {
	return services.NewStatsService(f.habits, f.checks, f.slots, f.ratings, f.calendar, f.scoring.Layout())
}

func (f *fixture) ratingValue(t *testing.T, week domain.WeekID, day domain.DayIndex) (int, bool) {
	t.Helper()
	r, err := services.NewRatingService(f.ratings).Get(context.Background(), week, day)
	require.NoError(t, err)
	if r == nil {
		return 0, false
	}
	return r.Value, true
}
