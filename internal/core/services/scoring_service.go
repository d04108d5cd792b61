package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/comitanigiacomo/kanso-planner/internal/core/domain"
)

// DailyScore is the outcome of one recomputation. Applied is false when the day was not eligible
// and nothing was written.
type DailyScore struct {
	Week    domain.WeekID      `json:"week"`
	Day     domain.DayIndex    `json:"day"`
	Inputs  domain.ScoreInputs `json:"-"`
	Score   int                `json:"score"`
	Applied bool               `json:"applied"`
}

// ScoringService derives a day's rating from slot completion and habit checkmarks.
type ScoringService struct {
	slots    domain.SlotRepository
	habits   domain.HabitRepository
	checks   domain.CheckmarkRepository
	ratings  domain.RatingRepository
	calendar *Calendar
	layout   domain.SlotLayout
	logger   *zap.Logger
}

func NewScoringService(
	slots domain.SlotRepository,
	habits domain.HabitRepository,
	checks domain.CheckmarkRepository,
	ratings domain.RatingRepository,
	calendar *Calendar,
	layout domain.SlotLayout,
	logger *zap.Logger,
) *ScoringService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScoringService{
		slots:    slots,
		habits:   habits,
		checks:   checks,
		ratings:  ratings,
		calendar: calendar,
		layout:   layout,
		logger:   logger,
	}
}

func (s *ScoringService) Layout() domain.SlotLayout {
	return s.layout
}

// ComputeDailyScore recomputes and stores the rating of one day. It writes nothing unless the day
// lies strictly before today in the real current week. When it does write, it replaces whatever
// rating the day held, including a manual one.
func (s *ScoringService) ComputeDailyScore(ctx context.Context, week domain.WeekID, day domain.DayIndex) (DailyScore, error) {
	result := DailyScore{Week: week, Day: day}

	if !s.calendar.IsPastDay(day, week) {
		return result, nil
	}

	habits, err := s.habits.List(ctx)
	if err != nil {
		return result, fmt.Errorf("scoring: list habits: %w", err)
	}

	in, err := s.gatherInputs(ctx, week, day, habits)
	if err != nil {
		return result, err
	}

	score := domain.CalculateDailyScore(in)
	if err := s.ratings.Set(ctx, week, day, score); err != nil {
		return result, fmt.Errorf("scoring: store rating for %s %s: %w", week, day, err)
	}

	result.Inputs = in
	result.Score = score
	result.Applied = true

	s.logger.Debug("daily score recomputed",
		zap.Stringer("week", week),
		zap.Stringer("day", day),
		zap.Int("achieved", in.Achieved()),
		zap.Int("total_possible", in.TotalPossible()),
		zap.Int("score", score),
	)

	return result, nil
}

// RecalculateAllPastDays reruns ComputeDailyScore for the seven days of week. Non-past days are
// left untouched.
func (s *ScoringService) RecalculateAllPastDays(ctx context.Context, week domain.WeekID) ([]DailyScore, error) {
	results := make([]DailyScore, 0, domain.DaysPerWeek)
	for day := domain.DayIndex(0); day < domain.DaysPerWeek; day++ {
		res, err := s.ComputeDailyScore(ctx, week, day)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}

func (s *ScoringService) gatherInputs(ctx context.Context, week domain.WeekID, day domain.DayIndex, habits []*domain.Habit) (domain.ScoreInputs, error) {
	var in domain.ScoreInputs

	blocks := s.layout.Blocks()
	in.TotalSlots = len(blocks)

	slots, err := s.slots.ListByDay(ctx, week, day)
	if err != nil {
		return in, fmt.Errorf("scoring: list slots: %w", err)
	}
	for _, slot := range slots {
		// Slots written under a different layout do not count.
		if slot.Completed && s.layout.Contains(slot.Block) {
			in.CompletedSlots++
		}
	}

	checked, err := s.checks.ListByDay(ctx, week, day)
	if err != nil {
		return in, fmt.Errorf("scoring: list checkmarks: %w", err)
	}
	checkedSet := make(map[string]bool, len(checked))
	for _, id := range checked {
		checkedSet[id] = true
	}

	for _, h := range habits {
		in.TotalHabitsScore += h.Score
		if checkedSet[h.ID] {
			in.CompletedHabitsScore += h.Score
		}
	}

	return in, nil
}
