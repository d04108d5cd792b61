package services

import (
	"context"

	"github.com/comitanigiacomo/kanso-planner/internal/core/domain"
)

type StatsService struct {
	habitRepo  domain.HabitRepository
	checkRepo  domain.CheckmarkRepository
	slotRepo   domain.SlotRepository
	ratingRepo domain.RatingRepository
	calendar   *Calendar
	layout     domain.SlotLayout
}

func NewStatsService(
	habitRepo domain.HabitRepository,
	checkRepo domain.CheckmarkRepository,
	slotRepo domain.SlotRepository,
	ratingRepo domain.RatingRepository,
	calendar *Calendar,
	layout domain.SlotLayout,
) *StatsService {
	return &StatsService{
		habitRepo:  habitRepo,
		checkRepo:  checkRepo,
		slotRepo:   slotRepo,
		ratingRepo: ratingRepo,
		calendar:   calendar,
		layout:     layout,
	}
}

func percent(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole) * 100
}

func (s *StatsService) WeeklySummary(ctx context.Context, week domain.WeekID) (*domain.WeeklySummary, error) {
	if !week.Valid() {
		return nil, domain.ErrInvalidWeek
	}

	habits, err := s.habitRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	marks, err := s.checkRepo.ListByWeek(ctx, week)
	if err != nil {
		return nil, err
	}
	slots, err := s.slotRepo.ListByWeek(ctx, week)
	if err != nil {
		return nil, err
	}
	ratings, err := s.ratingRepo.ListByWeek(ctx, week)
	if err != nil {
		return nil, err
	}

	start, end := s.calendar.DateRange(week)
	summary := &domain.WeeklySummary{
		Week:           week,
		StartDate:      start,
		EndDate:        end,
		TotalHabits:    len(habits),
		SlotsPerDay:    len(s.layout.Blocks()),
		CompletedSlots: make([]int, domain.DaysPerWeek),
		HabitStats:     make([]domain.HabitStat, 0, len(habits)),
	}

	marksByHabit := make(map[string][]bool)
	for _, m := range marks {
		if !m.Day.Valid() {
			continue
		}
		if marksByHabit[m.HabitID] == nil {
			marksByHabit[m.HabitID] = make([]bool, domain.DaysPerWeek)
		}
		marksByHabit[m.HabitID][m.Day] = true
	}

	totalChecked := 0
	for _, h := range habits {
		progress := marksByHabit[h.ID]
		if progress == nil {
			progress = make([]bool, domain.DaysPerWeek)
		}

		days := 0
		for _, done := range progress {
			if done {
				days++
			}
		}
		totalChecked += days

		summary.HabitStats = append(summary.HabitStats, domain.HabitStat{
			HabitID:        h.ID,
			HabitName:      h.Name,
			Score:          h.Score,
			DaysCompleted:  days,
			CompletionRate: percent(days, domain.DaysPerWeek),
			PointsEarned:   days * h.Score,
			DailyProgress:  progress,
		})
	}
	summary.OverallHabitRate = percent(totalChecked, len(habits)*domain.DaysPerWeek)

	completed := 0
	for _, slot := range slots {
		if slot.Completed && slot.Day.Valid() && s.layout.Contains(slot.Block) {
			summary.CompletedSlots[slot.Day]++
			completed++
		}
	}
	summary.SlotRate = percent(completed, summary.SlotsPerDay*domain.DaysPerWeek)

	sum := 0
	for _, r := range ratings {
		// The nothing-to-rate sentinel is not a rating.
		if domain.ValidateManualRating(r.Value) != nil {
			continue
		}
		sum += r.Value
		summary.RatedDays++
	}
	if summary.RatedDays > 0 {
		summary.AverageRating = float64(sum) / float64(summary.RatedDays)
	}

	return summary, nil
}
