package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/comitanigiacomo/kanso-planner/internal/core/domain"
)

// PlannerService assembles whole weeks and clears stored data.
type PlannerService struct {
	slots    *SlotService
	slotRepo domain.SlotRepository
	habits   domain.HabitRepository
	checks   domain.CheckmarkRepository
	ratings  domain.RatingRepository
	scoring  *ScoringService
	calendar *Calendar
	logger   *zap.Logger
}

func NewPlannerService(
	slots *SlotService,
	slotRepo domain.SlotRepository,
	habits domain.HabitRepository,
	checks domain.CheckmarkRepository,
	ratings domain.RatingRepository,
	scoring *ScoringService,
	calendar *Calendar,
	logger *zap.Logger,
) *PlannerService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PlannerService{
		slots:    slots,
		slotRepo: slotRepo,
		habits:   habits,
		checks:   checks,
		ratings:  ratings,
		scoring:  scoring,
		calendar: calendar,
		logger:   logger,
	}
}

func (s *PlannerService) CurrentWeek() domain.WeekID {
	return s.calendar.CurrentWeek()
}

func (s *PlannerService) Navigate(week domain.WeekID, offset int) (domain.WeekID, error) {
	if !week.Valid() {
		return domain.WeekID{}, domain.ErrInvalidWeek
	}
	return s.calendar.Navigate(week, offset), nil
}

// OpenWeek refreshes the derived ratings of the week's past days and returns its full state.
func (s *PlannerService) OpenWeek(ctx context.Context, week domain.WeekID) (*domain.WeekView, error) {
	if !week.Valid() {
		return nil, domain.ErrInvalidWeek
	}

	if err := s.slots.Sync(ctx); err != nil {
		return nil, err
	}

	if _, err := s.scoring.RecalculateAllPastDays(ctx, week); err != nil {
		return nil, err
	}

	return s.buildView(ctx, week)
}

func (s *PlannerService) buildView(ctx context.Context, week domain.WeekID) (*domain.WeekView, error) {
	layout := s.scoring.Layout()
	loc := s.calendar.Location()
	start, end := s.calendar.DateRange(week)

	habits, err := s.habits.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("open week: list habits: %w", err)
	}
	slots, err := s.slotRepo.ListByWeek(ctx, week)
	if err != nil {
		return nil, fmt.Errorf("open week: list slots: %w", err)
	}
	marks, err := s.checks.ListByWeek(ctx, week)
	if err != nil {
		return nil, fmt.Errorf("open week: list checkmarks: %w", err)
	}
	ratings, err := s.ratings.ListByWeek(ctx, week)
	if err != nil {
		return nil, fmt.Errorf("open week: list ratings: %w", err)
	}

	view := &domain.WeekView{
		Week:       week,
		StartDate:  start,
		EndDate:    end,
		IsCurrent:  s.calendar.IsCurrentWeek(week),
		SlotLayout: layout,
		Blocks:     layout.Blocks(),
		Days:       make([]domain.DayView, domain.DaysPerWeek),
		Habits:     make([]domain.HabitView, 0, len(habits)),
	}
	if view.IsCurrent {
		today := s.calendar.Today()
		view.Today = &today
	}

	for d := domain.DayIndex(0); d < domain.DaysPerWeek; d++ {
		view.Days[d] = domain.DayView{
			Day:    d,
			Date:   week.Date(d, loc).Format(dateLayout),
			IsPast: s.calendar.IsPastDay(d, week),
			Slots:  []domain.SlotView{},
		}
	}

	for _, slot := range slots {
		if !slot.Day.Valid() {
			continue
		}
		blockStart, err := layout.BlockStart(slot.Block)
		if err != nil {
			// Written under another layout.
			continue
		}
		past := s.calendar.IsPastSlot(slot.Day, blockStart, week)
		view.Days[slot.Day].Slots = append(view.Days[slot.Day].Slots, domain.NewSlotView(slot, past))
	}

	for _, r := range ratings {
		if !r.Day.Valid() {
			continue
		}
		v := r.Value
		view.Days[r.Day].Rating = &v
	}

	checked := make(map[string][]bool, len(habits))
	for _, m := range marks {
		if !m.Day.Valid() {
			continue
		}
		if checked[m.HabitID] == nil {
			checked[m.HabitID] = make([]bool, domain.DaysPerWeek)
		}
		checked[m.HabitID][m.Day] = true
	}

	for _, h := range habits {
		flags := checked[h.ID]
		if flags == nil {
			flags = make([]bool, domain.DaysPerWeek)
		}
		view.Habits = append(view.Habits, domain.HabitView{
			ID:      h.ID,
			Name:    h.Name,
			Score:   h.Score,
			Checked: flags,
		})
	}

	return view, nil
}

// ClearWeek removes the slots, checkmarks and ratings of one week. Habits stay.
func (s *PlannerService) ClearWeek(ctx context.Context, week domain.WeekID) error {
	if !week.Valid() {
		return domain.ErrInvalidWeek
	}

	// Pending text would otherwise land after the delete.
	if err := s.slots.Sync(ctx); err != nil {
		return err
	}

	if err := s.slotRepo.DeleteWeek(ctx, week); err != nil {
		return fmt.Errorf("clear week: slots: %w", err)
	}
	if err := s.checks.DeleteWeek(ctx, week); err != nil {
		return fmt.Errorf("clear week: checkmarks: %w", err)
	}
	if err := s.ratings.DeleteWeek(ctx, week); err != nil {
		return fmt.Errorf("clear week: ratings: %w", err)
	}

	s.logger.Info("week cleared", zap.Stringer("week", week))
	return nil
}

// ClearAll removes every stored week and every habit definition.
func (s *PlannerService) ClearAll(ctx context.Context) error {
	if err := s.slots.Sync(ctx); err != nil {
		return err
	}

	if err := s.slotRepo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("clear all: slots: %w", err)
	}
	if err := s.checks.DeleteAll(ctx); err != nil {
		return fmt.Errorf("clear all: checkmarks: %w", err)
	}
	if err := s.ratings.DeleteAll(ctx); err != nil {
		return fmt.Errorf("clear all: ratings: %w", err)
	}
	if err := s.habits.DeleteAll(ctx); err != nil {
		return fmt.Errorf("clear all: habits: %w", err)
	}

	s.logger.Info("planner cleared")
	return nil
}
