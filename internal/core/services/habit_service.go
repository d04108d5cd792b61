package services

import (
	"context"
	"fmt"

	"github.com/comitanigiacomo/kanso-planner/internal/core/domain"
)

type HabitService struct {
	repo     domain.HabitRepository
	checks   domain.CheckmarkRepository
	scoring  *ScoringService
	calendar *Calendar
}

func NewHabitService(repo domain.HabitRepository, checks domain.CheckmarkRepository, scoring *ScoringService, calendar *Calendar) *HabitService {
	return &HabitService{
		repo:     repo,
		checks:   checks,
		scoring:  scoring,
		calendar: calendar,
	}
}

// CreateHabitInput carries a new habit. A nil Score takes DefaultHabitScore; any given value is
// clamped into range.
type CreateHabitInput struct {
	Name  string
	Score *int
}

// UpdateHabitInput carries optional changes; nil fields keep their stored value.
type UpdateHabitInput struct {
	ID        string
	Name      *string
	Score     *int
	SortOrder *int
}

type CheckResult struct {
	HabitID string          `json:"habit_id"`
	Week    domain.WeekID   `json:"week"`
	Day     domain.DayIndex `json:"day"`
	Checked bool            `json:"checked"`
	Score   DailyScore      `json:"score"`
}

// Only the real current week can hold past days, so that is the week refreshed after a
// definition change.
func (s *HabitService) recalculate(ctx context.Context) error {
	if _, err := s.scoring.RecalculateAllPastDays(ctx, s.calendar.CurrentWeek()); err != nil {
		return fmt.Errorf("recalculate after habit change: %w", err)
	}
	return nil
}

func (s *HabitService) Create(ctx context.Context, input CreateHabitInput) (*domain.Habit, error) {
	score := domain.DefaultHabitScore
	if input.Score != nil {
		score = *input.Score
	}

	habit, err := domain.NewHabit(input.Name, score)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	habit.SortOrder = len(existing)

	if err := s.repo.Create(ctx, habit); err != nil {
		return nil, err
	}

	if err := s.recalculate(ctx); err != nil {
		return nil, err
	}
	return habit, nil
}

func (s *HabitService) List(ctx context.Context) ([]*domain.Habit, error) {
	return s.repo.List(ctx)
}

func (s *HabitService) Get(ctx context.Context, id string) (*domain.Habit, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *HabitService) Update(ctx context.Context, input UpdateHabitInput) (*domain.Habit, error) {
	habit, err := s.repo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if err := habit.Rename(*input.Name); err != nil {
			return nil, err
		}
	}
	if input.Score != nil {
		habit.SetScore(*input.Score)
	}
	if input.SortOrder != nil {
		habit.ChangePosition(*input.SortOrder)
	}

	if err := s.repo.Update(ctx, habit); err != nil {
		return nil, err
	}

	if err := s.recalculate(ctx); err != nil {
		return nil, err
	}
	return habit, nil
}

// Delete removes the habit together with its checkmarks in every week.
func (s *HabitService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.checks.DeleteByHabit(ctx, id); err != nil {
		return fmt.Errorf("delete checkmarks of habit %s: %w", id, err)
	}
	return s.recalculate(ctx)
}

// ToggleCheckmark flips the habit's mark for one day and recomputes that day's score.
func (s *HabitService) ToggleCheckmark(ctx context.Context, week domain.WeekID, habitID string, day domain.DayIndex) (*CheckResult, error) {
	mark := &domain.HabitCheckmark{Week: week, HabitID: habitID, Day: day}
	if err := mark.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.repo.GetByID(ctx, habitID); err != nil {
		return nil, err
	}

	checked, err := s.checks.IsChecked(ctx, week, habitID, day)
	if err != nil {
		return nil, err
	}

	if err := s.checks.Set(ctx, week, habitID, day, !checked); err != nil {
		return nil, err
	}

	score, err := s.scoring.ComputeDailyScore(ctx, week, day)
	if err != nil {
		return nil, err
	}

	return &CheckResult{
		HabitID: habitID,
		Week:    week,
		Day:     day,
		Checked: !checked,
		Score:   score,
	}, nil
}
