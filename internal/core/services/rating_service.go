package services

import (
	"context"
	"errors"

	"github.com/comitanigiacomo/kanso-planner/internal/core/domain"
)

// RatingService handles ratings typed in by the user. It never goes through the scoring engine.
type RatingService struct {
	repo domain.RatingRepository
}

func NewRatingService(repo domain.RatingRepository) *RatingService {
	return &RatingService{repo: repo}
}

// SetManual parses input and stores it. Empty input removes the rating; invalid input writes
// nothing. The returned pointer is nil when the rating was cleared.
func (s *RatingService) SetManual(ctx context.Context, week domain.WeekID, day domain.DayIndex, input string) (*domain.DailyRating, error) {
	if !week.Valid() {
		return nil, domain.ErrInvalidWeek
	}
	if !day.Valid() {
		return nil, domain.ErrInvalidDay
	}

	value, clear, err := domain.ParseManualRating(input)
	if err != nil {
		return nil, err
	}

	if clear {
		return nil, s.repo.Delete(ctx, week, day)
	}

	if err := s.repo.Set(ctx, week, day, value); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, week, day)
}

func (s *RatingService) Clear(ctx context.Context, week domain.WeekID, day domain.DayIndex) error {
	if !week.Valid() {
		return domain.ErrInvalidWeek
	}
	if !day.Valid() {
		return domain.ErrInvalidDay
	}
	return s.repo.Delete(ctx, week, day)
}

// Get returns nil without error for days that hold no rating.
func (s *RatingService) Get(ctx context.Context, week domain.WeekID, day domain.DayIndex) (*domain.DailyRating, error) {
	r, err := s.repo.Get(ctx, week, day)
	if errors.Is(err, domain.ErrRatingNotFound) {
		return nil, nil
	}
	return r, err
}
