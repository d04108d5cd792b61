package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/comitanigiacomo/kanso-planner/internal/core/domain"
	"github.com/comitanigiacomo/kanso-planner/internal/core/workers"
)

// ContentQueue defers slot text writes. *workers.ContentSaver implements it.
type ContentQueue interface {
	Enqueue(ctx context.Context, edit workers.ContentEdit) error
	Flush(ctx context.Context) error
}

type SlotService struct {
	repo     domain.SlotRepository
	scoring  *ScoringService
	calendar *Calendar
	queue    ContentQueue
}

// NewSlotService wires the slot operations. queue may be nil, in which case content is written
// immediately.
func NewSlotService(repo domain.SlotRepository, scoring *ScoringService, calendar *Calendar, queue ContentQueue) *SlotService {
	return &SlotService{
		repo:     repo,
		scoring:  scoring,
		calendar: calendar,
		queue:    queue,
	}
}

type SetContentInput struct {
	Week    domain.WeekID
	Day     domain.DayIndex
	Block   string
	Content string
}

type ToggleResult struct {
	Slot   domain.SlotView `json:"slot"`
	Rating *int            `json:"rating,omitempty"`
	Score  DailyScore      `json:"score"`
}

func (s *SlotService) validate(week domain.WeekID, day domain.DayIndex, block string) error {
	if !week.Valid() {
		return domain.ErrInvalidWeek
	}
	if !day.Valid() {
		return domain.ErrInvalidDay
	}
	if !s.scoring.Layout().Contains(block) {
		return domain.ErrInvalidBlock
	}
	return nil
}

func (s *SlotService) isPast(week domain.WeekID, day domain.DayIndex, block string) bool {
	start, err := s.scoring.Layout().BlockStart(block)
	if err != nil {
		return false
	}
	return s.calendar.IsPastSlot(day, start, week)
}

// SetContent stores the text of a slot. Completion and ratings are left alone.
func (s *SlotService) SetContent(ctx context.Context, input SetContentInput) (domain.SlotView, error) {
	if err := s.validate(input.Week, input.Day, input.Block); err != nil {
		return domain.SlotView{}, err
	}

	content, err := domain.NormalizeContent(input.Content)
	if err != nil {
		return domain.SlotView{}, err
	}

	if s.queue != nil {
		err = s.queue.Enqueue(ctx, workers.ContentEdit{Week: input.Week, Day: input.Day, Block: input.Block, Content: content})
	} else {
		err = s.repo.SetContent(ctx, input.Week, input.Day, input.Block, content)
	}
	if err != nil {
		return domain.SlotView{}, fmt.Errorf("save slot content: %w", err)
	}

	slot := &domain.TimeSlot{Week: input.Week, Day: input.Day, Block: input.Block, Content: content}
	if existing, err := s.repo.Get(ctx, input.Week, input.Day, input.Block); err == nil {
		slot.Completed = existing.Completed
	}

	return domain.NewSlotView(slot, s.isPast(input.Week, input.Day, input.Block)), nil
}

// ToggleCompletion flips the completion mark of a slot and recomputes that day's score.
func (s *SlotService) ToggleCompletion(ctx context.Context, week domain.WeekID, day domain.DayIndex, block string) (*ToggleResult, error) {
	if err := s.validate(week, day, block); err != nil {
		return nil, err
	}

	// Pending text must land first so the returned view is complete.
	if err := s.Sync(ctx); err != nil {
		return nil, err
	}

	current, err := s.repo.Get(ctx, week, day, block)
	if err != nil && !errors.Is(err, domain.ErrSlotNotFound) {
		return nil, err
	}
	if current == nil {
		current = &domain.TimeSlot{Week: week, Day: day, Block: block}
	}

	current.Completed = !current.Completed
	if err := s.repo.SetCompleted(ctx, week, day, block, current.Completed); err != nil {
		return nil, err
	}

	score, err := s.scoring.ComputeDailyScore(ctx, week, day)
	if err != nil {
		return nil, err
	}

	res := &ToggleResult{
		Slot:  domain.NewSlotView(current, s.isPast(week, day, block)),
		Score: score,
	}
	if score.Applied {
		v := score.Score
		res.Rating = &v
	}
	return res, nil
}

func (s *SlotService) Get(ctx context.Context, week domain.WeekID, day domain.DayIndex, block string) (domain.SlotView, error) {
	if err := s.validate(week, day, block); err != nil {
		return domain.SlotView{}, err
	}
	if err := s.Sync(ctx); err != nil {
		return domain.SlotView{}, err
	}

	slot, err := s.repo.Get(ctx, week, day, block)
	if errors.Is(err, domain.ErrSlotNotFound) {
		slot = &domain.TimeSlot{Week: week, Day: day, Block: block}
	} else if err != nil {
		return domain.SlotView{}, err
	}
	return domain.NewSlotView(slot, s.isPast(week, day, block)), nil
}

// ListWeek returns the stored slots of week, pending text included.
func (s *SlotService) ListWeek(ctx context.Context, week domain.WeekID) ([]*domain.TimeSlot, error) {
	if !week.Valid() {
		return nil, domain.ErrInvalidWeek
	}
	if err := s.Sync(ctx); err != nil {
		return nil, err
	}
	return s.repo.ListByWeek(ctx, week)
}

// Sync writes any debounced text still waiting in the queue.
func (s *SlotService) Sync(ctx context.Context) error {
	if s.queue == nil {
		return nil
	}
	if err := s.queue.Flush(ctx); err != nil {
		return fmt.Errorf("flush slot content: %w", err)
	}
	return nil
}
