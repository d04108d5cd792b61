package domain

import (
	"context"
	"errors"
)

var (
	ErrHabitNotFound      = errors.New("habit not found")
	ErrHabitIDRequired    = errors.New("habit_id is required")
	ErrHabitAlreadyExists = errors.New("habit with this id already exists")
)

type HabitRepository interface {
	// Create persists a new habit definition.
	Create(ctx context.Context, habit *Habit) error

	// GetByID retrieves a habit by its unique identifier.
	GetByID(ctx context.Context, id string) (*Habit, error)

	// List returns every habit definition ordered by sort order, then creation time.
	List(ctx context.Context) ([]*Habit, error)

	// Update modifies the name, score and position of an existing habit.
	Update(ctx context.Context, habit *Habit) error

	// Delete permanently removes a habit definition.
	Delete(ctx context.Context, id string) error

	DeleteAll(ctx context.Context) error
}

type SlotRepository interface {
	// SetContent stores the text of a slot, leaving its completion flag untouched.
	// Slots left with no content and no completion mark are removed.
	SetContent(ctx context.Context, week WeekID, day DayIndex, block string, content string) error

	// SetCompleted stores the completion flag of a slot, leaving its content untouched.
	SetCompleted(ctx context.Context, week WeekID, day DayIndex, block string, completed bool) error

	// Get returns ErrSlotNotFound for slots that hold nothing.
	Get(ctx context.Context, week WeekID, day DayIndex, block string) (*TimeSlot, error)

	ListByDay(ctx context.Context, week WeekID, day DayIndex) ([]*TimeSlot, error)
	ListByWeek(ctx context.Context, week WeekID) ([]*TimeSlot, error)

	DeleteWeek(ctx context.Context, week WeekID) error
	DeleteAll(ctx context.Context) error
}

type CheckmarkRepository interface {
	// Set adds (checked) or removes (unchecked) the checkmark. Both are idempotent.
	Set(ctx context.Context, week WeekID, habitID string, day DayIndex, checked bool) error

	IsChecked(ctx context.Context, week WeekID, habitID string, day DayIndex) (bool, error)

	// ListByDay returns the ids of habits checked on that day.
	ListByDay(ctx context.Context, week WeekID, day DayIndex) ([]string, error)

	ListByWeek(ctx context.Context, week WeekID) ([]*HabitCheckmark, error)

	// DeleteByHabit drops the habit's checkmarks across all weeks.
	DeleteByHabit(ctx context.Context, habitID string) error

	DeleteWeek(ctx context.Context, week WeekID) error
	DeleteAll(ctx context.Context) error
}

type RatingRepository interface {
	Get(ctx context.Context, week WeekID, day DayIndex) (*DailyRating, error)

	// Set overwrites whatever value the day held before.
	Set(ctx context.Context, week WeekID, day DayIndex, value int) error

	Delete(ctx context.Context, week WeekID, day DayIndex) error

	ListByWeek(ctx context.Context, week WeekID) ([]*DailyRating, error)

	DeleteWeek(ctx context.Context, week WeekID) error
	DeleteAll(ctx context.Context) error
}
