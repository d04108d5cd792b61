package domain

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

var (
	ErrHabitNameEmpty   = errors.New("habit name cannot be empty")
	ErrHabitNameTooLong = errors.New("habit name is too long (max 100 chars)")
)

const (
	MinHabitScore     = 1
	MaxHabitScore     = 50
	DefaultHabitScore = 10
	MaxHabitNameLen   = 100
)

// Habit is a weighted daily checklist item. Definitions are shared by every week.
type Habit struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Score     int       `json:"score" db:"score"`
	SortOrder int       `json:"sort_order" db:"sort_order"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// ClampHabitScore forces a weight into [MinHabitScore, MaxHabitScore].
func ClampHabitScore(score int) int {
	if score < MinHabitScore {
		return MinHabitScore
	}
	if score > MaxHabitScore {
		return MaxHabitScore
	}
	return score
}

func normalizeName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", ErrHabitNameEmpty
	}
	if utf8.RuneCountInString(trimmed) > MaxHabitNameLen {
		return "", ErrHabitNameTooLong
	}
	return trimmed, nil
}

func NewHabit(name string, score int) (*Habit, error) {
	cleanName, err := normalizeName(name)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	return &Habit{
		ID:        uuid.New().String(),
		Name:      cleanName,
		Score:     ClampHabitScore(score),
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func (h *Habit) Rename(name string) error {
	cleanName, err := normalizeName(name)
	if err != nil {
		return err
	}
	h.Name = cleanName
	h.UpdatedAt = time.Now().UTC()
	return nil
}

func (h *Habit) SetScore(score int) {
	h.Score = ClampHabitScore(score)
	h.UpdatedAt = time.Now().UTC()
}

func (h *Habit) ChangePosition(newOrder int) {
	h.SortOrder = newOrder
	h.UpdatedAt = time.Now().UTC()
}
