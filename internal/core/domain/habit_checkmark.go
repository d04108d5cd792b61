package domain

import (
	"strings"
	"time"
)

// HabitCheckmark marks a habit as done on one day of one week. Presence means checked.
type HabitCheckmark struct {
	Week      WeekID    `json:"week"`
	HabitID   string    `json:"habit_id"`
	Day       DayIndex  `json:"day"`
	CheckedAt time.Time `json:"checked_at"`
}

func NewHabitCheckmark(week WeekID, habitID string, day DayIndex) *HabitCheckmark {
	return &HabitCheckmark{
		Week:      week,
		HabitID:   habitID,
		Day:       day,
		CheckedAt: time.Now().UTC(),
	}
}

func (c *HabitCheckmark) Validate() error {
	if strings.TrimSpace(c.HabitID) == "" {
		return ErrHabitIDRequired
	}
	if !c.Week.Valid() {
		return ErrInvalidWeek
	}
	if !c.Day.Valid() {
		return ErrInvalidDay
	}
	return nil
}
