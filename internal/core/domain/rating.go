package domain

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

var (
	ErrRatingNotFound   = errors.New("daily rating not found")
	ErrRatingInvalid    = errors.New("rating must be a whole number")
	ErrRatingOutOfRange = errors.New("rating must be between 1 and 10")
)

const (
	MinRating = 1
	MaxRating = 10

	// RatingNothingToRate is written by the scoring engine when a day has no slots and no habits.
	// It sits outside [MinRating, MaxRating] on purpose.
	RatingNothingToRate = 0
)

// DailyRating is the 1..10 score of one day. Manual and derived values share the same record;
// the latest write wins.
type DailyRating struct {
	Week      WeekID    `json:"week"`
	Day       DayIndex  `json:"day"`
	Value     int       `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ParseManualRating validates user input for a rating. An empty input means "clear the rating".
func ParseManualRating(input string) (value int, clear bool, err error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return 0, true, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, false, ErrRatingInvalid
	}
	if err := ValidateManualRating(v); err != nil {
		return 0, false, err
	}
	return v, false, nil
}

func ValidateManualRating(v int) error {
	if v < MinRating || v > MaxRating {
		return ErrRatingOutOfRange
	}
	return nil
}
