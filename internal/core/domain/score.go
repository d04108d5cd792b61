package domain

// ScoreInputs are the aggregated completion figures of one day.
type ScoreInputs struct {
	TotalSlots           int
	CompletedSlots       int
	TotalHabitsScore     int
	CompletedHabitsScore int
}

func (in ScoreInputs) TotalPossible() int {
	return in.TotalSlots + in.TotalHabitsScore
}

func (in ScoreInputs) Achieved() int {
	return in.CompletedSlots + in.CompletedHabitsScore
}

// Percentage is the share of achieved points, 0..100.
func (in ScoreInputs) Percentage() float64 {
	total := in.TotalPossible()
	if total == 0 {
		return 0
	}
	return float64(in.Achieved()) / float64(total) * 100
}

// CalculateDailyScore turns completion figures into a 1..10 rating.
// It returns RatingNothingToRate when there is nothing to rate.
func CalculateDailyScore(in ScoreInputs) int {
	total := in.TotalPossible()
	if total <= 0 {
		return RatingNothingToRate
	}

	// round(achieved/total*100/10), half up, in integers.
	raw := (20*in.Achieved() + total) / (2 * total)

	if raw < MinRating {
		return MinRating
	}
	if raw > MaxRating {
		return MaxRating
	}
	return raw
}
