package domain

type WeeklySummary struct {
	Week             WeekID      `json:"week"`
	StartDate        string      `json:"start_date"`
	EndDate          string      `json:"end_date"`
	TotalHabits      int         `json:"total_habits"`
	SlotsPerDay      int         `json:"slots_per_day"`
	CompletedSlots   []int       `json:"completed_slots"`
	SlotRate         float64     `json:"slot_completion_rate"`
	RatedDays        int         `json:"rated_days"`
	AverageRating    float64     `json:"average_rating"`
	OverallHabitRate float64     `json:"overall_habit_rate"`
	HabitStats       []HabitStat `json:"habits"`
}

type HabitStat struct {
	HabitID        string  `json:"habit_id"`
	HabitName      string  `json:"habit_name"`
	Score          int     `json:"score"`
	DaysCompleted  int     `json:"days_completed"`
	CompletionRate float64 `json:"completion_rate"`
	PointsEarned   int     `json:"points_earned"`
	DailyProgress  []bool  `json:"daily_progress"`
}
