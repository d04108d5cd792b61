package domain

// WeekView is the full state of one displayed week.
type WeekView struct {
	Week       WeekID      `json:"week"`
	StartDate  string      `json:"start_date"`
	EndDate    string      `json:"end_date"`
	IsCurrent  bool        `json:"is_current"`
	Today      *DayIndex   `json:"today,omitempty"`
	SlotLayout SlotLayout  `json:"slot_layout"`
	Blocks     []string    `json:"blocks"`
	Days       []DayView   `json:"days"`
	Habits     []HabitView `json:"habits"`
}

type DayView struct {
	Day    DayIndex   `json:"day"`
	Date   string     `json:"date"`
	IsPast bool       `json:"is_past"`
	Rating *int       `json:"rating,omitempty"`
	Slots  []SlotView `json:"slots"`
}

// SlotView is a slot cell; only cells with content or a completion mark are listed.
type SlotView struct {
	ID        string `json:"id"`
	Block     string `json:"block"`
	Content   string `json:"content,omitempty"`
	Completed bool   `json:"completed"`
	Past      bool   `json:"past"`
	Color     *Color `json:"color,omitempty"`
}

type HabitView struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Score   int    `json:"score"`
	Checked []bool `json:"checked"`
}

func NewSlotView(slot *TimeSlot, past bool) SlotView {
	v := SlotView{
		ID:        slot.ID(),
		Block:     slot.Block,
		Content:   slot.Content,
		Completed: slot.Completed,
		Past:      past,
	}
	if c, ok := ColorForText(slot.Content); ok {
		v.Color = &c
	}
	return v
}
