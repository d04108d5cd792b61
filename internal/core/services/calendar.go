package services

import (
	"time"

	"github.com/comitanigiacomo/kanso-planner/internal/core/domain"
)

// Calendar resolves "now" into planner coordinates. The clock is injected so the eligibility gate
// can be tested without touching the wall clock.
type Calendar struct {
	clock domain.Clock
	loc   *time.Location
}

func NewCalendar(clock domain.Clock, loc *time.Location) *Calendar {
	if clock == nil {
		clock = domain.SystemClock{}
	}
	if loc == nil {
		loc = time.Local
	}
	return &Calendar{clock: clock, loc: loc}
}

func (c *Calendar) Now() time.Time {
	return c.clock.Now().In(c.loc)
}

func (c *Calendar) Location() *time.Location {
	return c.loc
}

func (c *Calendar) CurrentWeek() domain.WeekID {
	return domain.WeekOf(c.Now())
}

func (c *Calendar) Today() domain.DayIndex {
	return domain.DayIndexOf(c.Now())
}

func (c *Calendar) IsCurrentWeek(week domain.WeekID) bool {
	return week == c.CurrentWeek()
}

func (c *Calendar) IsPastDay(day domain.DayIndex, displayed domain.WeekID) bool {
	now := c.Now()
	return domain.IsPastDay(day, domain.WeekOf(now), displayed, domain.DayIndexOf(now))
}

func (c *Calendar) IsPastSlot(day domain.DayIndex, blockStart time.Duration, displayed domain.WeekID) bool {
	now := c.Now()
	return domain.IsPastSlot(day, blockStart, domain.WeekOf(now), displayed, now)
}

func (c *Calendar) Navigate(week domain.WeekID, offset int) domain.WeekID {
	return week.Add(offset)
}

// DateRange returns the Monday and Sunday of week as YYYY-MM-DD.
func (c *Calendar) DateRange(week domain.WeekID) (string, string) {
	start := week.Start(c.loc)
	return start.Format(dateLayout), start.AddDate(0, 0, domain.DaysPerWeek-1).Format(dateLayout)
}

const dateLayout = "2006-01-02"
