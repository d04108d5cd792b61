package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

var (
	ErrInvalidWeek = errors.New("invalid week (must be YYYY-Www)")
	ErrInvalidDay  = errors.New("invalid day (must be Mon..Sun)")
)

const DaysPerWeek = 7

// WeekID is an ISO-8601 week: Monday start, week 1 contains the year's first Thursday.
type WeekID struct {
	Year int
	Week int
}

func WeekOf(t time.Time) WeekID {
	y, w := t.ISOWeek()
	return WeekID{Year: y, Week: w}
}

var weekIDPattern = regexp.MustCompile(`^\d{4}-W\d{2}$`)

func ParseWeekID(s string) (WeekID, error) {
	var w WeekID
	s = strings.TrimSpace(strings.ToUpper(s))
	if !weekIDPattern.MatchString(s) {
		return WeekID{}, ErrInvalidWeek
	}
	if _, err := fmt.Sscanf(s, "%d-W%d", &w.Year, &w.Week); err != nil {
		return WeekID{}, ErrInvalidWeek
	}
	if !w.Valid() {
		return WeekID{}, ErrInvalidWeek
	}
	return w, nil
}

func (w WeekID) String() string {
	return fmt.Sprintf("%04d-W%02d", w.Year, w.Week)
}

func (w WeekID) IsZero() bool {
	return w.Year == 0 && w.Week == 0
}

func (w WeekID) Valid() bool {
	if w.Year < 1 || w.Week < 1 {
		return false
	}
	return w.Week <= weeksInYear(w.Year)
}

// Dec 28 always falls in the last ISO week of its year.
func weeksInYear(year int) int {
	_, w := time.Date(year, time.December, 28, 12, 0, 0, 0, time.UTC).ISOWeek()
	return w
}

// Start returns Monday 00:00 of the week in loc.
func (w WeekID) Start(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	// Jan 4 is always in week 1.
	jan4 := time.Date(w.Year, time.January, 4, 0, 0, 0, 0, loc)
	monday := jan4.AddDate(0, 0, -int(DayIndexOf(jan4)))
	return monday.AddDate(0, 0, (w.Week-1)*DaysPerWeek)
}

// Date returns midnight of the given day of the week.
func (w WeekID) Date(day DayIndex, loc *time.Location) time.Time {
	return w.Start(loc).AddDate(0, 0, int(day))
}

// Add moves the week by n weeks, crossing year boundaries.
func (w WeekID) Add(n int) WeekID {
	// Thursday keeps the ISO year stable.
	thursday := w.Start(time.UTC).AddDate(0, 0, 3+n*DaysPerWeek)
	return WeekOf(thursday)
}

func (w WeekID) Before(o WeekID) bool {
	if w.Year != o.Year {
		return w.Year < o.Year
	}
	return w.Week < o.Week
}

func (w WeekID) MarshalText() ([]byte, error) {
	return []byte(w.String()), nil
}

func (w *WeekID) UnmarshalText(text []byte) error {
	parsed, err := ParseWeekID(string(text))
	if err != nil {
		return err
	}
	*w = parsed
	return nil
}

// DayIndex is 0=Monday .. 6=Sunday.
type DayIndex int

var dayKeys = [DaysPerWeek]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

func DayKeys() []string {
	keys := make([]string, DaysPerWeek)
	copy(keys, dayKeys[:])
	return keys
}

func ParseDayKey(s string) (DayIndex, error) {
	s = strings.TrimSpace(s)
	for i, k := range dayKeys {
		if strings.EqualFold(k, s) {
			return DayIndex(i), nil
		}
	}
	return 0, ErrInvalidDay
}

func (d DayIndex) Valid() bool {
	return d >= 0 && d < DaysPerWeek
}

func (d DayIndex) Key() string {
	if !d.Valid() {
		return ""
	}
	return dayKeys[d]
}

func (d DayIndex) String() string {
	return d.Key()
}

func (d DayIndex) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, ErrInvalidDay
	}
	return []byte(d.Key()), nil
}

func (d *DayIndex) UnmarshalText(text []byte) error {
	parsed, err := ParseDayKey(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func DayIndexOf(t time.Time) DayIndex {
	return DayIndex((int(t.Weekday()) + 6) % DaysPerWeek)
}

// IsPastDay reports whether automatic scoring may run for day. Only days strictly before today in
// the real current week qualify; any other displayed week never does.
func IsPastDay(day DayIndex, current, displayed WeekID, today DayIndex) bool {
	if displayed != current {
		return false
	}
	return day < today
}
