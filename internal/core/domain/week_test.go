package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/comitanigiacomo/kanso-planner/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekOf(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want domain.WeekID
	}{
		{name: "Sunday belongs to the previous ISO year", date: time.Date(2021, 1, 3, 10, 0, 0, 0, time.UTC), want: domain.WeekID{Year: 2020, Week: 53}},
		{name: "Thursday Jan 1 is week 1", date: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), want: domain.WeekID{Year: 2026, Week: 1}},
		{name: "Monday Dec 29 already in next ISO year", date: time.Date(2025, 12, 29, 8, 0, 0, 0, time.UTC), want: domain.WeekID{Year: 2026, Week: 1}},
		{name: "Mid year Sunday", date: time.Date(2026, 10, 18, 23, 59, 0, 0, time.UTC), want: domain.WeekID{Year: 2026, Week: 42}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.WeekOf(tt.date))
		})
	}
}

func TestWeekID_StartAndNavigate(t *testing.T) {
	w := domain.WeekID{Year: 2026, Week: 1}

	start := w.Start(time.UTC)
	assert.Equal(t, time.Date(2025, 12, 29, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Monday, start.Weekday())

	assert.Equal(t, time.Date(2026, 1, 4, 0, 0, 0, 0, time.UTC), w.Date(6, time.UTC))

	assert.Equal(t, domain.WeekID{Year: 2025, Week: 52}, w.Add(-1))
	assert.Equal(t, domain.WeekID{Year: 2021, Week: 1}, domain.WeekID{Year: 2020, Week: 53}.Add(1))
	assert.Equal(t, domain.WeekID{Year: 2026, Week: 43}, domain.WeekID{Year: 2026, Week: 42}.Add(1))
	assert.Equal(t, w, w.Add(0))

	for _, offset := range []int{-60, -1, 1, 60} {
		moved := w.Add(offset)
		assert.Equal(t, w, moved.Add(-offset), "Navigation must be reversible for offset %d", offset)
	}
}

func TestParseWeekID(t *testing.T) {
	tests := []struct {
		input   string
		want    domain.WeekID
		wantErr error
	}{
		{input: "2026-W42", want: domain.WeekID{Year: 2026, Week: 42}},
		{input: " 2026-w07 ", want: domain.WeekID{Year: 2026, Week: 7}},
		{input: "2020-W53", want: domain.WeekID{Year: 2020, Week: 53}},
		{input: "2021-W53", wantErr: domain.ErrInvalidWeek},
		{input: "2026-W00", wantErr: domain.ErrInvalidWeek},
		{input: "2026-42", wantErr: domain.ErrInvalidWeek},
		{input: "garbage", wantErr: domain.ErrInvalidWeek},
		{input: "2026-W42junk", wantErr: domain.ErrInvalidWeek},
		{input: "2026-W4", wantErr: domain.ErrInvalidWeek},
		{input: "x2026-W42", wantErr: domain.ErrInvalidWeek},
		{input: "", wantErr: domain.ErrInvalidWeek},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := domain.ParseWeekID(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, mustParse(t, got.String()), "String must round-trip")
		})
	}
}

func mustParse(t *testing.T, s string) domain.WeekID {
	t.Helper()
	w, err := domain.ParseWeekID(s)
	require.NoError(t, err)
	return w
}

func TestWeekID_JSON(t *testing.T) {
	payload := struct {
		Week domain.WeekID   `json:"week"`
		Day  domain.DayIndex `json:"day"`
	}{Week: domain.WeekID{Year: 2026, Week: 3}, Day: 4}

	data, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"week":"2026-W03","day":"Fri"}`, string(data))
}

func TestDays(t *testing.T) {
	assert.Equal(t, []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}, domain.DayKeys())

	d, err := domain.ParseDayKey("sun")
	require.NoError(t, err)
	assert.Equal(t, domain.DayIndex(6), d)

	_, err = domain.ParseDayKey("Funday")
	assert.ErrorIs(t, err, domain.ErrInvalidDay)

	assert.Equal(t, domain.DayIndex(0), domain.DayIndexOf(time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, domain.DayIndex(6), domain.DayIndexOf(time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)))
}

func TestIsPastDay(t *testing.T) {
	current := domain.WeekID{Year: 2026, Week: 42}

	tests := []struct {
		name      string
		day       domain.DayIndex
		displayed domain.WeekID
		today     domain.DayIndex
		want      bool
	}{
		{name: "Earlier day in current week", day: 1, displayed: current, today: 3, want: true},
		{name: "Monday when today is Sunday", day: 0, displayed: current, today: 6, want: true},
		{name: "Today is never past", day: 3, displayed: current, today: 3, want: false},
		{name: "Future day", day: 5, displayed: current, today: 3, want: false},
		{name: "Past week is never auto-scored", day: 0, displayed: current.Add(-1), today: 6, want: false},
		{name: "Future week is never auto-scored", day: 0, displayed: current.Add(1), today: 6, want: false},
		{name: "Nothing is past on Monday", day: 0, displayed: current, today: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.IsPastDay(tt.day, current, tt.displayed, tt.today))
		})
	}
}
