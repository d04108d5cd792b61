package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

var (
	ErrInvalidBlock       = errors.New("invalid time block for the configured slot layout")
	ErrInvalidSlotLayout  = errors.New("invalid slot layout (must be hourly, half-hourly or three-hour)")
	ErrSlotContentTooLong = errors.New("slot content is too long (max 500 chars)")
	ErrSlotNotFound       = errors.New("time slot not found")
)

const MaxSlotContentLen = 500

// SlotLayout is the fixed partition of a day into time blocks.
type SlotLayout string

const (
	SlotLayoutHourly     SlotLayout = "hourly"
	SlotLayoutHalfHourly SlotLayout = "half-hourly"
	SlotLayoutThreeHour  SlotLayout = "three-hour"

	DefaultSlotLayout = SlotLayoutHourly
)

func ParseSlotLayout(s string) (SlotLayout, error) {
	l := SlotLayout(strings.TrimSpace(strings.ToLower(s)))
	if l == "" {
		return DefaultSlotLayout, nil
	}
	if !l.Valid() {
		return "", ErrInvalidSlotLayout
	}
	return l, nil
}

func (l SlotLayout) Valid() bool {
	switch l {
	case SlotLayoutHourly, SlotLayoutHalfHourly, SlotLayoutThreeHour:
		return true
	default:
		return false
	}
}

func (l SlotLayout) step() time.Duration {
	switch l {
	case SlotLayoutHalfHourly:
		return 30 * time.Minute
	case SlotLayoutThreeHour:
		return 3 * time.Hour
	default:
		return time.Hour
	}
}

// Blocks returns the ordered block labels ("HH:MM") covering the 24-hour day.
func (l SlotLayout) Blocks() []string {
	step := l.step()
	blocks := make([]string, 0, int(24*time.Hour/step))
	for off := time.Duration(0); off < 24*time.Hour; off += step {
		blocks = append(blocks, fmt.Sprintf("%02d:%02d", int(off.Hours()), int(off.Minutes())%60))
	}
	return blocks
}

func (l SlotLayout) Contains(block string) bool {
	_, err := l.BlockStart(block)
	return err == nil
}

// BlockStart returns the offset from midnight of a block label.
func (l SlotLayout) BlockStart(block string) (time.Duration, error) {
	if len(block) != 5 || block[2] != ':' {
		return 0, ErrInvalidBlock
	}
	h, errH := strconv.Atoi(block[:2])
	m, errM := strconv.Atoi(block[3:])
	if errH != nil || errM != nil || h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, ErrInvalidBlock
	}
	off := time.Duration(h)*time.Hour + time.Duration(m)*time.Minute
	if off%l.step() != 0 {
		return 0, ErrInvalidBlock
	}
	return off, nil
}

type TimeSlot struct {
	Week      WeekID    `json:"week"`
	Day       DayIndex  `json:"day"`
	Block     string    `json:"block"`
	Content   string    `json:"content,omitempty"`
	Completed bool      `json:"completed"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ID is the per-week slot identifier, e.g. "Mon-09:00".
func (s *TimeSlot) ID() string {
	return SlotID(s.Day, s.Block)
}

// Empty slots carry no information and are not stored.
func (s *TimeSlot) Empty() bool {
	return s.Content == "" && !s.Completed
}

func SlotID(day DayIndex, block string) string {
	return day.Key() + "-" + block
}

// NormalizeContent trims cell text; an empty result clears the slot's content.
func NormalizeContent(content string) (string, error) {
	c := strings.TrimSpace(content)
	if utf8.RuneCountInString(c) > MaxSlotContentLen {
		return "", ErrSlotContentTooLong
	}
	return c, nil
}

// IsPastSlot reports whether a block has already started before now, within the real current week.
// Past slots are the ones offering a completion checkbox.
func IsPastSlot(day DayIndex, blockStart time.Duration, current, displayed WeekID, now time.Time) bool {
	if displayed != current {
		return false
	}
	today := DayIndexOf(now)
	if day < today {
		return true
	}
	if day > today {
		return false
	}
	sinceMidnight := time.Duration(now.Hour())*time.Hour + time.Duration(now.Minute())*time.Minute
	return blockStart < sinceMidnight.Truncate(time.Hour)
}
