package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/comitanigiacomo/kanso-planner/internal/core/domain"
)

var (
	_ domain.HabitRepository     = (*InMemoryHabitRepository)(nil)
	_ domain.SlotRepository      = (*InMemorySlotRepository)(nil)
	_ domain.CheckmarkRepository = (*InMemoryCheckmarkRepository)(nil)
	_ domain.RatingRepository    = (*InMemoryRatingRepository)(nil)
)

type InMemoryHabitRepository struct {
	store map[string]*domain.Habit

	mu sync.RWMutex
}

func NewInMemoryHabitRepository() *InMemoryHabitRepository {
	return &InMemoryHabitRepository{
		store: make(map[string]*domain.Habit),
	}
}

func (r *InMemoryHabitRepository) Create(ctx context.Context, habit *domain.Habit) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[habit.ID]; exists {
		return domain.ErrHabitAlreadyExists
	}

	clone := *habit
	r.store[habit.ID] = &clone
	return nil
}

func (r *InMemoryHabitRepository) GetByID(ctx context.Context, id string) (*domain.Habit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	habit, ok := r.store[id]
	if !ok {
		return nil, domain.ErrHabitNotFound
	}
	clone := *habit
	return &clone, nil
}

func (r *InMemoryHabitRepository) List(ctx context.Context) ([]*domain.Habit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	habits := make([]*domain.Habit, 0, len(r.store))
	for _, h := range r.store {
		clone := *h
		habits = append(habits, &clone)
	}

	sort.Slice(habits, func(i, j int) bool {
		if habits[i].SortOrder != habits[j].SortOrder {
			return habits[i].SortOrder < habits[j].SortOrder
		}
		return habits[i].CreatedAt.Before(habits[j].CreatedAt)
	})

	return habits, nil
}

func (r *InMemoryHabitRepository) Update(ctx context.Context, habit *domain.Habit) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.store[habit.ID]; !ok {
		return domain.ErrHabitNotFound
	}

	clone := *habit
	r.store[habit.ID] = &clone
	return nil
}

func (r *InMemoryHabitRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.store[id]; !ok {
		return domain.ErrHabitNotFound
	}

	delete(r.store, id)
	return nil
}

func (r *InMemoryHabitRepository) DeleteAll(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.store = make(map[string]*domain.Habit)
	return nil
}

type slotKey struct {
	week  domain.WeekID
	day   domain.DayIndex
	block string
}

type InMemorySlotRepository struct {
	store map[slotKey]*domain.TimeSlot

	mu sync.RWMutex
}

func NewInMemorySlotRepository() *InMemorySlotRepository {
	return &InMemorySlotRepository{
		store: make(map[slotKey]*domain.TimeSlot),
	}
}

// upsert applies fn to the slot at k, creating it first if needed, and drops it when it ends up empty.
func (r *InMemorySlotRepository) upsert(k slotKey, fn func(s *domain.TimeSlot)) {
	r.mu.Lock()
	defer r.mu.Unlock()

	slot, ok := r.store[k]
	if !ok {
		slot = &domain.TimeSlot{Week: k.week, Day: k.day, Block: k.block}
	}
	fn(slot)
	slot.UpdatedAt = time.Now().UTC()

	if slot.Empty() {
		delete(r.store, k)
		return
	}
	r.store[k] = slot
}

func (r *InMemorySlotRepository) SetContent(ctx context.Context, week domain.WeekID, day domain.DayIndex, block string, content string) error {
	r.upsert(slotKey{week, day, block}, func(s *domain.TimeSlot) { s.Content = content })
	return nil
}

func (r *InMemorySlotRepository) SetCompleted(ctx context.Context, week domain.WeekID, day domain.DayIndex, block string, completed bool) error {
	r.upsert(slotKey{week, day, block}, func(s *domain.TimeSlot) { s.Completed = completed })
	return nil
}

func (r *InMemorySlotRepository) Get(ctx context.Context, week domain.WeekID, day domain.DayIndex, block string) (*domain.TimeSlot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	slot, ok := r.store[slotKey{week, day, block}]
	if !ok {
		return nil, domain.ErrSlotNotFound
	}
	clone := *slot
	return &clone, nil
}

func (r *InMemorySlotRepository) ListByDay(ctx context.Context, week domain.WeekID, day domain.DayIndex) ([]*domain.TimeSlot, error) {
	return r.list(func(k slotKey) bool { return k.week == week && k.day == day }), nil
}

func (r *InMemorySlotRepository) ListByWeek(ctx context.Context, week domain.WeekID) ([]*domain.TimeSlot, error) {
	return r.list(func(k slotKey) bool { return k.week == week }), nil
}

func (r *InMemorySlotRepository) list(match func(slotKey) bool) []*domain.TimeSlot {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var slots []*domain.TimeSlot
	for k, s := range r.store {
		if match(k) {
			clone := *s
			slots = append(slots, &clone)
		}
	}

	sort.Slice(slots, func(i, j int) bool {
		if slots[i].Day != slots[j].Day {
			return slots[i].Day < slots[j].Day
		}
		return slots[i].Block < slots[j].Block
	})
	return slots
}

func (r *InMemorySlotRepository) DeleteWeek(ctx context.Context, week domain.WeekID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for k := range r.store {
		if k.week == week {
			delete(r.store, k)
		}
	}
	return nil
}

func (r *InMemorySlotRepository) DeleteAll(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.store = make(map[slotKey]*domain.TimeSlot)
	return nil
}

type checkKey struct {
	week    domain.WeekID
	habitID string
	day     domain.DayIndex
}

type InMemoryCheckmarkRepository struct {
	store map[checkKey]time.Time

	mu sync.RWMutex
}

func NewInMemoryCheckmarkRepository() *InMemoryCheckmarkRepository {
	return &InMemoryCheckmarkRepository{
		store: make(map[checkKey]time.Time),
	}
}

func (r *InMemoryCheckmarkRepository) Set(ctx context.Context, week domain.WeekID, habitID string, day domain.DayIndex, checked bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	k := checkKey{week, habitID, day}
	if !checked {
		delete(r.store, k)
		return nil
	}
	if _, ok := r.store[k]; !ok {
		r.store[k] = time.Now().UTC()
	}
	return nil
}

func (r *InMemoryCheckmarkRepository) IsChecked(ctx context.Context, week domain.WeekID, habitID string, day domain.DayIndex) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.store[checkKey{week, habitID, day}]
	return ok, nil
}

func (r *InMemoryCheckmarkRepository) ListByDay(ctx context.Context, week domain.WeekID, day domain.DayIndex) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var ids []string
	for k := range r.store {
		if k.week == week && k.day == day {
			ids = append(ids, k.habitID)
		}
	}
	sort.Strings(ids)
	return ids, nil
}

func (r *InMemoryCheckmarkRepository) ListByWeek(ctx context.Context, week domain.WeekID) ([]*domain.HabitCheckmark, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var marks []*domain.HabitCheckmark
	for k, at := range r.store {
		if k.week == week {
			marks = append(marks, &domain.HabitCheckmark{Week: k.week, HabitID: k.habitID, Day: k.day, CheckedAt: at})
		}
	}
	sort.Slice(marks, func(i, j int) bool {
		if marks[i].HabitID != marks[j].HabitID {
			return marks[i].HabitID < marks[j].HabitID
		}
		return marks[i].Day < marks[j].Day
	})
	return marks, nil
}

func (r *InMemoryCheckmarkRepository) DeleteByHabit(ctx context.Context, habitID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for k := range r.store {
		if k.habitID == habitID {
			delete(r.store, k)
		}
	}
	return nil
}

func (r *InMemoryCheckmarkRepository) DeleteWeek(ctx context.Context, week domain.WeekID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for k := range r.store {
		if k.week == week {
			delete(r.store, k)
		}
	}
	return nil
}

func (r *InMemoryCheckmarkRepository) DeleteAll(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.store = make(map[checkKey]time.Time)
	return nil
}

type ratingKey struct {
	week domain.WeekID
	day  domain.DayIndex
}

type InMemoryRatingRepository struct {
	store map[ratingKey]*domain.DailyRating

	mu sync.RWMutex
}

func NewInMemoryRatingRepository() *InMemoryRatingRepository {
	return &InMemoryRatingRepository{
		store: make(map[ratingKey]*domain.DailyRating),
	}
}

func (r *InMemoryRatingRepository) Get(ctx context.Context, week domain.WeekID, day domain.DayIndex) (*domain.DailyRating, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rating, ok := r.store[ratingKey{week, day}]
	if !ok {
		return nil, domain.ErrRatingNotFound
	}
	clone := *rating
	return &clone, nil
}

func (r *InMemoryRatingRepository) Set(ctx context.Context, week domain.WeekID, day domain.DayIndex, value int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.store[ratingKey{week, day}] = &domain.DailyRating{
		Week:      week,
		Day:       day,
		Value:     value,
		UpdatedAt: time.Now().UTC(),
	}
	return nil
}

func (r *InMemoryRatingRepository) Delete(ctx context.Context, week domain.WeekID, day domain.DayIndex) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.store, ratingKey{week, day})
	return nil
}

func (r *InMemoryRatingRepository) ListByWeek(ctx context.Context, week domain.WeekID) ([]*domain.DailyRating, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var ratings []*domain.DailyRating
	for k, v := range r.store {
		if k.week == week {
			clone := *v
			ratings = append(ratings, &clone)
		}
	}
	sort.Slice(ratings, func(i, j int) bool { return ratings[i].Day < ratings[j].Day })
	return ratings, nil
}

func (r *InMemoryRatingRepository) DeleteWeek(ctx context.Context, week domain.WeekID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for k := range r.store {
		if k.week == week {
			delete(r.store, k)
		}
	}
	return nil
}

func (r *InMemoryRatingRepository) DeleteAll(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.store = make(map[ratingKey]*domain.DailyRating)
	return nil
}
