package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/comitanigiacomo/kanso-planner/internal/core/domain"
)

var _ domain.CheckmarkRepository = (*SQLCheckmarkRepository)(nil)

type SQLCheckmarkRepository struct {
	db *sqlx.DB
}

func NewSQLCheckmarkRepository(db *sqlx.DB) *SQLCheckmarkRepository {
	return &SQLCheckmarkRepository{db: db}
}

type checkmarkRow struct {
	Week      string    `db:"week"`
	HabitID   string    `db:"habit_id"`
	Day       int       `db:"day"`
	CheckedAt time.Time `db:"checked_at"`
}

func (r *SQLCheckmarkRepository) Set(ctx context.Context, week domain.WeekID, habitID string, day domain.DayIndex, checked bool) error {
	if !checked {
		query := r.db.Rebind(`DELETE FROM habit_checkmarks WHERE week = ? AND habit_id = ? AND day = ?`)
		if _, err := r.db.ExecContext(ctx, query, week.String(), habitID, int(day)); err != nil {
			return fmt.Errorf("uncheck habit: %w", err)
		}
		return nil
	}

	query := r.db.Rebind(`
		INSERT INTO habit_checkmarks (week, habit_id, day, checked_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (week, habit_id, day) DO NOTHING`)
	if _, err := r.db.ExecContext(ctx, query, week.String(), habitID, int(day), time.Now().UTC()); err != nil {
		return fmt.Errorf("check habit: %w", err)
	}
	return nil
}

func (r *SQLCheckmarkRepository) IsChecked(ctx context.Context, week domain.WeekID, habitID string, day domain.DayIndex) (bool, error) {
	var count int
	query := r.db.Rebind(`SELECT COUNT(*) FROM habit_checkmarks WHERE week = ? AND habit_id = ? AND day = ?`)
	if err := r.db.GetContext(ctx, &count, query, week.String(), habitID, int(day)); err != nil {
		return false, fmt.Errorf("is checked: %w", err)
	}
	return count > 0, nil
}

func (r *SQLCheckmarkRepository) ListByDay(ctx context.Context, week domain.WeekID, day domain.DayIndex) ([]string, error) {
	ids := []string{}
	query := r.db.Rebind(`SELECT habit_id FROM habit_checkmarks WHERE week = ? AND day = ? ORDER BY habit_id`)
	if err := r.db.SelectContext(ctx, &ids, query, week.String(), int(day)); err != nil {
		return nil, fmt.Errorf("list checked habits: %w", err)
	}
	return ids, nil
}

func (r *SQLCheckmarkRepository) ListByWeek(ctx context.Context, week domain.WeekID) ([]*domain.HabitCheckmark, error) {
	var rows []checkmarkRow
	query := r.db.Rebind(`
		SELECT week, habit_id, day, checked_at
		FROM habit_checkmarks WHERE week = ? ORDER BY habit_id, day`)
	if err := r.db.SelectContext(ctx, &rows, query, week.String()); err != nil {
		return nil, fmt.Errorf("list checkmarks: %w", err)
	}

	marks := make([]*domain.HabitCheckmark, 0, len(rows))
	for _, row := range rows {
		marks = append(marks, &domain.HabitCheckmark{
			Week:      week,
			HabitID:   row.HabitID,
			Day:       domain.DayIndex(row.Day),
			CheckedAt: row.CheckedAt,
		})
	}
	return marks, nil
}

func (r *SQLCheckmarkRepository) DeleteByHabit(ctx context.Context, habitID string) error {
	if _, err := r.db.ExecContext(ctx, r.db.Rebind(`DELETE FROM habit_checkmarks WHERE habit_id = ?`), habitID); err != nil {
		return fmt.Errorf("delete habit checkmarks: %w", err)
	}
	return nil
}

func (r *SQLCheckmarkRepository) DeleteWeek(ctx context.Context, week domain.WeekID) error {
	if _, err := r.db.ExecContext(ctx, r.db.Rebind(`DELETE FROM habit_checkmarks WHERE week = ?`), week.String()); err != nil {
		return fmt.Errorf("delete week checkmarks: %w", err)
	}
	return nil
}

func (r *SQLCheckmarkRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM habit_checkmarks`); err != nil {
		return fmt.Errorf("delete all checkmarks: %w", err)
	}
	return nil
}
