package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/comitanigiacomo/kanso-planner/internal/core/domain"
)

var _ domain.SlotRepository = (*SQLSlotRepository)(nil)

type SQLSlotRepository struct {
	db *sqlx.DB
}

func NewSQLSlotRepository(db *sqlx.DB) *SQLSlotRepository {
	return &SQLSlotRepository{db: db}
}

type slotRow struct {
	Week      string    `db:"week"`
	Day       int       `db:"day"`
	Block     string    `db:"block"`
	Content   string    `db:"content"`
	Completed bool      `db:"completed"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (row slotRow) toDomain() (*domain.TimeSlot, error) {
	week, err := domain.ParseWeekID(row.Week)
	if err != nil {
		return nil, fmt.Errorf("stored week %q: %w", row.Week, err)
	}
	return &domain.TimeSlot{
		Week:      week,
		Day:       domain.DayIndex(row.Day),
		Block:     row.Block,
		Content:   row.Content,
		Completed: row.Completed,
		UpdatedAt: row.UpdatedAt,
	}, nil
}

// write runs upsert and then removes the row if it no longer holds anything, in one transaction.
func (r *SQLSlotRepository) write(ctx context.Context, upsert string, week domain.WeekID, day domain.DayIndex, block string, value any) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin slot write: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, tx.Rebind(upsert), week.String(), int(day), block, value, time.Now().UTC()); err != nil {
		return fmt.Errorf("upsert slot: %w", err)
	}

	prune := `DELETE FROM time_slots
		WHERE week = ? AND day = ? AND block = ? AND content = '' AND completed = FALSE`
	if _, err := tx.ExecContext(ctx, tx.Rebind(prune), week.String(), int(day), block); err != nil {
		return fmt.Errorf("prune slot: %w", err)
	}

	return tx.Commit()
}

func (r *SQLSlotRepository) SetContent(ctx context.Context, week domain.WeekID, day domain.DayIndex, block string, content string) error {
	query := `
		INSERT INTO time_slots (week, day, block, content, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (week, day, block) DO UPDATE
		SET content = excluded.content, updated_at = excluded.updated_at`
	return r.write(ctx, query, week, day, block, content)
}

func (r *SQLSlotRepository) SetCompleted(ctx context.Context, week domain.WeekID, day domain.DayIndex, block string, completed bool) error {
	query := `
		INSERT INTO time_slots (week, day, block, completed, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (week, day, block) DO UPDATE
		SET completed = excluded.completed, updated_at = excluded.updated_at`
	return r.write(ctx, query, week, day, block, completed)
}

func (r *SQLSlotRepository) Get(ctx context.Context, week domain.WeekID, day domain.DayIndex, block string) (*domain.TimeSlot, error) {
	var row slotRow
	query := r.db.Rebind(`
		SELECT week, day, block, content, completed, updated_at
		FROM time_slots WHERE week = ? AND day = ? AND block = ?`)

	if err := r.db.GetContext(ctx, &row, query, week.String(), int(day), block); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSlotNotFound
		}
		return nil, fmt.Errorf("get slot: %w", err)
	}
	return row.toDomain()
}

func (r *SQLSlotRepository) ListByDay(ctx context.Context, week domain.WeekID, day domain.DayIndex) ([]*domain.TimeSlot, error) {
	query := `
		SELECT week, day, block, content, completed, updated_at
		FROM time_slots WHERE week = ? AND day = ? ORDER BY block`
	return r.list(ctx, query, week.String(), int(day))
}

func (r *SQLSlotRepository) ListByWeek(ctx context.Context, week domain.WeekID) ([]*domain.TimeSlot, error) {
	query := `
		SELECT week, day, block, content, completed, updated_at
		FROM time_slots WHERE week = ? ORDER BY day, block`
	return r.list(ctx, query, week.String())
}

func (r *SQLSlotRepository) list(ctx context.Context, query string, args ...any) ([]*domain.TimeSlot, error) {
	var rows []slotRow
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("list slots: %w", err)
	}

	slots := make([]*domain.TimeSlot, 0, len(rows))
	for _, row := range rows {
		s, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		slots = append(slots, s)
	}
	return slots, nil
}

func (r *SQLSlotRepository) DeleteWeek(ctx context.Context, week domain.WeekID) error {
	if _, err := r.db.ExecContext(ctx, r.db.Rebind(`DELETE FROM time_slots WHERE week = ?`), week.String()); err != nil {
		return fmt.Errorf("delete week slots: %w", err)
	}
	return nil
}

func (r *SQLSlotRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM time_slots`); err != nil {
		return fmt.Errorf("delete all slots: %w", err)
	}
	return nil
}
