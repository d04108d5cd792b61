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

var _ domain.HabitRepository = (*SQLHabitRepository)(nil)

// SQLHabitRepository stores habit definitions in SQLite or Postgres.
type SQLHabitRepository struct {
	db *sqlx.DB
}

func NewSQLHabitRepository(db *sqlx.DB) *SQLHabitRepository {
	return &SQLHabitRepository{db: db}
}

const habitColumns = `id, name, score, sort_order, created_at, updated_at`

func (r *SQLHabitRepository) Create(ctx context.Context, h *domain.Habit) error {
	query := `
		INSERT INTO habits (id, name, score, sort_order, created_at, updated_at)
		VALUES (:id, :name, :score, :sort_order, :created_at, :updated_at)`

	if _, err := r.db.NamedExecContext(ctx, query, h); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrHabitAlreadyExists
		}
		return fmt.Errorf("failed to insert habit: %w", err)
	}
	return nil
}

func (r *SQLHabitRepository) GetByID(ctx context.Context, id string) (*domain.Habit, error) {
	var h domain.Habit
	query := r.db.Rebind(`SELECT ` + habitColumns + ` FROM habits WHERE id = ?`)

	if err := r.db.GetContext(ctx, &h, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrHabitNotFound
		}
		return nil, fmt.Errorf("database scan error: %w", err)
	}
	return &h, nil
}

func (r *SQLHabitRepository) List(ctx context.Context) ([]*domain.Habit, error) {
	habits := []*domain.Habit{}
	query := `SELECT ` + habitColumns + ` FROM habits ORDER BY sort_order ASC, created_at ASC`

	if err := r.db.SelectContext(ctx, &habits, query); err != nil {
		return nil, fmt.Errorf("query error: %w", err)
	}
	return habits, nil
}

func (r *SQLHabitRepository) Update(ctx context.Context, h *domain.Habit) error {
	h.UpdatedAt = time.Now().UTC()
	query := `
		UPDATE habits
		SET name = :name, score = :score, sort_order = :sort_order, updated_at = :updated_at
		WHERE id = :id`

	res, err := r.db.NamedExecContext(ctx, query, h)
	if err != nil {
		return fmt.Errorf("update query failed: %w", err)
	}
	return expectAffected(res, domain.ErrHabitNotFound)
}

func (r *SQLHabitRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, r.db.Rebind(`DELETE FROM habits WHERE id = ?`), id)
	if err != nil {
		return fmt.Errorf("delete query failed: %w", err)
	}
	return expectAffected(res, domain.ErrHabitNotFound)
}

func (r *SQLHabitRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM habits`); err != nil {
		return fmt.Errorf("delete all habits failed: %w", err)
	}
	return nil
}

func expectAffected(res sql.Result, notFound error) error {
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return notFound
	}
	return nil
}
