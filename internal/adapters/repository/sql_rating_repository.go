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

var _ domain.RatingRepository = (*SQLRatingRepository)(nil)

type SQLRatingRepository struct {
	db *sqlx.DB
}

func NewSQLRatingRepository(db *sqlx.DB) *SQLRatingRepository {
	return &SQLRatingRepository{db: db}
}

type ratingRow struct {
	Day       int       `db:"day"`
	Value     int       `db:"value"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r *SQLRatingRepository) Get(ctx context.Context, week domain.WeekID, day domain.DayIndex) (*domain.DailyRating, error) {
	var row ratingRow
	query := r.db.Rebind(`SELECT day, value, updated_at FROM daily_ratings WHERE week = ? AND day = ?`)

	if err := r.db.GetContext(ctx, &row, query, week.String(), int(day)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRatingNotFound
		}
		return nil, fmt.Errorf("get rating: %w", err)
	}
	return &domain.DailyRating{Week: week, Day: day, Value: row.Value, UpdatedAt: row.UpdatedAt}, nil
}

func (r *SQLRatingRepository) Set(ctx context.Context, week domain.WeekID, day domain.DayIndex, value int) error {
	query := r.db.Rebind(`
		INSERT INTO daily_ratings (week, day, value, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (week, day) DO UPDATE
		SET value = excluded.value, updated_at = excluded.updated_at`)

	if _, err := r.db.ExecContext(ctx, query, week.String(), int(day), value, time.Now().UTC()); err != nil {
		return fmt.Errorf("set rating: %w", err)
	}
	return nil
}

func (r *SQLRatingRepository) Delete(ctx context.Context, week domain.WeekID, day domain.DayIndex) error {
	query := r.db.Rebind(`DELETE FROM daily_ratings WHERE week = ? AND day = ?`)
	if _, err := r.db.ExecContext(ctx, query, week.String(), int(day)); err != nil {
		return fmt.Errorf("delete rating: %w", err)
	}
	return nil
}

func (r *SQLRatingRepository) ListByWeek(ctx context.Context, week domain.WeekID) ([]*domain.DailyRating, error) {
	var rows []ratingRow
	query := r.db.Rebind(`SELECT day, value, updated_at FROM daily_ratings WHERE week = ? ORDER BY day`)
	if err := r.db.SelectContext(ctx, &rows, query, week.String()); err != nil {
		return nil, fmt.Errorf("list ratings: %w", err)
	}

	ratings := make([]*domain.DailyRating, 0, len(rows))
	for _, row := range rows {
		ratings = append(ratings, &domain.DailyRating{
			Week:      week,
			Day:       domain.DayIndex(row.Day),
			Value:     row.Value,
			UpdatedAt: row.UpdatedAt,
		})
	}
	return ratings, nil
}

func (r *SQLRatingRepository) DeleteWeek(ctx context.Context, week domain.WeekID) error {
	if _, err := r.db.ExecContext(ctx, r.db.Rebind(`DELETE FROM daily_ratings WHERE week = ?`), week.String()); err != nil {
		return fmt.Errorf("delete week ratings: %w", err)
	}
	return nil
}

func (r *SQLRatingRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM daily_ratings`); err != nil {
		return fmt.Errorf("delete all ratings: %w", err)
	}
	return nil
}
