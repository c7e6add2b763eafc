package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Dosada05/fixture-planner/models"
)

var ErrDuplicateDay = errors.New("calendar lists the same date twice")

// Calendar is the explicit day list and the breaks of one tournament.
type Calendar struct {
	Days   []models.DayConfig `json:"days"`
	Breaks []models.Break     `json:"breaks"`
}

type CalendarRepository interface {
	Get(ctx context.Context, exec SQLExecutor, tournamentID int) (*Calendar, error)
	Replace(ctx context.Context, exec SQLExecutor, tournamentID int, cal *Calendar) error
}

type postgresCalendarRepository struct {
	db *sql.DB
}

func NewPostgresCalendarRepository(db *sql.DB) CalendarRepository {
	return &postgresCalendarRepository{db: db}
}

func (r *postgresCalendarRepository) Get(ctx context.Context, exec SQLExecutor, tournamentID int) (*Calendar, error) {
	ex := executor(r.db, exec)
	cal := &Calendar{Days: make([]models.DayConfig, 0), Breaks: make([]models.Break, 0)}

	dayRows, err := ex.QueryContext(ctx, `
		SELECT to_char(day_date, 'YYYY-MM-DD'), kind, start_time, end_time
		FROM tournament_days
		WHERE tournament_id = $1
		ORDER BY position`, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list days: %w", err)
	}
	defer dayRows.Close()
	for dayRows.Next() {
		var d models.DayConfig
		if err := dayRows.Scan(&d.Date, &d.Kind, &d.Start, &d.End); err != nil {
			return nil, fmt.Errorf("failed to scan day: %w", err)
		}
		cal.Days = append(cal.Days, d)
	}
	if err := dayRows.Err(); err != nil {
		return nil, err
	}

	breakRows, err := ex.QueryContext(ctx, `
		SELECT id, COALESCE(to_char(break_date, 'YYYY-MM-DD'), ''), start_time, end_time
		FROM breaks
		WHERE tournament_id = $1
		ORDER BY break_date NULLS FIRST, start_time, id`, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list breaks: %w", err)
	}
	defer breakRows.Close()
	for breakRows.Next() {
		var b models.Break
		if err := breakRows.Scan(&b.ID, &b.Date, &b.Start, &b.End); err != nil {
			return nil, fmt.Errorf("failed to scan break: %w", err)
		}
		cal.Breaks = append(cal.Breaks, b)
	}
	return cal, breakRows.Err()
}

func (r *postgresCalendarRepository) Replace(ctx context.Context, exec SQLExecutor, tournamentID int, cal *Calendar) error {
	ex := executor(r.db, exec)
	if _, err := ex.ExecContext(ctx, `DELETE FROM tournament_days WHERE tournament_id = $1`, tournamentID); err != nil {
		return fmt.Errorf("failed to clear days: %w", err)
	}
	if _, err := ex.ExecContext(ctx, `DELETE FROM breaks WHERE tournament_id = $1`, tournamentID); err != nil {
		return fmt.Errorf("failed to clear breaks: %w", err)
	}

	for i, d := range cal.Days {
		_, err := ex.ExecContext(ctx, `
			INSERT INTO tournament_days (tournament_id, position, day_date, kind, start_time, end_time)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			tournamentID, i, d.Date, d.Kind, d.Start, d.End)
		if err != nil {
			if constraint, ok := constraintViolation(err, pqUniqueViolation); ok && constraint == "tournament_days_pkey" {
				return fmt.Errorf("%w: %s", ErrDuplicateDay, d.Date)
			}
			return fmt.Errorf("failed to insert day %s: %w", d.Date, err)
		}
	}

	for i := range cal.Breaks {
		b := &cal.Breaks[i]
		err := ex.QueryRowContext(ctx, `
			INSERT INTO breaks (tournament_id, break_date, start_time, end_time)
			VALUES ($1, $2, $3, $4)
			RETURNING id`,
			tournamentID, nullableDate(b.Date), b.Start, b.End).Scan(&b.ID)
		if err != nil {
			return fmt.Errorf("failed to insert break: %w", err)
		}
	}
	return nil
}
