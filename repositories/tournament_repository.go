package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Dosada05/fixture-planner/models"
)

var (
	ErrTournamentNotFound     = errors.New("tournament not found")
	ErrTournamentNameConflict = errors.New("tournament name conflict for this organizer")
	ErrTournamentInvalidOrg   = errors.New("invalid organizer reference")
)

type ListTournamentsFilter struct {
	OrganizerID *int
	Limit       int
	Offset      int
}

type TournamentRepository interface {
	Create(ctx context.Context, exec SQLExecutor, tournament *models.Tournament) error
	GetByID(ctx context.Context, id int) (*models.Tournament, error)
	List(ctx context.Context, filter ListTournamentsFilter) ([]models.Tournament, error)
	Update(ctx context.Context, exec SQLExecutor, tournament *models.Tournament) error
	Delete(ctx context.Context, id int) error
	// SetFixtureGeneratedAt records when the stored fixture was built; nil marks it stale.
	SetFixtureGeneratedAt(ctx context.Context, exec SQLExecutor, id int, at *time.Time) error
	UpdateExportKey(ctx context.Context, id int, exportKey *string) error
}

type postgresTournamentRepository struct {
	db *sql.DB
}

func NewPostgresTournamentRepository(db *sql.DB) TournamentRepository {
	return &postgresTournamentRepository{db: db}
}

const tournamentColumns = `
	id, name, organizer_id,
	COALESCE(to_char(start_date, 'YYYY-MM-DD'), ''), COALESCE(to_char(end_date, 'YYYY-MM-DD'), ''),
	day_start, day_end, match_duration_minutes, min_rest_minutes, rest_cap_minutes, format,
	export_key, fixture_generated_at, created_at`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTournament(row rowScanner) (*models.Tournament, error) {
	var (
		t      models.Tournament
		format []byte
	)
	err := row.Scan(
		&t.ID, &t.Name, &t.OrganizerID,
		&t.StartDate, &t.EndDate,
		&t.DayStart, &t.DayEnd, &t.MatchDurationMinutes, &t.MinRestMinutes, &t.RestCapMinutes, &format,
		&t.ExportKey, &t.FixtureGeneratedAt, &t.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(format, &t.Format); err != nil {
		return nil, fmt.Errorf("failed to decode format of tournament %d: %w", t.ID, err)
	}
	return &t, nil
}

func (r *postgresTournamentRepository) Create(ctx context.Context, exec SQLExecutor, t *models.Tournament) error {
	format, err := json.Marshal(t.Format)
	if err != nil {
		return fmt.Errorf("failed to encode tournament format: %w", err)
	}
	query := `
		INSERT INTO tournaments (
			name, organizer_id, start_date, end_date, day_start, day_end,
			match_duration_minutes, min_rest_minutes, rest_cap_minutes, format
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at`

	err = executor(r.db, exec).QueryRowContext(ctx, query,
		t.Name, t.OrganizerID, nullableDate(t.StartDate), nullableDate(t.EndDate), t.DayStart, t.DayEnd,
		t.MatchDurationMinutes, t.MinRestMinutes, t.RestCapMinutes, format,
	).Scan(&t.ID, &t.CreatedAt)

	return r.handleTournamentError(err)
}

func (r *postgresTournamentRepository) GetByID(ctx context.Context, id int) (*models.Tournament, error) {
	query := `SELECT ` + tournamentColumns + ` FROM tournaments WHERE id = $1`

	t, err := scanTournament(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTournamentNotFound
		}
		return nil, err
	}
	return t, nil
}

func (r *postgresTournamentRepository) List(ctx context.Context, filter ListTournamentsFilter) ([]models.Tournament, error) {
	query := `SELECT ` + tournamentColumns + ` FROM tournaments WHERE 1=1`

	args := []interface{}{}
	argID := 1

	if filter.OrganizerID != nil {
		query += fmt.Sprintf(" AND organizer_id = $%d", argID)
		args = append(args, *filter.OrganizerID)
		argID++
	}

	query += " ORDER BY start_date DESC NULLS LAST, created_at DESC"

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argID)
		args = append(args, filter.Limit)
		argID++
	}
	if filter.Offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", argID)
		args = append(args, filter.Offset)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tournaments := make([]models.Tournament, 0)
	for rows.Next() {
		t, scanErr := scanTournament(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		tournaments = append(tournaments, *t)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return tournaments, nil
}

func (r *postgresTournamentRepository) Update(ctx context.Context, exec SQLExecutor, t *models.Tournament) error {
	format, err := json.Marshal(t.Format)
	if err != nil {
		return fmt.Errorf("failed to encode tournament format: %w", err)
	}
	query := `
		UPDATE tournaments SET
			name = $1,
			start_date = $2,
			end_date = $3,
			day_start = $4,
			day_end = $5,
			match_duration_minutes = $6,
			min_rest_minutes = $7,
			rest_cap_minutes = $8,
			format = $9
		WHERE id = $10`

	result, err := executor(r.db, exec).ExecContext(ctx, query,
		t.Name, nullableDate(t.StartDate), nullableDate(t.EndDate), t.DayStart, t.DayEnd,
		t.MatchDurationMinutes, t.MinRestMinutes, t.RestCapMinutes, format,
		t.ID,
	)
	if err != nil {
		return r.handleTournamentError(err)
	}
	return checkAffectedRows(result, ErrTournamentNotFound)
}

func (r *postgresTournamentRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM tournaments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete tournament: %w", err)
	}
	return checkAffectedRows(result, ErrTournamentNotFound)
}

func (r *postgresTournamentRepository) SetFixtureGeneratedAt(ctx context.Context, exec SQLExecutor, id int, at *time.Time) error {
	result, err := executor(r.db, exec).ExecContext(ctx,
		`UPDATE tournaments SET fixture_generated_at = $1 WHERE id = $2`, at, id)
	if err != nil {
		return fmt.Errorf("failed to update fixture timestamp: %w", err)
	}
	return checkAffectedRows(result, ErrTournamentNotFound)
}

func (r *postgresTournamentRepository) UpdateExportKey(ctx context.Context, id int, exportKey *string) error {
	result, err := r.db.ExecContext(ctx, `UPDATE tournaments SET export_key = $1 WHERE id = $2`, exportKey, id)
	if err != nil {
		return fmt.Errorf("failed to update tournament export key: %w", err)
	}
	return checkAffectedRows(result, ErrTournamentNotFound)
}

func (r *postgresTournamentRepository) handleTournamentError(err error) error {
	if err == nil {
		return nil
	}
	if constraint, ok := constraintViolation(err, pqUniqueViolation); ok && constraint == "tournaments_organizer_id_name_key" {
		return ErrTournamentNameConflict
	}
	if constraint, ok := constraintViolation(err, pqForeignKeyViolation); ok && constraint == "tournaments_organizer_id_fkey" {
		return ErrTournamentInvalidOrg
	}
	return err
}
