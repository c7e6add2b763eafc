package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/Dosada05/fixture-planner/models"
)

var ErrFieldNameConflict = errors.New("field name is used twice in this tournament")

type FieldRepository interface {
	ListByTournament(ctx context.Context, exec SQLExecutor, tournamentID int) ([]models.Field, error)
	ReplaceForTournament(ctx context.Context, exec SQLExecutor, tournamentID int, fields []models.Field) error
}

type postgresFieldRepository struct {
	db *sql.DB
}

func NewPostgresFieldRepository(db *sql.DB) FieldRepository {
	return &postgresFieldRepository{db: db}
}

func (r *postgresFieldRepository) ListByTournament(ctx context.Context, exec SQLExecutor, tournamentID int) ([]models.Field, error) {
	query := `
		SELECT id, tournament_id, name, days_enabled
		FROM fields
		WHERE tournament_id = $1
		ORDER BY position, id`

	rows, err := executor(r.db, exec).QueryContext(ctx, query, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list fields: %w", err)
	}
	defer rows.Close()

	fields := make([]models.Field, 0)
	for rows.Next() {
		var (
			f    models.Field
			days pq.BoolArray
		)
		if err := rows.Scan(&f.ID, &f.TournamentID, &f.Name, &days); err != nil {
			return nil, fmt.Errorf("failed to scan field: %w", err)
		}
		if len(days) > 0 {
			f.DaysEnabled = []bool(days)
		}
		fields = append(fields, f)
	}
	return fields, rows.Err()
}

func (r *postgresFieldRepository) ReplaceForTournament(ctx context.Context, exec SQLExecutor, tournamentID int, fields []models.Field) error {
	ex := executor(r.db, exec)
	if _, err := ex.ExecContext(ctx, `DELETE FROM fields WHERE tournament_id = $1`, tournamentID); err != nil {
		return fmt.Errorf("failed to clear fields: %w", err)
	}

	query := `
		INSERT INTO fields (tournament_id, position, name, days_enabled)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	for i := range fields {
		fields[i].TournamentID = tournamentID
		days := pq.BoolArray(fields[i].DaysEnabled)
		if days == nil {
			days = pq.BoolArray{}
		}
		err := ex.QueryRowContext(ctx, query, tournamentID, i, fields[i].Name, days).Scan(&fields[i].ID)
		if err != nil {
			if constraint, ok := constraintViolation(err, pqUniqueViolation); ok && constraint == "fields_tournament_id_name_key" {
				return fmt.Errorf("%w: %q", ErrFieldNameConflict, fields[i].Name)
			}
			return fmt.Errorf("failed to insert field %q: %w", fields[i].Name, err)
		}
	}
	return nil
}
