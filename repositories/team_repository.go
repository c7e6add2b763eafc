package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Dosada05/fixture-planner/models"
)

var ErrTeamNameConflict = errors.New("team name is used twice in this tournament")

type TeamRepository interface {
	ListByTournament(ctx context.Context, exec SQLExecutor, tournamentID int) ([]models.Team, error)
	// ReplaceForTournament deletes the roster and inserts teams in order, filling in new ids.
	ReplaceForTournament(ctx context.Context, exec SQLExecutor, tournamentID int, teams []models.Team) error
}

type postgresTeamRepository struct {
	db *sql.DB
}

func NewPostgresTeamRepository(db *sql.DB) TeamRepository {
	return &postgresTeamRepository{db: db}
}

func (r *postgresTeamRepository) ListByTournament(ctx context.Context, exec SQLExecutor, tournamentID int) ([]models.Team, error) {
	query := `
		SELECT id, tournament_id, name, zone
		FROM teams
		WHERE tournament_id = $1
		ORDER BY position, id`

	rows, err := executor(r.db, exec).QueryContext(ctx, query, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	defer rows.Close()

	teams := make([]models.Team, 0)
	for rows.Next() {
		var t models.Team
		if err := rows.Scan(&t.ID, &t.TournamentID, &t.Name, &t.Zone); err != nil {
			return nil, fmt.Errorf("failed to scan team: %w", err)
		}
		teams = append(teams, t)
	}
	return teams, rows.Err()
}

func (r *postgresTeamRepository) ReplaceForTournament(ctx context.Context, exec SQLExecutor, tournamentID int, teams []models.Team) error {
	ex := executor(r.db, exec)
	if _, err := ex.ExecContext(ctx, `DELETE FROM teams WHERE tournament_id = $1`, tournamentID); err != nil {
		return fmt.Errorf("failed to clear teams: %w", err)
	}

	query := `
		INSERT INTO teams (tournament_id, position, name, zone)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	for i := range teams {
		teams[i].TournamentID = tournamentID
		err := ex.QueryRowContext(ctx, query, tournamentID, i, teams[i].Name, teams[i].Zone).Scan(&teams[i].ID)
		if err != nil {
			if constraint, ok := constraintViolation(err, pqUniqueViolation); ok && constraint == "teams_tournament_id_name_key" {
				return fmt.Errorf("%w: %q", ErrTeamNameConflict, teams[i].Name)
			}
			return fmt.Errorf("failed to insert team %q: %w", teams[i].Name, err)
		}
	}
	return nil
}
