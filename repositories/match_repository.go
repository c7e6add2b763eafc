package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Dosada05/fixture-planner/models"
)

type MatchRepository interface {
	// ListByTournament returns the fixture in its stored order.
	ListByTournament(ctx context.Context, exec SQLExecutor, tournamentID int) ([]*models.Match, error)
	ReplaceForTournament(ctx context.Context, exec SQLExecutor, tournamentID int, matches []*models.Match) error
	DeleteByTournament(ctx context.Context, exec SQLExecutor, tournamentID int) error
}

type postgresMatchRepository struct {
	db *sql.DB
}

func NewPostgresMatchRepository(db *sql.DB) MatchRepository {
	return &postgresMatchRepository{db: db}
}

func (r *postgresMatchRepository) ListByTournament(ctx context.Context, exec SQLExecutor, tournamentID int) ([]*models.Match, error) {
	query := `
		SELECT id, code, zone, phase, stage, round, home, away, is_bye,
		       COALESCE(to_char(match_date, 'YYYY-MM-DD'), ''), COALESCE(match_time, ''), field_id
		FROM matches
		WHERE tournament_id = $1
		ORDER BY position`

	rows, err := executor(r.db, exec).QueryContext(ctx, query, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	defer rows.Close()

	matches := make([]*models.Match, 0)
	for rows.Next() {
		var (
			m          models.Match
			home, away []byte
			fieldID    sql.NullInt64
		)
		if err := rows.Scan(
			&m.ID, &m.Code, &m.Zone, &m.Phase, &m.Stage, &m.Round, &home, &away, &m.IsBye,
			&m.Date, &m.Time, &fieldID,
		); err != nil {
			return nil, fmt.Errorf("failed to scan match: %w", err)
		}
		if err := json.Unmarshal(home, &m.Home); err != nil {
			return nil, fmt.Errorf("match %s: home side: %w", m.Code, err)
		}
		if err := json.Unmarshal(away, &m.Away); err != nil {
			return nil, fmt.Errorf("match %s: away side: %w", m.Code, err)
		}
		if fieldID.Valid {
			id := int(fieldID.Int64)
			m.FieldID = &id
		}
		matches = append(matches, &m)
	}
	return matches, rows.Err()
}

func (r *postgresMatchRepository) ReplaceForTournament(ctx context.Context, exec SQLExecutor, tournamentID int, matches []*models.Match) error {
	if err := r.DeleteByTournament(ctx, exec, tournamentID); err != nil {
		return err
	}

	ex := executor(r.db, exec)
	query := `
		INSERT INTO matches (
			id, tournament_id, position, code, zone, phase, stage, round,
			home, away, is_bye, match_date, match_time, field_id
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	for i, m := range matches {
		home, err := json.Marshal(m.Home)
		if err != nil {
			return fmt.Errorf("match %s: home side: %w", m.Code, err)
		}
		away, err := json.Marshal(m.Away)
		if err != nil {
			return fmt.Errorf("match %s: away side: %w", m.Code, err)
		}
		var fieldID sql.NullInt64
		if m.FieldID != nil {
			fieldID = sql.NullInt64{Int64: int64(*m.FieldID), Valid: true}
		}
		_, err = ex.ExecContext(ctx, query,
			m.ID, tournamentID, i, m.Code, m.Zone, m.Phase, m.Stage, m.Round,
			home, away, m.IsBye, nullableDate(m.Date), sql.NullString{String: m.Time, Valid: m.Time != ""}, fieldID,
		)
		if err != nil {
			return fmt.Errorf("failed to insert match %s: %w", m.Code, err)
		}
	}
	return nil
}

func (r *postgresMatchRepository) DeleteByTournament(ctx context.Context, exec SQLExecutor, tournamentID int) error {
	if _, err := executor(r.db, exec).ExecContext(ctx, `DELETE FROM matches WHERE tournament_id = $1`, tournamentID); err != nil {
		return fmt.Errorf("failed to delete matches: %w", err)
	}
	return nil
}
