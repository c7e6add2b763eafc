package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Dosada05/fixture-planner/models"
	"github.com/Dosada05/fixture-planner/repositories"
	"github.com/Dosada05/fixture-planner/storage"
)

// Actor is the authenticated caller of an organizer operation.
type Actor struct {
	UserID int
	Role   models.UserRole
}

// Broadcaster is the part of the websocket hub the services publish to.
type Broadcaster interface {
	BroadcastToRoom(roomID string, message interface{})
}

// Transactor runs fn inside a database transaction. fn receives the executor
// that repositories must use to join it.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(exec repositories.SQLExecutor) error) error
}

type sqlTransactor struct {
	db     *sql.DB
	logger *slog.Logger
}

func NewSQLTransactor(db *sql.DB, logger *slog.Logger) Transactor {
	return &sqlTransactor{db: db, logger: logger}
}

func (t *sqlTransactor) WithinTx(ctx context.Context, fn func(exec repositories.SQLExecutor) error) (txErr error) {
	tx, err := t.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		} else if txErr != nil {
			t.logger.Warn("rolling back transaction", slog.Any("error", txErr))
			if rbErr := tx.Rollback(); rbErr != nil {
				txErr = fmt.Errorf("transaction processing error: %w (rollback also failed: %v)", txErr, rbErr)
			}
		} else if cErr := tx.Commit(); cErr != nil {
			txErr = fmt.Errorf("failed to commit transaction: %w", cErr)
		}
	}()

	txErr = fn(tx)
	return txErr
}

// checkOwnership lets admins through and otherwise requires the organizer of t.
func checkOwnership(t *models.Tournament, actor Actor) error {
	if actor.Role == models.RoleAdmin || t.OrganizerID == actor.UserID {
		return nil
	}
	return ErrForbiddenOperation
}

func mapTournamentRepoError(err error) error {
	switch {
	case errors.Is(err, repositories.ErrTournamentNotFound):
		return ErrTournamentNotFound
	case errors.Is(err, repositories.ErrTournamentNameConflict):
		return ErrTournamentNameConflict
	case errors.Is(err, repositories.ErrTournamentInvalidOrg):
		return ErrUserNotFound
	case errors.Is(err, repositories.ErrTeamNameConflict):
		return fmt.Errorf("%w: %w", ErrTeamNameConflict, err)
	case errors.Is(err, repositories.ErrFieldNameConflict):
		return fmt.Errorf("%w: %w", ErrFieldNameConflict, err)
	case errors.Is(err, repositories.ErrDuplicateDay):
		return fmt.Errorf("%w: %w", ErrValidationFailed, err)
	default:
		return err
	}
}

func populateExportURL(t *models.Tournament, uploader storage.FileUploader) {
	if t == nil || t.ExportKey == nil || *t.ExportKey == "" || uploader == nil {
		return
	}
	if url := uploader.GetPublicURL(*t.ExportKey); url != "" {
		t.ExportURL = &url
	}
}
