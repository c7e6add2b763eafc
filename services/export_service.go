package services

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Dosada05/fixture-planner/brackets"
	"github.com/Dosada05/fixture-planner/export"
	"github.com/Dosada05/fixture-planner/repositories"
	"github.com/Dosada05/fixture-planner/storage"
	"github.com/Dosada05/fixture-planner/utils"
)

const presignedExportTTL = 24 * time.Hour

type ExportService interface {
	// Export uploads the stored fixture as CSV and returns where it can be downloaded.
	Export(ctx context.Context, id int, actor Actor) (*ExportResult, error)
}

type ExportResult struct {
	TournamentID int        `json:"tournament_id"`
	Key          string     `json:"key"`
	URL          string     `json:"url"`
	ExpiresAt    *time.Time `json:"expires_at,omitempty"`
}

type exportService struct {
	fixtures       FixtureService
	tournamentRepo repositories.TournamentRepository
	uploader       storage.FileUploader
	broadcaster    Broadcaster
	logger         *slog.Logger
	now            func() time.Time
}

func NewExportService(
	fixtures FixtureService,
	tournamentRepo repositories.TournamentRepository,
	uploader storage.FileUploader,
	broadcaster Broadcaster,
	logger *slog.Logger,
) ExportService {
	return &exportService{
		fixtures:       fixtures,
		tournamentRepo: tournamentRepo,
		uploader:       uploader,
		broadcaster:    broadcaster,
		logger:         logger,
		now:            time.Now,
	}
}

func (s *exportService) Export(ctx context.Context, id int, actor Actor) (*ExportResult, error) {
	if s.uploader == nil {
		return nil, ErrExportUnavailable
	}

	var buf bytes.Buffer
	t, err := s.fixtures.WriteCSV(ctx, id, &buf)
	if err != nil {
		return nil, err
	}
	if err := checkOwnership(t, actor); err != nil {
		return nil, err
	}

	now := s.now()
	key := storage.ExportKey(id, utils.Slugify(t.Name), now)
	if _, err := s.uploader.Upload(ctx, key, export.ContentTypeCSV, &buf); err != nil {
		return nil, fmt.Errorf("failed to upload export: %w", err)
	}
	if err := s.tournamentRepo.UpdateExportKey(ctx, id, &key); err != nil {
		if delErr := s.uploader.Delete(ctx, key); delErr != nil {
			s.logger.Error("failed to delete orphaned export", slog.String("key", key), slog.Any("error", delErr))
		}
		return nil, mapTournamentRepoError(err)
	}
	if t.ExportKey != nil && *t.ExportKey != key {
		if err := s.uploader.Delete(ctx, *t.ExportKey); err != nil {
			s.logger.Warn("failed to delete previous export", slog.String("key", *t.ExportKey), slog.Any("error", err))
		}
	}

	result := &ExportResult{TournamentID: id, Key: key, URL: s.uploader.GetPublicURL(key)}
	if result.URL == "" {
		url, err := s.uploader.PresignGetURL(ctx, key, presignedExportTTL)
		if err != nil {
			return nil, err
		}
		expires := now.Add(presignedExportTTL).UTC()
		result.URL, result.ExpiresAt = url, &expires
	}

	s.logger.Info("fixture exported", slog.Int("tournament_id", id), slog.String("key", key))
	if s.broadcaster != nil {
		s.broadcaster.BroadcastToRoom(brackets.TournamentRoom(id), brackets.WebSocketMessage{
			Type:    brackets.MessageFixtureExported,
			Payload: result,
			RoomID:  brackets.TournamentRoom(id),
		})
	}
	return result, nil
}
