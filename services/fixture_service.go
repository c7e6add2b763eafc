package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/Dosada05/fixture-planner/brackets"
	"github.com/Dosada05/fixture-planner/export"
	"github.com/Dosada05/fixture-planner/models"
	"github.com/Dosada05/fixture-planner/planner"
	"github.com/Dosada05/fixture-planner/repositories"
	"github.com/Dosada05/fixture-planner/scheduler"
)

type FixtureService interface {
	// Generate plans the fixture from the stored configuration, replaces the stored
	// matches and notifies the tournament room.
	Generate(ctx context.Context, id int, actor Actor) (*FixtureResult, error)
	Matches(ctx context.Context, id int, view export.View) (*FixtureView, error)
	// WriteCSV streams the stored fixture and returns the tournament it belongs to.
	WriteCSV(ctx context.Context, id int, w io.Writer) (*models.Tournament, error)
}

type FixtureResult struct {
	TournamentID int              `json:"tournament_id"`
	Generator    string           `json:"generator"`
	GeneratedAt  time.Time        `json:"generated_at"`
	Report       scheduler.Report `json:"report"`
	Matches      []*models.Match  `json:"matches"`
}

type FixtureView struct {
	TournamentID int             `json:"tournament_id"`
	View         export.View     `json:"view"`
	GeneratedAt  *time.Time      `json:"generated_at,omitempty"`
	Groups       []*export.Group `json:"groups"`
}

type FixtureGeneratedPayload struct {
	TournamentID int       `json:"tournament_id"`
	Generator    string    `json:"generator"`
	Matches      int       `json:"matches"`
	Scheduled    int       `json:"scheduled"`
	Unscheduled  []string  `json:"unscheduled,omitempty"`
	GeneratedAt  time.Time `json:"generated_at"`
}

type fixtureService struct {
	tournamentStore
	matchRepo   repositories.MatchRepository
	tx          Transactor
	broadcaster Broadcaster
	logger      *slog.Logger
	now         func() time.Time
}

func NewFixtureService(
	tx Transactor,
	tournamentRepo repositories.TournamentRepository,
	teamRepo repositories.TeamRepository,
	fieldRepo repositories.FieldRepository,
	calendarRepo repositories.CalendarRepository,
	matchRepo repositories.MatchRepository,
	broadcaster Broadcaster,
	logger *slog.Logger,
) FixtureService {
	return &fixtureService{
		tournamentStore: tournamentStore{
			tournamentRepo: tournamentRepo,
			teamRepo:       teamRepo,
			fieldRepo:      fieldRepo,
			calendarRepo:   calendarRepo,
		},
		matchRepo:   matchRepo,
		tx:          tx,
		broadcaster: broadcaster,
		logger:      logger,
		now:         time.Now,
	}
}

func (s *fixtureService) Generate(ctx context.Context, id int, actor Actor) (*FixtureResult, error) {
	t, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := checkOwnership(t, actor); err != nil {
		return nil, err
	}

	result, err := planner.Plan(PlannerInput(t))
	if err != nil {
		if errors.Is(err, planner.ErrInvalidConfiguration) {
			return nil, fmt.Errorf("%w: %w", ErrFixtureInvalid, err)
		}
		return nil, fmt.Errorf("failed to plan fixture for tournament %d: %w", id, err)
	}

	generatedAt := s.now().UTC()
	err = s.tx.WithinTx(ctx, func(exec repositories.SQLExecutor) error {
		if err := s.matchRepo.ReplaceForTournament(ctx, exec, id, result.Matches); err != nil {
			return err
		}
		return s.tournamentRepo.SetFixtureGeneratedAt(ctx, exec, id, &generatedAt)
	})
	if err != nil {
		return nil, mapTournamentRepoError(err)
	}

	s.logger.Info("fixture generated",
		slog.Int("tournament_id", id),
		slog.String("generator", result.Generator),
		slog.Int("matches", len(result.Matches)),
		slog.Int("scheduled", result.Report.Scheduled),
		slog.Int("unscheduled", len(result.Report.Unscheduled)),
	)

	if s.broadcaster != nil {
		s.broadcaster.BroadcastToRoom(brackets.TournamentRoom(id), brackets.WebSocketMessage{
			Type: brackets.MessageFixtureGenerated,
			Payload: FixtureGeneratedPayload{
				TournamentID: id,
				Generator:    result.Generator,
				Matches:      len(result.Matches),
				Scheduled:    result.Report.Scheduled,
				Unscheduled:  result.Report.Unscheduled,
				GeneratedAt:  generatedAt,
			},
			RoomID: brackets.TournamentRoom(id),
		})
	}

	return &FixtureResult{
		TournamentID: id,
		Generator:    result.Generator,
		GeneratedAt:  generatedAt,
		Report:       result.Report,
		Matches:      result.Matches,
	}, nil
}

func (s *fixtureService) Matches(ctx context.Context, id int, view export.View) (*FixtureView, error) {
	t, matches, err := s.storedFixture(ctx, id)
	if err != nil {
		return nil, err
	}
	return &FixtureView{
		TournamentID: id,
		View:         view,
		GeneratedAt:  t.FixtureGeneratedAt,
		Groups:       export.GroupBy(view, matches, export.NewDirectory(t.Teams, t.Fields)),
	}, nil
}

func (s *fixtureService) WriteCSV(ctx context.Context, id int, w io.Writer) (*models.Tournament, error) {
	t, matches, err := s.storedFixture(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := export.WriteCSV(w, matches, export.NewDirectory(t.Teams, t.Fields)); err != nil {
		return nil, fmt.Errorf("failed to write fixture of tournament %d: %w", id, err)
	}
	return t, nil
}

func (s *fixtureService) storedFixture(ctx context.Context, id int) (*models.Tournament, []*models.Match, error) {
	t, err := s.load(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if t.FixtureGeneratedAt == nil {
		return nil, nil, ErrFixtureNotGenerated
	}
	matches, err := s.matchRepo.ListByTournament(ctx, nil, id)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load fixture of tournament %d: %w", id, err)
	}
	return t, matches, nil
}

// PlannerInput maps a stored tournament onto a planning run.
func PlannerInput(t *models.Tournament) planner.Input {
	return planner.Input{
		Teams:                t.Teams,
		Fields:               t.Fields,
		Days:                 t.Days,
		StartDate:            t.StartDate,
		EndDate:              t.EndDate,
		Breaks:               t.Breaks,
		Format:               t.Format,
		DayStart:             t.DayStart,
		DayEnd:               t.DayEnd,
		MatchDurationMinutes: t.MatchDurationMinutes,
		MinRestMinutes:       t.MinRestMinutes,
		RestCapMinutes:       t.RestCapMinutes,
	}
}
