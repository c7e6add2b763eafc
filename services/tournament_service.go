package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Dosada05/fixture-planner/brackets"
	"github.com/Dosada05/fixture-planner/models"
	"github.com/Dosada05/fixture-planner/planner"
	"github.com/Dosada05/fixture-planner/repositories"
	"github.com/Dosada05/fixture-planner/storage"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

type TournamentService interface {
	Create(ctx context.Context, actor Actor, input TournamentInput) (*models.Tournament, error)
	GetByID(ctx context.Context, id int) (*models.Tournament, error)
	List(ctx context.Context, filter ListTournamentsInput) ([]models.Tournament, error)
	Update(ctx context.Context, id int, actor Actor, input TournamentInput) (*models.Tournament, error)
	Delete(ctx context.Context, id int, actor Actor) error
	Duplicate(ctx context.Context, id int, actor Actor, name string) (*models.Tournament, error)

	SetTeams(ctx context.Context, id int, actor Actor, teams []TeamInput) ([]models.Team, error)
	SetFields(ctx context.Context, id int, actor Actor, fields []FieldInput) ([]models.Field, error)
	SetCalendar(ctx context.Context, id int, actor Actor, input CalendarInput) (*repositories.Calendar, error)
}

type TournamentInput struct {
	Name                 string              `json:"name"`
	StartDate            string              `json:"start_date"`
	EndDate              string              `json:"end_date"`
	DayStart             string              `json:"day_start"`
	DayEnd               string              `json:"day_end"`
	MatchDurationMinutes int                 `json:"match_duration_minutes"`
	MinRestMinutes       int                 `json:"min_rest_minutes"`
	RestCapMinutes       int                 `json:"rest_cap_minutes"`
	Format               models.FormatParams `json:"format"`
}

type ListTournamentsInput struct {
	OrganizerID *int
	Limit       int
	Offset      int
}

type TeamInput struct {
	Name string `json:"name"`
	Zone string `json:"zone"`
}

type FieldInput struct {
	Name        string `json:"name"`
	DaysEnabled []bool `json:"days_enabled"`
}

type CalendarInput struct {
	Days   []models.DayConfig `json:"days"`
	Breaks []models.Break     `json:"breaks"`
}

// tournamentStore loads a tournament together with its teams, fields and calendar.
type tournamentStore struct {
	tournamentRepo repositories.TournamentRepository
	teamRepo       repositories.TeamRepository
	fieldRepo      repositories.FieldRepository
	calendarRepo   repositories.CalendarRepository
}

func (s *tournamentStore) load(ctx context.Context, id int) (*models.Tournament, error) {
	t, err := s.tournamentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapTournamentRepoError(err)
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		teams, err := s.teamRepo.ListByTournament(gCtx, nil, id)
		if err != nil {
			return fmt.Errorf("failed to load teams of tournament %d: %w", id, err)
		}
		t.Teams = teams
		return nil
	})
	g.Go(func() error {
		fields, err := s.fieldRepo.ListByTournament(gCtx, nil, id)
		if err != nil {
			return fmt.Errorf("failed to load fields of tournament %d: %w", id, err)
		}
		t.Fields = fields
		return nil
	})
	g.Go(func() error {
		cal, err := s.calendarRepo.Get(gCtx, nil, id)
		if err != nil {
			return fmt.Errorf("failed to load calendar of tournament %d: %w", id, err)
		}
		t.Days, t.Breaks = cal.Days, cal.Breaks
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return t, nil
}

// invalidateFixture drops the stored matches after a configuration change.
func invalidateFixture(ctx context.Context, exec repositories.SQLExecutor, tournamentRepo repositories.TournamentRepository, matchRepo repositories.MatchRepository, id int) error {
	if err := matchRepo.DeleteByTournament(ctx, exec, id); err != nil {
		return err
	}
	return tournamentRepo.SetFixtureGeneratedAt(ctx, exec, id, nil)
}

type tournamentService struct {
	tournamentStore
	matchRepo repositories.MatchRepository
	tx        Transactor
	uploader  storage.FileUploader
	logger    *slog.Logger
}

func NewTournamentService(
	tx Transactor,
	tournamentRepo repositories.TournamentRepository,
	teamRepo repositories.TeamRepository,
	fieldRepo repositories.FieldRepository,
	calendarRepo repositories.CalendarRepository,
	matchRepo repositories.MatchRepository,
	uploader storage.FileUploader,
	logger *slog.Logger,
) TournamentService {
	return &tournamentService{
		tournamentStore: tournamentStore{
			tournamentRepo: tournamentRepo,
			teamRepo:       teamRepo,
			fieldRepo:      fieldRepo,
			calendarRepo:   calendarRepo,
		},
		matchRepo: matchRepo,
		tx:        tx,
		uploader:  uploader,
		logger:    logger,
	}
}

func (s *tournamentService) Create(ctx context.Context, actor Actor, input TournamentInput) (*models.Tournament, error) {
	t := &models.Tournament{OrganizerID: actor.UserID}
	if err := applyTournamentInput(t, input); err != nil {
		return nil, err
	}
	if err := s.tournamentRepo.Create(ctx, nil, t); err != nil {
		return nil, mapTournamentRepoError(err)
	}
	s.logger.Info("tournament created", slog.Int("tournament_id", t.ID), slog.Int("organizer_id", actor.UserID))
	return t, nil
}

func (s *tournamentService) GetByID(ctx context.Context, id int) (*models.Tournament, error) {
	t, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	populateExportURL(t, s.uploader)
	return t, nil
}

func (s *tournamentService) List(ctx context.Context, filter ListTournamentsInput) ([]models.Tournament, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}
	tournaments, err := s.tournamentRepo.List(ctx, repositories.ListTournamentsFilter{
		OrganizerID: filter.OrganizerID,
		Limit:       limit,
		Offset:      offset,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list tournaments: %w", err)
	}
	for i := range tournaments {
		populateExportURL(&tournaments[i], s.uploader)
	}
	return tournaments, nil
}

func (s *tournamentService) Update(ctx context.Context, id int, actor Actor, input TournamentInput) (*models.Tournament, error) {
	t, err := s.owned(ctx, id, actor)
	if err != nil {
		return nil, err
	}
	if err := applyTournamentInput(t, input); err != nil {
		return nil, err
	}

	err = s.tx.WithinTx(ctx, func(exec repositories.SQLExecutor) error {
		if err := s.tournamentRepo.Update(ctx, exec, t); err != nil {
			return err
		}
		return invalidateFixture(ctx, exec, s.tournamentRepo, s.matchRepo, id)
	})
	if err != nil {
		return nil, mapTournamentRepoError(err)
	}
	t.FixtureGeneratedAt = nil
	return t, nil
}

func (s *tournamentService) Delete(ctx context.Context, id int, actor Actor) error {
	t, err := s.owned(ctx, id, actor)
	if err != nil {
		return err
	}
	if err := s.tournamentRepo.Delete(ctx, id); err != nil {
		return mapTournamentRepoError(err)
	}
	if t.ExportKey != nil && s.uploader != nil {
		if err := s.uploader.Delete(ctx, *t.ExportKey); err != nil {
			s.logger.Warn("failed to delete export of removed tournament",
				slog.Int("tournament_id", id), slog.String("key", *t.ExportKey), slog.Any("error", err))
		}
	}
	s.logger.Info("tournament deleted", slog.Int("tournament_id", id))
	return nil
}

// Duplicate copies the configuration of a tournament (teams, fields, calendar) into a new
// tournament owned by actor. The fixture itself is not copied.
func (s *tournamentService) Duplicate(ctx context.Context, id int, actor Actor, name string) (*models.Tournament, error) {
	src, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := checkOwnership(src, actor); err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		name = src.Name + " (copy)"
	}
	dup := &models.Tournament{
		Name:                 name,
		OrganizerID:          actor.UserID,
		StartDate:            src.StartDate,
		EndDate:              src.EndDate,
		DayStart:             src.DayStart,
		DayEnd:               src.DayEnd,
		MatchDurationMinutes: src.MatchDurationMinutes,
		MinRestMinutes:       src.MinRestMinutes,
		RestCapMinutes:       src.RestCapMinutes,
		Format:               src.Format,
		Teams:                append([]models.Team(nil), src.Teams...),
		Fields:               append([]models.Field(nil), src.Fields...),
		Days:                 append([]models.DayConfig(nil), src.Days...),
		Breaks:               append([]models.Break(nil), src.Breaks...),
	}

	err = s.tx.WithinTx(ctx, func(exec repositories.SQLExecutor) error {
		if err := s.tournamentRepo.Create(ctx, exec, dup); err != nil {
			return err
		}
		if err := s.teamRepo.ReplaceForTournament(ctx, exec, dup.ID, dup.Teams); err != nil {
			return err
		}
		if err := s.fieldRepo.ReplaceForTournament(ctx, exec, dup.ID, dup.Fields); err != nil {
			return err
		}
		return s.calendarRepo.Replace(ctx, exec, dup.ID, &repositories.Calendar{Days: dup.Days, Breaks: dup.Breaks})
	})
	if err != nil {
		return nil, mapTournamentRepoError(err)
	}
	s.logger.Info("tournament duplicated", slog.Int("source_id", id), slog.Int("tournament_id", dup.ID))
	return dup, nil
}

func (s *tournamentService) SetTeams(ctx context.Context, id int, actor Actor, input []TeamInput) ([]models.Team, error) {
	if _, err := s.owned(ctx, id, actor); err != nil {
		return nil, err
	}
	teams := make([]models.Team, 0, len(input))
	for i, in := range input {
		name := strings.TrimSpace(in.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: team #%d has no name", ErrValidationFailed, i+1)
		}
		teams = append(teams, models.Team{Name: name, Zone: strings.TrimSpace(in.Zone)})
	}

	err := s.tx.WithinTx(ctx, func(exec repositories.SQLExecutor) error {
		if err := s.teamRepo.ReplaceForTournament(ctx, exec, id, teams); err != nil {
			return err
		}
		return invalidateFixture(ctx, exec, s.tournamentRepo, s.matchRepo, id)
	})
	if err != nil {
		return nil, mapTournamentRepoError(err)
	}
	return teams, nil
}

func (s *tournamentService) SetFields(ctx context.Context, id int, actor Actor, input []FieldInput) ([]models.Field, error) {
	if _, err := s.owned(ctx, id, actor); err != nil {
		return nil, err
	}
	fields := make([]models.Field, 0, len(input))
	for i, in := range input {
		name := strings.TrimSpace(in.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: field #%d has no name", ErrValidationFailed, i+1)
		}
		fields = append(fields, models.Field{Name: name, DaysEnabled: in.DaysEnabled})
	}

	err := s.tx.WithinTx(ctx, func(exec repositories.SQLExecutor) error {
		if err := s.fieldRepo.ReplaceForTournament(ctx, exec, id, fields); err != nil {
			return err
		}
		return invalidateFixture(ctx, exec, s.tournamentRepo, s.matchRepo, id)
	})
	if err != nil {
		return nil, mapTournamentRepoError(err)
	}
	return fields, nil
}

func (s *tournamentService) SetCalendar(ctx context.Context, id int, actor Actor, input CalendarInput) (*repositories.Calendar, error) {
	if _, err := s.owned(ctx, id, actor); err != nil {
		return nil, err
	}
	cal := &repositories.Calendar{
		Days:   append(make([]models.DayConfig, 0, len(input.Days)), input.Days...),
		Breaks: append(make([]models.Break, 0, len(input.Breaks)), input.Breaks...),
	}
	if err := validateCalendar(cal); err != nil {
		return nil, err
	}

	err := s.tx.WithinTx(ctx, func(exec repositories.SQLExecutor) error {
		if err := s.calendarRepo.Replace(ctx, exec, id, cal); err != nil {
			return err
		}
		return invalidateFixture(ctx, exec, s.tournamentRepo, s.matchRepo, id)
	})
	if err != nil {
		return nil, mapTournamentRepoError(err)
	}
	return cal, nil
}

func (s *tournamentService) owned(ctx context.Context, id int, actor Actor) (*models.Tournament, error) {
	t, err := s.tournamentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapTournamentRepoError(err)
	}
	if err := checkOwnership(t, actor); err != nil {
		return nil, err
	}
	return t, nil
}

// applyTournamentInput validates input, fills defaults and copies it onto t.
func applyTournamentInput(t *models.Tournament, in TournamentInput) error {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrValidationFailed)
	}

	dayStart, dayEnd := in.DayStart, in.DayEnd
	if dayStart == "" {
		dayStart = planner.DefaultDayStart
	}
	if dayEnd == "" {
		dayEnd = planner.DefaultDayEnd
	}
	from, err := models.ParseClock(dayStart)
	if err != nil {
		return fmt.Errorf("%w: day_start: %w", ErrValidationFailed, err)
	}
	to, err := models.ParseClock(dayEnd)
	if err != nil {
		return fmt.Errorf("%w: day_end: %w", ErrValidationFailed, err)
	}
	if from >= to {
		return fmt.Errorf("%w: day_start must be before day_end", ErrValidationFailed)
	}

	duration := in.MatchDurationMinutes
	if duration == 0 {
		duration = planner.DefaultMatchDuration
	}
	if duration < 0 {
		return fmt.Errorf("%w: match_duration_minutes must be positive", ErrValidationFailed)
	}
	if in.MinRestMinutes < 0 {
		return fmt.Errorf("%w: min_rest_minutes cannot be negative", ErrValidationFailed)
	}
	if in.RestCapMinutes < 0 {
		return fmt.Errorf("%w: rest_cap_minutes cannot be negative", ErrValidationFailed)
	}

	if err := validateDateRange(in.StartDate, in.EndDate); err != nil {
		return err
	}

	format := in.Format
	if format.Kind == "" {
		format.Kind = models.FormatLeague
	}
	if _, err := brackets.NewGenerator(format.Kind); err != nil {
		return fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}
	switch format.Elimination {
	case "", models.EliminationSimple, models.EliminationThirdPlace, models.EliminationConsolation:
	default:
		return fmt.Errorf("%w: unknown elimination %q", ErrValidationFailed, format.Elimination)
	}
	if format.QualifiersPerZone < 0 {
		return fmt.Errorf("%w: qualifiers_per_zone cannot be negative", ErrValidationFailed)
	}

	t.Name = name
	t.StartDate, t.EndDate = in.StartDate, in.EndDate
	t.DayStart, t.DayEnd = dayStart, dayEnd
	t.MatchDurationMinutes = duration
	t.MinRestMinutes = in.MinRestMinutes
	t.RestCapMinutes = in.RestCapMinutes
	t.Format = format
	return nil
}

func validateDateRange(start, end string) error {
	var from, to time.Time
	var err error
	if start != "" {
		if from, err = time.Parse(models.DateLayout, start); err != nil {
			return fmt.Errorf("%w: start_date must be YYYY-MM-DD", ErrValidationFailed)
		}
	}
	if end != "" {
		if to, err = time.Parse(models.DateLayout, end); err != nil {
			return fmt.Errorf("%w: end_date must be YYYY-MM-DD", ErrValidationFailed)
		}
	}
	if start != "" && end != "" && to.Before(from) {
		return fmt.Errorf("%w: end_date is before start_date", ErrValidationFailed)
	}
	return nil
}

// validateCalendar checks formats only; ordering and windows are checked when the fixture is planned.
func validateCalendar(cal *repositories.Calendar) error {
	seen := make(map[string]bool, len(cal.Days))
	for i, d := range cal.Days {
		if _, err := time.Parse(models.DateLayout, d.Date); err != nil {
			return fmt.Errorf("%w: day #%d: date must be YYYY-MM-DD", ErrValidationFailed, i+1)
		}
		if seen[d.Date] {
			return fmt.Errorf("%w: day %s is listed twice", ErrValidationFailed, d.Date)
		}
		seen[d.Date] = true
		if d.Kind == "" {
			cal.Days[i].Kind = models.DayFull
		} else if !d.Kind.Valid() {
			return fmt.Errorf("%w: day %s: unknown kind %q", ErrValidationFailed, d.Date, d.Kind)
		}
		for _, clock := range []string{d.Start, d.End} {
			if clock == "" {
				continue
			}
			if _, err := models.ParseClock(clock); err != nil {
				return fmt.Errorf("%w: day %s: %w", ErrValidationFailed, d.Date, err)
			}
		}
	}
	for i, b := range cal.Breaks {
		if b.Date != "" {
			if _, err := time.Parse(models.DateLayout, b.Date); err != nil {
				return fmt.Errorf("%w: break #%d: date must be YYYY-MM-DD", ErrValidationFailed, i+1)
			}
		}
		from, err := models.ParseClock(b.Start)
		if err != nil {
			return fmt.Errorf("%w: break #%d: %w", ErrValidationFailed, i+1, err)
		}
		to, err := models.ParseClock(b.End)
		if err != nil {
			return fmt.Errorf("%w: break #%d: %w", ErrValidationFailed, i+1, err)
		}
		if from >= to {
			return fmt.Errorf("%w: break #%d ends before it starts", ErrValidationFailed, i+1)
		}
	}
	return nil
}
