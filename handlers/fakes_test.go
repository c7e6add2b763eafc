package handlers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v4"

	"github.com/Dosada05/fixture-planner/export"
	"github.com/Dosada05/fixture-planner/middleware"
	"github.com/Dosada05/fixture-planner/models"
	"github.com/Dosada05/fixture-planner/repositories"
	"github.com/Dosada05/fixture-planner/services"
)

type fakeAuthService struct {
	register func(services.RegisterInput) (*models.User, error)
	login    func(services.LoginInput) (*models.User, error)
}

func (f *fakeAuthService) Register(_ context.Context, in services.RegisterInput) (*models.User, error) {
	return f.register(in)
}

func (f *fakeAuthService) Login(_ context.Context, in services.LoginInput) (*models.User, error) {
	return f.login(in)
}

// fakeTournamentService records the last call and answers with canned values.
type fakeTournamentService struct {
	tournament *models.Tournament
	err        error

	lastActor  services.Actor
	lastID     int
	lastInput  services.TournamentInput
	lastFilter services.ListTournamentsInput
	lastTeams  []services.TeamInput
	lastName   string
}

func (f *fakeTournamentService) Create(_ context.Context, actor services.Actor, in services.TournamentInput) (*models.Tournament, error) {
	f.lastActor, f.lastInput = actor, in
	return f.tournament, f.err
}

func (f *fakeTournamentService) GetByID(_ context.Context, id int) (*models.Tournament, error) {
	f.lastID = id
	return f.tournament, f.err
}

func (f *fakeTournamentService) List(_ context.Context, filter services.ListTournamentsInput) ([]models.Tournament, error) {
	f.lastFilter = filter
	if f.err != nil {
		return nil, f.err
	}
	if f.tournament == nil {
		return []models.Tournament{}, nil
	}
	return []models.Tournament{*f.tournament}, nil
}

func (f *fakeTournamentService) Update(_ context.Context, id int, actor services.Actor, in services.TournamentInput) (*models.Tournament, error) {
	f.lastID, f.lastActor, f.lastInput = id, actor, in
	return f.tournament, f.err
}

func (f *fakeTournamentService) Delete(_ context.Context, id int, actor services.Actor) error {
	f.lastID, f.lastActor = id, actor
	return f.err
}

func (f *fakeTournamentService) Duplicate(_ context.Context, id int, actor services.Actor, name string) (*models.Tournament, error) {
	f.lastID, f.lastActor, f.lastName = id, actor, name
	return f.tournament, f.err
}

func (f *fakeTournamentService) SetTeams(_ context.Context, id int, actor services.Actor, teams []services.TeamInput) ([]models.Team, error) {
	f.lastID, f.lastActor, f.lastTeams = id, actor, teams
	if f.err != nil {
		return nil, f.err
	}
	out := make([]models.Team, len(teams))
	for i, t := range teams {
		out[i] = models.Team{ID: i + 1, TournamentID: id, Name: t.Name, Zone: t.Zone}
	}
	return out, nil
}

func (f *fakeTournamentService) SetFields(_ context.Context, id int, actor services.Actor, fields []services.FieldInput) ([]models.Field, error) {
	f.lastID, f.lastActor = id, actor
	if f.err != nil {
		return nil, f.err
	}
	out := make([]models.Field, len(fields))
	for i, fl := range fields {
		out[i] = models.Field{ID: i + 1, TournamentID: id, Name: fl.Name, DaysEnabled: fl.DaysEnabled}
	}
	return out, nil
}

func (f *fakeTournamentService) SetCalendar(_ context.Context, id int, actor services.Actor, in services.CalendarInput) (*repositories.Calendar, error) {
	f.lastID, f.lastActor = id, actor
	if f.err != nil {
		return nil, f.err
	}
	return &repositories.Calendar{Days: in.Days, Breaks: in.Breaks}, nil
}

type fakeFixtureService struct {
	result   *services.FixtureResult
	view     *services.FixtureView
	csv      string
	err      error
	lastView export.View
}

func (f *fakeFixtureService) Generate(_ context.Context, id int, _ services.Actor) (*services.FixtureResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.result.TournamentID = id
	return f.result, nil
}

func (f *fakeFixtureService) Matches(_ context.Context, id int, view export.View) (*services.FixtureView, error) {
	f.lastView = view
	if f.err != nil {
		return nil, f.err
	}
	return &services.FixtureView{TournamentID: id, View: view, Groups: []*export.Group{}}, nil
}

func (f *fakeFixtureService) WriteCSV(_ context.Context, id int, w io.Writer) (*models.Tournament, error) {
	if f.err != nil {
		return nil, f.err
	}
	if _, err := io.WriteString(w, f.csv); err != nil {
		return nil, err
	}
	return &models.Tournament{ID: id, Name: "Copa Primavera 2025"}, nil
}

type fakeExportService struct {
	result *services.ExportResult
	err    error
}

func (f *fakeExportService) Export(_ context.Context, id int, _ services.Actor) (*services.ExportResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.result.TournamentID = id
	return f.result, nil
}

// serve routes a single request through chi so URL params resolve.
func serve(method, pattern, target, body string, h http.HandlerFunc, claims jwt.MapClaims) *httptest.ResponseRecorder {
	router := chi.NewRouter()
	router.MethodFunc(method, pattern, h)

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if claims != nil {
		req = req.WithContext(middleware.WithClaims(req.Context(), claims))
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func organizerClaims(userID int) jwt.MapClaims {
	return jwt.MapClaims{"user_id": float64(userID), "role": string(models.RoleOrganizer)}
}
