package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Dosada05/fixture-planner/models"
)

var (
	owner    = Actor{UserID: 1, Role: models.RoleOrganizer}
	stranger = Actor{UserID: 2, Role: models.RoleOrganizer}
	admin    = Actor{UserID: 99, Role: models.RoleAdmin}
)

func TestTournamentCreateDefaults(t *testing.T) {
	env := newFixtureEnv(nil)
	tour, err := env.tournaments.Create(context.Background(), owner, TournamentInput{Name: "  Spring Cup "})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if tour.Name != "Spring Cup" || tour.OrganizerID != owner.UserID {
		t.Errorf("tournament = %+v", tour)
	}
	if tour.DayStart != "09:00" || tour.DayEnd != "21:00" || tour.MatchDurationMinutes != 60 {
		t.Errorf("defaults not applied: %+v", tour)
	}
	if tour.Format.Kind != models.FormatLeague {
		t.Errorf("format = %q, want league", tour.Format.Kind)
	}
}

func TestTournamentCreateValidation(t *testing.T) {
	env := newFixtureEnv(nil)
	tests := []struct {
		name  string
		input TournamentInput
	}{
		{"no name", TournamentInput{}},
		{"window reversed", TournamentInput{Name: "X", DayStart: "18:00", DayEnd: "10:00"}},
		{"bad clock", TournamentInput{Name: "X", DayStart: "9am"}},
		{"negative rest", TournamentInput{Name: "X", MinRestMinutes: -5}},
		{"negative rest cap", TournamentInput{Name: "X", RestCapMinutes: -1}},
		{"end before start", TournamentInput{Name: "X", StartDate: "2025-03-05", EndDate: "2025-03-01"}},
		{"unknown format", TournamentInput{Name: "X", Format: models.FormatParams{Kind: "swiss"}}},
		{"unknown elimination", TournamentInput{Name: "X", Format: models.FormatParams{Kind: models.FormatKnockout, Elimination: "double"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := env.tournaments.Create(context.Background(), owner, tt.input); !errors.Is(err, ErrValidationFailed) {
				t.Errorf("got %v, want ErrValidationFailed", err)
			}
		})
	}
}

func TestTournamentOwnership(t *testing.T) {
	ctx := context.Background()
	env := newFixtureEnv(nil)
	tour, err := env.tournaments.Create(ctx, owner, TournamentInput{Name: "Cup"})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := env.tournaments.SetTeams(ctx, tour.ID, stranger, []TeamInput{{Name: "A"}}); !errors.Is(err, ErrForbiddenOperation) {
		t.Errorf("stranger SetTeams: got %v", err)
	}
	if err := env.tournaments.Delete(ctx, tour.ID, stranger); !errors.Is(err, ErrForbiddenOperation) {
		t.Errorf("stranger Delete: got %v", err)
	}
	if _, err := env.tournaments.SetTeams(ctx, tour.ID, admin, []TeamInput{{Name: "A"}}); err != nil {
		t.Errorf("admin SetTeams: %v", err)
	}
	if err := env.tournaments.Delete(ctx, tour.ID, owner); err != nil {
		t.Errorf("owner Delete: %v", err)
	}
	if _, err := env.tournaments.GetByID(ctx, tour.ID); !errors.Is(err, ErrTournamentNotFound) {
		t.Errorf("after delete: got %v", err)
	}
}

func TestSetTeamsInvalidatesFixture(t *testing.T) {
	ctx := context.Background()
	env := newFixtureEnv(nil)
	tour := seedLeague(t, env, 4)
	if _, err := env.fixtures.Generate(ctx, tour.ID, owner); err != nil {
		t.Fatalf("generate: %v", err)
	}

	teams, err := env.tournaments.SetTeams(ctx, tour.ID, owner, []TeamInput{{Name: " A ", Zone: " Z1 "}, {Name: "B", Zone: "Z1"}})
	if err != nil {
		t.Fatalf("SetTeams: %v", err)
	}
	if teams[0].Name != "A" || teams[0].Zone != "Z1" || teams[0].ID == 0 {
		t.Errorf("teams = %+v", teams)
	}
	if len(env.db.matches[tour.ID]) != 0 {
		t.Error("stored matches should be dropped")
	}
	if _, err := env.fixtures.Matches(ctx, tour.ID, "zone"); !errors.Is(err, ErrFixtureNotGenerated) {
		t.Errorf("Matches after SetTeams: got %v", err)
	}

	if _, err := env.tournaments.SetTeams(ctx, tour.ID, owner, []TeamInput{{Name: " "}}); !errors.Is(err, ErrValidationFailed) {
		t.Errorf("blank team name: got %v", err)
	}
}

func TestSetCalendarValidation(t *testing.T) {
	ctx := context.Background()
	env := newFixtureEnv(nil)
	tour, err := env.tournaments.Create(ctx, owner, TournamentInput{Name: "Cup"})
	if err != nil {
		t.Fatal(err)
	}

	cal, err := env.tournaments.SetCalendar(ctx, tour.ID, owner, CalendarInput{
		Days:   []models.DayConfig{{Date: "2025-03-01"}, {Date: "2025-03-02", Kind: models.DayHalf, Start: "10:00"}},
		Breaks: []models.Break{{Start: "13:00", End: "14:00"}},
	})
	if err != nil {
		t.Fatalf("SetCalendar: %v", err)
	}
	if cal.Days[0].Kind != models.DayFull {
		t.Errorf("missing kind should default to full, got %q", cal.Days[0].Kind)
	}

	bad := []CalendarInput{
		{Days: []models.DayConfig{{Date: "01/03/2025"}}},
		{Days: []models.DayConfig{{Date: "2025-03-01"}, {Date: "2025-03-01"}}},
		{Days: []models.DayConfig{{Date: "2025-03-01", Kind: "holiday"}}},
		{Days: []models.DayConfig{{Date: "2025-03-01", End: "25:00"}}},
		{Breaks: []models.Break{{Start: "14:00", End: "13:00"}}},
		{Breaks: []models.Break{{Date: "tomorrow", Start: "13:00", End: "14:00"}}},
	}
	for i, in := range bad {
		if _, err := env.tournaments.SetCalendar(ctx, tour.ID, owner, in); !errors.Is(err, ErrValidationFailed) {
			t.Errorf("case %d: got %v, want ErrValidationFailed", i, err)
		}
	}
}

func TestDuplicateCopiesConfiguration(t *testing.T) {
	ctx := context.Background()
	env := newFixtureEnv(nil)
	src := seedLeague(t, env, 4)

	dup, err := env.tournaments.Duplicate(ctx, src.ID, owner, "")
	if err != nil {
		t.Fatalf("Duplicate: %v", err)
	}
	if dup.ID == src.ID || dup.Name != src.Name+" (copy)" {
		t.Errorf("duplicate = %+v", dup)
	}

	loaded, err := env.tournaments.GetByID(ctx, dup.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(loaded.Teams) != 4 || len(loaded.Fields) != 1 || loaded.FixtureGeneratedAt != nil {
		t.Errorf("duplicate content = %d teams, %d fields, generated %v", len(loaded.Teams), len(loaded.Fields), loaded.FixtureGeneratedAt)
	}
	for _, team := range loaded.Teams {
		if team.TournamentID != dup.ID {
			t.Errorf("team %d still points at tournament %d", team.ID, team.TournamentID)
		}
	}

	if _, err := env.tournaments.Duplicate(ctx, src.ID, owner, ""); !errors.Is(err, ErrTournamentNameConflict) {
		t.Errorf("second copy with the same name: got %v", err)
	}
}

func TestListClampsLimit(t *testing.T) {
	ctx := context.Background()
	env := newFixtureEnv(nil)
	for _, name := range []string{"A", "B", "C"} {
		if _, err := env.tournaments.Create(ctx, owner, TournamentInput{Name: name}); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := env.tournaments.Create(ctx, stranger, TournamentInput{Name: "D"}); err != nil {
		t.Fatal(err)
	}

	all, err := env.tournaments.List(ctx, ListTournamentsInput{Limit: 1000})
	if err != nil || len(all) != 4 {
		t.Fatalf("List = %d, %v", len(all), err)
	}
	mine, err := env.tournaments.List(ctx, ListTournamentsInput{OrganizerID: &owner.UserID})
	if err != nil || len(mine) != 3 {
		t.Errorf("List by organizer = %d, %v", len(mine), err)
	}
}

// seedLeague creates a league tournament over one day with n teams and one field.
func seedLeague(t *testing.T, env *fixtureEnv, n int) *models.Tournament {
	t.Helper()
	ctx := context.Background()
	tour, err := env.tournaments.Create(ctx, owner, TournamentInput{
		Name:      "League " + time.Now().Format("150405.000000"),
		StartDate: "2025-03-01",
		EndDate:   "2025-03-01",
		// one field and one day: saturate rest so the whole league fits
		RestCapMinutes: 60,
	})
	if err != nil {
		t.Fatal(err)
	}
	teams := make([]TeamInput, n)
	for i := range teams {
		teams[i] = TeamInput{Name: string(rune('A' + i))}
	}
	if _, err := env.tournaments.SetTeams(ctx, tour.ID, owner, teams); err != nil {
		t.Fatal(err)
	}
	if _, err := env.tournaments.SetFields(ctx, tour.ID, owner, []FieldInput{{Name: "Main"}}); err != nil {
		t.Fatal(err)
	}
	return tour
}
