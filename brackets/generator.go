package brackets

import (
	"errors"
	"fmt"

	"github.com/Dosada05/fixture-planner/models"
	"github.com/google/uuid"
)

var (
	ErrInvalidFormat     = errors.New("invalid competition format")
	ErrNotEnoughTeams    = errors.New("not enough teams to build a fixture")
	ErrUnsupportedFormat = errors.New("unsupported format kind")
)

type GenerateParams struct {
	Teams  []models.Team
	Format models.FormatParams
}

// Generator turns a team list into an unscheduled, phase-ordered match list.
type Generator interface {
	Generate(params GenerateParams) ([]*models.Match, error)

	GetName() string
}

func NewGenerator(kind models.FormatKind) (Generator, error) {
	switch kind {
	case models.FormatLeague, "":
		return &LeagueGenerator{}, nil
	case models.FormatZones:
		return &ZonesGenerator{}, nil
	case models.FormatKnockout:
		return &KnockoutGenerator{}, nil
	case models.FormatSpecial:
		return &SpecialGenerator{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, kind)
	}
}

type LeagueGenerator struct{}

func (g *LeagueGenerator) GetName() string { return "League" }

func (g *LeagueGenerator) Generate(params GenerateParams) ([]*models.Match, error) {
	if len(params.Teams) < 2 {
		return nil, fmt.Errorf("%w: league needs at least 2 teams, got %d", ErrNotEnoughTeams, len(params.Teams))
	}
	return RoundRobinTeams(teamIDs(params.Teams), RoundRobinOptions{
		Phase:       "League",
		DoubleRound: params.Format.DoubleRound,
	}), nil
}

type KnockoutGenerator struct{}

func (g *KnockoutGenerator) GetName() string { return "Knockout" }

func (g *KnockoutGenerator) Generate(params GenerateParams) ([]*models.Match, error) {
	if len(params.Teams) < 2 {
		return nil, fmt.Errorf("%w: knockout needs at least 2 teams, got %d", ErrNotEnoughTeams, len(params.Teams))
	}
	seeds := make([]models.Side, len(params.Teams))
	for i, t := range params.Teams {
		seeds[i] = models.TeamSide(t.ID)
	}
	return SingleElimination(seeds, EliminationOptions{
		Phase:   "Knockout",
		Variant: params.Format.Elimination,
	}), nil
}

type SpecialGenerator struct{}

func (g *SpecialGenerator) GetName() string { return "Special21to24" }

func (g *SpecialGenerator) Generate(params GenerateParams) ([]*models.Match, error) {
	return Special(params.Teams, params.Format.DoubleRound)
}

func newMatch(zone, phase string, round int, home, away models.Side) *models.Match {
	return &models.Match{
		ID:    uuid.NewString(),
		Zone:  zone,
		Phase: phase,
		Round: round,
		Home:  home,
		Away:  away,
	}
}

func teamIDs(teams []models.Team) []int {
	ids := make([]int, len(teams))
	for i, t := range teams {
		ids[i] = t.ID
	}
	return ids
}
