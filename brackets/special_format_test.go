package brackets

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/Dosada05/fixture-planner/models"
)

// zonedTeams builds teams in zones Z1..Zn with the given sizes.
func zonedTeams(sizes ...int) []models.Team {
	teams := make([]models.Team, 0)
	id := 1
	for z, size := range sizes {
		for i := 0; i < size; i++ {
			teams = append(teams, models.Team{
				ID:   id,
				Name: fmt.Sprintf("Team %d", id),
				Zone: fmt.Sprintf("Z%d", z+1),
			})
			id++
		}
	}
	return teams
}

type phaseCounts struct {
	zone, cross, ranks, places9, places17, byes int
}

func countPhases(matches []*models.Match) phaseCounts {
	var c phaseCounts
	for _, m := range matches {
		switch categorize(m) {
		case categoryZone:
			c.zone++
		case categoryCross:
			c.cross++
		case categoryRanks:
			c.ranks++
		case categoryPlaces9:
			c.places9++
		case categoryPlaces17:
			c.places17++
		}
		if m.IsBye {
			c.byes++
		}
	}
	return c
}

func TestSpecialTwentyFourTeams(t *testing.T) {
	matches, err := Special(zonedTeams(3, 3, 3, 3, 3, 3, 3, 3), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := countPhases(matches)
	want := phaseCounts{zone: 24, cross: 12, ranks: 4, places9: 12, places17: 12}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
	if len(matches) != 64 {
		t.Errorf("got %d matches, want 64", len(matches))
	}
	for _, m := range matches {
		if err := m.Validate(); err != nil {
			t.Fatal(err)
		}
	}
}

func TestSpecialTwentyOneTeams(t *testing.T) {
	matches, err := Special(zonedTeams(3, 3, 3, 3, 3, 3, 3), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := countPhases(matches)
	want := phaseCounts{zone: 21, cross: 12, ranks: 4, places9: 12, places17: 8, byes: 3}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}

	var a1 []string
	for _, m := range matches {
		if m.Zone == "A1" {
			a1 = append(a1, m.Home.Label(), m.Away.Label())
		}
	}
	if !strings.Contains(strings.Join(a1, ","), "1°2°") {
		t.Errorf("21-team A1 group should include the best runner-up, got %v", a1)
	}

	for _, m := range matches {
		if categorize(m) == categoryPlaces17 && m.IsBye && m.Round != 1 {
			t.Errorf("bye outside the first round: %s", m.Code)
		}
	}
}

func TestSpecialByesPerTeamCount(t *testing.T) {
	tests := []struct {
		name  string
		sizes []int
		total int
		byes  int
	}{
		{"22 teams", []int{3, 3, 3, 3, 3, 3, 2, 2}, 62, 2},
		{"23 teams", []int{3, 3, 3, 3, 3, 3, 3, 2}, 63, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matches, err := Special(zonedTeams(tt.sizes...), false)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(matches) != tt.total {
				t.Errorf("got %d matches, want %d", len(matches), tt.total)
			}
			if got := countPhases(matches).byes; got != tt.byes {
				t.Errorf("got %d byes, want %d", got, tt.byes)
			}
		})
	}
}

func TestSpecialTwoTeamZonesAlwaysDoubleRound(t *testing.T) {
	matches, err := Special(zonedTeams(3, 3, 3, 3, 3, 3, 2, 2), false)
	if err != nil {
		t.Fatal(err)
	}
	perZone := make(map[string]int)
	for _, m := range matches {
		if categorize(m) == categoryZone {
			perZone[m.Zone]++
		}
	}
	if perZone["Z7"] != 2 || perZone["Z8"] != 2 {
		t.Errorf("2-team zones should play twice, got Z7=%d Z8=%d", perZone["Z7"], perZone["Z8"])
	}
	if perZone["Z1"] != 3 {
		t.Errorf("3-team zone single round should have 3 matches, got %d", perZone["Z1"])
	}
}

func TestSpecialDoubleRoundToggle(t *testing.T) {
	matches, err := Special(zonedTeams(3, 3, 3, 3, 3, 3, 3, 3), true)
	if err != nil {
		t.Fatal(err)
	}
	if got := countPhases(matches).zone; got != 48 {
		t.Errorf("got %d zone matches, want 48", got)
	}
}

func TestSpecialValidation(t *testing.T) {
	tests := []struct {
		name  string
		teams []models.Team
		want  string
	}{
		{"too few teams", zonedTeams(3, 3, 3, 3, 3, 3, 2), "supports"},
		{"too many teams", zonedTeams(3, 3, 3, 3, 3, 3, 3, 3, 1), "supports"},
		{"zone of four", zonedTeams(4, 4, 4, 3, 3, 3, 3), "only zones of 2 or 3"},
		{"wrong layout for 22", zonedTeams(3, 3, 3, 3, 3, 3, 3, 1), "only zones of 2 or 3"},
		{"wrong zone count for 24", zonedTeams(3, 3, 3, 3, 3, 3, 2, 2, 2), "require 8 zones"},
		{"21 with a 2-team zone", zonedTeams(3, 3, 3, 3, 3, 2, 2, 2), "require 7 zones"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matches, err := Special(tt.teams, false)
			if err == nil {
				t.Fatal("expected a validation error")
			}
			if matches != nil {
				t.Errorf("rejected configuration returned %d matches", len(matches))
			}
			var vErr *ValidationError
			if !errors.As(err, &vErr) || !errors.Is(err, ErrInvalidFormat) {
				t.Errorf("error %v is not a ValidationError", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestSpecialRejectsUnzonedTeams(t *testing.T) {
	teams := zonedTeams(3, 3, 3, 3, 3, 3, 3, 3)
	teams[5].Zone = ""
	if _, err := Special(teams, false); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("got %v, want ErrInvalidFormat", err)
	}
}

func TestSpecialPlacementReferencesStayInsideBracket(t *testing.T) {
	matches, err := Special(zonedTeams(3, 3, 3, 3, 3, 3, 3), false)
	if err != nil {
		t.Fatal(err)
	}
	codes := make(map[string]string)
	for _, m := range matches {
		if m.Code != "" {
			codes[m.Code] = m.Zone
		}
	}
	for _, m := range matches {
		for _, s := range m.Sides() {
			ref, ok := s.Ref()
			if !ok {
				continue
			}
			zone, found := codes[ref.MatchCode]
			if !found {
				t.Fatalf("%s references missing %s", m.Code, ref.MatchCode)
			}
			if zone != m.Zone {
				t.Errorf("%s (%s) references %s from %s", m.Code, m.Zone, ref.MatchCode, zone)
			}
		}
	}
}
