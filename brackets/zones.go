package brackets

import (
	"fmt"
	"sort"

	"github.com/Dosada05/fixture-planner/models"
)

const defaultQualifiersPerZone = 2

// ZonesGenerator plays a round robin inside every zone, then a knockout playoff
// over "k° Zone" placeholders for the best finishers of each zone.
type ZonesGenerator struct{}

func (g *ZonesGenerator) GetName() string { return "Zones" }

func (g *ZonesGenerator) Generate(params GenerateParams) ([]*models.Match, error) {
	byZone := models.TeamsByZone(params.Teams)
	if unzoned := byZone[""]; len(unzoned) > 0 {
		return nil, &ValidationError{Reason: fmt.Sprintf("%d team(s) have no zone assigned", len(unzoned))}
	}
	zones := models.Zones(params.Teams)
	if len(zones) == 0 {
		return nil, fmt.Errorf("%w: no zones configured", ErrNotEnoughTeams)
	}

	smallest := 0
	perZone := make([][]*models.Match, 0, len(zones))
	for _, z := range zones {
		teams := byZone[z]
		if len(teams) < 2 {
			return nil, &ValidationError{Reason: fmt.Sprintf("zone %s has %d team(s), at least 2 are required", z, len(teams))}
		}
		if smallest == 0 || len(teams) < smallest {
			smallest = len(teams)
		}
		perZone = append(perZone, RoundRobinTeams(teamIDs(teams), RoundRobinOptions{
			Zone:        z,
			Phase:       "Zones",
			DoubleRound: params.Format.DoubleRound,
		}))
	}
	matches := interleaveByRound(perZone)

	qualifiers := params.Format.QualifiersPerZone
	if qualifiers <= 0 {
		qualifiers = defaultQualifiersPerZone
	}
	if qualifiers > smallest {
		qualifiers = smallest
	}
	playoff := SingleElimination(seedSides(ZonePlayoffSeeds(zones, qualifiers)), EliminationOptions{
		Zone:    "Playoff",
		Phase:   "Playoff",
		Variant: params.Format.Elimination,
	})
	return append(matches, playoff...), nil
}

// ZonePlayoffSeeds lists "k° Zone" placeholders ranked by place then zone and arranges
// them so consecutive pairs match the best remaining seed against the worst remaining one.
func ZonePlayoffSeeds(zones []string, qualifiers int) []string {
	ranked := make([]string, 0, len(zones)*qualifiers)
	for k := 1; k <= qualifiers; k++ {
		for _, z := range zones {
			ranked = append(ranked, fmt.Sprintf("%d° %s", k, z))
		}
	}
	seeds := make([]string, 0, len(ranked))
	for i, j := 0, len(ranked)-1; i <= j; i, j = i+1, j-1 {
		seeds = append(seeds, ranked[i])
		if i != j {
			seeds = append(seeds, ranked[j])
		}
	}
	return seeds
}

// interleaveByRound emits round 1 of every group, then round 2, and so on.
func interleaveByRound(groups [][]*models.Match) []*models.Match {
	type keyed struct {
		m     *models.Match
		group int
		pos   int
	}
	all := make([]keyed, 0)
	for g, ms := range groups {
		for i, m := range ms {
			all = append(all, keyed{m: m, group: g, pos: i})
		}
	}
	sort.SliceStable(all, func(i, j int) bool {
		if all[i].m.Round != all[j].m.Round {
			return all[i].m.Round < all[j].m.Round
		}
		if all[i].group != all[j].group {
			return all[i].group < all[j].group
		}
		return all[i].pos < all[j].pos
	})
	out := make([]*models.Match, len(all))
	for i, k := range all {
		out[i] = k.m
	}
	return out
}
