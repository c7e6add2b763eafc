package brackets

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/Dosada05/fixture-planner/models"
)

const (
	PhaseSpecialZones    = "Phase 1 · Zones"
	PhaseSpecialCross    = "Phase 2 · Cross-group"
	PhaseSpecialRanks    = "Phase 3 · Places 1-8"
	PhaseSpecialPlaces9  = "Phase 4 · Places 9-16"
	PhaseSpecialPlaces17 = "Phase 5 · Places 17-24"

	zonePlaces1to8   = "1-8"
	zonePlaces9to16  = "9-16"
	zonePlaces17to24 = "17-24"

	codePrefixPlaces9  = "P9_"
	codePrefixPlaces17 = "P17_"
)

// Special builds the fixed five-phase topology for 21 to 24 teams in zones of 2 or 3:
// zone round robins, two cross-group seed leagues (A1, A2), four rank matches for
// places 1-8 and the 9-16 and 17-24 placement brackets from the per-count tables.
// Any deviation from the expected zone layout is rejected with a *ValidationError.
func Special(teams []models.Team, doubleRound bool) ([]*models.Match, error) {
	variant, zones, byZone, err := validateSpecial(teams)
	if err != nil {
		return nil, err
	}

	zonePhase := fmt.Sprintf("%s (%s)", PhaseSpecialZones, variant.ZoneLabel)
	matches := make([]*models.Match, 0, 64)
	for _, z := range zones {
		members := byZone[z]
		matches = append(matches, RoundRobinTeams(teamIDs(members), RoundRobinOptions{
			Zone:  z,
			Phase: zonePhase,
			// 2-team zones always play home and away
			DoubleRound: doubleRound || len(members) == 2,
		})...)
	}

	matches = append(matches, SeedRoundRobin(variant.A1, RoundRobinOptions{Zone: "A1", Phase: PhaseSpecialCross})...)
	matches = append(matches, SeedRoundRobin(variant.A2, RoundRobinOptions{Zone: "A2", Phase: PhaseSpecialCross})...)

	for k := 1; k <= 4; k++ {
		rank := strconv.Itoa(k) + "°"
		matches = append(matches, newMatch(zonePlaces1to8, PhaseSpecialRanks, 1,
			models.SeedSide(rank+" A1"), models.SeedSide(rank+" A2")))
	}

	matches = append(matches, buildPlacement(variant.Places9, zonePlaces9to16, PhaseSpecialPlaces9, codePrefixPlaces9)...)
	matches = append(matches, buildPlacement(variant.Places17, zonePlaces17to24, PhaseSpecialPlaces17, codePrefixPlaces17)...)
	return matches, nil
}

func validateSpecial(teams []models.Team) (specialVariant, []string, map[string][]models.Team, error) {
	variant, ok := specialVariants[len(teams)]
	if !ok {
		return specialVariant{}, nil, nil, &ValidationError{
			Reason: fmt.Sprintf("special format supports %v teams, got %d", SpecialTeamCounts(), len(teams)),
		}
	}

	byZone := models.TeamsByZone(teams)
	if unzoned := byZone[""]; len(unzoned) > 0 {
		return specialVariant{}, nil, nil, &ValidationError{
			Reason: fmt.Sprintf("%d team(s) have no zone assigned", len(unzoned)),
		}
	}
	zones := models.Zones(teams)

	got := make(map[int]int)
	for _, z := range zones {
		size := len(byZone[z])
		if size != 2 && size != 3 {
			return specialVariant{}, nil, nil, &ValidationError{
				Reason: fmt.Sprintf("zone %s has %d teams, only zones of 2 or 3 are allowed", z, size),
			}
		}
		got[size]++
	}

	want := 0
	for _, count := range variant.ZoneSizes {
		want += count
	}
	if len(zones) != want || got[3] != variant.ZoneSizes[3] || got[2] != variant.ZoneSizes[2] {
		return specialVariant{}, nil, nil, &ValidationError{
			Reason: fmt.Sprintf("%d teams require %d zones laid out as %s, got %d zones (%s)",
				len(teams), want, variant.ZoneLabel, len(zones), describeLayout(got)),
		}
	}
	return variant, zones, byZone, nil
}

func describeLayout(sizes map[int]int) string {
	keys := make([]int, 0, len(sizes))
	for size := range sizes {
		keys = append(keys, size)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(keys)))
	parts := make([]string, 0, len(keys))
	for _, size := range keys {
		parts = append(parts, fmt.Sprintf("%d×%d", sizes[size], size))
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, " + ")
}

func buildPlacement(table placementTable, zone, phase, prefix string) []*models.Match {
	code := func(n int) string { return prefix + strconv.Itoa(n) }

	out := make([]*models.Match, 0, len(table.First)+len(table.Later))
	for i, p := range table.First {
		m := newMatch(zone, phase, 1, models.SeedSide(p.Home), models.SeedSide(p.Away))
		m.Code = code(i + 1)
		m.IsBye = p.Bye
		out = append(out, m)
	}
	for i, l := range table.Later {
		m := newMatch(zone, phase, l.Round,
			models.RefSide(code(l.Home.Match), l.Home.Outcome),
			models.RefSide(code(l.Away.Match), l.Away.Outcome))
		m.Code = code(len(table.First) + i + 1)
		out = append(out, m)
	}
	return out
}
