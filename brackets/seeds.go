package brackets

import (
	"regexp"

	"github.com/Dosada05/fixture-planner/models"
)

var (
	// "2° Zone 1": second place of one group
	groupPlaceSeed = regexp.MustCompile(`^\d+° (.+)$`)
	// "3°2°": third best among every group's runners-up
	crossPlaceSeed = regexp.MustCompile(`^\d+°\d+°$`)
)

// SeedGroups maps every seed placeholder of matches to the groups whose final standings
// decide it. A "k° Z" seed depends on group Z alone; a "k°p°" seed compares the p-th place
// of every group playing team against team. Seeds that name no known group are left out.
func SeedGroups(matches []*models.Match) map[string][]string {
	groups := make(map[string]bool)
	teamGroups := make([]string, 0)
	for _, m := range matches {
		if m.Zone == "" || groups[m.Zone] {
			continue
		}
		groups[m.Zone] = true
		_, homeTeam := m.Home.TeamID()
		_, awayTeam := m.Away.TeamID()
		if homeTeam && awayTeam {
			teamGroups = append(teamGroups, m.Zone)
		}
	}

	deps := make(map[string][]string)
	for _, m := range matches {
		for _, s := range m.Sides() {
			label, ok := s.Seed()
			if !ok {
				continue
			}
			if _, seen := deps[label]; seen {
				continue
			}
			if sub := groupPlaceSeed.FindStringSubmatch(label); sub != nil && groups[sub[1]] {
				deps[label] = []string{sub[1]}
			} else if crossPlaceSeed.MatchString(label) && len(teamGroups) > 0 {
				deps[label] = teamGroups
			}
		}
	}
	return deps
}
