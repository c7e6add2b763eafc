package brackets

import (
	"github.com/Dosada05/fixture-planner/models"
)

const returnLegSuffix = " · return"

type RoundRobinOptions struct {
	Zone        string
	Phase       string
	DoubleRound bool
}

// RoundRobin builds a circle-method schedule over sides. The first side stays fixed,
// the rest rotate one position per round. With an odd count a phantom entrant is added
// and its pairings are skipped, so the result always holds n(n-1)/2 matches per leg.
// Fewer than two sides yields no matches.
func RoundRobin(sides []models.Side, opts RoundRobinOptions) []*models.Match {
	n := len(sides)
	if n < 2 {
		return nil
	}

	// -1 marks the phantom entrant
	ring := make([]int, n, n+1)
	for i := range ring {
		ring[i] = i
	}
	if n%2 == 1 {
		ring = append(ring, -1)
	}
	size := len(ring)
	rounds := size - 1

	matches := make([]*models.Match, 0, n*(n-1))
	for r := 0; r < rounds; r++ {
		for i := 0; i < size/2; i++ {
			a, b := ring[i], ring[size-1-i]
			if a < 0 || b < 0 {
				continue
			}
			matches = append(matches, newMatch(opts.Zone, opts.Phase, r+1, sides[a], sides[b]))
		}
		last := ring[size-1]
		copy(ring[2:], ring[1:size-1])
		ring[1] = last
	}

	if opts.DoubleRound {
		firstLeg := len(matches)
		for i := 0; i < firstLeg; i++ {
			m := matches[i]
			matches = append(matches, newMatch(m.Zone, m.Phase+returnLegSuffix, m.Round+rounds, m.Away, m.Home))
		}
	}
	return matches
}

// RoundRobinTeams runs RoundRobin over resolved team ids.
func RoundRobinTeams(teamIDs []int, opts RoundRobinOptions) []*models.Match {
	sides := make([]models.Side, len(teamIDs))
	for i, id := range teamIDs {
		sides[i] = models.TeamSide(id)
	}
	return RoundRobin(sides, opts)
}

// SeedRoundRobin runs RoundRobin over placeholder labels such as "1° A".
func SeedRoundRobin(labels []string, opts RoundRobinOptions) []*models.Match {
	return RoundRobin(seedSides(labels), opts)
}

func seedSides(labels []string) []models.Side {
	sides := make([]models.Side, len(labels))
	for i, l := range labels {
		sides[i] = models.SeedSide(l)
	}
	return sides
}
