package brackets

import (
	"strconv"

	"github.com/Dosada05/fixture-planner/models"
)

const defaultCodePrefix = "P"

type EliminationOptions struct {
	Zone       string
	Phase      string
	CodePrefix string
	Variant    models.EliminationKind
}

// SingleElimination builds a knockout tree over seeds. Round one pairs consecutive seeds
// and every later round pairs the previous round's matches two at a time through GP
// references. A trailing seed (or match) without a partner is dropped, no bye is created.
// Third-place and consolation variants add one match between the losers of the two
// matches feeding the final, provided the tree has at least two rounds.
func SingleElimination(seeds []models.Side, opts EliminationOptions) []*models.Match {
	if len(seeds) < 2 {
		return nil
	}
	prefix := opts.CodePrefix
	if prefix == "" {
		prefix = defaultCodePrefix
	}

	counter := 0
	nextCode := func() string {
		counter++
		return prefix + strconv.Itoa(counter)
	}

	all := make([]*models.Match, 0, len(seeds))
	current := make([]*models.Match, 0, len(seeds)/2)
	for i := 0; i+1 < len(seeds); i += 2 {
		m := newMatch(opts.Zone, opts.Phase, 1, seeds[i], seeds[i+1])
		m.Code = nextCode()
		current = append(current, m)
	}
	all = append(all, current...)

	round := 1
	var feeders []*models.Match
	for len(current) > 1 {
		round++
		next := make([]*models.Match, 0, len(current)/2)
		for i := 0; i+1 < len(current); i += 2 {
			m := newMatch(opts.Zone, opts.Phase, round,
				models.RefSide(current[i].Code, models.OutcomeWinner),
				models.RefSide(current[i+1].Code, models.OutcomeWinner))
			m.Code = nextCode()
			next = append(next, m)
		}
		feeders = current
		current = next
		all = append(all, next...)
	}

	if opts.Variant.HasThirdPlace() && round >= 2 && len(feeders) >= 2 {
		m := newMatch(opts.Zone, opts.Phase+" · 3rd place", round,
			models.RefSide(feeders[0].Code, models.OutcomeLoser),
			models.RefSide(feeders[1].Code, models.OutcomeLoser))
		m.Code = nextCode()
		all = append(all, m)
	}
	return all
}
