package scheduler

import (
	"math"
	"strconv"

	"github.com/Dosada05/fixture-planner/models"
)

type Report struct {
	Slots       int      `json:"slots"`
	Scheduled   int      `json:"scheduled"`
	Byes        int      `json:"byes"`
	Unscheduled []string `json:"unscheduled,omitempty"`
}

// Schedule assigns date, time and field to matches in the given order.
//
// For each match the candidates are the free slots inside its stage window whose start
// leaves both participants at least MinRest after their previous match ends. The slot
// with the largest smaller rest margin wins, earliest start breaking ties. With a
// positive RestCap margins saturate there and the earliest saturated slot is taken.
// Seed placeholders wait for the groups listed in SeedGroups. Byes are skipped. A match
// with no candidate keeps empty schedule fields and its code is listed in the report.
// There is no backtracking.
func Schedule(matches []*models.Match, opts Options) (Report, error) {
	slots, err := BuildSlots(opts)
	if err != nil {
		return Report{}, err
	}
	report := Report{Slots: len(slots)}

	restCap := math.MaxInt
	if opts.RestCap > 0 {
		restCap = opts.RestCap
	}
	lastPlayable := PlayableDays(opts.Days) - 1

	used := make([]bool, len(slots))
	book := newLedger(matches, opts.SeedGroups)

	for _, m := range matches {
		if m.IsBye {
			report.Byes++
			continue
		}
		m.ClearSchedule()

		ends, ready := book.ends(m)
		if !ready {
			report.Unscheduled = append(report.Unscheduled, m.Code)
			continue
		}
		window, restricted := opts.Windows[m.Stage]

		best, bestMargin := -1, 0
		for i, s := range slots {
			if used[i] {
				continue
			}
			if restricted && !window.contains(s.Playable, lastPlayable) {
				continue
			}
			margin, ok := restMargin(s.Start, ends, opts.MinRest, restCap)
			if !ok {
				continue
			}
			if best < 0 || margin > bestMargin {
				best, bestMargin = i, margin
				if margin >= restCap {
					break
				}
			}
		}

		if best < 0 {
			report.Unscheduled = append(report.Unscheduled, m.Code)
			continue
		}

		s := slots[best]
		used[best] = true
		m.SetSchedule(s.Date, s.Clock(), s.FieldID)
		book.record(m, s.Start+opts.MatchDuration)
		report.Scheduled++
	}
	return report, nil
}

func restMargin(start int, ends []int, minRest, restCap int) (int, bool) {
	margin := restCap
	for _, end := range ends {
		gap := start - end
		if gap < minRest {
			return 0, false
		}
		if gap-minRest < margin {
			margin = gap - minRest
		}
	}
	return margin, true
}

// ledger keeps the end instants the rest rule is measured from.
type ledger struct {
	lastEnd  map[string]int
	matchEnd map[string]int
	groupEnd map[string]int
	// non-bye matches of a group that have no slot yet
	pending    map[string]int
	byes       map[string]*models.Match
	seedGroups map[string][]string
}

func newLedger(matches []*models.Match, seedGroups map[string][]string) *ledger {
	l := &ledger{
		lastEnd:    make(map[string]int),
		matchEnd:   make(map[string]int),
		groupEnd:   make(map[string]int),
		pending:    make(map[string]int),
		byes:       make(map[string]*models.Match),
		seedGroups: seedGroups,
	}
	for _, m := range matches {
		if m.IsBye {
			l.byes[m.Code] = m
			continue
		}
		if m.Zone != "" {
			l.pending[m.Zone]++
		}
	}
	return l
}

// ends collects the previous end instants of both sides of m. It reports false while
// a side still depends on a match without a slot.
func (l *ledger) ends(m *models.Match) ([]int, bool) {
	ends := make([]int, 0, 2)
	for _, s := range m.Sides() {
		var ok bool
		if ends, ok = l.sideEnds(s, ends); !ok {
			return nil, false
		}
	}
	return ends, true
}

// sideEnds appends the constraints of one side. A reference side has not played yet;
// it is bound by the end of the match it comes from, or by the advancing seed when
// that match is a bye. A seed side is also bound by the last match of every group
// that decides it.
func (l *ledger) sideEnds(s models.Side, ends []int) ([]int, bool) {
	if ref, ok := s.Ref(); ok {
		if end, found := l.matchEnd[ref.MatchCode]; found {
			return append(ends, end), true
		}
		bye, isBye := l.byes[ref.MatchCode]
		if !isBye {
			return ends, false
		}
		if ref.Outcome != models.OutcomeWinner {
			return ends, true
		}
		// the bye placeholder side carries no constraint of its own
		for _, side := range bye.Sides() {
			var ok bool
			if ends, ok = l.sideEnds(side, ends); !ok {
				return ends, false
			}
		}
		return ends, true
	}
	if label, ok := s.Seed(); ok {
		for _, g := range l.seedGroups[label] {
			if l.pending[g] > 0 {
				return ends, false
			}
			if end, found := l.groupEnd[g]; found {
				ends = append(ends, end)
			}
		}
	}
	if end, found := l.lastEnd[participantKey(s)]; found {
		ends = append(ends, end)
	}
	return ends, true
}

func (l *ledger) record(m *models.Match, end int) {
	for _, key := range participantKeys(m) {
		l.lastEnd[key] = end
	}
	if m.Code != "" {
		l.matchEnd[m.Code] = end
	}
	if m.Zone != "" {
		l.pending[m.Zone]--
		if end > l.groupEnd[m.Zone] {
			l.groupEnd[m.Zone] = end
		}
	}
}

func participantKeys(m *models.Match) []string {
	keys := make([]string, 0, 2)
	for _, s := range m.Sides() {
		if k := participantKey(s); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}

func participantKey(s models.Side) string {
	if id, ok := s.TeamID(); ok {
		return "team:" + strconv.Itoa(id)
	}
	if label, ok := s.Seed(); ok {
		return "seed:" + label
	}
	return ""
}
