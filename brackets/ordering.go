package brackets

import (
	"sort"
	"strings"

	"github.com/Dosada05/fixture-planner/models"
)

type specialCategory int

const (
	categoryOther specialCategory = iota
	categoryZone
	categoryCross
	categoryPlaces9
	categoryPlaces17
	categoryRanks
)

func categorize(m *models.Match) specialCategory {
	switch {
	case strings.HasPrefix(m.Phase, PhaseSpecialZones):
		return categoryZone
	case strings.HasPrefix(m.Phase, PhaseSpecialCross):
		return categoryCross
	case strings.HasPrefix(m.Phase, PhaseSpecialPlaces9):
		return categoryPlaces9
	case strings.HasPrefix(m.Phase, PhaseSpecialPlaces17):
		return categoryPlaces17
	case strings.HasPrefix(m.Phase, PhaseSpecialRanks):
		return categoryRanks
	default:
		return categoryOther
	}
}

// OrderForBroadcast rearranges a special-format match list for presentation and tags
// each match with its scheduling stage: zone play split over two days, then the
// openers (cross-group rounds 1-2 and bracket round 1), later rounds, and the rank
// matches last. Match content is left untouched.
func OrderForBroadcast(matches []*models.Match) []*models.Match {
	var zone, openers, later, finals, other []*models.Match
	for _, m := range matches {
		switch categorize(m) {
		case categoryZone:
			zone = append(zone, m)
		case categoryCross:
			if m.Round <= 2 {
				openers = append(openers, m)
			} else {
				later = append(later, m)
			}
		case categoryPlaces9, categoryPlaces17:
			if m.Round == 1 {
				openers = append(openers, m)
			} else {
				later = append(later, m)
			}
		case categoryRanks:
			finals = append(finals, m)
		default:
			other = append(other, m)
		}
	}

	zone = orderZoneMatches(zone)
	firstDay := (len(zone) + 1) / 2
	for i, m := range zone {
		if i < firstDay {
			m.Stage = models.StageZonesDay1
		} else {
			m.Stage = models.StageZonesDay2
		}
	}
	sortByRoundThenCategory(openers)
	sortByRoundThenCategory(later)
	tag(openers, models.StageOpeners)
	tag(later, models.StageLater)
	tag(finals, models.StageFinals)

	out := make([]*models.Match, 0, len(matches))
	out = append(out, zone...)
	out = append(out, openers...)
	out = append(out, later...)
	out = append(out, finals...)
	return append(out, other...)
}

// orderZoneMatches interleaves zones so each day mixes all of them: with 7 or 8 zones
// and at least three rounds, odd-positioned zones play a round before even-positioned
// ones (R1 odd, R1 even, R2 odd, R2 even, ...). Otherwise matches go by zone then round.
func orderZoneMatches(zone []*models.Match) []*models.Match {
	if len(zone) == 0 {
		return zone
	}
	labels := make([]string, 0)
	index := make(map[string]int)
	maxRound := 0
	for _, m := range zone {
		if _, ok := index[m.Zone]; !ok {
			index[m.Zone] = 0
			labels = append(labels, m.Zone)
		}
		if m.Round > maxRound {
			maxRound = m.Round
		}
	}
	sort.SliceStable(labels, func(i, j int) bool { return models.NaturalLess(labels[i], labels[j]) })
	for i, l := range labels {
		index[l] = i
	}

	out := make([]*models.Match, len(zone))
	copy(out, zone)
	if (len(labels) == 7 || len(labels) == 8) && maxRound >= 3 {
		sort.SliceStable(out, func(i, j int) bool {
			a, b := out[i], out[j]
			if a.Round != b.Round {
				return a.Round < b.Round
			}
			pa, pb := index[a.Zone]%2, index[b.Zone]%2
			if pa != pb {
				return pa < pb
			}
			return index[a.Zone] < index[b.Zone]
		})
		return out
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if index[a.Zone] != index[b.Zone] {
			return index[a.Zone] < index[b.Zone]
		}
		return a.Round < b.Round
	})
	return out
}

func sortByRoundThenCategory(ms []*models.Match) {
	sort.SliceStable(ms, func(i, j int) bool {
		if ms[i].Round != ms[j].Round {
			return ms[i].Round < ms[j].Round
		}
		return categorize(ms[i]) < categorize(ms[j])
	})
}

func tag(ms []*models.Match, stage models.Stage) {
	for _, m := range ms {
		m.Stage = stage
	}
}
