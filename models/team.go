package models

import (
	"sort"
	"strconv"
	"unicode"
)

type Team struct {
	ID           int    `json:"id" db:"id"`
	TournamentID int    `json:"tournament_id,omitempty" db:"tournament_id"`
	Name         string `json:"name" db:"name"`
	Zone         string `json:"zone" db:"zone"`
}

// Zones returns the distinct zone labels of teams in natural order ("Z2" before "Z10").
// Teams without a zone are ignored.
func Zones(teams []Team) []string {
	seen := make(map[string]bool)
	zones := make([]string, 0)
	for _, t := range teams {
		if t.Zone == "" || seen[t.Zone] {
			continue
		}
		seen[t.Zone] = true
		zones = append(zones, t.Zone)
	}
	sort.SliceStable(zones, func(i, j int) bool { return NaturalLess(zones[i], zones[j]) })
	return zones
}

// TeamsByZone groups teams by zone keeping their input order inside each zone.
func TeamsByZone(teams []Team) map[string][]Team {
	out := make(map[string][]Team)
	for _, t := range teams {
		out[t.Zone] = append(out[t.Zone], t)
	}
	return out
}

// NaturalLess compares strings treating runs of digits as numbers.
func NaturalLess(a, b string) bool {
	ra, rb := []rune(a), []rune(b)
	i, j := 0, 0
	for i < len(ra) && j < len(rb) {
		if unicode.IsDigit(ra[i]) && unicode.IsDigit(rb[j]) {
			si := i
			for i < len(ra) && unicode.IsDigit(ra[i]) {
				i++
			}
			sj := j
			for j < len(rb) && unicode.IsDigit(rb[j]) {
				j++
			}
			na, _ := strconv.Atoi(string(ra[si:i]))
			nb, _ := strconv.Atoi(string(rb[sj:j]))
			if na != nb {
				return na < nb
			}
			continue
		}
		ca, cb := unicode.ToLower(ra[i]), unicode.ToLower(rb[j])
		if ca != cb {
			return ca < cb
		}
		i++
		j++
	}
	return len(ra)-i < len(rb)-j
}
