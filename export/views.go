package export

import (
	"fmt"
	"sort"

	"github.com/Dosada05/fixture-planner/models"
)

type View string

const (
	ViewZone  View = "zone"
	ViewDay   View = "day"
	ViewField View = "field"
	ViewTeam  View = "team"
)

const unscheduledGroup = "Unscheduled"

func ParseView(s string) (View, error) {
	switch v := View(s); v {
	case ViewZone, ViewDay, ViewField, ViewTeam:
		return v, nil
	case "":
		return ViewZone, nil
	default:
		return "", fmt.Errorf("unknown view %q (expected zone, day, field or team)", s)
	}
}

type Row struct {
	Number int           `json:"number"`
	Code   string        `json:"code"`
	Zone   string        `json:"zone,omitempty"`
	Phase  string        `json:"phase"`
	Round  int           `json:"round"`
	Date   string        `json:"date,omitempty"`
	Time   string        `json:"time,omitempty"`
	Field  string        `json:"field,omitempty"`
	Home   string        `json:"home"`
	Away   string        `json:"away"`
	Match  *models.Match `json:"-"`
}

type Group struct {
	Key  string `json:"key"`
	Rows []Row  `json:"rows"`
}

// Rows lists the non-bye matches with a running number.
func Rows(matches []*models.Match, dir Directory) []Row {
	rows := make([]Row, 0, len(matches))
	for _, m := range matches {
		if m.IsBye {
			continue
		}
		rows = append(rows, Row{
			Number: len(rows) + 1,
			Code:   m.Code,
			Zone:   m.Zone,
			Phase:  m.Phase,
			Round:  m.Round,
			Date:   m.Date,
			Time:   m.Time,
			Field:  dir.FieldName(m.FieldID),
			Home:   dir.SideName(m.Home),
			Away:   dir.SideName(m.Away),
			Match:  m,
		})
	}
	return rows
}

// GroupBy splits the fixture for one of the views. Zone and field groups keep fixture
// order, the day view sorts by time, field and number, and the team view lists only
// resolved teams.
func GroupBy(view View, matches []*models.Match, dir Directory) []*Group {
	rows := Rows(matches, dir)
	switch view {
	case ViewDay:
		groups := group(rows, func(r Row) []string { return []string{orUnscheduled(r.Date)} })
		for _, g := range groups {
			sort.SliceStable(g.Rows, func(i, j int) bool {
				a, b := g.Rows[i], g.Rows[j]
				if a.Time != b.Time {
					return a.Time < b.Time
				}
				if a.Field != b.Field {
					return models.NaturalLess(a.Field, b.Field)
				}
				return a.Number < b.Number
			})
		}
		sortKeys(groups, func(a, b string) bool { return a < b })
		return groups
	case ViewField:
		groups := group(rows, func(r Row) []string { return []string{orUnscheduled(r.Field)} })
		sortKeys(groups, models.NaturalLess)
		return groups
	case ViewTeam:
		groups := group(rows, func(r Row) []string {
			keys := make([]string, 0, 2)
			for _, s := range r.Match.Sides() {
				if _, ok := s.TeamID(); ok {
					keys = append(keys, dir.SideName(s))
				}
			}
			return keys
		})
		sortKeys(groups, models.NaturalLess)
		return groups
	default:
		return group(rows, func(r Row) []string { return []string{r.Zone} })
	}
}

func group(rows []Row, keysOf func(Row) []string) []*Group {
	index := make(map[string]*Group)
	out := make([]*Group, 0)
	for _, r := range rows {
		for _, k := range keysOf(r) {
			g, ok := index[k]
			if !ok {
				g = &Group{Key: k}
				index[k] = g
				out = append(out, g)
			}
			g.Rows = append(g.Rows, r)
		}
	}
	return out
}

// sortKeys orders groups by key and keeps the unscheduled bucket last.
func sortKeys(groups []*Group, less func(a, b string) bool) {
	sort.SliceStable(groups, func(i, j int) bool {
		a, b := groups[i].Key, groups[j].Key
		if (a == unscheduledGroup) != (b == unscheduledGroup) {
			return b == unscheduledGroup
		}
		return less(a, b)
	})
}

func orUnscheduled(s string) string {
	if s == "" {
		return unscheduledGroup
	}
	return s
}
