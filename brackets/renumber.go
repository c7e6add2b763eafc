package brackets

import (
	"fmt"
	"strconv"

	"github.com/Dosada05/fixture-planner/models"
)

// Renumber assigns sequential public codes "1", "2", ... in list order and rewrites
// every GP/PP reference through the old-to-new mapping, which it returns.
// Seed placeholders pass through unchanged.
func Renumber(matches []*models.Match) map[string]string {
	mapping := make(map[string]string, len(matches))
	for i, m := range matches {
		code := strconv.Itoa(i + 1)
		if m.Code != "" {
			mapping[m.Code] = code
		}
		m.Code = code
	}
	for _, m := range matches {
		m.Home = rewriteRef(m.Home, mapping)
		m.Away = rewriteRef(m.Away, mapping)
	}
	return mapping
}

func rewriteRef(s models.Side, mapping map[string]string) models.Side {
	ref, ok := s.Ref()
	if !ok {
		return s
	}
	if code, found := mapping[ref.MatchCode]; found {
		return s.WithMatchCode(code)
	}
	return s
}

// VerifyReferences checks that codes are present and unique and that every
// reference names exactly one match of the list.
func VerifyReferences(matches []*models.Match) error {
	seen := make(map[string]int, len(matches))
	for _, m := range matches {
		if err := m.Validate(); err != nil {
			return err
		}
		if m.Code == "" {
			return fmt.Errorf("match %s has no code", m.ID)
		}
		seen[m.Code]++
	}
	for code, n := range seen {
		if n > 1 {
			return fmt.Errorf("code %s is used by %d matches", code, n)
		}
	}
	for _, m := range matches {
		for _, s := range m.Sides() {
			ref, ok := s.Ref()
			if !ok {
				continue
			}
			if seen[ref.MatchCode] != 1 {
				return fmt.Errorf("match %s references unknown match %s", m.Code, ref.MatchCode)
			}
		}
	}
	return nil
}
