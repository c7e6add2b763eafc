package scheduler

import (
	"sort"

	"github.com/Dosada05/fixture-planner/models"
)

// Slot is one candidate (day, time, field) for a match.
type Slot struct {
	Day      int
	Playable int
	Date     string
	Minute   int
	FieldID  int
	// Start is minutes since the start of the first calendar day.
	Start int

	fieldOrder int
}

func (s Slot) Clock() string {
	return models.FormatClock(s.Minute)
}

// BuildSlots lays out the slot lattice: every duration-aligned start inside each
// non-off day's window that does not overlap a break, times every field enabled on
// that day. Slots come back ordered by start, then by field position.
func BuildSlots(opts Options) ([]Slot, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	slots := make([]Slot, 0)
	playable := 0
	for dayIdx, d := range opts.Days {
		if d.Kind == models.DayOff {
			continue
		}
		start, end, err := opts.window(d)
		if err != nil {
			return nil, err
		}
		breaks := make([][2]int, 0, len(opts.Breaks))
		for _, b := range opts.Breaks {
			if !b.AppliesTo(d.Date) {
				continue
			}
			bs, be, err := parseBreak(b)
			if err != nil {
				return nil, err
			}
			breaks = append(breaks, [2]int{bs, be})
		}

		for t := start; t+opts.MatchDuration <= end; t += opts.MatchDuration {
			if overlapsBreak(t, t+opts.MatchDuration, breaks) {
				continue
			}
			for fi, f := range opts.Fields {
				if !f.EnabledOn(dayIdx) {
					continue
				}
				slots = append(slots, Slot{
					Day:        dayIdx,
					Playable:   playable,
					Date:       d.Date,
					Minute:     t,
					FieldID:    f.ID,
					Start:      dayIdx*models.MinutesPerDay + t,
					fieldOrder: fi,
				})
			}
		}
		playable++
	}

	sort.SliceStable(slots, func(i, j int) bool {
		if slots[i].Start != slots[j].Start {
			return slots[i].Start < slots[j].Start
		}
		return slots[i].fieldOrder < slots[j].fieldOrder
	})
	return slots, nil
}

// overlapsBreak reports whether [from, to) intersects any break. A match may end
// exactly when a break starts and start exactly when it ends.
func overlapsBreak(from, to int, breaks [][2]int) bool {
	for _, b := range breaks {
		if from < b[1] && b[0] < to {
			return true
		}
	}
	return false
}

// PlayableDays counts the days that are not off.
func PlayableDays(days []models.DayConfig) int {
	n := 0
	for _, d := range days {
		if d.Kind != models.DayOff {
			n++
		}
	}
	return n
}
