package scheduler

import (
	"errors"
	"fmt"
	"time"

	"github.com/Dosada05/fixture-planner/models"
)

var ErrInvalidOptions = errors.New("invalid scheduling options")

// LastPlayableDay as DayRange.Last stands for the final playable day of the calendar.
const LastPlayableDay = -1

// DayRange is an inclusive range of playable-day ordinals (off days are not counted).
type DayRange struct {
	First int
	Last  int
}

func (r DayRange) contains(playable, lastPlayable int) bool {
	last := r.Last
	if last < 0 || last > lastPlayable {
		last = lastPlayable
	}
	return playable >= r.First && playable <= last
}

// SpecialWindows confines the special ruleset's stages: zone play to the first two
// playable days, openers to the third, later rounds to the fourth and fifth and the
// rank matches from the fifth day to the end.
func SpecialWindows() map[models.Stage]DayRange {
	return map[models.Stage]DayRange{
		models.StageZonesDay1: {First: 0, Last: 0},
		models.StageZonesDay2: {First: 1, Last: 1},
		models.StageOpeners:   {First: 2, Last: 2},
		models.StageLater:     {First: 3, Last: 4},
		models.StageFinals:    {First: 4, Last: LastPlayableDay},
	}
}

type Options struct {
	Fields []models.Field
	Days   []models.DayConfig
	Breaks []models.Break
	// default daily window, "HH:MM"
	DayStart      string
	DayEnd        string
	MatchDuration int
	MinRest       int
	// RestCap, when positive, saturates the rest margin so that any slot giving at
	// least this much extra rest counts as equally good. Zero leaves it uncapped.
	RestCap int
	// SeedGroups maps a seed label to the groups whose standings decide it, see
	// brackets.SeedGroups. A seed side cannot start before those groups have finished.
	SeedGroups map[string][]string
	// Windows maps a match stage to the playable days it may use. Nil disables the table.
	Windows map[models.Stage]DayRange
}

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidOptions, fmt.Sprintf(format, args...))
}

// Validate checks durations, the calendar, every time window and the breaks.
func (o Options) Validate() error {
	if o.MatchDuration <= 0 {
		return invalid("match duration must be positive, got %d", o.MatchDuration)
	}
	if o.MinRest < 0 {
		return invalid("minimum rest cannot be negative, got %d", o.MinRest)
	}
	if o.RestCap < 0 {
		return invalid("rest cap cannot be negative, got %d", o.RestCap)
	}
	if len(o.Fields) == 0 {
		return invalid("at least one field is required")
	}
	if len(o.Days) == 0 {
		return invalid("the calendar has no days")
	}
	var prev time.Time
	for i, d := range o.Days {
		date, err := time.Parse(models.DateLayout, d.Date)
		if err != nil {
			return invalid("day %d: invalid date %q", i+1, d.Date)
		}
		if i > 0 && !date.After(prev) {
			return invalid("day %d: dates must be strictly increasing (%s after %s)", i+1, d.Date, prev.Format(models.DateLayout))
		}
		prev = date
		if !d.Kind.Valid() {
			return invalid("day %s: unknown kind %q", d.Date, d.Kind)
		}
		if d.Kind == models.DayOff {
			continue
		}
		if _, _, err := o.window(d); err != nil {
			return err
		}
	}
	for _, b := range o.Breaks {
		if _, _, err := parseBreak(b); err != nil {
			return err
		}
	}
	return nil
}

// window resolves the playing window of a day. A half day without its own hours
// keeps the first half of the default window.
func (o Options) window(d models.DayConfig) (int, int, error) {
	start, err := models.ParseClock(o.DayStart)
	if err != nil {
		return 0, 0, invalid("default start: %v", err)
	}
	end, err := models.ParseClock(o.DayEnd)
	if err != nil {
		return 0, 0, invalid("default end: %v", err)
	}
	if start >= end {
		return 0, 0, invalid("default window %s-%s is empty", o.DayStart, o.DayEnd)
	}
	if d.Start != "" {
		if start, err = models.ParseClock(d.Start); err != nil {
			return 0, 0, invalid("day %s start: %v", d.Date, err)
		}
	}
	if d.End != "" {
		if end, err = models.ParseClock(d.End); err != nil {
			return 0, 0, invalid("day %s end: %v", d.Date, err)
		}
	}
	if d.Kind == models.DayHalf && d.Start == "" && d.End == "" {
		end = start + (end-start)/2
	}
	if start >= end {
		return 0, 0, invalid("day %s: window %s-%s is empty", d.Date, models.FormatClock(start), models.FormatClock(end))
	}
	return start, end, nil
}

func parseBreak(b models.Break) (int, int, error) {
	start, err := models.ParseClock(b.Start)
	if err != nil {
		return 0, 0, invalid("break start: %v", err)
	}
	end, err := models.ParseClock(b.End)
	if err != nil {
		return 0, 0, invalid("break end: %v", err)
	}
	if start >= end {
		return 0, 0, invalid("break %s-%s is empty", b.Start, b.End)
	}
	if b.Date != "" {
		if _, err := time.Parse(models.DateLayout, b.Date); err != nil {
			return 0, 0, invalid("break date %q", b.Date)
		}
	}
	return start, end, nil
}
