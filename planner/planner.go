package planner

import (
	"errors"
	"fmt"
	"time"

	"github.com/Dosada05/fixture-planner/brackets"
	"github.com/Dosada05/fixture-planner/models"
	"github.com/Dosada05/fixture-planner/scheduler"
)

var ErrInvalidConfiguration = errors.New("invalid tournament configuration")

const (
	DefaultDayStart      = "09:00"
	DefaultDayEnd        = "21:00"
	DefaultMatchDuration = 60
	maxCalendarDays      = 366
)

// Input is everything one planning run needs. Plan never mutates it.
type Input struct {
	Teams  []models.Team
	Fields []models.Field
	// Days takes precedence; when empty StartDate..EndDate expands to full days.
	Days      []models.DayConfig
	StartDate string
	EndDate   string
	Breaks    []models.Break
	Format    models.FormatParams

	DayStart             string
	DayEnd               string
	MatchDurationMinutes int
	MinRestMinutes       int
	// RestCapMinutes, when positive, stops preferring extra rest beyond this margin.
	RestCapMinutes int
}

type Result struct {
	Generator string           `json:"generator"`
	Matches   []*models.Match  `json:"matches"`
	Report    scheduler.Report `json:"report"`
}

// Plan validates the configuration, generates the fixture for the requested format,
// orders and renumbers it, then assigns slots. Configuration problems are returned as
// errors wrapping ErrInvalidConfiguration with no matches; matches that find no slot
// are kept unscheduled and listed in Result.Report.
func Plan(in Input) (*Result, error) {
	opts, err := schedulerOptions(in)
	if err != nil {
		return nil, err
	}
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}

	gen, err := brackets.NewGenerator(in.Format.Kind)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}
	matches, err := gen.Generate(brackets.GenerateParams{
		Teams:  copyTeams(in.Teams),
		Format: in.Format,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}

	if in.Format.Kind == models.FormatSpecial {
		matches = brackets.OrderForBroadcast(matches)
		opts.Windows = scheduler.SpecialWindows()
	}
	brackets.Renumber(matches)
	if err := brackets.VerifyReferences(matches); err != nil {
		return nil, fmt.Errorf("generated fixture is inconsistent: %w", err)
	}

	opts.SeedGroups = brackets.SeedGroups(matches)
	report, err := scheduler.Schedule(matches, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}
	return &Result{Generator: gen.GetName(), Matches: matches, Report: report}, nil
}

func schedulerOptions(in Input) (scheduler.Options, error) {
	days := in.Days
	if len(days) == 0 {
		expanded, err := ExpandDays(in.StartDate, in.EndDate)
		if err != nil {
			return scheduler.Options{}, err
		}
		days = expanded
	}
	opts := scheduler.Options{
		Fields:        in.Fields,
		Days:          days,
		Breaks:        in.Breaks,
		DayStart:      in.DayStart,
		DayEnd:        in.DayEnd,
		MatchDuration: in.MatchDurationMinutes,
		MinRest:       in.MinRestMinutes,
		RestCap:       in.RestCapMinutes,
	}
	if opts.DayStart == "" {
		opts.DayStart = DefaultDayStart
	}
	if opts.DayEnd == "" {
		opts.DayEnd = DefaultDayEnd
	}
	if opts.MatchDuration == 0 {
		opts.MatchDuration = DefaultMatchDuration
	}
	return opts, nil
}

// ExpandDays turns an inclusive date range into full playing days.
func ExpandDays(start, end string) ([]models.DayConfig, error) {
	if start == "" || end == "" {
		return nil, fmt.Errorf("%w: either a day list or a start and end date is required", ErrInvalidConfiguration)
	}
	from, err := time.Parse(models.DateLayout, start)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid start date %q", ErrInvalidConfiguration, start)
	}
	to, err := time.Parse(models.DateLayout, end)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid end date %q", ErrInvalidConfiguration, end)
	}
	if to.Before(from) {
		return nil, fmt.Errorf("%w: end date %s is before start date %s", ErrInvalidConfiguration, end, start)
	}
	if to.Sub(from) > maxCalendarDays*24*time.Hour {
		return nil, fmt.Errorf("%w: date range longer than %d days", ErrInvalidConfiguration, maxCalendarDays)
	}

	days := make([]models.DayConfig, 0)
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		days = append(days, models.DayConfig{Date: d.Format(models.DateLayout), Kind: models.DayFull})
	}
	return days, nil
}

func copyTeams(teams []models.Team) []models.Team {
	out := make([]models.Team, len(teams))
	copy(out, teams)
	return out
}
