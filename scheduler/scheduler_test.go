package scheduler

import (
	"errors"
	"fmt"
	"testing"

	"github.com/Dosada05/fixture-planner/brackets"
	"github.com/Dosada05/fixture-planner/models"
)

func fields(n int) []models.Field {
	out := make([]models.Field, n)
	for i := range out {
		out[i] = models.Field{ID: i + 1, Name: fmt.Sprintf("Field %d", i+1)}
	}
	return out
}

func fullDays(dates ...string) []models.DayConfig {
	out := make([]models.DayConfig, len(dates))
	for i, d := range dates {
		out[i] = models.DayConfig{Date: d, Kind: models.DayFull}
	}
	return out
}

func baseOptions() Options {
	return Options{
		Fields:        fields(2),
		Days:          fullDays("2025-03-01", "2025-03-02"),
		DayStart:      "09:00",
		DayEnd:        "13:00",
		MatchDuration: 60,
		MinRest:       60,
	}
}

type instant struct {
	start, end int
}

func absolute(t *testing.T, m *models.Match, opts Options) instant {
	t.Helper()
	day := -1
	for i, d := range opts.Days {
		if d.Date == m.Date {
			day = i
		}
	}
	if day < 0 {
		t.Fatalf("match %s scheduled on unknown date %q", m.Code, m.Date)
	}
	minute, err := models.ParseClock(m.Time)
	if err != nil {
		t.Fatal(err)
	}
	start := day*models.MinutesPerDay + minute
	return instant{start: start, end: start + opts.MatchDuration}
}

func TestScheduleNoDoubleBookingAndRest(t *testing.T) {
	tests := []struct {
		name    string
		restCap int
		wantAll bool
	}{
		{"uncapped", 0, false},
		{"capped", 60, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := baseOptions()
			opts.RestCap = tt.restCap
			matches := brackets.RoundRobinTeams([]int{1, 2, 3, 4}, brackets.RoundRobinOptions{Phase: "League"})
			brackets.Renumber(matches)

			report, err := Schedule(matches, opts)
			if err != nil {
				t.Fatal(err)
			}
			if report.Scheduled+len(report.Unscheduled) != len(matches) {
				t.Fatalf("report %+v does not account for %d matches", report, len(matches))
			}
			if tt.wantAll && report.Scheduled != len(matches) {
				t.Fatalf("report %+v, want all %d scheduled", report, len(matches))
			}

			triples := make(map[string]string)
			perTeam := make(map[int][]instant)
			for _, m := range matches {
				if !m.Scheduled() {
					continue
				}
				key := fmt.Sprintf("%s %s %d", m.Date, m.Time, *m.FieldID)
				if other, dup := triples[key]; dup {
					t.Fatalf("matches %s and %s share slot %s", other, m.Code, key)
				}
				triples[key] = m.Code
				at := absolute(t, m, opts)
				for _, s := range m.Sides() {
					id, _ := s.TeamID()
					perTeam[id] = append(perTeam[id], at)
				}
			}
			for team, list := range perTeam {
				for i := range list {
					for j := range list {
						if i == j || list[j].start < list[i].start {
							continue
						}
						if gap := list[j].start - list[i].end; gap < opts.MinRest {
							t.Errorf("team %d rests only %d minutes", team, gap)
						}
					}
				}
			}
		})
	}
}

func TestSchedulePrefersLargestRestMargin(t *testing.T) {
	opts := baseOptions()
	opts.Fields = fields(1)
	opts.MinRest = 0
	matches := []*models.Match{
		{Code: "1", Home: models.TeamSide(1), Away: models.TeamSide(2)},
		{Code: "2", Home: models.TeamSide(1), Away: models.TeamSide(2)},
	}
	if _, err := Schedule(matches, opts); err != nil {
		t.Fatal(err)
	}
	if matches[0].Date != "2025-03-01" || matches[0].Time != "09:00" {
		t.Errorf("first match at %s %s, want 2025-03-01 09:00", matches[0].Date, matches[0].Time)
	}
	// the last slot of the calendar leaves the widest gap
	if matches[1].Date != "2025-03-02" || matches[1].Time != "12:00" {
		t.Errorf("rematch at %s %s, want 2025-03-02 12:00", matches[1].Date, matches[1].Time)
	}
}

func TestScheduleTiesGoToEarliestSlot(t *testing.T) {
	opts := baseOptions()
	opts.MinRest = 0
	matches := []*models.Match{
		{Code: "1", Home: models.TeamSide(1), Away: models.TeamSide(2)},
		{Code: "2", Home: models.TeamSide(3), Away: models.TeamSide(4)},
		{Code: "3", Home: models.TeamSide(1), Away: models.TeamSide(3)},
	}
	if _, err := Schedule(matches, opts); err != nil {
		t.Fatal(err)
	}
	if matches[0].Time != "09:00" || *matches[0].FieldID != 1 {
		t.Errorf("first match at %s on field %d", matches[0].Time, *matches[0].FieldID)
	}
	if matches[1].Time != "09:00" || *matches[1].FieldID != 2 {
		t.Errorf("second match at %s on field %d", matches[1].Time, *matches[1].FieldID)
	}
	third := matches[2]
	if third.Date != "2025-03-02" || third.Time != "12:00" || *third.FieldID != 1 {
		t.Errorf("third match at %s %s on field %d, want 2025-03-02 12:00 on field 1", third.Date, third.Time, *third.FieldID)
	}
}

func TestScheduleRestCapTakesEarliestSaturatedSlot(t *testing.T) {
	opts := baseOptions()
	opts.Fields = fields(1)
	opts.MinRest = 0
	opts.RestCap = 60
	matches := []*models.Match{
		{Code: "1", Home: models.TeamSide(1), Away: models.TeamSide(2)},
		{Code: "2", Home: models.TeamSide(1), Away: models.TeamSide(2)},
	}
	if _, err := Schedule(matches, opts); err != nil {
		t.Fatal(err)
	}
	if matches[1].Date != "2025-03-01" || matches[1].Time != "11:00" {
		t.Errorf("rematch at %s %s, want 2025-03-01 11:00", matches[1].Date, matches[1].Time)
	}
}

func TestScheduleSkipsByesAndReportsUnscheduled(t *testing.T) {
	opts := baseOptions()
	opts.Fields = fields(1)
	opts.Days = fullDays("2025-03-01")
	opts.DayEnd = "11:00"
	opts.MinRest = 0

	matches := []*models.Match{
		{Code: "1", Home: models.SeedSide("1°3°"), Away: models.SeedSide("BYE (1°3°)"), IsBye: true},
		{Code: "2", Home: models.TeamSide(1), Away: models.TeamSide(2)},
		{Code: "3", Home: models.TeamSide(3), Away: models.TeamSide(4)},
		{Code: "4", Home: models.TeamSide(5), Away: models.TeamSide(6)},
	}
	report, err := Schedule(matches, opts)
	if err != nil {
		t.Fatal(err)
	}
	if matches[0].Scheduled() {
		t.Error("bye was scheduled")
	}
	if report.Byes != 1 || report.Scheduled != 2 {
		t.Errorf("report %+v", report)
	}
	if len(report.Unscheduled) != 1 || report.Unscheduled[0] != "4" {
		t.Errorf("unscheduled %v, want [4]", report.Unscheduled)
	}
	if matches[3].Date != "" || matches[3].Time != "" || matches[3].FieldID != nil {
		t.Error("unschedulable match should keep empty schedule fields")
	}
}

func TestScheduleReferenceWaitsForSource(t *testing.T) {
	opts := baseOptions()
	opts.MinRest = 30
	matches := brackets.SingleElimination([]models.Side{
		models.TeamSide(1), models.TeamSide(2), models.TeamSide(3), models.TeamSide(4),
	}, brackets.EliminationOptions{})
	brackets.Renumber(matches)

	if _, err := Schedule(matches, opts); err != nil {
		t.Fatal(err)
	}
	final := absolute(t, matches[2], opts)
	for _, semi := range matches[:2] {
		if gap := final.start - absolute(t, semi, opts).end; gap < opts.MinRest {
			t.Errorf("final starts %d minutes after semifinal %s", gap, semi.Code)
		}
	}
}

func TestScheduleSeedWaitsForItsGroups(t *testing.T) {
	opts := baseOptions()
	opts.Days = fullDays("2025-03-01")
	opts.MinRest = 0
	opts.SeedGroups = map[string][]string{"1° A": {"A"}, "1° B": {"B"}}
	matches := []*models.Match{
		{Code: "1", Zone: "A", Home: models.TeamSide(1), Away: models.TeamSide(2)},
		{Code: "2", Zone: "A", Home: models.TeamSide(3), Away: models.TeamSide(4)},
		{Code: "3", Zone: "B", Home: models.TeamSide(5), Away: models.TeamSide(6)},
		{Code: "4", Zone: "Final", Home: models.SeedSide("1° A"), Away: models.SeedSide("1° B")},
	}
	if _, err := Schedule(matches, opts); err != nil {
		t.Fatal(err)
	}
	final := absolute(t, matches[3], opts)
	for _, m := range matches[:3] {
		if end := absolute(t, m, opts).end; final.start < end {
			t.Errorf("final starts before group match %s ends", m.Code)
		}
	}
	if matches[3].Time != "12:00" {
		t.Errorf("final at %s, want 12:00", matches[3].Time)
	}
}

func TestScheduleSeedOfUnfinishedGroupStaysUnscheduled(t *testing.T) {
	opts := baseOptions()
	opts.Fields = fields(1)
	opts.Days = fullDays("2025-03-01")
	opts.DayEnd = "11:00"
	opts.MinRest = 0
	opts.SeedGroups = map[string][]string{"1° A": {"A"}, "2° A": {"A"}}
	matches := []*models.Match{
		{Code: "1", Zone: "A", Home: models.TeamSide(1), Away: models.TeamSide(2)},
		{Code: "2", Zone: "A", Home: models.TeamSide(3), Away: models.TeamSide(4)},
		{Code: "3", Zone: "A", Home: models.TeamSide(5), Away: models.TeamSide(6)},
		{Code: "4", Zone: "Final", Home: models.SeedSide("1° A"), Away: models.SeedSide("2° A")},
		{Code: "5", Zone: "Final", Home: models.RefSide("4", models.OutcomeWinner), Away: models.TeamSide(7)},
	}
	report, err := Schedule(matches, opts)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"3", "4", "5"}
	if fmt.Sprint(report.Unscheduled) != fmt.Sprint(want) {
		t.Errorf("unscheduled %v, want %v", report.Unscheduled, want)
	}
}

func TestScheduleByeReferenceCarriesSeedGroups(t *testing.T) {
	opts := baseOptions()
	opts.Fields = fields(1)
	opts.Days = fullDays("2025-03-01")
	opts.MinRest = 0
	opts.SeedGroups = map[string][]string{"1°1°": {"A"}}
	matches := []*models.Match{
		{Code: "1", Zone: "A", Home: models.TeamSide(1), Away: models.TeamSide(2)},
		{Code: "2", Home: models.SeedSide("1°1°"), Away: models.SeedSide("BYE (1°1°)"), IsBye: true},
		{Code: "3", Home: models.RefSide("2", models.OutcomeWinner), Away: models.SeedSide("2°2°")},
	}
	if _, err := Schedule(matches, opts); err != nil {
		t.Fatal(err)
	}
	if matches[2].Time != "12:00" {
		t.Errorf("match after the bye at %s, want 12:00", matches[2].Time)
	}
}

func TestScheduleStageWindows(t *testing.T) {
	opts := baseOptions()
	opts.Days = append(fullDays("2025-03-01"), models.DayConfig{Date: "2025-03-02", Kind: models.DayOff})
	opts.Days = append(opts.Days, fullDays("2025-03-03")...)
	opts.MinRest = 0
	opts.Windows = map[models.Stage]DayRange{
		"first":  {First: 0, Last: 0},
		"second": {First: 1, Last: LastPlayableDay},
		"third":  {First: 2, Last: 2},
	}

	matches := []*models.Match{
		{Code: "1", Stage: "second", Home: models.TeamSide(1), Away: models.TeamSide(2)},
		{Code: "2", Stage: "first", Home: models.TeamSide(3), Away: models.TeamSide(4)},
		{Code: "3", Stage: "third", Home: models.TeamSide(5), Away: models.TeamSide(6)},
		{Code: "4", Home: models.TeamSide(7), Away: models.TeamSide(8)},
	}
	report, err := Schedule(matches, opts)
	if err != nil {
		t.Fatal(err)
	}
	if matches[0].Date != "2025-03-03" {
		t.Errorf("second-stage match on %s, want the second playable day", matches[0].Date)
	}
	if matches[1].Date != "2025-03-01" {
		t.Errorf("first-stage match on %s", matches[1].Date)
	}
	if matches[2].Scheduled() {
		t.Error("stage beyond the calendar should stay unscheduled")
	}
	if matches[3].Date != "2025-03-01" {
		t.Errorf("unrestricted match on %s, want earliest day", matches[3].Date)
	}
	if len(report.Unscheduled) != 1 || report.Unscheduled[0] != "3" {
		t.Errorf("unscheduled %v", report.Unscheduled)
	}
}

func TestScheduleRejectsInvalidOptions(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(o *Options)
	}{
		{"zero duration", func(o *Options) { o.MatchDuration = 0 }},
		{"negative rest", func(o *Options) { o.MinRest = -5 }},
		{"negative rest cap", func(o *Options) { o.RestCap = -1 }},
		{"no fields", func(o *Options) { o.Fields = nil }},
		{"no days", func(o *Options) { o.Days = nil }},
		{"empty window", func(o *Options) { o.DayEnd = "09:00" }},
		{"bad clock", func(o *Options) { o.DayStart = "9am" }},
		{"bad date", func(o *Options) { o.Days[0].Date = "01/03/2025" }},
		{"dates out of order", func(o *Options) { o.Days = fullDays("2025-03-02", "2025-03-01") }},
		{"unknown day kind", func(o *Options) { o.Days[1].Kind = "holiday" }},
		{"inverted override", func(o *Options) { o.Days[0].Start, o.Days[0].End = "12:00", "10:00" }},
		{"inverted break", func(o *Options) { o.Breaks = []models.Break{{Start: "12:00", End: "11:00"}} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := baseOptions()
			tt.mutate(&opts)
			m := &models.Match{Code: "1", Home: models.TeamSide(1), Away: models.TeamSide(2)}
			if _, err := Schedule([]*models.Match{m}, opts); !errors.Is(err, ErrInvalidOptions) {
				t.Errorf("got %v, want ErrInvalidOptions", err)
			}
		})
	}
}
