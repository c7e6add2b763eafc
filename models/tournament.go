package models

import "time"

type FormatKind string

const (
	FormatLeague   FormatKind = "league"
	FormatZones    FormatKind = "zones"
	FormatKnockout FormatKind = "knockout"
	FormatSpecial  FormatKind = "special"
)

type EliminationKind string

const (
	EliminationSimple      EliminationKind = "simple"
	EliminationThirdPlace  EliminationKind = "third-place"
	EliminationConsolation EliminationKind = "consolation"
)

// HasThirdPlace reports whether the variant adds a losers' match for the semifinal losers.
func (k EliminationKind) HasThirdPlace() bool {
	return k == EliminationThirdPlace || k == EliminationConsolation
}

type FormatParams struct {
	Kind              FormatKind      `json:"kind" yaml:"kind"`
	DoubleRound       bool            `json:"double_round" yaml:"double_round"`
	Elimination       EliminationKind `json:"elimination,omitempty" yaml:"elimination"`
	QualifiersPerZone int             `json:"qualifiers_per_zone,omitempty" yaml:"qualifiers_per_zone"`
}

// Tournament holds the settings a fixture is built from.
type Tournament struct {
	ID                   int          `json:"id" db:"id"`
	Name                 string       `json:"name" db:"name"`
	OrganizerID          int          `json:"organizer_id" db:"organizer_id"`
	StartDate            string       `json:"start_date" db:"start_date"`
	EndDate              string       `json:"end_date" db:"end_date"`
	DayStart             string       `json:"day_start" db:"day_start"`
	DayEnd               string       `json:"day_end" db:"day_end"`
	MatchDurationMinutes int          `json:"match_duration_minutes" db:"match_duration_minutes"`
	MinRestMinutes       int          `json:"min_rest_minutes" db:"min_rest_minutes"`
	RestCapMinutes       int          `json:"rest_cap_minutes" db:"rest_cap_minutes"`
	Format               FormatParams `json:"format" db:"format"`
	ExportKey            *string      `json:"-" db:"export_key"`
	ExportURL            *string      `json:"export_url,omitempty" db:"-"`
	FixtureGeneratedAt   *time.Time   `json:"fixture_generated_at,omitempty" db:"fixture_generated_at"`
	CreatedAt            time.Time    `json:"created_at" db:"created_at"`

	Teams  []Team      `json:"teams,omitempty" db:"-"`
	Fields []Field     `json:"fields,omitempty" db:"-"`
	Days   []DayConfig `json:"days,omitempty" db:"-"`
	Breaks []Break     `json:"breaks,omitempty" db:"-"`
}
