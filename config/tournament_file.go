package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Dosada05/fixture-planner/models"
	"github.com/Dosada05/fixture-planner/planner"
)

var ErrInvalidTournamentFile = errors.New("invalid tournament file")

// TournamentFile is the YAML form of a tournament used by fixturectl.
type TournamentFile struct {
	Name          string              `yaml:"name"`
	StartDate     string              `yaml:"start_date"`
	EndDate       string              `yaml:"end_date"`
	DayStart      string              `yaml:"day_start"`
	DayEnd        string              `yaml:"day_end"`
	MatchDuration int                 `yaml:"match_duration"`
	MinRest       int                 `yaml:"min_rest"`
	RestCap       int                 `yaml:"rest_cap"`
	Format        models.FormatParams `yaml:"format"`
	Teams         []TeamEntry         `yaml:"teams"`
	Fields        []FieldEntry        `yaml:"fields"`
	Days          []models.DayConfig  `yaml:"days"`
	Breaks        []models.Break      `yaml:"breaks"`
}

type TeamEntry struct {
	ID   int    `yaml:"id"`
	Name string `yaml:"name"`
	Zone string `yaml:"zone"`
}

type FieldEntry struct {
	ID          int    `yaml:"id"`
	Name        string `yaml:"name"`
	DaysEnabled []bool `yaml:"days_enabled"`
}

func LoadTournamentFile(path string) (*TournamentFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open tournament file: %w", err)
	}
	defer f.Close()
	return ParseTournamentFile(f)
}

// ParseTournamentFile decodes a tournament document. Unknown keys are rejected.
func ParseTournamentFile(r io.Reader) (*TournamentFile, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read tournament file: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var tf TournamentFile
	if err := dec.Decode(&tf); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: document is empty", ErrInvalidTournamentFile)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidTournamentFile, err)
	}
	if len(tf.Teams) == 0 {
		return nil, fmt.Errorf("%w: no teams listed", ErrInvalidTournamentFile)
	}
	return &tf, nil
}

// Input converts the file into a planning input. Teams and fields without an explicit
// id are numbered by position, starting at 1.
func (tf *TournamentFile) Input() (planner.Input, error) {
	teams := make([]models.Team, len(tf.Teams))
	seenTeams := make(map[int]bool, len(tf.Teams))
	for i, t := range tf.Teams {
		id := t.ID
		if id == 0 {
			id = i + 1
		}
		if seenTeams[id] {
			return planner.Input{}, fmt.Errorf("%w: duplicate team id %d", ErrInvalidTournamentFile, id)
		}
		seenTeams[id] = true
		name := t.Name
		if name == "" {
			name = fmt.Sprintf("Team %d", id)
		}
		teams[i] = models.Team{ID: id, Name: name, Zone: t.Zone}
	}

	fields := make([]models.Field, len(tf.Fields))
	seenFields := make(map[int]bool, len(tf.Fields))
	for i, f := range tf.Fields {
		id := f.ID
		if id == 0 {
			id = i + 1
		}
		if seenFields[id] {
			return planner.Input{}, fmt.Errorf("%w: duplicate field id %d", ErrInvalidTournamentFile, id)
		}
		seenFields[id] = true
		fields[i] = models.Field{ID: id, Name: f.Name, DaysEnabled: f.DaysEnabled}
	}

	return planner.Input{
		Teams:                teams,
		Fields:               fields,
		Days:                 tf.Days,
		StartDate:            tf.StartDate,
		EndDate:              tf.EndDate,
		Breaks:               tf.Breaks,
		Format:               tf.Format,
		DayStart:             tf.DayStart,
		DayEnd:               tf.DayEnd,
		MatchDurationMinutes: tf.MatchDuration,
		MinRestMinutes:       tf.MinRest,
		RestCapMinutes:       tf.RestCap,
	}, nil
}
