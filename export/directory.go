package export

import (
	"strconv"

	"github.com/Dosada05/fixture-planner/models"
)

// Directory resolves team and field ids to display names.
type Directory struct {
	teams  map[int]string
	fields map[int]string
}

func NewDirectory(teams []models.Team, fields []models.Field) Directory {
	d := Directory{
		teams:  make(map[int]string, len(teams)),
		fields: make(map[int]string, len(fields)),
	}
	for _, t := range teams {
		d.teams[t.ID] = t.Name
	}
	for _, f := range fields {
		d.fields[f.ID] = f.Name
	}
	return d
}

// SideName prints a team by name and anything else by its label.
func (d Directory) SideName(s models.Side) string {
	if id, ok := s.TeamID(); ok {
		if name, found := d.teams[id]; found {
			return name
		}
	}
	return s.Label()
}

func (d Directory) FieldName(fieldID *int) string {
	if fieldID == nil {
		return ""
	}
	if name, ok := d.fields[*fieldID]; ok {
		return name
	}
	return "Field " + strconv.Itoa(*fieldID)
}
