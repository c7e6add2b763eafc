package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/Dosada05/fixture-planner/models"
)

const ContentTypeCSV = "text/csv; charset=utf-8"

var csvHeader = []string{"Nro", "Zone", "Date", "Time", "Field", "Home", "Away", "Phase", "Round", "Code"}

// WriteCSV writes the fixture as ';'-separated CSV with CRLF line endings.
// Byes are omitted and Nro counts the remaining rows.
func WriteCSV(w io.Writer, matches []*models.Match, dir Directory) error {
	cw := csv.NewWriter(w)
	cw.Comma = ';'
	cw.UseCRLF = true

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	n := 0
	for _, m := range matches {
		if m.IsBye {
			continue
		}
		n++
		record := []string{
			strconv.Itoa(n),
			m.Zone,
			m.Date,
			m.Time,
			dir.FieldName(m.FieldID),
			dir.SideName(m.Home),
			dir.SideName(m.Away),
			m.Phase,
			strconv.Itoa(m.Round),
			m.Code,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write csv row %d: %w", n, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
