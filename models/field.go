package models

type Field struct {
	ID           int    `json:"id" db:"id"`
	TournamentID int    `json:"tournament_id,omitempty" db:"tournament_id"`
	Name         string `json:"name" db:"name"`
	// DaysEnabled[i] refers to the i-th configured day; missing entries mean enabled.
	DaysEnabled []bool `json:"days_enabled,omitempty" db:"days_enabled"`
}

func (f Field) EnabledOn(dayIndex int) bool {
	if dayIndex < 0 || dayIndex >= len(f.DaysEnabled) {
		return true
	}
	return f.DaysEnabled[dayIndex]
}
