package models

import (
	"errors"
	"fmt"
)

// Stage is the scheduling class of a match. Phase-restricted formats map each stage
// to a range of playable days; an empty stage is unconstrained.
type Stage string

const (
	StageZonesDay1 Stage = "zones-day1"
	StageZonesDay2 Stage = "zones-day2"
	StageOpeners   Stage = "openers"
	StageLater     Stage = "later"
	StageFinals    Stage = "finals"
)

var ErrMatchSideUnset = errors.New("match side is not set")

type Match struct {
	ID      string `json:"id"`
	Code    string `json:"code"`
	Zone    string `json:"zone,omitempty"`
	Phase   string `json:"phase"`
	Stage   Stage  `json:"stage,omitempty"`
	Round   int    `json:"round"`
	Home    Side   `json:"home"`
	Away    Side   `json:"away"`
	IsBye   bool   `json:"is_bye"`
	Date    string `json:"date,omitempty"`
	Time    string `json:"time,omitempty"`
	FieldID *int   `json:"field_id,omitempty"`
}

func (m *Match) Validate() error {
	if m.Home.IsZero() || m.Away.IsZero() {
		return fmt.Errorf("match %s: %w", m.Code, ErrMatchSideUnset)
	}
	return nil
}

func (m *Match) Scheduled() bool {
	return m.Date != "" && m.Time != "" && m.FieldID != nil
}

func (m *Match) SetSchedule(date, clock string, fieldID int) {
	m.Date = date
	m.Time = clock
	m.FieldID = &fieldID
}

func (m *Match) ClearSchedule() {
	m.Date = ""
	m.Time = ""
	m.FieldID = nil
}

// Sides returns home and away in order, handy for loops over both slots.
func (m *Match) Sides() [2]Side {
	return [2]Side{m.Home, m.Away}
}
