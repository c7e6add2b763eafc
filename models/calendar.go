package models

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	DateLayout    = "2006-01-02"
	MinutesPerDay = 24 * 60
)

type DayKind string

const (
	DayFull DayKind = "full"
	DayHalf DayKind = "half"
	DayOff  DayKind = "off"
)

func (k DayKind) Valid() bool {
	return k == DayFull || k == DayHalf || k == DayOff
}

// DayConfig describes one day of the tournament calendar.
// Start and End override the default window when set.
type DayConfig struct {
	Date  string  `json:"date" yaml:"date"`
	Kind  DayKind `json:"kind" yaml:"kind"`
	Start string  `json:"start,omitempty" yaml:"start"`
	End   string  `json:"end,omitempty" yaml:"end"`
}

// Break is a closed interval with no play. An empty Date applies it to every day.
type Break struct {
	ID    int    `json:"id,omitempty" yaml:"-"`
	Date  string `json:"date,omitempty" yaml:"date"`
	Start string `json:"start" yaml:"start"`
	End   string `json:"end" yaml:"end"`
}

func (b Break) AppliesTo(date string) bool {
	return b.Date == "" || b.Date == date
}

// ParseClock parses "HH:MM" into minutes after midnight.
func ParseClock(s string) (int, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q: expected HH:MM", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 24 {
		return 0, fmt.Errorf("invalid hour in %q", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid minute in %q", s)
	}
	total := h*60 + m
	if total > MinutesPerDay {
		return 0, fmt.Errorf("time %q is past the end of the day", s)
	}
	return total, nil
}

func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
