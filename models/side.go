package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// Outcome selects which result of the source match fills a slot, the winner (GP) or the loser (PP).
type Outcome string

const (
	OutcomeWinner Outcome = "GP"
	OutcomeLoser  Outcome = "PP"
)

func (o Outcome) Valid() bool {
	return o == OutcomeWinner || o == OutcomeLoser
}

// Reference points at the match whose outcome feeds a slot.
type Reference struct {
	MatchCode string  `json:"code"`
	Outcome   Outcome `json:"outcome"`
}

func (r Reference) Label() string {
	return string(r.Outcome) + " " + r.MatchCode
}

type SideKind string

const (
	SideTeam SideKind = "team"
	SideSeed SideKind = "seed"
	SideRef  SideKind = "ref"
)

// Side is one slot of a match: a resolved team, a seed placeholder or a deferred reference.
// The zero value is an unset side and is rejected by Match.Validate.
type Side struct {
	kind   SideKind
	teamID int
	seed   string
	ref    Reference
}

func TeamSide(teamID int) Side {
	return Side{kind: SideTeam, teamID: teamID}
}

func SeedSide(label string) Side {
	return Side{kind: SideSeed, seed: label}
}

func RefSide(code string, outcome Outcome) Side {
	return Side{kind: SideRef, ref: Reference{MatchCode: code, Outcome: outcome}}
}

func (s Side) Kind() SideKind { return s.kind }

func (s Side) IsZero() bool { return s.kind == "" }

func (s Side) TeamID() (int, bool) {
	return s.teamID, s.kind == SideTeam
}

func (s Side) Seed() (string, bool) {
	return s.seed, s.kind == SideSeed
}

func (s Side) Ref() (Reference, bool) {
	return s.ref, s.kind == SideRef
}

// WithMatchCode returns a copy of a reference side pointing at code.
// Non-reference sides are returned unchanged.
func (s Side) WithMatchCode(code string) Side {
	if s.kind != SideRef {
		return s
	}
	s.ref.MatchCode = code
	return s
}

// Label renders the side the way it is printed on fixtures: "GP 12", "1° A" or "#7".
func (s Side) Label() string {
	switch s.kind {
	case SideTeam:
		return "#" + strconv.Itoa(s.teamID)
	case SideSeed:
		return s.seed
	case SideRef:
		return s.ref.Label()
	default:
		return ""
	}
}

func (s Side) String() string { return s.Label() }

type sideJSON struct {
	Kind   SideKind   `json:"kind"`
	TeamID *int       `json:"team_id,omitempty"`
	Seed   string     `json:"seed,omitempty"`
	Ref    *Reference `json:"ref,omitempty"`
}

func (s Side) MarshalJSON() ([]byte, error) {
	out := sideJSON{Kind: s.kind}
	switch s.kind {
	case SideTeam:
		id := s.teamID
		out.TeamID = &id
	case SideSeed:
		out.Seed = s.seed
	case SideRef:
		ref := s.ref
		out.Ref = &ref
	default:
		return nil, errors.New("cannot marshal unset match side")
	}
	return json.Marshal(out)
}

func (s *Side) UnmarshalJSON(data []byte) error {
	var in sideJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	switch in.Kind {
	case SideTeam:
		if in.TeamID == nil {
			return errors.New("team side requires team_id")
		}
		*s = TeamSide(*in.TeamID)
	case SideSeed:
		if in.Seed == "" {
			return errors.New("seed side requires a label")
		}
		*s = SeedSide(in.Seed)
	case SideRef:
		if in.Ref == nil || in.Ref.MatchCode == "" || !in.Ref.Outcome.Valid() {
			return errors.New("ref side requires code and outcome GP or PP")
		}
		*s = RefSide(in.Ref.MatchCode, in.Ref.Outcome)
	default:
		return fmt.Errorf("unknown side kind %q", in.Kind)
	}
	return nil
}
