package db

import (
	"strings"
	"testing"
)

func TestSchemaDeclaresTables(t *testing.T) {
	for _, table := range []string{"users", "tournaments", "teams", "fields", "tournament_days", "breaks", "matches"} {
		if !strings.Contains(schema, "CREATE TABLE IF NOT EXISTS "+table+" (") {
			t.Errorf("schema is missing table %s", table)
		}
	}
}

func TestSchemaConstraintNames(t *testing.T) {
	// repositories map *pq.Error constraint names back to sentinel errors
	for _, name := range []string{
		"users_email_key",
		"tournaments_organizer_id_fkey",
		"tournaments_organizer_id_name_key",
		"teams_tournament_id_name_key",
		"fields_tournament_id_name_key",
		"tournament_days_pkey",
	} {
		if !strings.Contains(schema, "CONSTRAINT "+name+" ") {
			t.Errorf("schema is missing constraint %s", name)
		}
	}
}
