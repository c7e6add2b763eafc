package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Dosada05/fixture-planner/brackets"
)

func TestExportUnavailableWithoutStorage(t *testing.T) {
	env := newFixtureEnv(nil)
	tour := seedLeague(t, env, 4)
	if _, err := env.exports.Export(context.Background(), tour.ID, owner); !errors.Is(err, ErrExportUnavailable) {
		t.Errorf("got %v, want ErrExportUnavailable", err)
	}
}

func TestExportRequiresFixture(t *testing.T) {
	env := newFixtureEnv(newFakeUploader("https://cdn.example.com"))
	tour := seedLeague(t, env, 4)
	if _, err := env.exports.Export(context.Background(), tour.ID, owner); !errors.Is(err, ErrFixtureNotGenerated) {
		t.Errorf("got %v, want ErrFixtureNotGenerated", err)
	}
}

func TestExportUploadsAndReplacesPrevious(t *testing.T) {
	ctx := context.Background()
	uploader := newFakeUploader("https://cdn.example.com")
	env := newFixtureEnv(uploader)
	tour := seedLeague(t, env, 4)
	if _, err := env.fixtures.Generate(ctx, tour.ID, owner); err != nil {
		t.Fatal(err)
	}

	svc := env.exports.(*exportService)
	svc.now = func() time.Time { return time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC) }
	first, err := env.exports.Export(ctx, tour.ID, owner)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if first.URL != "https://cdn.example.com/"+first.Key || first.ExpiresAt != nil {
		t.Errorf("first export = %+v", first)
	}
	body := string(uploader.objects[first.Key])
	if !strings.HasPrefix(body, "Nro;Zone;Date;Time;Field;Home;Away;Phase;Round;Code\r\n") {
		t.Errorf("uploaded body = %q", body)
	}

	svc.now = func() time.Time { return time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC) }
	second, err := env.exports.Export(ctx, tour.ID, owner)
	if err != nil {
		t.Fatal(err)
	}
	if second.Key == first.Key {
		t.Fatal("keys should differ per export time")
	}
	if len(uploader.deleted) != 1 || uploader.deleted[0] != first.Key {
		t.Errorf("deleted = %v, want previous key", uploader.deleted)
	}
	if got := env.db.tournaments[tour.ID].ExportKey; got == nil || *got != second.Key {
		t.Errorf("stored key = %v", got)
	}

	last := env.broadcaster.sent[len(env.broadcaster.sent)-1]
	if msg, ok := last.message.(brackets.WebSocketMessage); !ok || msg.Type != brackets.MessageFixtureExported {
		t.Errorf("last broadcast = %+v", last)
	}

	loaded, err := env.tournaments.GetByID(ctx, tour.ID)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.ExportURL == nil || *loaded.ExportURL != second.URL {
		t.Errorf("export url on tournament = %v", loaded.ExportURL)
	}
}

func TestExportFallsBackToPresignedURL(t *testing.T) {
	ctx := context.Background()
	env := newFixtureEnv(newFakeUploader(""))
	tour := seedLeague(t, env, 4)
	if _, err := env.fixtures.Generate(ctx, tour.ID, owner); err != nil {
		t.Fatal(err)
	}

	res, err := env.exports.Export(ctx, tour.ID, owner)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(res.URL, "https://signed.example/") || res.ExpiresAt == nil {
		t.Errorf("export = %+v", res)
	}
	if _, err := env.exports.Export(ctx, tour.ID, stranger); !errors.Is(err, ErrForbiddenOperation) {
		t.Errorf("stranger export: got %v", err)
	}
}
