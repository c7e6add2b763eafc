package services

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/Dosada05/fixture-planner/models"
	"github.com/Dosada05/fixture-planner/repositories"
	"github.com/Dosada05/fixture-planner/storage"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type passthroughTx struct{ calls int }

func (p *passthroughTx) WithinTx(ctx context.Context, fn func(exec repositories.SQLExecutor) error) error {
	p.calls++
	return fn(nil)
}

// memoryDB backs every repository interface with maps.
type memoryDB struct {
	mu          sync.Mutex
	nextID      int
	users       map[int]*models.User
	tournaments map[int]*models.Tournament
	teams       map[int][]models.Team
	fields      map[int][]models.Field
	calendars   map[int]*repositories.Calendar
	matches     map[int][]*models.Match
}

func newMemoryDB() *memoryDB {
	return &memoryDB{
		users:       map[int]*models.User{},
		tournaments: map[int]*models.Tournament{},
		teams:       map[int][]models.Team{},
		fields:      map[int][]models.Field{},
		calendars:   map[int]*repositories.Calendar{},
		matches:     map[int][]*models.Match{},
	}
}

func (m *memoryDB) id() int {
	m.nextID++
	return m.nextID
}

type memoryUsers struct{ *memoryDB }

func (r memoryUsers) Create(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return repositories.ErrUserEmailConflict
		}
	}
	user.ID = r.id()
	user.CreatedAt = time.Now()
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r memoryUsers) GetByID(ctx context.Context, id int) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (r memoryUsers) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

type memoryTournaments struct{ *memoryDB }

func (r memoryTournaments) Create(ctx context.Context, exec repositories.SQLExecutor, t *models.Tournament) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, other := range r.tournaments {
		if other.OrganizerID == t.OrganizerID && other.Name == t.Name {
			return repositories.ErrTournamentNameConflict
		}
	}
	t.ID = r.id()
	t.CreatedAt = time.Now()
	cp := *t
	cp.Teams, cp.Fields, cp.Days, cp.Breaks = nil, nil, nil, nil
	r.tournaments[t.ID] = &cp
	return nil
}

func (r memoryTournaments) GetByID(ctx context.Context, id int) (*models.Tournament, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tournaments[id]
	if !ok {
		return nil, repositories.ErrTournamentNotFound
	}
	cp := *t
	return &cp, nil
}

func (r memoryTournaments) List(ctx context.Context, filter repositories.ListTournamentsFilter) ([]models.Tournament, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Tournament, 0)
	for _, t := range r.tournaments {
		if filter.OrganizerID != nil && t.OrganizerID != *filter.OrganizerID {
			continue
		}
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (r memoryTournaments) Update(ctx context.Context, exec repositories.SQLExecutor, t *models.Tournament) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tournaments[t.ID]; !ok {
		return repositories.ErrTournamentNotFound
	}
	cp := *t
	r.tournaments[t.ID] = &cp
	return nil
}

func (r memoryTournaments) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tournaments[id]; !ok {
		return repositories.ErrTournamentNotFound
	}
	delete(r.tournaments, id)
	return nil
}

func (r memoryTournaments) SetFixtureGeneratedAt(ctx context.Context, exec repositories.SQLExecutor, id int, at *time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tournaments[id]
	if !ok {
		return repositories.ErrTournamentNotFound
	}
	t.FixtureGeneratedAt = at
	return nil
}

func (r memoryTournaments) UpdateExportKey(ctx context.Context, id int, key *string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tournaments[id]
	if !ok {
		return repositories.ErrTournamentNotFound
	}
	t.ExportKey = key
	return nil
}

type memoryTeams struct{ *memoryDB }

func (r memoryTeams) ListByTournament(ctx context.Context, exec repositories.SQLExecutor, id int) ([]models.Team, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.Team{}, r.teams[id]...), nil
}

func (r memoryTeams) ReplaceForTournament(ctx context.Context, exec repositories.SQLExecutor, id int, teams []models.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range teams {
		teams[i].ID = r.id()
		teams[i].TournamentID = id
	}
	r.teams[id] = append([]models.Team{}, teams...)
	return nil
}

type memoryFields struct{ *memoryDB }

func (r memoryFields) ListByTournament(ctx context.Context, exec repositories.SQLExecutor, id int) ([]models.Field, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.Field{}, r.fields[id]...), nil
}

func (r memoryFields) ReplaceForTournament(ctx context.Context, exec repositories.SQLExecutor, id int, fields []models.Field) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range fields {
		fields[i].ID = r.id()
		fields[i].TournamentID = id
	}
	r.fields[id] = append([]models.Field{}, fields...)
	return nil
}

type memoryCalendars struct{ *memoryDB }

func (r memoryCalendars) Get(ctx context.Context, exec repositories.SQLExecutor, id int) (*repositories.Calendar, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cal := &repositories.Calendar{Days: []models.DayConfig{}, Breaks: []models.Break{}}
	if stored, ok := r.calendars[id]; ok {
		cal.Days = append(cal.Days, stored.Days...)
		cal.Breaks = append(cal.Breaks, stored.Breaks...)
	}
	return cal, nil
}

func (r memoryCalendars) Replace(ctx context.Context, exec repositories.SQLExecutor, id int, cal *repositories.Calendar) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calendars[id] = &repositories.Calendar{
		Days:   append([]models.DayConfig{}, cal.Days...),
		Breaks: append([]models.Break{}, cal.Breaks...),
	}
	return nil
}

type memoryMatches struct{ *memoryDB }

func (r memoryMatches) ListByTournament(ctx context.Context, exec repositories.SQLExecutor, id int) ([]*models.Match, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*models.Match{}, r.matches[id]...), nil
}

func (r memoryMatches) ReplaceForTournament(ctx context.Context, exec repositories.SQLExecutor, id int, matches []*models.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.matches[id] = append([]*models.Match{}, matches...)
	return nil
}

func (r memoryMatches) DeleteByTournament(ctx context.Context, exec repositories.SQLExecutor, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.matches, id)
	return nil
}

type recordedBroadcast struct {
	room    string
	message interface{}
}

type recordingBroadcaster struct {
	mu   sync.Mutex
	sent []recordedBroadcast
}

func (b *recordingBroadcaster) BroadcastToRoom(room string, message interface{}) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sent = append(b.sent, recordedBroadcast{room: room, message: message})
}

type fakeUploader struct {
	publicBase string
	objects    map[string][]byte
	deleted    []string
}

func newFakeUploader(publicBase string) *fakeUploader {
	return &fakeUploader{publicBase: publicBase, objects: map[string][]byte{}}
}

func (u *fakeUploader) Upload(ctx context.Context, key, contentType string, r io.Reader) (*storage.UploadResult, error) {
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		return nil, err
	}
	u.objects[key] = buf.Bytes()
	return &storage.UploadResult{Key: key, Location: u.GetPublicURL(key)}, nil
}

func (u *fakeUploader) Delete(ctx context.Context, key string) error {
	u.deleted = append(u.deleted, key)
	delete(u.objects, key)
	return nil
}

func (u *fakeUploader) GetPublicURL(key string) string {
	if u.publicBase == "" {
		return ""
	}
	return u.publicBase + "/" + key
}

func (u *fakeUploader) PresignGetURL(ctx context.Context, key string, ttl time.Duration) (string, error) {
	return "https://signed.example/" + key + "?ttl=" + ttl.String(), nil
}

// fixtureEnv wires every service over one memory database.
type fixtureEnv struct {
	db          *memoryDB
	tx          *passthroughTx
	broadcaster *recordingBroadcaster
	uploader    *fakeUploader
	tournaments TournamentService
	fixtures    FixtureService
	exports     ExportService
}

func newFixtureEnv(uploader *fakeUploader) *fixtureEnv {
	db := newMemoryDB()
	env := &fixtureEnv{
		db:          db,
		tx:          &passthroughTx{},
		broadcaster: &recordingBroadcaster{},
		uploader:    uploader,
	}
	var up storage.FileUploader
	if uploader != nil {
		up = uploader
	}
	logger := discardLogger()
	env.tournaments = NewTournamentService(env.tx, memoryTournaments{db}, memoryTeams{db}, memoryFields{db}, memoryCalendars{db}, memoryMatches{db}, up, logger)
	env.fixtures = NewFixtureService(env.tx, memoryTournaments{db}, memoryTeams{db}, memoryFields{db}, memoryCalendars{db}, memoryMatches{db}, env.broadcaster, logger)
	env.exports = NewExportService(env.fixtures, memoryTournaments{db}, up, env.broadcaster, logger)
	return env
}
