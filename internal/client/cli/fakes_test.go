package cli

import (
	"bufio"
	"bytes"
	"context"
	"database/sql"
	"sort"
	"strings"
	"testing"

	"github.com/dmitrijs2005/gophcontacts/internal/client/config"
	"github.com/dmitrijs2005/gophcontacts/internal/client/migrations"
	"github.com/dmitrijs2005/gophcontacts/internal/client/models"
	"github.com/dmitrijs2005/gophcontacts/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/gophcontacts/internal/client/seed"
	"github.com/dmitrijs2005/gophcontacts/internal/common"
	"github.com/dmitrijs2005/gophcontacts/internal/logging"
	"github.com/dmitrijs2005/gophcontacts/internal/outcome"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

type fakeAuth struct {
	loggedIn bool
	loginErr error
	pingErr  error
	keys     []string
	closed   bool
}

func (f *fakeAuth) Login(ctx context.Context, apiKey string) error {
	f.keys = append(f.keys, apiKey)
	if f.loginErr != nil {
		return f.loginErr
	}
	f.loggedIn = true
	return nil
}
func (f *fakeAuth) LoggedIn() bool                  { return f.loggedIn }
func (f *fakeAuth) Ping(ctx context.Context) error  { return f.pingErr }
func (f *fakeAuth) Close(ctx context.Context) error { f.closed = true; return nil }

type fakePeople struct {
	items         map[string]models.Person
	remoteDeleted []string
}

func (f *fakePeople) GetAll(ctx context.Context) outcome.Outcome[[]models.Person] {
	out := make([]models.Person, 0, len(f.items))
	for _, p := range f.items {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FirstName < out[j].FirstName })
	return outcome.Success(out)
}

func (f *fakePeople) GetByID(ctx context.Context, id string) outcome.Outcome[models.Person] {
	p, ok := f.items[id]
	if !ok {
		return outcome.Failure[models.Person](common.ErrorNotFound)
	}
	return outcome.Success(p)
}

func (f *fakePeople) Count(ctx context.Context) outcome.Outcome[int64] {
	return outcome.Success(int64(len(f.items)))
}

func (f *fakePeople) Create(ctx context.Context, p models.Person) outcome.Outcome[models.Person] {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if err := p.Validate(); err != nil {
		return outcome.Failure[models.Person](err)
	}
	f.items[p.ID] = p
	return outcome.Success(p)
}

func (f *fakePeople) Update(ctx context.Context, p models.Person) outcome.Outcome[models.Person] {
	if _, ok := f.items[p.ID]; !ok {
		return outcome.Failure[models.Person](common.ErrorNotFound)
	}
	f.items[p.ID] = p
	return outcome.Success(p)
}

func (f *fakePeople) Remove(ctx context.Context, id string) outcome.Outcome[bool] {
	_, ok := f.items[id]
	delete(f.items, id)
	return outcome.Success(ok)
}

func (f *fakePeople) DeleteRemote(ctx context.Context, id string) outcome.Outcome[bool] {
	f.remoteDeleted = append(f.remoteDeleted, id)
	return outcome.Success(true)
}

type fakeFiles struct {
	copied  []string
	deleted []string
}

func (f *fakeFiles) CopyFile(ctx context.Context, path string) outcome.Outcome[string] {
	f.copied = append(f.copied, path)
	return outcome.Success("/store/" + uuid.NewString() + ".jpg")
}

func (f *fakeFiles) DeleteFile(ctx context.Context, path string) outcome.Outcome[bool] {
	f.deleted = append(f.deleted, path)
	return outcome.Success(true)
}

type fakeSeeder struct {
	result bool
	calls  int
}

func (f *fakeSeeder) SeedPeople(ctx context.Context) bool {
	f.calls++
	return f.result
}

type fakeSync struct {
	pushes, pulls int
	res           seed.SyncResult
	err           error
}

func (f *fakeSync) Push(ctx context.Context) (seed.SyncResult, error) {
	f.pushes++
	return f.res, f.err
}

func (f *fakeSync) Pull(ctx context.Context) (seed.SyncResult, error) {
	f.pulls++
	return f.res, f.err
}

type testApp struct {
	*App
	auth   *fakeAuth
	people *fakePeople
	files  *fakeFiles
	local  *fakeSeeder
	remote *fakeSeeder
	sync   *fakeSync
	out    *bytes.Buffer
}

func setupMeta(t *testing.T) metadata.Repository {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, migrations.Up(context.Background(), db))
	return metadata.NewSQLiteRepository(db)
}

// newTestApp builds an App over fakes; input feeds the prompts.
func newTestApp(t *testing.T, input ...string) *testApp {
	t.Helper()
	ta := &testApp{
		auth:   &fakeAuth{},
		people: &fakePeople{items: map[string]models.Person{}},
		files:  &fakeFiles{},
		local:  &fakeSeeder{},
		remote: &fakeSeeder{},
		sync:   &fakeSync{},
		out:    &bytes.Buffer{},
	}
	cfg := &config.Config{}
	cfg.LoadDefaults()

	ta.App = &App{
		config:      cfg,
		logger:      logging.Discard(),
		authService: ta.auth,
		people:      ta.people,
		files:       ta.files,
		meta:        setupMeta(t),
		localSeeder: ta.local,
		webSeeder:   ta.remote,
		sync:        ta.sync,
		reader:      bufio.NewReader(strings.NewReader(strings.Join(input, "\n") + "\n")),
		out:         ta.out,
	}
	return ta
}

func (ta *testApp) online() {
	ta.auth.loggedIn = true
	ta.setMode(ModeOnline)
}

func (ta *testApp) add(t *testing.T, first, last string) models.Person {
	t.Helper()
	p := models.Person{ID: uuid.NewString(), FirstName: first, LastName: last}
	ta.people.items[p.ID] = p
	return p
}
