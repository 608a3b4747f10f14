package services

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"testing"

	"github.com/dmitrijs2005/gophcontacts/internal/client/client"
	"github.com/dmitrijs2005/gophcontacts/internal/client/migrations"
	"github.com/dmitrijs2005/gophcontacts/internal/client/models"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, migrations.Up(context.Background(), db))
	return db
}

// fakeClient implements client.Client over in-memory maps.
type fakeClient struct {
	mu sync.Mutex

	people map[string]models.Person
	images map[string]string // key -> content type

	uploadURL   string
	downloadURL string

	loginErr    error
	pingErr     error
	listErr     error
	postErr     error
	uploadErr   error
	completeErr error
	deleteErr   error

	loggedIn  bool
	closed    bool
	uploads   []string
	completed []string
	deleted   []string
}

var _ client.Client = (*fakeClient)(nil)

func newFakeClient() *fakeClient {
	return &fakeClient{people: map[string]models.Person{}, images: map[string]string{}}
}

func (f *fakeClient) Close() error { f.closed = true; return nil }

func (f *fakeClient) Login(ctx context.Context, apiKey string) error {
	if f.loginErr != nil {
		return f.loginErr
	}
	f.loggedIn = true
	return nil
}

func (f *fakeClient) LoggedIn() bool                 { return f.loggedIn }
func (f *fakeClient) Ping(ctx context.Context) error { return f.pingErr }

func (f *fakeClient) ListPeople(ctx context.Context) ([]models.Person, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]models.Person, 0, len(f.people))
	for _, p := range f.people {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeClient) CountPeople(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.people)), nil
}

func (f *fakeClient) GetPerson(ctx context.Context, id string) (*models.Person, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.people[id]
	if !ok {
		return nil, client.ErrNotFound
	}
	return &p, nil
}

func (f *fakeClient) PostPerson(ctx context.Context, p models.Person) (*models.Person, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.postErr != nil {
		return nil, f.postErr
	}
	p.LocalImage = nil
	f.people[p.ID] = p
	return &p, nil
}

func (f *fakeClient) PutPerson(ctx context.Context, p models.Person) (*models.Person, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.people[p.ID]; !ok {
		return nil, client.ErrNotFound
	}
	p.LocalImage = nil
	f.people[p.ID] = p
	return &p, nil
}

func (f *fakeClient) DeletePerson(ctx context.Context, id string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.people[id]
	delete(f.people, id)
	return ok, nil
}

func (f *fakeClient) CreateImageUpload(ctx context.Context, fileName, contentType string) (string, string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.uploadErr != nil {
		return "", "", f.uploadErr
	}
	key := "images/2024/5/1/" + fileName
	f.uploads = append(f.uploads, key)
	f.images[key] = contentType
	return key, f.uploadURL, nil
}

func (f *fakeClient) CompleteImageUpload(ctx context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.completeErr != nil {
		return "", f.completeErr
	}
	f.completed = append(f.completed, key)
	return key, nil
}

func (f *fakeClient) GetImageURL(ctx context.Context, ref string) (string, string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ct, ok := f.images[ref]
	if !ok {
		return "", "", client.ErrNotFound
	}
	return f.downloadURL, ct, nil
}

func (f *fakeClient) DeleteImage(ctx context.Context, ref string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return false, f.deleteErr
	}
	f.deleted = append(f.deleted, ref)
	_, ok := f.images[ref]
	delete(f.images, ref)
	return ok, nil
}

var errBoom = errors.New("boom")
