package seed

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"image"
	"sync"
	"testing"

	"github.com/dmitrijs2005/gophcontacts/internal/client/migrations"
	"github.com/dmitrijs2005/gophcontacts/internal/client/models"
	"github.com/dmitrijs2005/gophcontacts/internal/outcome"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

var errBoom = errors.New("boom")

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, migrations.Up(context.Background(), db))
	return db
}

// fakeFiles records image writes and deletes; failAt makes the n-th write
// (1-based) fail.
type fakeFiles struct {
	mu        sync.Mutex
	failAt    int
	writes    int
	written   []string
	deleted   []string
	deleteErr error
}

func (f *fakeFiles) WriteImage(ctx context.Context, img image.Image) outcome.Outcome[string] {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.writes++
	if f.writes == f.failAt {
		return outcome.Failure[string](errBoom)
	}
	p := fmt.Sprintf("/data/images/%02d.jpg", f.writes)
	f.written = append(f.written, p)
	return outcome.Success(p)
}

func (f *fakeFiles) DeleteFile(ctx context.Context, path string) outcome.Outcome[bool] {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return outcome.Failure[bool](f.deleteErr)
	}
	f.deleted = append(f.deleted, path)
	return outcome.Success(true)
}

// fakeRemote is a remote person collection and image store in one.
type fakeRemote struct {
	mu sync.Mutex

	people     []models.Person
	posted     []models.Person
	fetchErr   error
	postErr    error
	fetchPanic bool

	nextRef   int
	uploaded  []string
	deleted   []string
	uploadErr error
	deleteErr error
	downloads map[string]string
	getErr    error
}

func (f *fakeRemote) Fetch(ctx context.Context) outcome.Outcome[[]models.Person] {
	if f.fetchPanic {
		panic("fetch exploded")
	}
	if f.fetchErr != nil {
		return outcome.Failure[[]models.Person](f.fetchErr)
	}
	return outcome.Success(append([]models.Person(nil), f.people...))
}

func (f *fakeRemote) Post(ctx context.Context, p models.Person) outcome.Outcome[models.Person] {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.postErr != nil {
		return outcome.Failure[models.Person](f.postErr)
	}
	f.posted = append(f.posted, p)
	return outcome.Success(p)
}

type fakeImages struct {
	*fakeRemote
}

func (f fakeImages) Post(ctx context.Context, localPath string) outcome.Outcome[string] {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.uploadErr != nil {
		return outcome.Failure[string](f.uploadErr)
	}
	f.nextRef++
	ref := fmt.Sprintf("images/ref-%d.jpg", f.nextRef)
	f.uploaded = append(f.uploaded, localPath)
	return outcome.Success(ref)
}

func (f fakeImages) Delete(ctx context.Context, remoteRef string) outcome.Outcome[bool] {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return outcome.Failure[bool](f.deleteErr)
	}
	f.deleted = append(f.deleted, remoteRef)
	return outcome.Success(true)
}

func (f fakeImages) Get(ctx context.Context, remoteRef string) outcome.Outcome[string] {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return outcome.Failure[string](f.getErr)
	}
	p, ok := f.downloads[remoteRef]
	if !ok {
		return outcome.Failure[string](errors.New("no such image"))
	}
	return outcome.Success(p)
}
