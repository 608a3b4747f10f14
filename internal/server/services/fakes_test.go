package services

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/gophcontacts/internal/common"
	"github.com/dmitrijs2005/gophcontacts/internal/dbx"
	"github.com/dmitrijs2005/gophcontacts/internal/server/models"
	"github.com/dmitrijs2005/gophcontacts/internal/server/repositories/images"
	"github.com/dmitrijs2005/gophcontacts/internal/server/repositories/people"
)

type fakeRepoManager struct {
	people *fakePeopleRepo
	images *fakeImagesRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) People(dbx.DBTX) people.Repository            { return m.people }
func (m *fakeRepoManager) Images(dbx.DBTX) images.Repository            { return m.images }

type fakePeopleRepo struct {
	items     map[string]*models.Person
	listCalls int
	err       error
}

func newFakePeopleRepo() *fakePeopleRepo {
	return &fakePeopleRepo{items: map[string]*models.Person{}}
}

func (f *fakePeopleRepo) List(ctx context.Context) ([]*models.Person, error) {
	f.listCalls++
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*models.Person, 0, len(f.items))
	for _, p := range f.items {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakePeopleRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.items)), f.err
}

func (f *fakePeopleRepo) Get(ctx context.Context, id string) (*models.Person, error) {
	p, ok := f.items[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return p, nil
}

func (f *fakePeopleRepo) Upsert(ctx context.Context, p *models.Person) (*models.Person, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.items[p.ID] = p
	return p, nil
}

func (f *fakePeopleRepo) Update(ctx context.Context, p *models.Person) (*models.Person, error) {
	if _, ok := f.items[p.ID]; !ok {
		return nil, common.ErrorNotFound
	}
	f.items[p.ID] = p
	return p, nil
}

func (f *fakePeopleRepo) Delete(ctx context.Context, id string) (bool, error) {
	_, ok := f.items[id]
	delete(f.items, id)
	return ok, nil
}

type fakeImagesRepo struct {
	items map[string]*models.Image
}

func newFakeImagesRepo() *fakeImagesRepo {
	return &fakeImagesRepo{items: map[string]*models.Image{}}
}

func (f *fakeImagesRepo) Create(ctx context.Context, img *models.Image) error {
	if _, ok := f.items[img.Key]; ok {
		return common.ErrorAlreadyExists
	}
	f.items[img.Key] = img
	return nil
}

func (f *fakeImagesRepo) Get(ctx context.Context, key string) (*models.Image, error) {
	img, ok := f.items[key]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return img, nil
}

func (f *fakeImagesRepo) MarkUploaded(ctx context.Context, key string) error {
	img, ok := f.items[key]
	if !ok {
		return common.ErrorNotFound
	}
	img.UploadStatus = models.UploadComplete
	return nil
}

func (f *fakeImagesRepo) Delete(ctx context.Context, key string) (bool, error) {
	_, ok := f.items[key]
	delete(f.items, key)
	return ok, nil
}

type fakeStore struct {
	objects   map[string]bool
	deleteErr error
}

func (f *fakeStore) PresignPut(ctx context.Context, key, contentType string) (string, error) {
	return "http://s3/put/" + key, nil
}

func (f *fakeStore) PresignGet(ctx context.Context, key string) (string, error) {
	return "http://s3/get/" + key, nil
}

func (f *fakeStore) Exists(ctx context.Context, key string) (bool, error) {
	return f.objects[key], nil
}

func (f *fakeStore) Delete(ctx context.Context, key string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.objects, key)
	return nil
}

type countingCache struct {
	people        []*models.Person
	ok            bool
	invalidations int
}

func (c *countingCache) GetPeople(context.Context) ([]*models.Person, bool, error) {
	return c.people, c.ok, nil
}

func (c *countingCache) SetPeople(_ context.Context, p []*models.Person) error {
	c.people, c.ok = p, true
	return nil
}

func (c *countingCache) Invalidate(context.Context) error {
	c.people, c.ok = nil, false
	c.invalidations++
	return nil
}
