package services

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/gophcontacts/internal/common"
	"github.com/dmitrijs2005/gophcontacts/internal/logging"
	"github.com/dmitrijs2005/gophcontacts/internal/server/models"
	"github.com/stretchr/testify/require"
)

const arneID = "0a7c1f3e-3c1b-5b8e-9d7a-2f1e6c4b8a01"

func newPeopleService(c *countingCache) (*PeopleService, *fakePeopleRepo) {
	repo := newFakePeopleRepo()
	rm := &fakeRepoManager{people: repo, images: newFakeImagesRepo()}
	if c == nil {
		return NewPeopleService(nil, rm, nil, logging.Discard()), repo
	}
	return NewPeopleService(nil, rm, c, logging.Discard()), repo
}

func validPerson() *models.Person {
	return &models.Person{ID: arneID, FirstName: "Arne", LastName: "Arndt", Email: "arne.arndt@gmx.de", Phone: "01234 100-10"}
}

func TestPeopleService_ListUsesCache(t *testing.T) {
	c := &countingCache{}
	s, repo := newPeopleService(c)
	ctx := context.Background()

	_, err := s.Post(ctx, validPerson())
	require.NoError(t, err)
	require.Equal(t, 1, c.invalidations)

	first, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, first, 1)

	second, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, second, 1)
	require.Equal(t, 1, repo.listCalls, "second list must be served from cache")
}

func TestPeopleService_ListWithoutCache(t *testing.T) {
	s, repo := newPeopleService(nil)
	_, err := s.List(context.Background())
	require.NoError(t, err)
	_, err = s.List(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, repo.listCalls)
}

func TestPeopleService_ListRepoError(t *testing.T) {
	s, repo := newPeopleService(&countingCache{})
	repo.err = errors.New("db down")
	_, err := s.List(context.Background())
	require.Error(t, err)
}

func TestPeopleService_PostValidates(t *testing.T) {
	s, _ := newPeopleService(nil)

	p := validPerson()
	p.FirstName = "A"
	_, err := s.Post(context.Background(), p)
	require.ErrorIs(t, err, common.ErrorValidation)

	p = validPerson()
	p.Email = "not-an-email"
	_, err = s.Post(context.Background(), p)
	require.ErrorIs(t, err, common.ErrorValidation)

	p = validPerson()
	p.ID = "nope"
	_, err = s.Post(context.Background(), p)
	require.ErrorIs(t, err, common.ErrorValidation)
}

func TestPeopleService_PostIsUpsert(t *testing.T) {
	s, _ := newPeopleService(nil)
	ctx := context.Background()

	_, err := s.Post(ctx, validPerson())
	require.NoError(t, err)

	p := validPerson()
	remote := "images/2024/1/1/a.jpg"
	p.RemoteImage = &remote
	_, err = s.Post(ctx, p)
	require.NoError(t, err)

	n, err := s.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(1), n)

	got, err := s.Get(ctx, arneID)
	require.NoError(t, err)
	require.Equal(t, remote, *got.RemoteImage)
}

func TestPeopleService_PutAndDelete(t *testing.T) {
	c := &countingCache{}
	s, _ := newPeopleService(c)
	ctx := context.Background()

	_, err := s.Put(ctx, validPerson())
	require.ErrorIs(t, err, common.ErrorNotFound)

	_, err = s.Post(ctx, validPerson())
	require.NoError(t, err)

	p := validPerson()
	p.Phone = "0999"
	saved, err := s.Put(ctx, p)
	require.NoError(t, err)
	require.Equal(t, "0999", saved.Phone)

	deleted, err := s.Delete(ctx, arneID)
	require.NoError(t, err)
	require.True(t, deleted)

	deleted, err = s.Delete(ctx, arneID)
	require.NoError(t, err)
	require.False(t, deleted)
	require.Equal(t, 3, c.invalidations)
}
