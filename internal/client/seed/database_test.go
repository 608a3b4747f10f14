package seed

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/gophcontacts/internal/client/repositories/people"
	"github.com/dmitrijs2005/gophcontacts/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatabaseSeeder(t *testing.T) {
	db := setupDB(t)
	files := &fakeFiles{}
	d := NewDatabaseSeeder(db, New(files, logging.Discard()), logging.Discard())
	ctx := context.Background()

	require.True(t, d.SeedPeople(ctx))

	repo := people.NewSQLiteRepository(db)
	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(26), n)
	assert.Zero(t, files.writes, "local seeding writes no images")

	assert.False(t, d.SeedPeople(ctx))
	n, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(26), n)
}

func TestDatabaseSeeder_ClosedDB(t *testing.T) {
	db := setupDB(t)
	require.NoError(t, db.Close())

	d := NewDatabaseSeeder(db, New(&fakeFiles{}, logging.Discard()), logging.Discard())
	assert.False(t, d.SeedPeople(context.Background()))
}
