package people

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/gophcontacts/internal/common"
	"github.com/dmitrijs2005/gophcontacts/internal/server/models"
	"github.com/stretchr/testify/require"
)

var cols = []string{"id", "first_name", "last_name", "email", "phone", "local_image", "remote_image", "updated_at"}

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresRepository(db), mock, db
}

func strp(s string) *string { return &s }

func TestList_ScansOptionalImages(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)
	now := time.Now()

	mock.ExpectQuery(`(?s)^SELECT id, first_name.*FROM people ORDER BY last_name, first_name, id$`).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow("1", "Arne", "Arndt", "arne.arndt@gmx.de", "01234 100-10", nil, "images/a.jpg", now).
			AddRow("2", "Berta", "Bauer", "", "", "/tmp/b.jpg", nil, now))

	got, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Nil(t, got[0].LocalImage)
	require.Equal(t, "images/a.jpg", *got[0].RemoteImage)
	require.Equal(t, "/tmp/b.jpg", *got[1].LocalImage)
	require.Nil(t, got[1].RemoteImage)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestList_DBError(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)

	mock.ExpectQuery(`FROM people`).WillReturnError(errors.New("db down"))

	_, err := repo.List(context.Background())
	require.ErrorContains(t, err, "failed to select people")
}

func TestCount(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)

	mock.ExpectQuery(`^SELECT count\(\*\) FROM people$`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(26)))

	n, err := repo.Count(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(26), n)
}

func TestGet_NotFound(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)

	mock.ExpectQuery(`FROM people WHERE id=\$1`).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(cols))

	_, err := repo.Get(context.Background(), "missing")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestUpsert_PassesNullableImages(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)
	now := time.Now()

	q := `(?s)^\s*INSERT\s+INTO\s+people\b.*ON\s+CONFLICT\s*\(id\)\s*DO\s+UPDATE\s+SET\b.*RETURNING`
	mock.ExpectQuery(q).
		WithArgs("1", "Arne", "Arndt", "a@b.de", "0123", nil, "images/x.jpg").
		WillReturnRows(sqlmock.NewRows(cols).AddRow("1", "Arne", "Arndt", "a@b.de", "0123", nil, "images/x.jpg", now))

	saved, err := repo.Upsert(context.Background(), &models.Person{
		ID: "1", FirstName: "Arne", LastName: "Arndt", Email: "a@b.de", Phone: "0123", RemoteImage: strp("images/x.jpg"),
	})
	require.NoError(t, err)
	require.Equal(t, now, saved.UpdatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate_NotFound(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)

	mock.ExpectQuery(`(?s)UPDATE people SET.*WHERE id=\$1`).
		WithArgs("1", "Arne", "Arndt", "", "", nil, nil).
		WillReturnRows(sqlmock.NewRows(cols))

	_, err := repo.Update(context.Background(), &models.Person{ID: "1", FirstName: "Arne", LastName: "Arndt"})
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestDelete(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)

	mock.ExpectExec(`^DELETE FROM people WHERE id=\$1$`).WithArgs("1").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`^DELETE FROM people WHERE id=\$1$`).WithArgs("2").WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err := repo.Delete(context.Background(), "1")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = repo.Delete(context.Background(), "2")
	require.NoError(t, err)
	require.False(t, ok)
}
