package people

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophcontacts/internal/client/models"
	"github.com/dmitrijs2005/gophcontacts/internal/common"
	"github.com/dmitrijs2005/gophcontacts/internal/dbx"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

const selectColumns = `id, first_name, last_name, email, phone, local_image, remote_image`

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func scanPerson(s dbx.Scanner) (models.Person, error) {
	var (
		p             models.Person
		local, remote sql.NullString
	)
	if err := s.Scan(&p.ID, &p.FirstName, &p.LastName, &p.Email, &p.Phone, &local, &remote); err != nil {
		return models.Person{}, err
	}
	p.LocalImage = dbx.StringPtr(local)
	p.RemoteImage = dbx.StringPtr(remote)
	return p, nil
}

func (r *SQLiteRepository) SelectAll(ctx context.Context) ([]models.Person, error) {
	query := `SELECT ` + selectColumns + ` FROM people ORDER BY first_name, last_name, id`
	result, err := dbx.QueryAll(ctx, r.db, scanPerson, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select people: %w", err)
	}
	return result, nil
}

func (r *SQLiteRepository) FindByID(ctx context.Context, id string) (*models.Person, error) {
	query := `SELECT ` + selectColumns + ` FROM people WHERE id = ?`
	p, err := scanPerson(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find person %s: %w", id, err)
	}
	return &p, nil
}

func (r *SQLiteRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM people`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count people: %w", err)
	}
	return n, nil
}

func (r *SQLiteRepository) Insert(ctx context.Context, p models.Person) error {
	query := `INSERT INTO people (` + selectColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID, p.FirstName, p.LastName, p.Email, p.Phone, dbx.NullString(p.LocalImage), dbx.NullString(p.RemoteImage))
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("person %s: %w", p.ID, common.ErrorAlreadyExists)
		}
		return fmt.Errorf("failed to insert person: %w", err)
	}
	return nil
}

// InsertAll inserts people one by one on the repository's handle. Callers
// that need all-or-nothing semantics bind the repository to a *sql.Tx.
func (r *SQLiteRepository) InsertAll(ctx context.Context, people []models.Person) error {
	for _, p := range people {
		if err := r.Insert(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQLiteRepository) Upsert(ctx context.Context, p models.Person) error {
	query := `INSERT INTO people (` + selectColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			first_name = excluded.first_name,
			last_name = excluded.last_name,
			email = excluded.email,
			phone = excluded.phone,
			local_image = excluded.local_image,
			remote_image = excluded.remote_image`
	_, err := r.db.ExecContext(ctx, query,
		p.ID, p.FirstName, p.LastName, p.Email, p.Phone, dbx.NullString(p.LocalImage), dbx.NullString(p.RemoteImage))
	if err != nil {
		return fmt.Errorf("failed to upsert person: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Update(ctx context.Context, p models.Person) error {
	query := `UPDATE people SET first_name = ?, last_name = ?, email = ?, phone = ?, local_image = ?, remote_image = ?
		WHERE id = ?`
	result, err := r.db.ExecContext(ctx, query,
		p.FirstName, p.LastName, p.Email, p.Phone, dbx.NullString(p.LocalImage), dbx.NullString(p.RemoteImage), p.ID)
	if err != nil {
		return fmt.Errorf("failed to update person: %w", err)
	}
	return requireOneRow(result)
}

func (r *SQLiteRepository) Remove(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM people WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete person: %w", err)
	}
	return requireOneRow(result)
}

func requireOneRow(result sql.Result) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var se *sqlite.Error
	if !errors.As(err, &se) {
		return false
	}
	return se.Code() == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY || se.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE
}
