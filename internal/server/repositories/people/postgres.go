package people

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophcontacts/internal/common"
	"github.com/dmitrijs2005/gophcontacts/internal/dbx"
	"github.com/dmitrijs2005/gophcontacts/internal/server/models"
)

const personColumns = `id, first_name, last_name, email, phone, local_image, remote_image, updated_at`

// PostgresRepository implements Repository over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func scanPerson(s dbx.Scanner) (*models.Person, error) {
	var p models.Person
	var local, remote sql.NullString
	if err := s.Scan(&p.ID, &p.FirstName, &p.LastName, &p.Email, &p.Phone, &local, &remote, &p.UpdatedAt); err != nil {
		return nil, err
	}
	p.LocalImage = dbx.StringPtr(local)
	p.RemoteImage = dbx.StringPtr(remote)
	return &p, nil
}

// List returns all people ordered by last and first name.
func (r *PostgresRepository) List(ctx context.Context) ([]*models.Person, error) {
	query := `SELECT ` + personColumns + ` FROM people ORDER BY last_name, first_name, id`
	items, err := dbx.QueryAll(ctx, r.db, scanPerson, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select people: %w", err)
	}
	return items, nil
}

func (r *PostgresRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM people`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count people: %w", err)
	}
	return n, nil
}

// Get returns the person with id or common.ErrorNotFound.
func (r *PostgresRepository) Get(ctx context.Context, id string) (*models.Person, error) {
	query := `SELECT ` + personColumns + ` FROM people WHERE id=$1`
	p, err := scanPerson(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to select person: %w", err)
	}
	return p, nil
}

// Upsert inserts p or replaces the stored row with the same id.
func (r *PostgresRepository) Upsert(ctx context.Context, p *models.Person) (*models.Person, error) {
	query := `
		INSERT INTO people (id, first_name, last_name, email, phone, local_image, remote_image, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now())
		ON CONFLICT (id)
		DO UPDATE SET
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			email = EXCLUDED.email,
			phone = EXCLUDED.phone,
			local_image = EXCLUDED.local_image,
			remote_image = EXCLUDED.remote_image,
			updated_at = now()
		RETURNING ` + personColumns

	saved, err := scanPerson(r.db.QueryRowContext(ctx, query,
		p.ID, p.FirstName, p.LastName, p.Email, p.Phone, dbx.NullString(p.LocalImage), dbx.NullString(p.RemoteImage)))
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return saved, nil
}

// Update rewrites an existing person; common.ErrorNotFound when id is unknown.
func (r *PostgresRepository) Update(ctx context.Context, p *models.Person) (*models.Person, error) {
	query := `
		UPDATE people SET
			first_name=$2, last_name=$3, email=$4, phone=$5, local_image=$6, remote_image=$7, updated_at=now()
		WHERE id=$1
		RETURNING ` + personColumns

	saved, err := scanPerson(r.db.QueryRowContext(ctx, query,
		p.ID, p.FirstName, p.LastName, p.Email, p.Phone, dbx.NullString(p.LocalImage), dbx.NullString(p.RemoteImage)))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return saved, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM people WHERE id=$1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete person: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected error: %w", err)
	}
	return n == 1, nil
}
