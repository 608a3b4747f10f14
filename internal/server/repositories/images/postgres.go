package images

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophcontacts/internal/common"
	"github.com/dmitrijs2005/gophcontacts/internal/dbx"
	"github.com/dmitrijs2005/gophcontacts/internal/server/models"
)

// PostgresRepository implements image metadata storage over a dbx.DBTX.
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a new image record; an existing key yields common.ErrorAlreadyExists.
func (r *PostgresRepository) Create(ctx context.Context, img *models.Image) error {
	query := `
		INSERT INTO images (key, file_name, content_type, upload_status)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (key) DO NOTHING`
	res, err := r.db.ExecContext(ctx, query, img.Key, img.FileName, img.ContentType, img.UploadStatus)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorAlreadyExists
	}
	return nil
}

// Get returns the image with key or common.ErrorNotFound.
func (r *PostgresRepository) Get(ctx context.Context, key string) (*models.Image, error) {
	query := `SELECT key, file_name, content_type, upload_status, created_at FROM images WHERE key=$1`

	img := &models.Image{}
	err := r.db.QueryRowContext(ctx, query, key).Scan(&img.Key, &img.FileName, &img.ContentType, &img.UploadStatus, &img.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to select image: %w", err)
	}
	return img, nil
}

// MarkUploaded sets upload_status to uploaded. Exactly one row must be affected.
func (r *PostgresRepository) MarkUploaded(ctx context.Context, key string) error {
	result, err := r.db.ExecContext(ctx, `UPDATE images SET upload_status=$2 WHERE key=$1`, key, models.UploadComplete)
	if err != nil {
		return fmt.Errorf("failed to mark uploaded: %w", err)
	}
	ra, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if ra == 0 {
		return common.ErrorNotFound
	}
	if ra != 1 {
		return fmt.Errorf("wrong rows affected count: %d", ra)
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, key string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM images WHERE key=$1`, key)
	if err != nil {
		return false, fmt.Errorf("failed to delete image: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected error: %w", err)
	}
	return n == 1, nil
}
