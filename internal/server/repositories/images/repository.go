// Package images tracks photo objects stored in the bucket.
package images

import (
	"context"

	"github.com/dmitrijs2005/gophcontacts/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, img *models.Image) error
	Get(ctx context.Context, key string) (*models.Image, error)
	MarkUploaded(ctx context.Context, key string) error
	Delete(ctx context.Context, key string) (bool, error)
}
