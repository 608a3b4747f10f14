// Package people persists contacts for the remote person store.
package people

import (
	"context"

	"github.com/dmitrijs2005/gophcontacts/internal/server/models"
)

type Repository interface {
	List(ctx context.Context) ([]*models.Person, error)
	Count(ctx context.Context) (int64, error)
	Get(ctx context.Context, id string) (*models.Person, error)
	Upsert(ctx context.Context, p *models.Person) (*models.Person, error)
	Update(ctx context.Context, p *models.Person) (*models.Person, error)
	Delete(ctx context.Context, id string) (bool, error)
}
