// Package people is the local person cache kept in SQLite.
package people

import (
	"context"

	"github.com/dmitrijs2005/gophcontacts/internal/client/models"
)

// Repository stores people on the device. Lookups of unknown ids return
// common.ErrorNotFound; Insert of a known id returns common.ErrorAlreadyExists.
type Repository interface {
	SelectAll(ctx context.Context) ([]models.Person, error)
	FindByID(ctx context.Context, id string) (*models.Person, error)
	Count(ctx context.Context) (int64, error)
	Insert(ctx context.Context, p models.Person) error
	InsertAll(ctx context.Context, people []models.Person) error
	Upsert(ctx context.Context, p models.Person) error
	Update(ctx context.Context, p models.Person) error
	Remove(ctx context.Context, id string) error
}
