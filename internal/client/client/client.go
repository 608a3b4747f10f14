package client

import (
	"context"

	"github.com/dmitrijs2005/gophcontacts/internal/client/models"
)

// Client is the device's view of the contacts server.
type Client interface {
	Close() error
	Login(ctx context.Context, apiKey string) error
	LoggedIn() bool
	Ping(ctx context.Context) error

	ListPeople(ctx context.Context) ([]models.Person, error)
	CountPeople(ctx context.Context) (int64, error)
	GetPerson(ctx context.Context, id string) (*models.Person, error)
	PostPerson(ctx context.Context, p models.Person) (*models.Person, error)
	PutPerson(ctx context.Context, p models.Person) (*models.Person, error)
	DeletePerson(ctx context.Context, id string) (bool, error)

	CreateImageUpload(ctx context.Context, fileName, contentType string) (key, url string, err error)
	CompleteImageUpload(ctx context.Context, key string) (string, error)
	GetImageURL(ctx context.Context, ref string) (url, contentType string, err error)
	DeleteImage(ctx context.Context, ref string) (bool, error)
}
