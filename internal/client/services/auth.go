package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophcontacts/internal/client/client"
)

var ErrEmptyAPIKey = errors.New("api key is empty")

// AuthService signs the device in to the server and probes liveness.
type AuthService interface {
	Login(ctx context.Context, apiKey string) error
	LoggedIn() bool
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

type authService struct {
	client client.Client
}

func NewAuthService(c client.Client) AuthService {
	return &authService{client: c}
}

func (a *authService) Login(ctx context.Context, apiKey string) error {
	if apiKey == "" {
		return ErrEmptyAPIKey
	}
	if err := a.client.Login(ctx, apiKey); err != nil {
		return fmt.Errorf("login error: %w", err)
	}
	return nil
}

func (a *authService) LoggedIn() bool {
	return a.client.LoggedIn()
}

// Ping proxies a liveness check to the underlying client.
func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}

// Close releases resources held by the underlying client.
func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}
