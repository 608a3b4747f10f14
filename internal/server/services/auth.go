// Package services contains server-side business logic: API-key login and
// token refresh, the remote person store, and the remote image store.
package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"time"

	"github.com/dmitrijs2005/gophcontacts/internal/common"
	"github.com/dmitrijs2005/gophcontacts/internal/server/auth"
	"github.com/dmitrijs2005/gophcontacts/internal/server/config"
)

// clientSubject is the token subject for devices that logged in with the API key.
const clientSubject = "contacts-client"

// TokenPair bundles a short-lived access token and a long-lived refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// AuthService exchanges the shared API key for JWTs and rotates them.
type AuthService struct {
	apiKey                       []byte
	jwtSecret                    []byte
	accessTokenValidityDuration  time.Duration
	refreshTokenValidityDuration time.Duration
}

func NewAuthService(cfg *config.Config) *AuthService {
	return &AuthService{
		apiKey:                       []byte(cfg.APIKey),
		jwtSecret:                    []byte(cfg.SecretKey),
		accessTokenValidityDuration:  cfg.AccessTokenValidityDuration,
		refreshTokenValidityDuration: cfg.RefreshTokenValidityDuration,
	}
}

// Login checks apiKey in constant time and returns a new TokenPair.
func (s *AuthService) Login(ctx context.Context, apiKey string) (*TokenPair, error) {
	if len(s.apiKey) == 0 || subtle.ConstantTimeCompare(s.apiKey, []byte(apiKey)) != 1 {
		return nil, common.ErrorUnauthorized
	}
	return s.generateTokenPair(clientSubject)
}

// RefreshToken validates a refresh token and returns a fresh TokenPair.
// Expired tokens yield ErrRefreshTokenExpired.
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	subject, err := auth.GetClientIDFromToken(refreshToken, auth.KindRefresh, s.jwtSecret)
	if err != nil {
		if errors.Is(err, common.ErrTokenExpired) {
			return nil, common.ErrRefreshTokenExpired
		}
		return nil, common.ErrorUnauthorized
	}
	return s.generateTokenPair(subject)
}

// ValidateAccessToken returns the client id carried by an access token.
func (s *AuthService) ValidateAccessToken(token string) (string, error) {
	return auth.GetClientIDFromToken(token, auth.KindAccess, s.jwtSecret)
}

func (s *AuthService) generateTokenPair(subject string) (*TokenPair, error) {
	access, err := auth.GenerateToken(subject, auth.KindAccess, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return nil, common.ErrorInternal
	}
	refresh, err := auth.GenerateToken(subject, auth.KindRefresh, s.jwtSecret, s.refreshTokenValidityDuration)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
