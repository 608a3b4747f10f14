// Package auth issues and validates the HS256 tokens handed to clients after
// they present the service API key.
package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/gophcontacts/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// TokenKind separates access tokens from refresh tokens so one cannot be
// used in place of the other.
type TokenKind string

const (
	KindAccess  TokenKind = "access"
	KindRefresh TokenKind = "refresh"
)

// Claims carries the registered claims plus the token kind.
type Claims struct {
	jwt.RegisteredClaims
	Kind TokenKind `json:"kind"`
}

func GenerateToken(clientID string, kind TokenKind, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   clientID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
		Kind: kind,
	})

	return token.SignedString(secretKey)
}

// GetClientIDFromToken validates tokenString and returns its subject.
// Expired tokens yield common.ErrTokenExpired, a kind mismatch or bad
// signature yields common.ErrInvalidToken.
func GetClientIDFromToken(tokenString string, kind TokenKind, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", common.ErrTokenExpired
		}
		return "", common.ErrInvalidToken
	}

	if !token.Valid || claims.Kind != kind {
		return "", common.ErrInvalidToken
	}

	return claims.Subject, nil
}
