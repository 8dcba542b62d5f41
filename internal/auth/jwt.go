package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	apperrors "drportal/pkg/errors"
)

// TokenManager issues and verifies the HS256 access tokens handed out
// on profile upsert. The email claim is the principal identity.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

type claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

func (tm *TokenManager) Issue(email string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tm.ttl)),
		},
	})

	signed, err := token.SignedString(tm.secret)
	if err != nil {
		return "", apperrors.Internal("failed to sign access token", err)
	}
	return signed, nil
}

// Verify returns the email claim of a valid token. Expired or tampered
// tokens fail with a forbidden error so callers can map it straight to
// a response.
func (tm *TokenManager) Verify(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return tm.secret, nil
	})
	if err != nil {
		return "", apperrors.Forbidden("forbidden access")
	}

	c, ok := token.Claims.(*claims)
	if !ok || !token.Valid || c.Email == "" {
		return "", apperrors.Forbidden("forbidden access")
	}
	return c.Email, nil
}
