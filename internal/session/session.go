// Package session resolves the current authenticated user from a stored
// access token. Token acquisition (the login flow) happens elsewhere; this
// package only reads what a previous login persisted.
package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/arenaku/courtbook/internal/ident"
)

var ErrSessionExpired = errors.New("session expired")

// Claims mirrors the backend's access token. Sub stays loosely typed: older
// tokens carry the user id as a JSON number, newer ones as a string.
type Claims struct {
	Sub   any    `json:"sub"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

type User struct {
	ID    int64
	Email string
	Name  string
}

// TokenStore is the persisted slot holding the raw access token.
type TokenStore interface {
	SessionToken(ctx context.Context) (string, error)
}

type Manager struct {
	store  TokenStore
	secret []byte
}

func NewManager(store TokenStore, secret string) *Manager {
	return &Manager{store: store, secret: []byte(secret)}
}

// Token returns the raw bearer token, or "" when no session exists.
func (m *Manager) Token(ctx context.Context) (string, error) {
	token, err := m.store.SessionToken(ctx)
	if err != nil {
		return "", fmt.Errorf("read session token: %w", err)
	}
	return token, nil
}

// CurrentUser parses the stored token into the authenticated identity.
// A missing, malformed, or expired token, or one whose subject does not
// normalize to a positive id, all resolve to ErrSessionExpired: every one
// of them means the user has to sign in again.
func (m *Manager) CurrentUser(ctx context.Context) (*User, error) {
	raw, err := m.store.SessionToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("read session token: %w", err)
	}
	if raw == "" {
		return nil, ErrSessionExpired
	}

	tok, err := jwt.ParseWithClaims(raw, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return m.secret, nil
	})
	if err != nil {
		return nil, ErrSessionExpired
	}

	claims, ok := tok.Claims.(*Claims)
	if !ok || !tok.Valid {
		return nil, ErrSessionExpired
	}

	id, ok := ident.ID(claims.Sub)
	if !ok {
		return nil, ErrSessionExpired
	}

	return &User{ID: id, Email: claims.Email, Name: claims.Name}, nil
}
