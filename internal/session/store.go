// Package session implements the server-side session store. The browser only
// ever holds an opaque token; the principal payload stays on the server.
package session

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/Freddy0703/Projet-d-etude-JUNIA/internal/model"
)

// ErrNotFound is returned when a token maps to no live session.
var ErrNotFound = errors.New("session not found")

// Store binds opaque tokens to session principals.
type Store interface {
	// Create binds a fresh token to the principal and returns it.
	Create(ctx context.Context, principal *model.Principal) (string, error)
	Get(ctx context.Context, token string) (*model.Principal, error)
	// Update replaces the stored principal; profile edits go through here
	// rather than mutating a shared in-memory object.
	Update(ctx context.Context, token string, principal *model.Principal) error
	Destroy(ctx context.Context, token string) error
}

func newToken() string {
	return uuid.New().String()
}
