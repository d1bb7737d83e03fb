// Package users persists the user collection and the session marker as JSON
// documents in a kv.Store.
package users

import (
	"context"

	"github.com/astroerik-coder/agrostock/internal/client/models"
)

// Storage keys.
const (
	KeyUsers         = "users"
	KeySession       = "loggedInUser"
	KeyLegacySession = "user"
)

type Repository interface {
	// List returns every registered user in registration order.
	List(ctx context.Context) ([]models.User, error)
	// Update atomically rewrites the whole collection with fn(current).
	Update(ctx context.Context, fn func(users []models.User) ([]models.User, error)) error

	// GetSession returns the session marker, or nil when nobody is logged in.
	// legacy reports that it was read from KeyLegacySession.
	GetSession(ctx context.Context) (s *models.Session, legacy bool, err error)
	SetSession(ctx context.Context, s *models.Session) error
	// DeleteSession removes the marker under both keys.
	DeleteSession(ctx context.Context) error
}
