package store

import (
	"context"

	"github.com/phrazzld/taskboard-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user to the store and assigns its ID.
	// The user's HashedPassword must already be set; plaintext passwords
	// are never persisted.
	// Returns ErrUsernameExists or ErrEmailExists on unique constraint
	// collisions, and validation errors from the domain User if data is
	// invalid.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id int64) (*domain.User, error)

	// GetByUsername retrieves a user by their username. Used both for login
	// and for resolving the subject of a bearer token.
	// Returns ErrUserNotFound if the user does not exist.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}
