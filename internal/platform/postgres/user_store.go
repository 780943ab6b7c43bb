package postgres

import (
	"context"
	"fmt"

	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/platform/logger"
	"github.com/phrazzld/taskboard-api/internal/store"
)

// Unique constraint names from the users table migration. Used to tell a
// username collision apart from an email collision.
const (
	usersUsernameConstraint = "users_username_key"
	usersEmailConstraint    = "users_email_key"
)

// UserStore implements the store.UserStore interface using a PostgreSQL
// database as the storage backend.
type UserStore struct {
	db store.DBTX
}

// NewUserStore creates a new PostgreSQL implementation of the UserStore
// interface. It accepts a database connection or transaction that should be
// initialized and managed by the caller.
func NewUserStore(db store.DBTX) *UserStore {
	return &UserStore{db: db}
}

// Ensure UserStore implements store.UserStore interface
var _ store.UserStore = (*UserStore)(nil)

// Create implements store.UserStore.Create
func (s *UserStore) Create(ctx context.Context, user *domain.User) error {
	log := logger.FromContext(ctx)

	if err := user.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}
	if user.HashedPassword == "" {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, domain.ErrEmptyHashedPassword)
	}

	query := `
		INSERT INTO users (username, email, hashed_password, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := s.db.QueryRowContext(ctx, query,
		user.Username,
		user.Email,
		user.HashedPassword,
		user.IsActive,
		user.CreatedAt,
	).Scan(&user.ID)

	if err != nil {
		if IsUniqueViolation(err, usersUsernameConstraint) {
			return store.ErrUsernameExists
		}
		if IsUniqueViolation(err, usersEmailConstraint) {
			return store.ErrEmailExists
		}
		log.Error("failed to create user", "error", err, "username", user.Username)
		return fmt.Errorf("failed to create user: %w", MapError(err))
	}

	return nil
}

// GetByID implements store.UserStore.GetByID
func (s *UserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `
		SELECT id, username, email, hashed_password, is_active, created_at
		FROM users
		WHERE id = $1
	`

	return s.scanUser(s.db.QueryRowContext(ctx, query, id))
}

// GetByUsername implements store.UserStore.GetByUsername
func (s *UserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `
		SELECT id, username, email, hashed_password, is_active, created_at
		FROM users
		WHERE username = $1
	`

	return s.scanUser(s.db.QueryRowContext(ctx, query, username))
}

// rowScanner matches *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func (s *UserStore) scanUser(row rowScanner) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.HashedPassword,
		&user.IsActive,
		&user.CreatedAt,
	)
	if err != nil {
		if store.IsNotFoundError(MapError(err)) {
			return nil, store.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}
