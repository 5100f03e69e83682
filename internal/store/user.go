package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/phrazzld/taskmgr-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user to the store.
	// The user's plaintext Password is hashed before storage and never
	// persisted. Returns ErrUsernameExists if the username is taken.
	// Returns validation errors from the domain User if data is invalid.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByUserName retrieves a user by their username.
	// Returns ErrUserNotFound if the user does not exist.
	GetByUserName(ctx context.Context, userName string) (*domain.User, error)

	// Update modifies an existing user's details. If a new plaintext
	// Password is set on the user, it is hashed and replaces the stored
	// hash. Returns ErrUserNotFound if the user does not exist and
	// ErrUsernameExists if renaming to a taken username.
	Update(ctx context.Context, user *domain.User) error

	// List retrieves one page of users ordered by ID ascending.
	// The ordering is deterministic so boundary pages never overlap or
	// skip rows.
	List(ctx context.Context, offset, limit int) ([]*domain.User, error)

	// Count returns the total number of users.
	Count(ctx context.Context) (int64, error)

	// WithTx returns a new UserStore instance that uses the provided
	// transaction. The transaction is created and managed by the caller.
	WithTx(tx *sql.Tx) UserStore
}
