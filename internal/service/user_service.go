package service

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/phrazzld/taskmgr-api/internal/domain"
	"github.com/phrazzld/taskmgr-api/internal/pagination"
	"github.com/phrazzld/taskmgr-api/internal/service/auth"
	"github.com/phrazzld/taskmgr-api/internal/store"
)

// UserService implements the user listing and profile operations.
type UserService struct {
	db        *sql.DB
	userStore store.UserStore
	logger    *slog.Logger
}

// NewUserService creates a new UserService with the given dependencies.
// The db handle is used to run the rename-uniqueness check and the profile
// write in one transaction; it may be nil in tests that stub the store and
// never rename.
func NewUserService(db *sql.DB, userStore store.UserStore, logger *slog.Logger) *UserService {
	if userStore == nil {
		panic("userStore cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &UserService{
		db:        db,
		userStore: userStore,
		logger:    logger.With(slog.String("component", "user_service")),
	}
}

// List returns one page of users (ID ascending) plus the total user count.
func (s *UserService) List(
	ctx context.Context,
	params pagination.Params,
) ([]*domain.User, int64, error) {
	totalCount, err := s.userStore.Count(ctx)
	if err != nil {
		return nil, 0, err
	}

	users, err := s.userStore.List(ctx, params.Offset(), params.Limit())
	if err != nil {
		return nil, 0, err
	}

	return users, totalCount, nil
}

// GetProfile returns the caller's own user record.
// Returns store.ErrUserNotFound if the record has vanished.
func (s *UserService) GetProfile(ctx context.Context, ident auth.Identity) (*domain.User, error) {
	return s.userStore.GetByID(ctx, ident.UserID)
}

// UpdateProfile replaces the caller's username and password.
// Renaming to a username held by another user fails with
// store.ErrUsernameExists. The uniqueness check and the write run in a
// single transaction so a concurrent rename cannot slip between them.
func (s *UserService) UpdateProfile(
	ctx context.Context,
	ident auth.Identity,
	userName, password string,
) (*domain.User, error) {
	var updated *domain.User

	apply := func(ctx context.Context, users store.UserStore) error {
		user, err := users.GetByID(ctx, ident.UserID)
		if err != nil {
			return err
		}

		if user.UserName != userName {
			existing, err := users.GetByUserName(ctx, userName)
			if err != nil && !store.IsNotFoundError(err) {
				return err
			}
			if existing != nil && existing.ID != ident.UserID {
				return store.ErrUsernameExists
			}
		}

		user.UserName = userName
		user.Password = password

		if err := users.Update(ctx, user); err != nil {
			return err
		}

		updated = user
		return nil
	}

	if s.db == nil {
		if err := apply(ctx, s.userStore); err != nil {
			return nil, err
		}
		return updated, nil
	}

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return apply(ctx, s.userStore.WithTx(tx))
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}
