package mocks

import (
	"context"
	"database/sql"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/taskmgr-api/internal/domain"
	"github.com/phrazzld/taskmgr-api/internal/store"
)

// FakeHash marks a password as hashed by the in-memory store. Tests can
// assert that plaintext never persists.
func FakeHash(password string) string { return "hashed:" + password }

// MemoryUserStore implements store.UserStore backed by a map. Plaintext
// passwords are replaced with a marker hash on write, mirroring the real
// store's behavior.
type MemoryUserStore struct {
	mu    sync.Mutex
	users map[uuid.UUID]*domain.User
}

// NewMemoryUserStore creates an empty MemoryUserStore.
func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{users: make(map[uuid.UUID]*domain.User)}
}

var _ store.UserStore = (*MemoryUserStore)(nil)

// Create implements the UserStore interface.
func (s *MemoryUserStore) Create(ctx context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.UserName == user.UserName {
			return store.ErrUsernameExists
		}
	}
	cp := *user
	cp.HashedPassword = FakeHash(cp.Password)
	cp.Password = ""
	s.users[cp.ID] = &cp
	return nil
}

// GetByID implements the UserStore interface.
func (s *MemoryUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	cp := *user
	return &cp, nil
}

// GetByUserName implements the UserStore interface.
func (s *MemoryUserStore) GetByUserName(ctx context.Context, userName string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, user := range s.users {
		if user.UserName == userName {
			cp := *user
			return &cp, nil
		}
	}
	return nil, store.ErrUserNotFound
}

// Update implements the UserStore interface.
func (s *MemoryUserStore) Update(ctx context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.users[user.ID]
	if !ok {
		return store.ErrUserNotFound
	}
	for _, other := range s.users {
		if other.ID != user.ID && other.UserName == user.UserName {
			return store.ErrUsernameExists
		}
	}
	existing.UserName = user.UserName
	if user.Password != "" {
		existing.HashedPassword = FakeHash(user.Password)
	}
	existing.UpdatedAt = time.Now().UTC()
	return nil
}

// SetHashedPassword overwrites a stored user's password hash. Handler tests
// use this to store real bcrypt hashes for login.
func (s *MemoryUserStore) SetHashedPassword(id uuid.UUID, hash string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if user, ok := s.users[id]; ok {
		user.HashedPassword = hash
	}
}

// List implements the UserStore interface, ordering by ID ascending like
// the real store.
func (s *MemoryUserStore) List(ctx context.Context, offset, limit int) ([]*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := make([]*domain.User, 0, len(s.users))
	for _, user := range s.users {
		cp := *user
		all = append(all, &cp)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].ID.String() < all[j].ID.String()
	})

	if offset >= len(all) {
		return []*domain.User{}, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

// Count implements the UserStore interface.
func (s *MemoryUserStore) Count(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.users)), nil
}

// WithTx implements the UserStore interface. The in-memory store has no
// transactions, so it returns itself.
func (s *MemoryUserStore) WithTx(tx *sql.Tx) store.UserStore { return s }
