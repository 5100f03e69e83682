// Package mocks provides in-memory implementations of the store interfaces
// for testing services and handlers without a database.
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

// MemoryTaskStore implements store.TaskStore backed by a map.
// It is safe for concurrent use and returns copies, never internal state.
type MemoryTaskStore struct {
	mu    sync.Mutex
	tasks map[uuid.UUID]*domain.Task
}

// NewMemoryTaskStore creates an empty MemoryTaskStore.
func NewMemoryTaskStore() *MemoryTaskStore {
	return &MemoryTaskStore{tasks: make(map[uuid.UUID]*domain.Task)}
}

var _ store.TaskStore = (*MemoryTaskStore)(nil)

// Create implements the TaskStore interface.
func (s *MemoryTaskStore) Create(ctx context.Context, task *domain.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *task
	s.tasks[task.ID] = &cp
	return nil
}

// GetByID implements the TaskStore interface.
func (s *MemoryTaskStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	task, ok := s.tasks[id]
	if !ok {
		return nil, store.ErrTaskNotFound
	}
	cp := *task
	return &cp, nil
}

// Update implements the TaskStore interface. The owner is never updated.
func (s *MemoryTaskStore) Update(ctx context.Context, task *domain.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.tasks[task.ID]
	if !ok {
		return store.ErrTaskNotFound
	}
	existing.Title = task.Title
	existing.Description = task.Description
	existing.Status = task.Status
	existing.DueDate = task.DueDate
	existing.UpdatedAt = time.Now().UTC()
	return nil
}

// Delete implements the TaskStore interface.
func (s *MemoryTaskStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tasks[id]; !ok {
		return store.ErrTaskNotFound
	}
	delete(s.tasks, id)
	return nil
}

// ListByOwner implements the TaskStore interface, ordering by creation time
// descending like the real store.
func (s *MemoryTaskStore) ListByOwner(
	ctx context.Context,
	ownerID uuid.UUID,
	offset, limit int,
) ([]*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var owned []*domain.Task
	for _, task := range s.tasks {
		if task.UserID == ownerID {
			cp := *task
			owned = append(owned, &cp)
		}
	}
	sort.Slice(owned, func(i, j int) bool {
		return owned[i].CreatedAt.After(owned[j].CreatedAt)
	})

	if offset >= len(owned) {
		return []*domain.Task{}, nil
	}
	end := offset + limit
	if end > len(owned) {
		end = len(owned)
	}
	return owned[offset:end], nil
}

// CountByOwner implements the TaskStore interface.
func (s *MemoryTaskStore) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for _, task := range s.tasks {
		if task.UserID == ownerID {
			n++
		}
	}
	return n, nil
}

// WithTx implements the TaskStore interface. The in-memory store has no
// transactions, so it returns itself.
func (s *MemoryTaskStore) WithTx(tx *sql.Tx) store.TaskStore { return s }
