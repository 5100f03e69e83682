package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/taskmgr-api/internal/domain"
	"github.com/phrazzld/taskmgr-api/internal/pagination"
	"github.com/phrazzld/taskmgr-api/internal/platform/logger"
	"github.com/phrazzld/taskmgr-api/internal/service/auth"
	"github.com/phrazzld/taskmgr-api/internal/service/authz"
	"github.com/phrazzld/taskmgr-api/internal/store"
)

// TaskService implements the task operations. Every operation receives the
// caller's Identity and never observes or mutates a task the caller does
// not own: reads and writes on foreign tasks fail with authz.ErrNotOwner.
type TaskService struct {
	taskStore store.TaskStore
	logger    *slog.Logger
}

// NewTaskService creates a new TaskService with the given dependencies.
func NewTaskService(taskStore store.TaskStore, logger *slog.Logger) *TaskService {
	if taskStore == nil {
		panic("taskStore cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &TaskService{
		taskStore: taskStore,
		logger:    logger.With(slog.String("component", "task_service")),
	}
}

// List returns one page of the caller's tasks (newest first) together with
// the caller's total task count. A page beyond the available data yields an
// empty slice, not an error.
func (s *TaskService) List(
	ctx context.Context,
	ident auth.Identity,
	params pagination.Params,
) ([]*domain.Task, int64, error) {
	totalCount, err := s.taskStore.CountByOwner(ctx, ident.UserID)
	if err != nil {
		return nil, 0, err
	}

	tasks, err := s.taskStore.ListByOwner(ctx, ident.UserID, params.Offset(), params.Limit())
	if err != nil {
		return nil, 0, err
	}

	return tasks, totalCount, nil
}

// Get returns the task with the given ID if the caller owns it.
// Returns store.ErrTaskNotFound for a missing task and authz.ErrNotOwner
// for another user's task; the two are indistinguishable to the caller at
// the HTTP layer.
func (s *TaskService) Get(
	ctx context.Context,
	ident auth.Identity,
	taskID uuid.UUID,
) (*domain.Task, error) {
	task, err := s.taskStore.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if err := authz.Authorize(ident.UserID, task.UserID); err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Debug("task access denied",
			slog.String("task_id", taskID.String()),
			slog.String("caller_id", ident.UserID.String()))
		return nil, err
	}

	return task, nil
}

// Create stores a new task owned by the caller.
func (s *TaskService) Create(
	ctx context.Context,
	ident auth.Identity,
	title, description string,
	status domain.TaskStatus,
	dueDate time.Time,
) (*domain.Task, error) {
	task, err := domain.NewTask(ident.UserID, title, description, status, dueDate)
	if err != nil {
		return nil, err
	}

	if err := s.taskStore.Create(ctx, task); err != nil {
		return nil, err
	}

	return task, nil
}

// Update replaces the title, description, status and due date of the
// caller's task. The owner and creation time are immutable.
// Denial semantics match Get.
func (s *TaskService) Update(
	ctx context.Context,
	ident auth.Identity,
	taskID uuid.UUID,
	title, description string,
	status domain.TaskStatus,
	dueDate time.Time,
) (*domain.Task, error) {
	task, err := s.Get(ctx, ident, taskID)
	if err != nil {
		return nil, err
	}

	task.Title = title
	task.Description = description
	task.Status = status
	task.DueDate = dueDate

	if err := s.taskStore.Update(ctx, task); err != nil {
		return nil, err
	}

	return task, nil
}

// Delete removes the caller's task. Denial semantics match Get.
func (s *TaskService) Delete(ctx context.Context, ident auth.Identity, taskID uuid.UUID) error {
	if _, err := s.Get(ctx, ident, taskID); err != nil {
		return err
	}

	return s.taskStore.Delete(ctx, taskID)
}
