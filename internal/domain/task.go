package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Task validation errors. All wrap ErrValidation so callers can match the
// category without naming each field.
var (
	ErrEmptyTaskID        = fmt.Errorf("%w: task ID cannot be empty", ErrValidation)
	ErrEmptyTaskOwner     = fmt.Errorf("%w: task owner cannot be empty", ErrValidation)
	ErrEmptyTitle         = fmt.Errorf("%w: title cannot be empty", ErrValidation)
	ErrTitleTooLong       = fmt.Errorf("%w: title must be at most 100 characters long", ErrValidation)
	ErrEmptyDescription   = fmt.Errorf("%w: description cannot be empty", ErrValidation)
	ErrDescriptionTooLong = fmt.Errorf("%w: description must be at most 500 characters long", ErrValidation)
)

// Title and description length bounds.
const (
	MaxTitleLength       = 100
	MaxDescriptionLength = 500
)

// TaskStatus represents the lifecycle state of a task.
// The numeric values are part of the wire format.
type TaskStatus int

// Known task statuses.
const (
	TaskStatusOngoing  TaskStatus = 0
	TaskStatusStopped  TaskStatus = 1
	TaskStatusFinished TaskStatus = 2
)

// IsValid reports whether the status is one of the known values.
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusOngoing, TaskStatusStopped, TaskStatusFinished:
		return true
	}
	return false
}

// String returns the human-readable name of the status.
func (s TaskStatus) String() string {
	switch s {
	case TaskStatusOngoing:
		return "Ongoing"
	case TaskStatusStopped:
		return "Stopped"
	case TaskStatusFinished:
		return "Finished"
	default:
		return "Unknown"
	}
}

// Task represents a single unit of work owned by exactly one user.
// UserID is immutable after creation; a task is visible and mutable only
// through its owner's identity context.
type Task struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      TaskStatus `json:"status"`
	DueDate     time.Time  `json:"dueDate"`
	UserID      uuid.UUID  `json:"userId"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// NewTask creates a new Task owned by the given user.
// It generates a new UUID for the task ID and sets the creation/update
// timestamps. Returns an error if validation fails.
func NewTask(
	ownerID uuid.UUID,
	title, description string,
	status TaskStatus,
	dueDate time.Time,
) (*Task, error) {
	now := time.Now().UTC()
	task := &Task{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
		Status:      status,
		DueDate:     dueDate,
		UserID:      ownerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
// Returns an error if any field fails validation.
func (t *Task) Validate() error {
	if t.ID == uuid.Nil {
		return ErrEmptyTaskID
	}
	if t.UserID == uuid.Nil {
		return ErrEmptyTaskOwner
	}
	if t.Title == "" {
		return ErrEmptyTitle
	}
	if len(t.Title) > MaxTitleLength {
		return ErrTitleTooLong
	}
	if t.Description == "" {
		return ErrEmptyDescription
	}
	if len(t.Description) > MaxDescriptionLength {
		return ErrDescriptionTooLong
	}
	if !t.Status.IsValid() {
		return ErrInvalidStatus
	}
	return nil
}
