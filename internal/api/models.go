package api

import (
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/taskmgr-api/internal/domain"
)

// Common request/response structures. Field names are part of the wire
// format and use camelCase throughout.

// LoginRequest defines the payload for the login endpoint.
type LoginRequest struct {
	UserName string `json:"userName" validate:"required"`
	PassWord string `json:"passWord" validate:"required"`
}

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	UserName string `json:"userName" validate:"required,min=3,max=50"`
	PassWord string `json:"passWord" validate:"required,min=8,max=100"`
}

// UpdateUserRequest defines the payload for the profile update endpoint.
// Profile updates are full replacements, so the same bounds as registration
// apply.
type UpdateUserRequest struct {
	UserName string `json:"userName" validate:"required,min=3,max=50"`
	PassWord string `json:"passWord" validate:"required,min=8,max=100"`
}

// AuthResponse defines the successful response for authentication endpoints.
type AuthResponse struct {
	Token   string    `json:"token"`
	Expires time.Time `json:"expires"`
	User    UserInfo  `json:"user"`
}

// UserInfo is the user information included in authentication responses.
type UserInfo struct {
	ID        uuid.UUID `json:"id"`
	UserName  string    `json:"userName"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserSummary is the per-user entry of the user listing.
type UserSummary struct {
	ID       uuid.UUID `json:"id"`
	UserName string    `json:"userName"`
}

// ProfileResponse is the caller's own profile.
type ProfileResponse struct {
	ID        uuid.UUID `json:"id"`
	UserName  string    `json:"userName"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreateTaskRequest defines the payload for creating a task.
type CreateTaskRequest struct {
	Title       string            `json:"title"       validate:"required,min=1,max=100"`
	Description string            `json:"description" validate:"required,min=1,max=500"`
	Status      domain.TaskStatus `json:"status"      validate:"oneof=0 1 2"`
	DueDate     time.Time         `json:"dueDate"     validate:"required"`
}

// UpdateTaskRequest defines the payload for replacing a task's fields.
type UpdateTaskRequest struct {
	Title       string            `json:"title"       validate:"required,min=1,max=100"`
	Description string            `json:"description" validate:"required,min=1,max=500"`
	Status      domain.TaskStatus `json:"status"      validate:"oneof=0 1 2"`
	DueDate     time.Time         `json:"dueDate"     validate:"required"`
}

// TaskResponse is a task as returned by the API, including a summary of
// its owner.
type TaskResponse struct {
	ID          uuid.UUID         `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Status      domain.TaskStatus `json:"status"`
	DueDate     time.Time         `json:"dueDate"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
	UserID      uuid.UUID         `json:"userId"`
	User        *UserSummary      `json:"user"`
}

// newTaskResponse builds the wire representation of a task. The owner
// summary may be nil when the owner record could not be loaded.
func newTaskResponse(task *domain.Task, owner *domain.User) TaskResponse {
	resp := TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      task.Status,
		DueDate:     task.DueDate,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
		UserID:      task.UserID,
	}
	if owner != nil {
		resp.User = &UserSummary{ID: owner.ID, UserName: owner.UserName}
	}
	return resp
}
