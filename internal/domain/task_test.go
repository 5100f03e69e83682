package domain_test

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/taskmgr-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTask(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	due := time.Now().Add(24 * time.Hour)

	t.Run("valid task", func(t *testing.T) {
		t.Parallel()

		task, err := domain.NewTask(owner, "Write report", "Quarterly numbers", domain.TaskStatusOngoing, due)
		require.NoError(t, err)

		assert.Equal(t, owner, task.UserID)
		assert.Equal(t, "Write report", task.Title)
		assert.Equal(t, domain.TaskStatusOngoing, task.Status)
		assert.False(t, task.CreatedAt.IsZero())
	})

	tests := []struct {
		name        string
		owner       uuid.UUID
		title       string
		description string
		status      domain.TaskStatus
		wantErr     error
	}{
		{
			name:        "missing owner",
			owner:       uuid.Nil,
			title:       "Title",
			description: "Description",
			status:      domain.TaskStatusOngoing,
			wantErr:     domain.ErrEmptyTaskOwner,
		},
		{
			name:        "empty title",
			owner:       owner,
			title:       "",
			description: "Description",
			status:      domain.TaskStatusOngoing,
			wantErr:     domain.ErrEmptyTitle,
		},
		{
			name:        "title too long",
			owner:       owner,
			title:       strings.Repeat("t", 101),
			description: "Description",
			status:      domain.TaskStatusOngoing,
			wantErr:     domain.ErrTitleTooLong,
		},
		{
			name:        "empty description",
			owner:       owner,
			title:       "Title",
			description: "",
			status:      domain.TaskStatusOngoing,
			wantErr:     domain.ErrEmptyDescription,
		},
		{
			name:        "description too long",
			owner:       owner,
			title:       "Title",
			description: strings.Repeat("d", 501),
			status:      domain.TaskStatusOngoing,
			wantErr:     domain.ErrDescriptionTooLong,
		},
		{
			name:        "unknown status",
			owner:       owner,
			title:       "Title",
			description: "Description",
			status:      domain.TaskStatus(7),
			wantErr:     domain.ErrInvalidStatus,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := domain.NewTask(tt.owner, tt.title, tt.description, tt.status, due)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestTaskStatus(t *testing.T) {
	t.Parallel()

	assert.True(t, domain.TaskStatusOngoing.IsValid())
	assert.True(t, domain.TaskStatusStopped.IsValid())
	assert.True(t, domain.TaskStatusFinished.IsValid())
	assert.False(t, domain.TaskStatus(-1).IsValid())
	assert.False(t, domain.TaskStatus(3).IsValid())

	assert.Equal(t, "Ongoing", domain.TaskStatusOngoing.String())
	assert.Equal(t, "Stopped", domain.TaskStatusStopped.String())
	assert.Equal(t, "Finished", domain.TaskStatusFinished.String())
	assert.Equal(t, "Unknown", domain.TaskStatus(42).String())
}
