package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestTask_Validate(t *testing.T) {
	notes := strings.Repeat("n", 2001)

	tests := []struct {
		name    string
		task    Task
		wantErr bool
		errMsg  string
	}{
		{
			name:    "Valid pending task should pass",
			task:    Task{ID: uuid.New(), Title: "Buy milk", Priority: PriorityHigh, Status: TaskStatusPending},
			wantErr: false,
		},
		{
			name:    "Empty title should fail",
			task:    Task{ID: uuid.New(), Title: "", Status: TaskStatusPending},
			wantErr: true,
			errMsg:  "title is required",
		},
		{
			name:    "Title over 500 characters should fail",
			task:    Task{ID: uuid.New(), Title: strings.Repeat("t", 501), Status: TaskStatusPending},
			wantErr: true,
			errMsg:  "title must be at most 500 characters",
		},
		{
			name:    "Notes over 2000 characters should fail",
			task:    Task{ID: uuid.New(), Title: "x", Notes: &notes, Status: TaskStatusPending},
			wantErr: true,
			errMsg:  "notes must be at most 2000 characters",
		},
		{
			name:    "Priority above high should fail",
			task:    Task{ID: uuid.New(), Title: "x", Priority: PriorityHigh + 1, Status: TaskStatusPending},
			wantErr: true,
			errMsg:  "priority must be between",
		},
		{
			name:    "Unknown status should fail",
			task:    Task{ID: uuid.New(), Title: "x", Status: "archived"},
			wantErr: true,
			errMsg:  "status must be pending or completed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.task.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidInput))
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTask_ToggleStatus(t *testing.T) {
	task := Task{Status: TaskStatusPending}

	task.ToggleStatus()
	assert.True(t, task.IsCompleted())

	task.ToggleStatus()
	assert.Equal(t, TaskStatusPending, task.Status)
}

func TestNotFound(t *testing.T) {
	id := uuid.New()
	err := NotFound("task", id)

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, "task "+id.String()+" not found", err.Error())
}

func TestTrimOptional(t *testing.T) {
	blank := "   "
	padded := "  hello "

	assert.Nil(t, TrimOptional(nil))
	assert.Nil(t, TrimOptional(&blank))
	assert.Equal(t, "hello", *TrimOptional(&padded))
}
