package domain

import (
	"errors"
	"time"
)

// Task statuses used by convention. Neither storage nor the HTTP layer
// enforces the set; any non-empty status is accepted.
const (
	TaskStatusTodo       = "todo"
	TaskStatusInProgress = "in_progress"
	TaskStatusDone       = "done"
)

// Common task validation errors
var (
	ErrEmptyTitle      = errors.New("title cannot be empty")
	ErrEmptyStatus     = errors.New("status cannot be empty")
	ErrMissingTaskUser = errors.New("task must reference an owning user")
)

// Task is a to-do item owned by a single user. Order is a manual sort key
// within a status; lists are sorted by status then order.
type Task struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Status      string    `json:"status"`
	Order       int       `json:"order"`
	UserID      int64     `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewTask creates a new Task owned by the given user.
// The ID is left zero for the store to assign.
// Returns an error if validation fails.
func NewTask(userID int64, title, description, status string, order int) (*Task, error) {
	now := time.Now().UTC()
	task := &Task{
		Title:       title,
		Description: description,
		Status:      status,
		Order:       order,
		UserID:      userID,
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
	if t.Title == "" {
		return ErrEmptyTitle
	}

	if t.Status == "" {
		return ErrEmptyStatus
	}

	if t.UserID == 0 {
		return ErrMissingTaskUser
	}

	return nil
}
