package store

import (
	"context"

	"github.com/phrazzld/taskboard-api/internal/domain"
)

// TaskStore defines the interface for task data persistence. All operations
// except Create are owner-scoped: a task owned by another user is treated
// exactly like a task that does not exist.
type TaskStore interface {
	// Create saves a new task to the store and assigns its ID.
	// Returns validation errors from the domain Task if data is invalid.
	Create(ctx context.Context, task *domain.Task) error

	// ListByOwner retrieves all tasks owned by the given user, sorted by
	// status (as plain text) then by the manual order field, both ascending.
	ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Task, error)

	// Update replaces all mutable fields (title, description, status, order)
	// of the task identified by task.ID, scoped to task.UserID.
	// Returns ErrTaskNotFound if no task with that ID is owned by the user.
	// Concurrent updates are not reconciled; the last write wins.
	Update(ctx context.Context, task *domain.Task) error

	// Delete removes the task identified by id, scoped to ownerID.
	// Returns ErrTaskNotFound if no task with that ID is owned by the user.
	Delete(ctx context.Context, ownerID, id int64) error
}
