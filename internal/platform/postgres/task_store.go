package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/platform/logger"
	"github.com/phrazzld/taskboard-api/internal/store"
)

// TaskStore implements the store.TaskStore interface using a PostgreSQL
// database as the storage backend. All reads and mutations except Create are
// owner-scoped at the SQL level.
type TaskStore struct {
	db store.DBTX
}

// NewTaskStore creates a new PostgreSQL implementation of the TaskStore
// interface. It accepts a database connection or transaction that should be
// initialized and managed by the caller.
func NewTaskStore(db store.DBTX) *TaskStore {
	return &TaskStore{db: db}
}

// Ensure TaskStore implements store.TaskStore interface
var _ store.TaskStore = (*TaskStore)(nil)

// Create implements store.TaskStore.Create
func (s *TaskStore) Create(ctx context.Context, task *domain.Task) error {
	log := logger.FromContext(ctx)

	if err := task.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO tasks (title, description, status, sort_order, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	err := s.db.QueryRowContext(ctx, query,
		task.Title,
		nullableText(task.Description),
		task.Status,
		task.Order,
		task.UserID,
		task.CreatedAt,
		task.UpdatedAt,
	).Scan(&task.ID)

	if err != nil {
		log.Error("failed to create task",
			"error", err,
			"user_id", task.UserID)
		return fmt.Errorf("failed to create task: %w", MapError(err))
	}

	return nil
}

// ListByOwner implements store.TaskStore.ListByOwner
//
// Status is compared as plain text, so "done" < "in_progress" < "todo".
// This matches the observed behavior of the system being ported and is kept
// deliberately; see DESIGN.md.
func (s *TaskStore) ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Task, error) {
	query := `
		SELECT id, title, description, status, sort_order, user_id, created_at, updated_at
		FROM tasks
		WHERE user_id = $1
		ORDER BY status ASC, sort_order ASC
	`

	rows, err := s.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	tasks := make([]*domain.Task, 0)
	for rows.Next() {
		var task domain.Task
		var description sql.NullString
		if err := rows.Scan(
			&task.ID,
			&task.Title,
			&description,
			&task.Status,
			&task.Order,
			&task.UserID,
			&task.CreatedAt,
			&task.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		task.Description = description.String
		tasks = append(tasks, &task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tasks: %w", err)
	}

	return tasks, nil
}

// Update implements store.TaskStore.Update
//
// The WHERE clause carries both the task ID and the owner ID, so a task
// owned by another user updates zero rows and reports ErrTaskNotFound.
func (s *TaskStore) Update(ctx context.Context, task *domain.Task) error {
	log := logger.FromContext(ctx)

	if err := task.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		UPDATE tasks
		SET title = $1, description = $2, status = $3, sort_order = $4, updated_at = $5
		WHERE id = $6 AND user_id = $7
	`

	task.UpdatedAt = time.Now().UTC()

	result, err := s.db.ExecContext(ctx, query,
		task.Title,
		nullableText(task.Description),
		task.Status,
		task.Order,
		task.UpdatedAt,
		task.ID,
		task.UserID,
	)
	if err != nil {
		log.Error("failed to update task",
			"error", err,
			"task_id", task.ID,
			"user_id", task.UserID)
		return fmt.Errorf("failed to update task: %w", MapError(err))
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return store.ErrTaskNotFound
	}

	return nil
}

// Delete implements store.TaskStore.Delete
func (s *TaskStore) Delete(ctx context.Context, ownerID, id int64) error {
	log := logger.FromContext(ctx)

	query := `
		DELETE FROM tasks
		WHERE id = $1 AND user_id = $2
	`

	result, err := s.db.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		log.Error("failed to delete task",
			"error", err,
			"task_id", id,
			"user_id", ownerID)
		return fmt.Errorf("failed to delete task: %w", MapError(err))
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return store.ErrTaskNotFound
	}

	return nil
}

// nullableText converts an empty string to a SQL NULL.
func nullableText(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
