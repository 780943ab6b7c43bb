package mocks

import (
	"context"
	"sort"

	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/store"
)

// MockTaskStore implements store.TaskStore for testing
type MockTaskStore struct {
	// Function fields for customizable behavior
	CreateFn      func(ctx context.Context, task *domain.Task) error
	ListByOwnerFn func(ctx context.Context, ownerID int64) ([]*domain.Task, error)
	UpdateFn      func(ctx context.Context, task *domain.Task) error
	DeleteFn      func(ctx context.Context, ownerID, id int64) error

	// Data for default implementation
	Tasks      map[int64]*domain.Task
	NextTaskID int64
}

// Ensure MockTaskStore implements store.TaskStore
var _ store.TaskStore = (*MockTaskStore)(nil)

// NewMockTaskStore creates a new mock store with initialized defaults
func NewMockTaskStore() *MockTaskStore {
	return &MockTaskStore{
		Tasks:      make(map[int64]*domain.Task),
		NextTaskID: 1,
	}
}

// Create implements the TaskStore interface
func (m *MockTaskStore) Create(ctx context.Context, task *domain.Task) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, task)
	}

	task.ID = m.NextTaskID
	m.NextTaskID++
	m.Tasks[task.ID] = task
	return nil
}

// ListByOwner implements the TaskStore interface. Like the real store it
// sorts by status as plain text, then by the manual order field.
func (m *MockTaskStore) ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Task, error) {
	if m.ListByOwnerFn != nil {
		return m.ListByOwnerFn(ctx, ownerID)
	}

	tasks := make([]*domain.Task, 0)
	for _, task := range m.Tasks {
		if task.UserID == ownerID {
			tasks = append(tasks, task)
		}
	}
	sort.SliceStable(tasks, func(i, j int) bool {
		if tasks[i].Status != tasks[j].Status {
			return tasks[i].Status < tasks[j].Status
		}
		return tasks[i].Order < tasks[j].Order
	})
	return tasks, nil
}

// Update implements the TaskStore interface
func (m *MockTaskStore) Update(ctx context.Context, task *domain.Task) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, task)
	}

	existing, exists := m.Tasks[task.ID]
	if !exists || existing.UserID != task.UserID {
		return store.ErrTaskNotFound
	}
	m.Tasks[task.ID] = task
	return nil
}

// Delete implements the TaskStore interface
func (m *MockTaskStore) Delete(ctx context.Context, ownerID, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, ownerID, id)
	}

	existing, exists := m.Tasks[id]
	if !exists || existing.UserID != ownerID {
		return store.ErrTaskNotFound
	}
	delete(m.Tasks, id)
	return nil
}
