package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/taskboard-api/internal/api/shared"
	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/store"
)

// TaskHandler handles task management API requests. Every operation is
// scoped to the authenticated user resolved by the auth middleware; a task
// owned by someone else is indistinguishable from a missing one.
type TaskHandler struct {
	taskStore store.TaskStore
}

// NewTaskHandler creates a new TaskHandler with the given dependencies.
func NewTaskHandler(taskStore store.TaskStore) *TaskHandler {
	return &TaskHandler{taskStore: taskStore}
}

// List handles GET /tasks/. Tasks come back sorted by status (as plain
// text) then by the manual order field.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	tasks, err := h.taskStore.ListByOwner(r.Context(), user.ID)
	if err != nil {
		slog.Error("failed to list tasks", "error", err, "user_id", user.ID)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to list tasks")
		return
	}

	responses := make([]TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		responses = append(responses, NewTaskResponse(task))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, responses)
}

// Create handles POST /tasks/. An omitted order defaults to 0.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	req, ok := h.decodeTaskRequest(w, r)
	if !ok {
		return
	}

	task, err := domain.NewTask(user.ID, req.Title, req.Description, req.Status, req.Order)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid task data: "+err.Error())
		return
	}

	if err := h.taskStore.Create(r.Context(), task); err != nil {
		slog.Error("failed to create task", "error", err, "user_id", user.ID)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to create task")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, NewTaskResponse(task))
}

// Update handles PUT /tasks/{id}. It is a full replacement of all mutable
// fields; there are no partial-patch semantics, and concurrent updates are
// last-write-wins.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	req, ok := h.decodeTaskRequest(w, r)
	if !ok {
		return
	}

	task := &domain.Task{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Order:       req.Order,
		UserID:      user.ID,
	}

	if err := h.taskStore.Update(r.Context(), task); err != nil {
		if store.IsNotFoundError(err) {
			HandleAPIError(w, r, err, "")
			return
		}
		slog.Error("failed to update task",
			"error", err,
			"task_id", id,
			"user_id", user.ID)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to update task")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewTaskResponse(task))
}

// Delete handles DELETE /tasks/{id}.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.taskStore.Delete(r.Context(), user.ID, id); err != nil {
		if store.IsNotFoundError(err) {
			HandleAPIError(w, r, err, "")
			return
		}
		slog.Error("failed to delete task",
			"error", err,
			"task_id", id,
			"user_id", user.ID)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to delete task")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{Message: "Task deleted successfully"})
}

// decodeTaskRequest decodes and validates a task payload, writing the error
// response itself on failure.
func (h *TaskHandler) decodeTaskRequest(w http.ResponseWriter, r *http.Request) (TaskRequest, bool) {
	var req TaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return req, false
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return req, false
	}
	return req, true
}
