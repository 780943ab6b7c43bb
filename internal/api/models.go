package api

import "github.com/phrazzld/taskboard-api/internal/domain"

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=1,max=64"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// TokenResponse defines the successful response for the login endpoint,
// following the OAuth2 password-grant response shape.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// UserResponse is the public view of a user record. The password hash is
// never part of any response.
type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	IsActive bool   `json:"is_active"`
}

// NewUserResponse maps a domain user to its public representation.
func NewUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		IsActive: user.IsActive,
	}
}

// TaskRequest defines the payload for task create and update endpoints.
// Updates are full replacements: every mutable field is taken from the
// request, and an omitted order resets to 0.
//
// Status values are todo/in_progress/done by convention; the API does not
// reject other strings, matching the storage layer.
type TaskRequest struct {
	Title       string `json:"title"  validate:"required,min=1"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status" validate:"required,min=1"`
	Order       int    `json:"order"`
}

// TaskResponse is the public view of a task record.
type TaskResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Order       int    `json:"order"`
	UserID      int64  `json:"user_id"`
}

// NewTaskResponse maps a domain task to its public representation.
func NewTaskResponse(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      task.Status,
		Order:       task.Order,
		UserID:      task.UserID,
	}
}

// MessageResponse carries a human-readable confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}
