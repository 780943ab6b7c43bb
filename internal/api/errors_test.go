package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/taskboard-api/internal/api/shared"
	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/service/auth"
	"github.com/phrazzld/taskboard-api/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"expired token", auth.ErrExpiredToken, http.StatusUnauthorized},
		{"invalid token", auth.ErrInvalidToken, http.StatusUnauthorized},
		{"unauthorized", domain.ErrUnauthorized, http.StatusUnauthorized},
		{"task not found", store.ErrTaskNotFound, http.StatusNotFound},
		{"user not found", store.ErrUserNotFound, http.StatusNotFound},
		{"duplicate username", store.ErrUsernameExists, http.StatusBadRequest},
		{"duplicate email", store.ErrEmailExists, http.StatusBadRequest},
		{"validation failure", domain.ErrValidation, http.StatusBadRequest},
		{"invalid id", domain.ErrInvalidID, http.StatusBadRequest},
		{"wrapped not found", fmt.Errorf("looking up task: %w", store.ErrTaskNotFound), http.StatusNotFound},
		{"unknown error", errors.New("disk on fire"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, MapErrorToStatusCode(tt.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil error", nil, "An unexpected error occurred"},
		{"task not found", store.ErrTaskNotFound, "Task not found"},
		{"duplicate username", store.ErrUsernameExists, "Username already registered"},
		{"duplicate email", store.ErrEmailExists, "Email already registered"},
		{"expired token", auth.ErrExpiredToken, "Token expired"},
		{"internal detail is hidden", errors.New("pq: connection refused host=10.0.0.3"), "An unexpected error occurred"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, GetSafeErrorMessage(tt.err))
		})
	}
}

func TestHandleAPIErrorSetsChallenge(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/tasks/", nil)
	HandleAPIError(rec, req, auth.ErrExpiredToken, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
	assert.Contains(t, rec.Body.String(), "Token expired")
}

func TestSanitizeValidationError(t *testing.T) {
	t.Parallel()

	err := shared.ValidateRequest(RegisterRequest{Username: "alice", Email: "not-an-email", Password: "pw123secret"})
	require.Error(t, err)

	msg := SanitizeValidationError(err)
	assert.Contains(t, msg, "Email")
	assert.NotContains(t, msg, "RegisterRequest", "struct names must not leak")
}
