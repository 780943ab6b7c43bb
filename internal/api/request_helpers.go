package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/taskboard-api/internal/api/middleware"
	"github.com/phrazzld/taskboard-api/internal/domain"
)

// requireUser extracts the authenticated user placed in the context by the
// auth middleware. It writes a 401 response and returns false if the user is
// missing, which only happens when a protected handler is mounted without
// the middleware.
func requireUser(w http.ResponseWriter, r *http.Request) (*domain.User, bool) {
	user, ok := middleware.GetUser(r)
	if !ok {
		HandleAPIError(w, r, domain.ErrUnauthorized, "User not found in request context")
		return nil, false
	}
	return user, true
}

// getPathID extracts a numeric ID from the URL path parameters.
// Returns an error wrapping domain.ErrInvalidID if the parameter is missing
// or not a positive integer.
func getPathID(r *http.Request, paramName string) (int64, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return 0, domain.NewValidationError(paramName, "is required", domain.ErrValidation)
	}

	id, err := strconv.ParseInt(pathParam, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError(paramName, "has invalid format", domain.ErrInvalidID)
	}

	return id, nil
}
