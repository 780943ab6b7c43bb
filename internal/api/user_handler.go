package api

import (
	"net/http"

	"github.com/phrazzld/taskboard-api/internal/api/shared"
)

// UserHandler handles user profile API requests.
type UserHandler struct{}

// NewUserHandler creates a new UserHandler.
func NewUserHandler() *UserHandler {
	return &UserHandler{}
}

// Me handles GET /users/me, returning the authenticated caller's own record.
// The auth middleware has already resolved the token subject to a user, so
// there is nothing left to look up.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewUserResponse(user))
}
