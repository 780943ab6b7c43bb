package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/phrazzld/taskboard-api/internal/api/shared"
	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/service/auth"
	"github.com/phrazzld/taskboard-api/internal/store"
)

// AuthMiddleware provides JWT authentication for routes. It validates the
// bearer token and resolves its subject to an existing, active user; the
// resolved user is placed in the request context.
type AuthMiddleware struct {
	jwtService auth.JWTService
	userStore  store.UserStore
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(jwtService auth.JWTService, userStore store.UserStore) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		userStore:  userStore,
	}
}

// Authenticate validates JWT tokens from the Authorization header and adds
// the authenticated user to the request context for authorized requests.
// Every rejection carries a bearer challenge header so clients know to
// re-authenticate.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			respondUnauthorized(w, r, "Authorization header required")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			respondUnauthorized(w, r, "Invalid authorization format")
			return
		}

		token := parts[1]

		claims, err := m.jwtService.ValidateToken(r.Context(), token)
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrExpiredToken):
				respondUnauthorized(w, r, "Token expired")
			case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrTokenNotYetValid):
				respondUnauthorized(w, r, "Invalid token")
			default:
				slog.Error("failed to validate token", "error", err)
				shared.RespondWithError(w, r, http.StatusInternalServerError, "Authentication error")
			}
			return
		}

		// The subject must still resolve to an existing, active user.
		// A valid signature on a token for a deleted or deactivated account
		// is not a valid credential.
		user, err := m.userStore.GetByUsername(r.Context(), claims.Username)
		if err != nil {
			if errors.Is(err, store.ErrUserNotFound) {
				respondUnauthorized(w, r, "Invalid token")
				return
			}
			slog.Error("failed to resolve token subject", "error", err, "username", claims.Username)
			shared.RespondWithError(w, r, http.StatusInternalServerError, "Authentication error")
			return
		}
		if !user.IsActive {
			respondUnauthorized(w, r, "Invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), shared.UserContextKey, user)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// respondUnauthorized writes a 401 with the bearer challenge header.
func respondUnauthorized(w http.ResponseWriter, r *http.Request, message string) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	shared.RespondWithError(w, r, http.StatusUnauthorized, message)
}

// GetUser extracts the authenticated user from the request context.
// Returns the user and a boolean indicating if it was found.
func GetUser(r *http.Request) (*domain.User, bool) {
	user, ok := r.Context().Value(shared.UserContextKey).(*domain.User)
	return user, ok
}
