package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/phrazzld/taskboard-api/internal/api/shared"
	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/service/auth"
	"github.com/phrazzld/taskboard-api/internal/store"
)

// AuthHandler handles registration and login API requests.
type AuthHandler struct {
	userStore        store.UserStore
	jwtService       auth.JWTService
	passwordVerifier auth.PasswordVerifier
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(
	userStore store.UserStore,
	jwtService auth.JWTService,
	passwordVerifier auth.PasswordVerifier,
) *AuthHandler {
	return &AuthHandler{
		userStore:        userStore,
		jwtService:       jwtService,
		passwordVerifier: passwordVerifier,
	}
}

// Register handles the /register endpoint.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	user, err := domain.NewUser(req.Username, req.Email, req.Password)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid user data: "+err.Error())
		return
	}

	// Hash before storing; the plaintext never leaves this handler.
	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		slog.Error("failed to hash password", "error", err, "username", req.Username)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to create user")
		return
	}
	user.HashedPassword = hashed
	user.Password = ""

	if err := h.userStore.Create(r.Context(), user); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			HandleAPIError(w, r, err, "")
			return
		}
		slog.Error("failed to create user", "error", err, "username", req.Username)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to create user")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, NewUserResponse(user))
}

// Token handles the /token endpoint. The request body is form-encoded with
// username and password fields, the OAuth2 password-grant shape.
func (h *AuthHandler) Token(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	if username == "" || password == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "username and password are required")
		return
	}

	user, err := h.userStore.GetByUsername(r.Context(), username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			respondInvalidCredentials(w, r)
			return
		}
		slog.Error("failed to get user by username", "error", err, "username", username)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to authenticate user")
		return
	}

	if !user.IsActive {
		respondInvalidCredentials(w, r)
		return
	}

	if err := h.passwordVerifier.Compare(user.HashedPassword, password); err != nil {
		respondInvalidCredentials(w, r)
		return
	}

	token, err := h.jwtService.GenerateToken(r.Context(), user.Username)
	if err != nil {
		slog.Error("failed to generate token", "error", err, "username", user.Username)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to generate authentication token")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

// respondInvalidCredentials writes the uniform 401 for login failures.
// Unknown username and wrong password are indistinguishable on purpose.
func respondInvalidCredentials(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid credentials")
}
