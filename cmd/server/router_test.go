package main

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/taskboard-api/internal/api"
	"github.com/phrazzld/taskboard-api/internal/config"
	"github.com/phrazzld/taskboard-api/internal/mocks"
	"github.com/phrazzld/taskboard-api/internal/service/auth"
)

// newTestApplication wires the router against in-memory stores and a real
// JWT service, so these tests exercise the full HTTP surface without a
// database.
func newTestApplication(t *testing.T) *application {
	t.Helper()

	jwtService := auth.NewTestJWTService(
		"test-secret-key-thats-long-enough-for-hmac",
		30*time.Minute,
		time.Now,
	)

	return &application{
		config: &config.Config{
			Server: config.ServerConfig{
				Port:          8080,
				LogLevel:      "error",
				AllowedOrigin: "http://localhost:5173",
			},
		},
		logger:           slog.New(slog.NewTextHandler(io.Discard, nil)),
		userStore:        mocks.NewMockUserStore(),
		taskStore:        mocks.NewMockTaskStore(),
		jwtService:       jwtService,
		passwordVerifier: auth.NewBcryptVerifier(),
	}
}

func doJSON(t *testing.T, handler http.Handler, method, target, token string, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func registerAndLogin(t *testing.T, handler http.Handler, username, email, password string) string {
	t.Helper()

	rec := doJSON(t, handler, http.MethodPost, "/register", "",
		`{"username":"`+username+`","email":"`+email+`","password":"`+password+`"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	form := url.Values{"username": {username}, "password": {password}}
	req := httptest.NewRequest(http.MethodPost, "/token", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	loginRec := httptest.NewRecorder()
	handler.ServeHTTP(loginRec, req)
	require.Equal(t, http.StatusOK, loginRec.Code, loginRec.Body.String())

	var tokenResp api.TokenResponse
	require.NoError(t, json.Unmarshal(loginRec.Body.Bytes(), &tokenResp))
	require.NotEmpty(t, tokenResp.AccessToken)
	require.Equal(t, "bearer", tokenResp.TokenType)
	return tokenResp.AccessToken
}

func TestRouterEndToEnd(t *testing.T) {
	app := newTestApplication(t)
	handler := app.setupRouter()

	token := registerAndLogin(t, handler, "alice", "alice@example.com", "pw123secret")

	// Unauthenticated access to protected routes is refused.
	rec := doJSON(t, handler, http.MethodGet, "/tasks/", "", "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))

	// Create two tasks and read them back in board order.
	rec = doJSON(t, handler, http.MethodPost, "/tasks/", token,
		`{"title":"ship it","status":"todo","order":1}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doJSON(t, handler, http.MethodPost, "/tasks/", token,
		`{"title":"design","status":"done"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doJSON(t, handler, http.MethodGet, "/tasks/", token, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var tasks []api.TaskResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tasks))
	require.Len(t, tasks, 2)
	assert.Equal(t, "design", tasks[0].Title, "done sorts before todo as text")
	assert.Equal(t, "ship it", tasks[1].Title)

	// Update and delete round-trip.
	rec = doJSON(t, handler, http.MethodPut, "/tasks/1", token,
		`{"title":"ship it now","status":"in_progress","order":2}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doJSON(t, handler, http.MethodDelete, "/tasks/1", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Task deleted successfully")

	// The profile endpoint reflects the token subject.
	rec = doJSON(t, handler, http.MethodGet, "/users/me", token, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var me api.UserResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &me))
	assert.Equal(t, "alice", me.Username)

	// A second user sees only their own (empty) board.
	bobToken := registerAndLogin(t, handler, "bob", "bob@example.com", "pw123secret")

	rec = doJSON(t, handler, http.MethodGet, "/tasks/", bobToken, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())

	// Bob cannot touch Alice's remaining task.
	rec = doJSON(t, handler, http.MethodDelete, "/tasks/2", bobToken, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouterPublicEndpoints(t *testing.T) {
	app := newTestApplication(t)
	handler := app.setupRouter()

	rec := doJSON(t, handler, http.MethodGet, "/", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Task Board API is running!")

	rec = doJSON(t, handler, http.MethodGet, "/health", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())

	// No user-listing endpoint exists on this surface.
	rec = doJSON(t, handler, http.MethodGet, "/debug/users", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouterDuplicateRegistration(t *testing.T) {
	app := newTestApplication(t)
	handler := app.setupRouter()

	body := `{"username":"alice","email":"alice@example.com","password":"pw123secret"}`
	rec := doJSON(t, handler, http.MethodPost, "/register", "", body)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, handler, http.MethodPost, "/register", "", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "already registered")
}
