package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/phrazzld/taskboard-api/internal/api"
	apiMiddleware "github.com/phrazzld/taskboard-api/internal/api/middleware"
	"github.com/phrazzld/taskboard-api/internal/api/shared"
)

// setupRouter creates and configures the application router with all routes
// and middleware. Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	// Cross-origin access is granted to the single configured origin only.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{app.config.Server.AllowedOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	// Create API handlers using the application's services
	authHandler := api.NewAuthHandler(app.userStore, app.jwtService, app.passwordVerifier)
	taskHandler := api.NewTaskHandler(app.taskStore)
	userHandler := api.NewUserHandler()
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService, app.userStore)

	// Service banner + endpoint directory
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithJSON(w, r, http.StatusOK, map[string]interface{}{
			"message": "Task Board API is running!",
			"endpoints": map[string]string{
				"register": "POST /register",
				"token":    "POST /token",
				"tasks":    "GET|POST /tasks/, PUT|DELETE /tasks/{id}",
				"me":       "GET /users/me",
				"health":   "GET /health",
			},
		})
	})

	// Authentication endpoints (public)
	r.Post("/register", authHandler.Register)
	r.Post("/token", authHandler.Token)

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)

		r.Route("/tasks", func(r chi.Router) {
			r.Get("/", taskHandler.List)
			r.Post("/", taskHandler.Create)
			r.Put("/{id}", taskHandler.Update)
			r.Delete("/{id}", taskHandler.Delete)
		})

		r.Get("/users/me", userHandler.Me)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
