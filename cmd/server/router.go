package main

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/taskmgr-api/internal/api"
	apimiddleware "github.com/phrazzld/taskmgr-api/internal/api/middleware"
	"github.com/phrazzld/taskmgr-api/internal/api/shared"
)

// fallbackAllowedMethods is reported in 405 responses when the router did
// not record the allowed set for the matched path.
var fallbackAllowedMethods = []string{
	http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete,
}

// setupRouter creates and configures the application router with all routes
// and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(apimiddleware.Trace)
	r.Use(apimiddleware.Recover)

	authHandler := api.NewAuthHandler(
		app.userStore,
		app.jwtService,
		app.passwordVerifier,
		app.logger,
	)
	taskHandler := api.NewTaskHandler(app.taskService, app.userStore, app.logger)
	userHandler := api.NewUserHandler(app.userService, app.logger)
	authMiddleware := apimiddleware.NewAuthMiddleware(app.jwtService)

	r.MethodNotAllowed(methodNotAllowedHandler)

	// Authentication endpoints (public)
	r.Post("/register", authHandler.Register)
	r.Post("/login", authHandler.Login)

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)

		r.Get("/tasks", taskHandler.List)
		r.Post("/tasks", taskHandler.Create)
		r.Get("/tasks/{id}", taskHandler.Get)
		r.Put("/tasks/{id}", taskHandler.Update)
		r.Delete("/tasks/{id}", taskHandler.Delete)

		r.Get("/users", userHandler.List)
		r.Get("/users/profile", userHandler.GetProfile)
		r.Put("/users/profile", userHandler.UpdateProfile)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}

// methodNotAllowedHandler responds with a structured JSON body listing the
// methods the matched path supports. The router sets the Allow header
// before invoking the handler.
func methodNotAllowedHandler(w http.ResponseWriter, r *http.Request) {
	allowed := fallbackAllowedMethods
	if header := w.Header().Get("Allow"); header != "" {
		allowed = strings.Split(header, ", ")
	}

	shared.RespondWithJSON(w, r, http.StatusMethodNotAllowed, shared.MethodNotAllowedResponse{
		Error:          "Method Not Allowed",
		Message:        "The " + r.Method + " method is not supported for this route.",
		AllowedMethods: allowed,
		Path:           r.URL.Path,
		StatusCode:     http.StatusMethodNotAllowed,
	})
}
