package api

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/taskmgr-api/internal/api/shared"
	"github.com/phrazzld/taskmgr-api/internal/pagination"
	"github.com/phrazzld/taskmgr-api/internal/service"
	"github.com/phrazzld/taskmgr-api/internal/store"
)

// UserHandler handles the user listing and profile endpoints.
type UserHandler struct {
	userService *service.UserService
	validator   *validator.Validate
	logger      *slog.Logger
}

// NewUserHandler creates a new UserHandler with the given dependencies.
func NewUserHandler(userService *service.UserService, logger *slog.Logger) *UserHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserHandler{
		userService: userService,
		validator:   validator.New(),
		logger:      logger.With(slog.String("component", "user_handler")),
	}
}

// List handles GET /users.
// Responds 200 with one page of username summaries. Unlike the task
// listing, a page that resolves to zero users responds 404 "No users
// found".
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	params := paginationParams(r)

	users, totalCount, err := h.userService.List(r.Context(), params)
	if err != nil {
		HandleServiceError(w, r, err, "No users found")
		return
	}

	if len(users) == 0 {
		shared.RespondWithError(w, r, http.StatusNotFound, "No users found")
		return
	}

	data := make([]UserSummary, 0, len(users))
	for _, user := range users {
		data = append(data, UserSummary{ID: user.ID, UserName: user.UserName})
	}

	shared.RespondWithJSON(w, r, http.StatusOK, pagination.NewEnvelope(data, params, totalCount))
}

// GetProfile handles GET /users/profile.
// Responds with the caller's own record; 404 "User not found" if it has
// vanished since the token was issued.
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	ident, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	user, err := h.userService.GetProfile(r.Context(), ident)
	if err != nil {
		HandleServiceError(w, r, err, "User not found")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ProfileResponse{
		ID:        user.ID,
		UserName:  user.UserName,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	})
}

// UpdateProfile handles PUT /users/profile.
// Replaces the caller's username and password. Renaming to a name held by
// another user fails with 400.
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	ident, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	var req UpdateUserRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid profile details")
		return
	}

	user, err := h.userService.UpdateProfile(r.Context(), ident, req.UserName, req.PassWord)
	if err != nil {
		if store.IsDuplicateError(err) {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Username already exists")
			return
		}
		HandleServiceError(w, r, err, "User not found")
		return
	}

	h.logger.Info("profile updated", slog.String("user_id", user.ID.String()))

	shared.RespondWithJSON(w, r, http.StatusOK, ProfileResponse{
		ID:        user.ID,
		UserName:  user.UserName,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	})
}
