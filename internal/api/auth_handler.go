package api

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/taskmgr-api/internal/api/shared"
	"github.com/phrazzld/taskmgr-api/internal/domain"
	"github.com/phrazzld/taskmgr-api/internal/service/auth"
	"github.com/phrazzld/taskmgr-api/internal/store"
)

// AuthHandler handles registration and login.
type AuthHandler struct {
	userStore  store.UserStore
	jwtService auth.JWTService
	verifier   auth.PasswordVerifier
	validator  *validator.Validate
	logger     *slog.Logger
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(
	userStore store.UserStore,
	jwtService auth.JWTService,
	verifier auth.PasswordVerifier,
	logger *slog.Logger,
) *AuthHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthHandler{
		userStore:  userStore,
		jwtService: jwtService,
		verifier:   verifier,
		validator:  validator.New(),
		logger:     logger.With(slog.String("component", "auth_handler")),
	}
}

// Register handles POST /register.
// Creates a new user and responds 201 with a signed token, its expiry and
// the created account, the same shape as a successful login. The username
// must be unique; a taken name fails with 400.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid registration details")
		return
	}

	user, err := domain.NewUser(req.UserName, req.PassWord)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.userStore.Create(r.Context(), user); err != nil {
		if store.IsDuplicateError(err) {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Username already exists")
			return
		}
		shared.RespondWithInternalError(w, r, err)
		return
	}

	token, expires, err := h.jwtService.GenerateToken(r.Context(), user.ID)
	if err != nil {
		shared.RespondWithInternalError(w, r, err)
		return
	}

	h.logger.Info("user registered",
		slog.String("user_id", user.ID.String()),
		slog.String("user_name", user.UserName))

	w.Header().Set("Location", "/login")
	shared.RespondWithJSON(w, r, http.StatusCreated, AuthResponse{
		Token:   token,
		Expires: expires,
		User: UserInfo{
			ID:        user.ID,
			UserName:  user.UserName,
			CreatedAt: user.CreatedAt,
		},
	})
}

// Login handles POST /login.
// Verifies the credentials and responds with a signed token. An unknown
// username and a wrong password produce the identical 401 response so the
// two cases cannot be told apart.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	user, err := h.userStore.GetByUserName(r.Context(), req.UserName)
	if err != nil {
		if store.IsNotFoundError(err) {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid username or password")
			return
		}
		shared.RespondWithInternalError(w, r, err)
		return
	}

	if err := h.verifier.Compare(user.HashedPassword, req.PassWord); err != nil {
		h.logger.Debug("password mismatch", slog.String("user_name", req.UserName))
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	token, expires, err := h.jwtService.GenerateToken(r.Context(), user.ID)
	if err != nil {
		shared.RespondWithInternalError(w, r, err)
		return
	}

	h.logger.Info("user logged in", slog.String("user_id", user.ID.String()))

	shared.RespondWithJSON(w, r, http.StatusOK, AuthResponse{
		Token:   token,
		Expires: expires,
		User: UserInfo{
			ID:        user.ID,
			UserName:  user.UserName,
			CreatedAt: user.CreatedAt,
		},
	})
}
