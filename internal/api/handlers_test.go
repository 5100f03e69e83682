package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/taskmgr-api/internal/api"
	apimiddleware "github.com/phrazzld/taskmgr-api/internal/api/middleware"
	"github.com/phrazzld/taskmgr-api/internal/config"
	"github.com/phrazzld/taskmgr-api/internal/domain"
	"github.com/phrazzld/taskmgr-api/internal/mocks"
	"github.com/phrazzld/taskmgr-api/internal/service"
	"github.com/phrazzld/taskmgr-api/internal/service/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testEnv wires the handlers, middleware and in-memory stores into a router
// the same way the server does.
type testEnv struct {
	t          *testing.T
	router     http.Handler
	userStore  *mocks.MemoryUserStore
	taskStore  *mocks.MemoryTaskStore
	jwtService auth.JWTService
	hasher     *auth.BcryptHasher
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	jwtService, err := auth.NewJWTService(config.AuthConfig{
		JWTSecret:            "handler-test-signing-key-000000000000001",
		TokenLifetimeMinutes: 60,
		Issuer:               "taskmgr-api",
		Audience:             "taskmgr-clients",
	})
	require.NoError(t, err)

	userStore := mocks.NewMemoryUserStore()
	taskStore := mocks.NewMemoryTaskStore()

	authHandler := api.NewAuthHandler(userStore, jwtService, auth.NewBcryptVerifier(), nil)
	taskHandler := api.NewTaskHandler(service.NewTaskService(taskStore, nil), userStore, nil)
	userHandler := api.NewUserHandler(service.NewUserService(nil, userStore, nil), nil)
	authMiddleware := apimiddleware.NewAuthMiddleware(jwtService)

	r := chi.NewRouter()
	r.Use(apimiddleware.Trace)
	r.Use(apimiddleware.Recover)

	r.Post("/register", authHandler.Register)
	r.Post("/login", authHandler.Login)

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

	return &testEnv{
		t:          t,
		router:     r,
		userStore:  userStore,
		taskStore:  taskStore,
		jwtService: jwtService,
		hasher:     auth.NewBcryptHasher(),
	}
}

// seedUser creates a user whose stored hash is a real bcrypt hash, so login
// against it succeeds.
func (e *testEnv) seedUser(userName, password string) *domain.User {
	e.t.Helper()

	user, err := domain.NewUser(userName, password)
	require.NoError(e.t, err)
	require.NoError(e.t, e.userStore.Create(context.Background(), user))

	hash, err := e.hasher.Hash(password)
	require.NoError(e.t, err)
	e.userStore.SetHashedPassword(user.ID, hash)

	stored, err := e.userStore.GetByID(context.Background(), user.ID)
	require.NoError(e.t, err)
	return stored
}

func (e *testEnv) seedTask(owner uuid.UUID, title string) *domain.Task {
	e.t.Helper()

	task, err := domain.NewTask(owner, title, "description", domain.TaskStatusOngoing, time.Now().Add(time.Hour))
	require.NoError(e.t, err)
	require.NoError(e.t, e.taskStore.Create(context.Background(), task))
	return task
}

func (e *testEnv) token(userID uuid.UUID) string {
	e.t.Helper()

	token, _, err := e.jwtService.GenerateToken(context.Background(), userID)
	require.NoError(e.t, err)
	return token
}

func (e *testEnv) do(method, path, token string, body any) *httptest.ResponseRecorder {
	e.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(e.t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}

func TestRegister(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	t.Run("creates the user and issues a token", func(t *testing.T) {
		rec := env.do(http.MethodPost, "/register", "", api.RegisterRequest{
			UserName: "alice",
			PassWord: "password123",
		})

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "/login", rec.Header().Get("Location"))

		resp := decodeBody[api.AuthResponse](t, rec)
		assert.NotEmpty(t, resp.Token)
		assert.True(t, resp.Expires.After(time.Now()))
		assert.Equal(t, "alice", resp.User.UserName)
		assert.NotEqual(t, uuid.Nil, resp.User.ID)

		// The token from registration works against a protected route
		// without a separate login.
		list := env.do(http.MethodGet, "/tasks", resp.Token, nil)
		assert.Equal(t, http.StatusOK, list.Code)
	})

	t.Run("duplicate username", func(t *testing.T) {
		rec := env.do(http.MethodPost, "/register", "", api.RegisterRequest{
			UserName: "alice",
			PassWord: "password123",
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Username already exists", rec.Body.String())
	})

	t.Run("short password", func(t *testing.T) {
		rec := env.do(http.MethodPost, "/register", "", api.RegisterRequest{
			UserName: "bob",
			PassWord: "short",
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewBufferString("{not json"))
		rec := httptest.NewRecorder()
		env.router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestLogin(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	env.seedUser("alice", "password123")

	t.Run("valid credentials", func(t *testing.T) {
		rec := env.do(http.MethodPost, "/login", "", api.LoginRequest{
			UserName: "alice",
			PassWord: "password123",
		})

		require.Equal(t, http.StatusOK, rec.Code)

		resp := decodeBody[api.AuthResponse](t, rec)
		assert.NotEmpty(t, resp.Token)
		assert.True(t, resp.Expires.After(time.Now()))
		assert.Equal(t, "alice", resp.User.UserName)

		// The issued token works against a protected route.
		list := env.do(http.MethodGet, "/tasks", resp.Token, nil)
		assert.Equal(t, http.StatusOK, list.Code)
	})

	t.Run("wrong password", func(t *testing.T) {
		rec := env.do(http.MethodPost, "/login", "", api.LoginRequest{
			UserName: "alice",
			PassWord: "password124",
		})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Invalid username or password", rec.Body.String())
	})

	t.Run("unknown username is indistinguishable", func(t *testing.T) {
		rec := env.do(http.MethodPost, "/login", "", api.LoginRequest{
			UserName: "nobody",
			PassWord: "password123",
		})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Invalid username or password", rec.Body.String())
	})
}

func TestAuthRequired(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	t.Run("missing header", func(t *testing.T) {
		rec := env.do(http.MethodGet, "/tasks", "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Authorization header required", rec.Body.String())
	})

	t.Run("garbage token", func(t *testing.T) {
		rec := env.do(http.MethodGet, "/tasks", "not-a-token", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Invalid token", rec.Body.String())
	})
}

func TestTaskCreateAndGet(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	alice := env.seedUser("alice", "password123")
	token := env.token(alice.ID)

	rec := env.do(http.MethodPost, "/tasks", token, api.CreateTaskRequest{
		Title:       "Write report",
		Description: "Quarterly numbers",
		Status:      domain.TaskStatusOngoing,
		DueDate:     time.Now().Add(24 * time.Hour),
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	created := decodeBody[api.TaskResponse](t, rec)
	assert.Equal(t, "Write report", created.Title)
	assert.Equal(t, alice.ID, created.UserID)
	assert.Equal(t, fmt.Sprintf("/tasks/%s", created.ID), rec.Header().Get("Location"))
	require.NotNil(t, created.User)
	assert.Equal(t, "alice", created.User.UserName)

	got := env.do(http.MethodGet, "/tasks/"+created.ID.String(), token, nil)
	require.Equal(t, http.StatusOK, got.Code)

	fetched := decodeBody[api.TaskResponse](t, got)
	assert.Equal(t, created.ID, fetched.ID)
}

func TestTaskCreateValidation(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	alice := env.seedUser("alice", "password123")
	token := env.token(alice.ID)

	rec := env.do(http.MethodPost, "/tasks", token, api.CreateTaskRequest{
		Title:       "",
		Description: "Quarterly numbers",
		Status:      domain.TaskStatusOngoing,
		DueDate:     time.Now().Add(24 * time.Hour),
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTaskGetNotFound(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	alice := env.seedUser("alice", "password123")
	token := env.token(alice.ID)

	t.Run("missing task", func(t *testing.T) {
		rec := env.do(http.MethodGet, "/tasks/"+uuid.NewString(), token, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "No Task Found", rec.Body.String())
	})

	t.Run("another user's task looks identical to missing", func(t *testing.T) {
		bob := env.seedUser("bob", "password123")
		bobsTask := env.seedTask(bob.ID, "bobs secret")

		rec := env.do(http.MethodGet, "/tasks/"+bobsTask.ID.String(), token, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "No Task Found", rec.Body.String())
	})

	t.Run("invalid id", func(t *testing.T) {
		rec := env.do(http.MethodGet, "/tasks/not-a-uuid", token, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestTaskUpdate(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	alice := env.seedUser("alice", "password123")
	bob := env.seedUser("bob", "password123")
	token := env.token(alice.ID)

	task := env.seedTask(alice.ID, "before")
	update := api.UpdateTaskRequest{
		Title:       "after",
		Description: "updated description",
		Status:      domain.TaskStatusFinished,
		DueDate:     time.Now().Add(48 * time.Hour),
	}

	t.Run("owner can update", func(t *testing.T) {
		rec := env.do(http.MethodPut, "/tasks/"+task.ID.String(), token, update)
		require.Equal(t, http.StatusOK, rec.Code)

		updated := decodeBody[api.TaskResponse](t, rec)
		assert.Equal(t, "after", updated.Title)
		assert.Equal(t, domain.TaskStatusFinished, updated.Status)
	})

	t.Run("foreign task responds not found", func(t *testing.T) {
		bobsTask := env.seedTask(bob.ID, "bobs task")

		rec := env.do(http.MethodPut, "/tasks/"+bobsTask.ID.String(), token, update)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Task not found", rec.Body.String())

		stored, err := env.taskStore.GetByID(context.Background(), bobsTask.ID)
		require.NoError(t, err)
		assert.Equal(t, "bobs task", stored.Title)
	})

	t.Run("missing task", func(t *testing.T) {
		rec := env.do(http.MethodPut, "/tasks/"+uuid.NewString(), token, update)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Task not found", rec.Body.String())
	})
}

func TestTaskDelete(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	alice := env.seedUser("alice", "password123")
	bob := env.seedUser("bob", "password123")
	token := env.token(alice.ID)

	t.Run("owner can delete", func(t *testing.T) {
		task := env.seedTask(alice.ID, "doomed")

		rec := env.do(http.MethodDelete, "/tasks/"+task.ID.String(), token, nil)
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("foreign delete responds not found and leaves the task", func(t *testing.T) {
		bobsTask := env.seedTask(bob.ID, "bobs task")

		rec := env.do(http.MethodDelete, "/tasks/"+bobsTask.ID.String(), token, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Empty(t, rec.Body.String())

		_, err := env.taskStore.GetByID(context.Background(), bobsTask.ID)
		assert.NoError(t, err)
	})

	t.Run("missing task responds not found with empty body", func(t *testing.T) {
		rec := env.do(http.MethodDelete, "/tasks/"+uuid.NewString(), token, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Empty(t, rec.Body.String())
	})
}

func TestTaskList(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	alice := env.seedUser("alice", "password123")
	bob := env.seedUser("bob", "password123")
	token := env.token(alice.ID)

	for i := 0; i < 3; i++ {
		env.seedTask(alice.ID, fmt.Sprintf("task-%d", i))
	}
	env.seedTask(bob.ID, "not-alices")

	type taskEnvelope struct {
		Data            []api.TaskResponse `json:"data"`
		Page            int                `json:"page"`
		PageSize        int                `json:"pageSize"`
		TotalCount      int64              `json:"totalCount"`
		TotalPages      int                `json:"totalPages"`
		HasNextPage     bool               `json:"hasNextPage"`
		HasPreviousPage bool               `json:"hasPreviousPage"`
	}

	t.Run("returns only the caller's tasks", func(t *testing.T) {
		rec := env.do(http.MethodGet, "/tasks", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		body := decodeBody[taskEnvelope](t, rec)
		assert.Len(t, body.Data, 3)
		assert.EqualValues(t, 3, body.TotalCount)
		assert.Equal(t, 1, body.TotalPages)
	})

	t.Run("paging parameters are honoured", func(t *testing.T) {
		rec := env.do(http.MethodGet, "/tasks?page=2&pageSize=1", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		body := decodeBody[taskEnvelope](t, rec)
		assert.Len(t, body.Data, 1)
		assert.Equal(t, 2, body.Page)
		assert.Equal(t, 3, body.TotalPages)
		assert.True(t, body.HasNextPage)
		assert.True(t, body.HasPreviousPage)
	})

	t.Run("out-of-range parameters are clamped", func(t *testing.T) {
		rec := env.do(http.MethodGet, "/tasks?page=-1&pageSize=-5", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		body := decodeBody[taskEnvelope](t, rec)
		assert.Equal(t, 1, body.Page)
		assert.Equal(t, 10, body.PageSize)
	})

	t.Run("page past the end is still 200 with empty data", func(t *testing.T) {
		rec := env.do(http.MethodGet, "/tasks?page=99", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		body := decodeBody[taskEnvelope](t, rec)
		assert.Empty(t, body.Data)
		assert.EqualValues(t, 3, body.TotalCount)
	})
}

func TestUserList(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	alice := env.seedUser("alice", "password123")
	env.seedUser("bob", "password123")
	token := env.token(alice.ID)

	type userEnvelope struct {
		Data       []api.UserSummary `json:"data"`
		TotalCount int64             `json:"totalCount"`
	}

	t.Run("lists all users", func(t *testing.T) {
		rec := env.do(http.MethodGet, "/users", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		body := decodeBody[userEnvelope](t, rec)
		assert.Len(t, body.Data, 2)
		assert.EqualValues(t, 2, body.TotalCount)
	})

	t.Run("empty page responds not found", func(t *testing.T) {
		rec := env.do(http.MethodGet, "/users?page=99", token, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "No users found", rec.Body.String())
	})
}

func TestProfile(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	alice := env.seedUser("alice", "password123")
	env.seedUser("bob", "password123")
	token := env.token(alice.ID)

	t.Run("get own profile", func(t *testing.T) {
		rec := env.do(http.MethodGet, "/users/profile", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		profile := decodeBody[api.ProfileResponse](t, rec)
		assert.Equal(t, alice.ID, profile.ID)
		assert.Equal(t, "alice", profile.UserName)
	})

	t.Run("vanished account responds not found", func(t *testing.T) {
		ghost := env.token(uuid.New())
		rec := env.do(http.MethodGet, "/users/profile", ghost, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "User not found", rec.Body.String())
	})

	t.Run("rename to a taken name", func(t *testing.T) {
		rec := env.do(http.MethodPut, "/users/profile", token, api.UpdateUserRequest{
			UserName: "bob",
			PassWord: "password123",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Username already exists", rec.Body.String())
	})

	t.Run("rename to a free name", func(t *testing.T) {
		rec := env.do(http.MethodPut, "/users/profile", token, api.UpdateUserRequest{
			UserName: "alice2",
			PassWord: "newpassword1",
		})
		require.Equal(t, http.StatusOK, rec.Code)

		profile := decodeBody[api.ProfileResponse](t, rec)
		assert.Equal(t, "alice2", profile.UserName)
	})
}
