package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/taskmgr-api/internal/api/shared"
	"github.com/phrazzld/taskmgr-api/internal/domain"
	"github.com/phrazzld/taskmgr-api/internal/pagination"
	"github.com/phrazzld/taskmgr-api/internal/service"
	"github.com/phrazzld/taskmgr-api/internal/service/auth"
	"github.com/phrazzld/taskmgr-api/internal/store"
)

// TaskHandler handles the task CRUD endpoints. Every endpoint operates
// strictly on the authenticated caller's tasks.
type TaskHandler struct {
	taskService *service.TaskService
	userStore   store.UserStore
	validator   *validator.Validate
	logger      *slog.Logger
}

// NewTaskHandler creates a new TaskHandler with the given dependencies.
func NewTaskHandler(taskService *service.TaskService, userStore store.UserStore, logger *slog.Logger) *TaskHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &TaskHandler{
		taskService: taskService,
		userStore:   userStore,
		validator:   validator.New(),
		logger:      logger.With(slog.String("component", "task_handler")),
	}
}

// ownerSummary loads the caller's user record for embedding in task
// responses. A load failure degrades to a nil summary rather than failing
// the request.
func (h *TaskHandler) ownerSummary(r *http.Request, ident auth.Identity) *domain.User {
	owner, err := h.userStore.GetByID(r.Context(), ident.UserID)
	if err != nil {
		h.logger.Warn("failed to load task owner",
			slog.String("user_id", ident.UserID.String()),
			slog.String("error", err.Error()))
		return nil
	}
	return owner
}

// List handles GET /tasks.
// Responds 200 with one page of the caller's tasks wrapped in the
// pagination envelope. A page past the end yields an empty data array,
// still 200.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	ident, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	params := paginationParams(r)

	tasks, totalCount, err := h.taskService.List(r.Context(), ident, params)
	if err != nil {
		HandleServiceError(w, r, err, "No Task Found")
		return
	}

	owner := h.ownerSummary(r, ident)
	data := make([]TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		data = append(data, newTaskResponse(task, owner))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, pagination.NewEnvelope(data, params, totalCount))
}

// Get handles GET /tasks/{id}.
// Responds 404 "No Task Found" when the task does not exist or belongs to
// another user.
func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	ident, ok := identityFromRequest(w, r)
	if !ok {
		return
	}
	taskID, ok := pathID(w, r)
	if !ok {
		return
	}

	task, err := h.taskService.Get(r.Context(), ident, taskID)
	if err != nil {
		HandleServiceError(w, r, err, "No Task Found")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, newTaskResponse(task, h.ownerSummary(r, ident)))
}

// Create handles POST /tasks.
// Responds 201 with the created task and a Location header pointing at it.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	ident, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	var req CreateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid task details")
		return
	}

	task, err := h.taskService.Create(r.Context(), ident, req.Title, req.Description, req.Status, req.DueDate)
	if err != nil {
		HandleServiceError(w, r, err, "No Task Found")
		return
	}

	h.logger.Info("task created",
		slog.String("task_id", task.ID.String()),
		slog.String("user_id", ident.UserID.String()))

	w.Header().Set("Location", fmt.Sprintf("/tasks/%s", task.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, newTaskResponse(task, h.ownerSummary(r, ident)))
}

// Update handles PUT /tasks/{id}.
// Full replacement of the mutable fields. Responds 404 "Task not found"
// when the task does not exist or belongs to another user.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	ident, ok := identityFromRequest(w, r)
	if !ok {
		return
	}
	taskID, ok := pathID(w, r)
	if !ok {
		return
	}

	var req UpdateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid task details")
		return
	}

	task, err := h.taskService.Update(r.Context(), ident, taskID, req.Title, req.Description, req.Status, req.DueDate)
	if err != nil {
		HandleServiceError(w, r, err, "Task not found")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, newTaskResponse(task, h.ownerSummary(r, ident)))
}

// Delete handles DELETE /tasks/{id}.
// Responds 204 on success and a bodyless 404 when the task does not exist
// or belongs to another user.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ident, ok := identityFromRequest(w, r)
	if !ok {
		return
	}
	taskID, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.taskService.Delete(r.Context(), ident, taskID); err != nil {
		HandleServiceError(w, r, err, "")
		return
	}

	h.logger.Info("task deleted",
		slog.String("task_id", taskID.String()),
		slog.String("user_id", ident.UserID.String()))

	w.WriteHeader(http.StatusNoContent)
}
