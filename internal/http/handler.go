package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"learn-tasks.com/learn-tasks/internal/constants"
	dto "learn-tasks.com/learn-tasks/internal/data_models"
	apperrors "learn-tasks.com/learn-tasks/internal/errors"
	"learn-tasks.com/learn-tasks/internal/http/validators"
	"learn-tasks.com/learn-tasks/internal/services"
)

type Handler struct {
	userService       *services.UserService
	taskService       *services.TaskService
	generationService *services.GenerationService
	categoryService   *services.CategoryService
}

func NewHandler(
	userService *services.UserService,
	taskService *services.TaskService,
	generationService *services.GenerationService,
	categoryService *services.CategoryService,
) *Handler {
	return &Handler{
		userService:       userService,
		taskService:       taskService,
		generationService: generationService,
		categoryService:   categoryService,
	}
}

// httpError converts classified service errors into HTTP errors. Anything
// unclassified is hidden behind the fallback message so storage and
// upstream details never reach the client.
func httpError(err error, fallback string) error {
	var appErr *apperrors.Exception
	if errors.As(err, &appErr) {
		return echo.NewHTTPError(appErr.StatusCode, appErr.Message)
	}
	return echo.NewHTTPError(http.StatusInternalServerError, fallback)
}

func (h *Handler) SyncUser(c echo.Context) error {
	var req dto.SyncUserRequest
	if err := c.Bind(&req); err != nil {
		return httpError(apperrors.ErrInvalidJSON, "")
	}
	if err := validators.ValidateSyncUserRequest(&req); err != nil {
		return httpError(err, "failed to sync user")
	}

	user, created, err := h.userService.Sync(c.Request().Context(), req.ExternalID, req.Email, req.DisplayName, req.PhotoURL)
	if err != nil {
		return httpError(err, "failed to sync user")
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	return c.JSON(status, user)
}

func (h *Handler) ListTasks(c echo.Context) error {
	var req dto.ListTasksRequest
	if err := c.Bind(&req); err != nil {
		return httpError(apperrors.ErrInvalidJSON, "")
	}
	if req.ExternalID == "" {
		return httpError(apperrors.ErrAuthRequired, "")
	}

	tasks, err := h.taskService.List(c.Request().Context(), req.ExternalID)
	if err != nil {
		return httpError(err, "failed to list tasks")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"tasks": tasks,
		"count": len(tasks),
	})
}

func (h *Handler) GenerateTasks(c echo.Context) error {
	var req dto.GenerateTasksRequest
	if err := c.Bind(&req); err != nil {
		return httpError(apperrors.ErrInvalidJSON, "")
	}
	if err := validators.ValidateGenerateTasksRequest(&req); err != nil {
		return httpError(err, "failed to generate tasks")
	}

	result, err := h.generationService.Generate(c.Request().Context(), req.ExternalID, req.Topic)
	if err != nil {
		return httpError(err, "failed to generate tasks")
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message": fmt.Sprintf("Generated %d tasks for %q", len(result.Tasks), result.Topic),
		"tasks":   result.Tasks,
		"count":   len(result.Tasks),
		"topic":   result.Topic,
	})
}

func (h *Handler) CreateManualTask(c echo.Context) error {
	var req dto.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return httpError(apperrors.ErrInvalidJSON, "")
	}
	if err := validators.ValidateCreateTaskRequest(&req); err != nil {
		return httpError(err, "failed to create task")
	}

	input := services.ManualTaskInput{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		CategoryID:  req.CategoryID,
	}
	if req.Priority != nil {
		p := constants.TaskPriority(*req.Priority)
		input.Priority = &p
	}

	task, err := h.taskService.CreateManual(c.Request().Context(), req.ExternalID, input)
	if err != nil {
		return httpError(err, "failed to create task")
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "task created successfully",
		"task":    task,
	})
}

func (h *Handler) UpdateTask(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return httpError(apperrors.ErrTaskIDRequired, "")
	}

	var req dto.UpdateTaskRequest
	if err := c.Bind(&req); err != nil {
		return httpError(apperrors.ErrInvalidJSON, "")
	}
	if req.ExternalID == "" {
		return httpError(apperrors.ErrAuthRequired, "")
	}

	patch := services.TaskPatch{
		IsCompleted: req.IsCompleted,
		Title:       req.Title,
		Description: req.Description,
	}
	if req.Priority != nil {
		p := constants.TaskPriority(*req.Priority)
		patch.Priority = &p
	}

	task, err := h.taskService.Update(c.Request().Context(), req.ExternalID, id, patch)
	if err != nil {
		return httpError(err, "failed to update task")
	}

	return c.JSON(http.StatusOK, task)
}

func (h *Handler) DeleteTask(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return httpError(apperrors.ErrTaskIDRequired, "")
	}

	var req dto.DeleteTaskRequest
	if err := c.Bind(&req); err != nil {
		return httpError(apperrors.ErrInvalidJSON, "")
	}
	if req.ExternalID == "" {
		return httpError(apperrors.ErrAuthRequired, "")
	}

	if err := h.taskService.Delete(c.Request().Context(), req.ExternalID, id); err != nil {
		return httpError(err, "failed to delete task")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "task deleted successfully",
	})
}

func (h *Handler) DeleteAllTasks(c echo.Context) error {
	var req dto.DeleteAllTasksRequest
	if err := c.Bind(&req); err != nil {
		return httpError(apperrors.ErrInvalidJSON, "")
	}
	if req.ExternalID == "" {
		return httpError(apperrors.ErrAuthRequired, "")
	}

	count, err := h.taskService.DeleteAll(c.Request().Context(), req.ExternalID)
	if err != nil {
		return httpError(err, "failed to delete tasks")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message":       fmt.Sprintf("deleted %d tasks", count),
		"deleted_count": count,
	})
}

func (h *Handler) CreateCategory(c echo.Context) error {
	var req dto.CreateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return httpError(apperrors.ErrInvalidJSON, "")
	}
	if req.ExternalID == "" {
		return httpError(apperrors.ErrAuthRequired, "")
	}

	category, err := h.categoryService.Create(c.Request().Context(), req.ExternalID, req.Name, req.Color)
	if err != nil {
		return httpError(err, "failed to create category")
	}

	return c.JSON(http.StatusCreated, category)
}

func (h *Handler) ListCategories(c echo.Context) error {
	var req dto.ListCategoriesRequest
	if err := c.Bind(&req); err != nil {
		return httpError(apperrors.ErrInvalidJSON, "")
	}
	if req.ExternalID == "" {
		return httpError(apperrors.ErrAuthRequired, "")
	}

	categories, err := h.categoryService.List(c.Request().Context(), req.ExternalID)
	if err != nil {
		return httpError(err, "failed to list categories")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"categories": categories,
		"count":      len(categories),
	})
}
