package http

import (
	"time"

	"github.com/labstack/echo/v4"

	middleware "learn-tasks.com/learn-tasks/internal/http/middlewares"
)

func Register(e *echo.Echo, h *Handler, rateLimitPerMinute int) {
	e.Use(middleware.RateLimiter(rateLimitPerMinute, time.Minute))

	e.POST("/auth/sync-user", h.SyncUser)

	e.POST("/tasks", h.ListTasks)
	e.POST("/tasks/generate", h.GenerateTasks)
	e.POST("/tasks/manual", h.CreateManualTask)
	e.PUT("/tasks/:id", h.UpdateTask)
	e.DELETE("/tasks/:id", h.DeleteTask)
	e.POST("/tasks/delete-all", h.DeleteAllTasks)

	e.POST("/categories", h.CreateCategory)
	e.POST("/categories/list", h.ListCategories)
}
