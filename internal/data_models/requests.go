package dto

import "time"

// Request bodies. Every authenticated request carries the caller's
// external identity id in the body, matching the web client.

type SyncUserRequest struct {
	ExternalID  string  `json:"external_id"`
	Email       string  `json:"email"`
	DisplayName *string `json:"display_name"`
	PhotoURL    *string `json:"photo_url"`
}

type ListTasksRequest struct {
	ExternalID string `json:"external_id"`
}

type GenerateTasksRequest struct {
	Topic      string `json:"topic"`
	ExternalID string `json:"external_id"`
}

type CreateTaskRequest struct {
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Priority    *string    `json:"priority"`
	DueDate     *time.Time `json:"due_date"`
	CategoryID  *string    `json:"category_id"`
	ExternalID  string     `json:"external_id"`
}

type UpdateTaskRequest struct {
	ExternalID  string  `json:"external_id"`
	IsCompleted *bool   `json:"is_completed"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Priority    *string `json:"priority"`
}

type DeleteTaskRequest struct {
	ExternalID string `json:"external_id"`
}

type DeleteAllTasksRequest struct {
	ExternalID string `json:"external_id"`
}

type CreateCategoryRequest struct {
	Name       string `json:"name"`
	Color      string `json:"color"`
	ExternalID string `json:"external_id"`
}

type ListCategoriesRequest struct {
	ExternalID string `json:"external_id"`
}
