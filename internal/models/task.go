package model

import (
	"time"

	"learn-tasks.com/learn-tasks/internal/constants"
)

// Task is a single item on a user's list. GeneratedTopic is set only
// for tasks produced by the generation pipeline; manual tasks keep it
// null. The owning user never changes after creation.
type Task struct {
	ID             string                 `gorm:"primaryKey;size:36" json:"id"`
	Title          string                 `gorm:"size:255;not null" json:"title"`
	Description    *string                `json:"description"`
	IsCompleted    bool                   `gorm:"not null;default:false" json:"is_completed"`
	Priority       constants.TaskPriority `gorm:"type:varchar(20);not null;default:medium" json:"priority"`
	DueDate        *time.Time             `json:"due_date"`
	UserID         string                 `gorm:"index;size:36;not null" json:"user_id"`
	CategoryID     *string                `gorm:"index;size:36" json:"category_id"`
	GeneratedTopic *string                `gorm:"size:255" json:"generated_topic"`
	CreatedAt      time.Time              `json:"created_at"`
	UpdatedAt      time.Time              `json:"updated_at"`
}
