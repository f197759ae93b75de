package model

import "time"

// User mirrors a profile synced from the external identity provider.
type User struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	ExternalID  string    `gorm:"uniqueIndex;size:255;not null" json:"external_id"`
	Email       string    `gorm:"size:255;not null" json:"email"`
	DisplayName *string   `gorm:"size:255" json:"display_name,omitempty"`
	PhotoURL    *string   `gorm:"size:500" json:"photo_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
