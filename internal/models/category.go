package model

import "time"

// Category groups tasks by area; scoped to its owning user.
type Category struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	UserID    string    `gorm:"index;size:36;not null" json:"user_id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Color     string    `gorm:"size:7;default:#3B82F6" json:"color"`
	CreatedAt time.Time `json:"created_at"`
	Tasks     []Task    `gorm:"foreignKey:CategoryID" json:"-"`
}
