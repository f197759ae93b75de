package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "learn-tasks.com/learn-tasks/internal/models"
)

// UserRepository handles persistence for users synced from the
// identity provider.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Upsert creates the user on first sync and refreshes profile fields on
// later syncs. The created flag tells the handler whether to answer 201.
func (r *UserRepository) Upsert(ctx context.Context, externalID, email string, displayName, photoURL *string) (*model.User, bool, error) {
	db := r.db.WithContext(ctx)

	var user model.User
	err := db.First(&user, "external_id = ?", externalID).Error
	switch {
	case err == nil:
		user.Email = email
		user.DisplayName = displayName
		user.PhotoURL = photoURL
		if err := db.Save(&user).Error; err != nil {
			return nil, false, fmt.Errorf("update user: %w", err)
		}
		return &user, false, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		user = model.User{
			ID:          uuid.NewString(),
			ExternalID:  externalID,
			Email:       email,
			DisplayName: displayName,
			PhotoURL:    photoURL,
		}
		if err := db.Create(&user).Error; err != nil {
			return nil, false, fmt.Errorf("create user: %w", err)
		}
		return &user, true, nil
	default:
		return nil, false, fmt.Errorf("find user: %w", err)
	}
}

func (r *UserRepository) FindByExternalID(ctx context.Context, externalID string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).First(&user, "external_id = ?", externalID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
