package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "learn-tasks.com/learn-tasks/internal/errors"
	model "learn-tasks.com/learn-tasks/internal/models"
	repository "learn-tasks.com/learn-tasks/internal/repositories"
)

// UserService owns the mapping between external identity ids and
// internal user records.
type UserService struct {
	users *repository.UserRepository
}

func NewUserService(users *repository.UserRepository) *UserService {
	return &UserService{users: users}
}

// Sync upserts the profile for an external identity. The created flag
// is true on first sync.
func (s *UserService) Sync(ctx context.Context, externalID, email string, displayName, photoURL *string) (*model.User, bool, error) {
	return s.users.Upsert(ctx, externalID, email, displayName, photoURL)
}

// Resolve maps an external identity id to the internal user record,
// answering not-found for ids we have never synced.
func (s *UserService) Resolve(ctx context.Context, externalID string) (*model.User, error) {
	user, err := s.users.FindByExternalID(ctx, externalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
