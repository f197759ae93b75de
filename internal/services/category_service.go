package services

import (
	"context"
	"regexp"
	"strings"

	apperrors "learn-tasks.com/learn-tasks/internal/errors"
	model "learn-tasks.com/learn-tasks/internal/models"
	repository "learn-tasks.com/learn-tasks/internal/repositories"
)

const defaultCategoryColor = "#3B82F6"

var hexColor = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// CategoryService manages per-user task categories.
type CategoryService struct {
	users      *UserService
	categories *repository.CategoryRepository
}

func NewCategoryService(users *UserService, categories *repository.CategoryRepository) *CategoryService {
	return &CategoryService{
		users:      users,
		categories: categories,
	}
}

func (s *CategoryService) Create(ctx context.Context, externalID, name, color string) (*model.Category, error) {
	user, err := s.users.Resolve(ctx, externalID)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(name) == "" {
		return nil, apperrors.ErrCategoryNameRequired
	}

	if color == "" {
		color = defaultCategoryColor
	} else if !hexColor.MatchString(color) {
		return nil, apperrors.ErrInvalidColor
	}

	category := &model.Category{
		UserID: user.ID,
		Name:   name,
		Color:  color,
	}

	if err := s.categories.Create(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

func (s *CategoryService) List(ctx context.Context, externalID string) ([]model.Category, error) {
	user, err := s.users.Resolve(ctx, externalID)
	if err != nil {
		return nil, err
	}

	return s.categories.ListByUser(ctx, user.ID)
}
