package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"learn-tasks.com/learn-tasks/internal/constants"
	apperrors "learn-tasks.com/learn-tasks/internal/errors"
	model "learn-tasks.com/learn-tasks/internal/models"
	repository "learn-tasks.com/learn-tasks/internal/repositories"
)

// TaskService covers the manual-entry side of the task list: listing,
// creation, partial updates, and deletion, always scoped to the caller.
type TaskService struct {
	users      *UserService
	tasks      *repository.TaskRepository
	categories *repository.CategoryRepository
}

func NewTaskService(
	users *UserService,
	tasks *repository.TaskRepository,
	categories *repository.CategoryRepository,
) *TaskService {
	return &TaskService{
		users:      users,
		tasks:      tasks,
		categories: categories,
	}
}

// ManualTaskInput carries the optional fields of a manually created
// task; nil fields keep their defaults.
type ManualTaskInput struct {
	Title       string
	Description *string
	Priority    *constants.TaskPriority
	DueDate     *time.Time
	CategoryID  *string
}

func (s *TaskService) List(ctx context.Context, externalID string) ([]model.Task, error) {
	user, err := s.users.Resolve(ctx, externalID)
	if err != nil {
		return nil, err
	}

	return s.tasks.ListByUser(ctx, user.ID)
}

func (s *TaskService) CreateManual(ctx context.Context, externalID string, in ManualTaskInput) (*model.Task, error) {
	user, err := s.users.Resolve(ctx, externalID)
	if err != nil {
		return nil, err
	}

	priority := constants.PriorityMedium
	if in.Priority != nil {
		if !constants.ValidPriority(*in.Priority) {
			return nil, apperrors.ErrInvalidPriority
		}
		priority = *in.Priority
	}

	if in.CategoryID != nil {
		if _, err := s.categories.FindOwned(ctx, user.ID, *in.CategoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrCategoryNotFound
			}
			return nil, err
		}
	}

	task := &model.Task{
		Title:       in.Title,
		Description: in.Description,
		Priority:    priority,
		DueDate:     in.DueDate,
		UserID:      user.ID,
		CategoryID:  in.CategoryID,
	}

	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, err
	}

	return task, nil
}

// TaskPatch lists the fields a partial update may touch; nil fields are
// left alone.
type TaskPatch struct {
	IsCompleted *bool
	Title       *string
	Description *string
	Priority    *constants.TaskPriority
}

func (s *TaskService) Update(ctx context.Context, externalID, taskID string, patch TaskPatch) (*model.Task, error) {
	user, err := s.users.Resolve(ctx, externalID)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if patch.IsCompleted != nil {
		fields["is_completed"] = *patch.IsCompleted
	}
	if patch.Title != nil {
		if strings.TrimSpace(*patch.Title) == "" {
			return nil, apperrors.ErrTitleRequired
		}
		fields["title"] = *patch.Title
	}
	if patch.Description != nil {
		fields["description"] = *patch.Description
	}
	if patch.Priority != nil {
		if !constants.ValidPriority(*patch.Priority) {
			return nil, apperrors.ErrInvalidPriority
		}
		fields["priority"] = *patch.Priority
	}

	if len(fields) > 0 {
		ok, err := s.tasks.UpdateFields(ctx, user.ID, taskID, fields)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, apperrors.ErrTaskNotFound
		}
	}

	task, err := s.tasks.FindOwned(ctx, user.ID, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, err
	}

	return task, nil
}

func (s *TaskService) Delete(ctx context.Context, externalID, taskID string) error {
	user, err := s.users.Resolve(ctx, externalID)
	if err != nil {
		return err
	}

	ok, err := s.tasks.Delete(ctx, user.ID, taskID)
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.ErrTaskNotFound
	}

	return nil
}

// DeleteAll removes every task owned by the caller and reports the
// count.
func (s *TaskService) DeleteAll(ctx context.Context, externalID string) (int64, error) {
	user, err := s.users.Resolve(ctx, externalID)
	if err != nil {
		return 0, err
	}

	return s.tasks.DeleteByUser(ctx, user.ID)
}
