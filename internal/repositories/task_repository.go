package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "learn-tasks.com/learn-tasks/internal/models"
)

// TaskRepository handles persistence for tasks. Every mutation is
// scoped by the owning user id so ownership is re-checked against the
// store on each call.
type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	if task.ID == "" {
		task.ID = uuid.NewString()
	}

	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return fmt.Errorf("create task: %w", err)
	}

	return nil
}

// CreateBatch persists all tasks in a single INSERT so one generation
// request commits fully or not at all.
func (r *TaskRepository) CreateBatch(ctx context.Context, tasks []model.Task) ([]model.Task, error) {
	for i := range tasks {
		if tasks[i].ID == "" {
			tasks[i].ID = uuid.NewString()
		}
	}

	if err := r.db.WithContext(ctx).Create(&tasks).Error; err != nil {
		return nil, fmt.Errorf("create tasks: %w", err)
	}

	return tasks, nil
}

func (r *TaskRepository) ListByUser(ctx context.Context, userID string) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepository) FindOwned(ctx context.Context, userID, taskID string) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).First(&task, "id = ? AND user_id = ?", taskID, userID).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// UpdateFields applies a partial patch to the task only if it belongs
// to userID and reports whether a row was touched.
func (r *TaskRepository) UpdateFields(ctx context.Context, userID, taskID string, fields map[string]interface{}) (bool, error) {
	res := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ? AND user_id = ?", taskID, userID).
		Updates(fields)

	if res.Error != nil {
		return false, fmt.Errorf("update task: %w", res.Error)
	}

	return res.RowsAffected > 0, nil
}

func (r *TaskRepository) Delete(ctx context.Context, userID, taskID string) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", taskID, userID).
		Delete(&model.Task{})

	if res.Error != nil {
		return false, fmt.Errorf("delete task: %w", res.Error)
	}

	return res.RowsAffected > 0, nil
}

// DeleteByUser removes every task owned by userID and returns how many
// rows went away.
func (r *TaskRepository) DeleteByUser(ctx context.Context, userID string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.Task{})

	if res.Error != nil {
		return 0, fmt.Errorf("delete tasks: %w", res.Error)
	}

	return res.RowsAffected, nil
}
