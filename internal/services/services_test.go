package services

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"learn-tasks.com/learn-tasks/internal/constants"
	apperrors "learn-tasks.com/learn-tasks/internal/errors"
	"learn-tasks.com/learn-tasks/internal/genai"
	model "learn-tasks.com/learn-tasks/internal/models"
	"learn-tasks.com/learn-tasks/internal/queue"
	repository "learn-tasks.com/learn-tasks/internal/repositories"
)

// fakeGenerator is a canned TaskGenerator so no test touches the network.
type fakeGenerator struct {
	titles []string
	err    error
	calls  int
}

func (f *fakeGenerator) GenerateTasks(ctx context.Context, topic string) ([]string, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.titles, nil
}

// mockTokenManager is a simple in-memory token manager for testing
type mockTokenManager struct {
	mu     sync.Mutex
	tokens int
}

func newMockTokenManager(capacity int) *mockTokenManager {
	return &mockTokenManager{tokens: capacity}
}

func (m *mockTokenManager) AcquireToken(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.tokens <= 0 {
		return queue.ErrNoTokenAvailable
	}
	m.tokens--
	return nil
}

func (m *mockTokenManager) ReleaseToken(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.tokens++
	return nil
}

func (m *mockTokenManager) InitializeTokens(ctx context.Context, count int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.tokens = count
	return nil
}

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	err = db.AutoMigrate(&model.User{}, &model.Category{}, &model.Task{})
	if err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)

	return db
}

type testEnv struct {
	users      *UserService
	tasks      *TaskService
	generation *GenerationService
	taskRepo   *repository.TaskRepository
	catRepo    *repository.CategoryRepository
	gen        *fakeGenerator
}

func setupServices(t *testing.T, gen *fakeGenerator) *testEnv {
	db := setupTestDB(t)

	userRepo := repository.NewUserRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	catRepo := repository.NewCategoryRepository(db)

	users := NewUserService(userRepo)
	tasks := NewTaskService(users, taskRepo, catRepo)

	var generator genai.TaskGenerator
	if gen != nil {
		generator = gen
	}
	generation := NewGenerationService(users, taskRepo, generator, newMockTokenManager(5))

	return &testEnv{
		users:      users,
		tasks:      tasks,
		generation: generation,
		taskRepo:   taskRepo,
		catRepo:    catRepo,
		gen:        gen,
	}
}

func seedUser(t *testing.T, env *testEnv, externalID string) *model.User {
	user, _, err := env.users.Sync(context.Background(), externalID, externalID+"@example.com", nil, nil)
	if err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return user
}

func TestUserService_SyncCreatesThenUpdates(t *testing.T) {
	env := setupServices(t, nil)
	ctx := context.Background()

	name := "Ada"
	user, created, err := env.users.Sync(ctx, "uid-1", "ada@example.com", &name, nil)
	if err != nil {
		t.Fatalf("first sync failed: %v", err)
	}
	if !created {
		t.Error("expected first sync to create the user")
	}

	newName := "Ada L."
	updated, created, err := env.users.Sync(ctx, "uid-1", "ada.l@example.com", &newName, nil)
	if err != nil {
		t.Fatalf("second sync failed: %v", err)
	}
	if created {
		t.Error("expected second sync to update, not create")
	}
	if updated.ID != user.ID {
		t.Errorf("expected the same user row, got %s and %s", user.ID, updated.ID)
	}
	if updated.Email != "ada.l@example.com" {
		t.Errorf("expected refreshed email, got %s", updated.Email)
	}
}

func TestGenerationService_CreatesTasksFromTitles(t *testing.T) {
	gen := &fakeGenerator{titles: []string{
		"Install the toolchain",
		"Write your first program",
		"Add tests",
		"Learn the standard library",
		"Build a small project",
	}}
	env := setupServices(t, gen)
	seedUser(t, env, "uid-1")

	result, err := env.generation.Generate(context.Background(), "uid-1", "golang basics")
	if err != nil {
		t.Fatalf("generation failed: %v", err)
	}

	if len(result.Tasks) != 5 {
		t.Fatalf("expected 5 tasks, got %d", len(result.Tasks))
	}
	if result.Topic != "golang basics" {
		t.Errorf("expected topic preserved, got %q", result.Topic)
	}
	for i, task := range result.Tasks {
		if task.GeneratedTopic == nil || *task.GeneratedTopic != "golang basics" {
			t.Errorf("task %d: expected generated topic stamped", i)
		}
		if task.Priority != constants.PriorityMedium {
			t.Errorf("task %d: expected medium priority, got %s", i, task.Priority)
		}
		if task.IsCompleted {
			t.Errorf("task %d: expected not completed", i)
		}
		if task.Title != gen.titles[i] {
			t.Errorf("task %d: expected title %q, got %q", i, gen.titles[i], task.Title)
		}
	}

	stored, err := env.tasks.List(context.Background(), "uid-1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(stored) != 5 {
		t.Errorf("expected 5 persisted tasks, got %d", len(stored))
	}
}

func TestGenerationService_AcceptsFewerThanFiveTitles(t *testing.T) {
	gen := &fakeGenerator{titles: []string{"Learn one thing", "Then another"}}
	env := setupServices(t, gen)
	seedUser(t, env, "uid-1")

	result, err := env.generation.Generate(context.Background(), "uid-1", "short topic")
	if err != nil {
		t.Fatalf("generation failed: %v", err)
	}
	if len(result.Tasks) != 2 {
		t.Errorf("expected 2 tasks, got %d", len(result.Tasks))
	}
}

func TestGenerationService_UnknownUserSkipsUpstream(t *testing.T) {
	gen := &fakeGenerator{titles: []string{"anything"}}
	env := setupServices(t, gen)

	_, err := env.generation.Generate(context.Background(), "nobody", "golang")
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		t.Errorf("expected user not found, got %v", err)
	}
	if gen.calls != 0 {
		t.Errorf("expected no upstream call for unknown user, got %d", gen.calls)
	}
}

func TestGenerationService_BlankTopic(t *testing.T) {
	env := setupServices(t, &fakeGenerator{titles: []string{"x"}})
	seedUser(t, env, "uid-1")

	_, err := env.generation.Generate(context.Background(), "uid-1", "   ")
	if !errors.Is(err, apperrors.ErrTopicRequired) {
		t.Errorf("expected topic required, got %v", err)
	}
}

func TestGenerationService_NotConfigured(t *testing.T) {
	env := setupServices(t, nil)
	seedUser(t, env, "uid-1")

	_, err := env.generation.Generate(context.Background(), "uid-1", "golang")
	if !errors.Is(err, apperrors.ErrGenerationNotConfigured) {
		t.Errorf("expected not-configured error, got %v", err)
	}
}

func TestGenerationService_RateLimitedIsRetryable(t *testing.T) {
	gen := &fakeGenerator{err: &genai.Error{Kind: genai.KindRateLimited, Message: "rate limit exceeded, wait a moment and try again"}}
	env := setupServices(t, gen)
	seedUser(t, env, "uid-1")

	_, err := env.generation.Generate(context.Background(), "uid-1", "golang")

	var appErr *apperrors.Exception
	if !errors.As(err, &appErr) {
		t.Fatalf("expected classified exception, got %v", err)
	}
	if appErr.StatusCode != http.StatusTooManyRequests {
		t.Errorf("expected 429, got %d", appErr.StatusCode)
	}
	if appErr.Message != "rate limit exceeded, wait a moment and try again" {
		t.Errorf("expected sanitized upstream message, got %q", appErr.Message)
	}
}

func TestGenerationService_EmptyResultIsFailure(t *testing.T) {
	gen := &fakeGenerator{err: &genai.Error{Kind: genai.KindEmptyResult, Message: "model produced no usable tasks, please try again"}}
	env := setupServices(t, gen)
	seedUser(t, env, "uid-1")

	_, err := env.generation.Generate(context.Background(), "uid-1", "golang")

	var appErr *apperrors.Exception
	if !errors.As(err, &appErr) {
		t.Fatalf("expected classified exception, got %v", err)
	}
	if appErr.StatusCode != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", appErr.StatusCode)
	}

	tasks, _ := env.tasks.List(context.Background(), "uid-1")
	if len(tasks) != 0 {
		t.Errorf("expected no tasks persisted on failure, got %d", len(tasks))
	}
}

func TestGenerationService_TokenExhaustion(t *testing.T) {
	gen := &fakeGenerator{titles: []string{"x"}}
	env := setupServices(t, gen)
	seedUser(t, env, "uid-1")
	env.generation.tokens = newMockTokenManager(0)

	_, err := env.generation.Generate(context.Background(), "uid-1", "golang")
	if !errors.Is(err, apperrors.ErrGenerationBusy) {
		t.Errorf("expected generation busy, got %v", err)
	}
	if gen.calls != 0 {
		t.Errorf("expected no upstream call without a token, got %d", gen.calls)
	}
}

func TestTaskService_ManualDefaults(t *testing.T) {
	env := setupServices(t, nil)
	seedUser(t, env, "uid-1")

	task, err := env.tasks.CreateManual(context.Background(), "uid-1", ManualTaskInput{Title: "Read a book"})
	if err != nil {
		t.Fatalf("manual create failed: %v", err)
	}

	if task.Description != nil {
		t.Error("expected nil description")
	}
	if task.Priority != constants.PriorityMedium {
		t.Errorf("expected medium priority, got %s", task.Priority)
	}
	if task.DueDate != nil {
		t.Error("expected nil due date")
	}
	if task.GeneratedTopic != nil {
		t.Error("expected nil generated topic for manual task")
	}
}

func TestTaskService_ManualInvalidPriority(t *testing.T) {
	env := setupServices(t, nil)
	seedUser(t, env, "uid-1")

	bad := constants.TaskPriority("urgent")
	_, err := env.tasks.CreateManual(context.Background(), "uid-1", ManualTaskInput{Title: "t", Priority: &bad})
	if !errors.Is(err, apperrors.ErrInvalidPriority) {
		t.Errorf("expected invalid priority, got %v", err)
	}
}

func TestTaskService_ManualForeignCategory(t *testing.T) {
	env := setupServices(t, nil)
	owner := seedUser(t, env, "uid-1")
	seedUser(t, env, "uid-2")

	category := &model.Category{UserID: owner.ID, Name: "reading"}
	if err := env.catRepo.Create(context.Background(), category); err != nil {
		t.Fatalf("failed to create category: %v", err)
	}

	_, err := env.tasks.CreateManual(context.Background(), "uid-2", ManualTaskInput{Title: "t", CategoryID: &category.ID})
	if !errors.Is(err, apperrors.ErrCategoryNotFound) {
		t.Errorf("expected category not found for foreign category, got %v", err)
	}
}

func TestTaskService_UpdatePartialFields(t *testing.T) {
	env := setupServices(t, nil)
	seedUser(t, env, "uid-1")
	ctx := context.Background()

	task, err := env.tasks.CreateManual(ctx, "uid-1", ManualTaskInput{Title: "Original title"})
	if err != nil {
		t.Fatalf("manual create failed: %v", err)
	}

	done := true
	updated, err := env.tasks.Update(ctx, "uid-1", task.ID, TaskPatch{IsCompleted: &done})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if !updated.IsCompleted {
		t.Error("expected task marked completed")
	}
	if updated.Title != "Original title" {
		t.Errorf("expected untouched title, got %q", updated.Title)
	}
}

func TestTaskService_UpdateForeignTaskNotFound(t *testing.T) {
	env := setupServices(t, nil)
	seedUser(t, env, "uid-1")
	seedUser(t, env, "uid-2")
	ctx := context.Background()

	task, err := env.tasks.CreateManual(ctx, "uid-1", ManualTaskInput{Title: "Private"})
	if err != nil {
		t.Fatalf("manual create failed: %v", err)
	}

	done := true
	_, err = env.tasks.Update(ctx, "uid-2", task.ID, TaskPatch{IsCompleted: &done})
	if !errors.Is(err, apperrors.ErrTaskNotFound) {
		t.Errorf("expected not found for foreign task, got %v", err)
	}

	unchanged, err := env.tasks.List(ctx, "uid-1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(unchanged) != 1 || unchanged[0].IsCompleted {
		t.Error("expected the owner's task to be untouched")
	}
}

func TestTaskService_DeleteForeignTaskNotFound(t *testing.T) {
	env := setupServices(t, nil)
	seedUser(t, env, "uid-1")
	seedUser(t, env, "uid-2")
	ctx := context.Background()

	task, err := env.tasks.CreateManual(ctx, "uid-1", ManualTaskInput{Title: "Private"})
	if err != nil {
		t.Fatalf("manual create failed: %v", err)
	}

	if err := env.tasks.Delete(ctx, "uid-2", task.ID); !errors.Is(err, apperrors.ErrTaskNotFound) {
		t.Errorf("expected not found for foreign task, got %v", err)
	}

	remaining, _ := env.tasks.List(ctx, "uid-1")
	if len(remaining) != 1 {
		t.Errorf("expected the owner's task to survive, got %d tasks", len(remaining))
	}
}

func TestTaskService_DeleteAllScopedToCaller(t *testing.T) {
	env := setupServices(t, nil)
	seedUser(t, env, "uid-1")
	seedUser(t, env, "uid-2")
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := env.tasks.CreateManual(ctx, "uid-1", ManualTaskInput{Title: "mine"}); err != nil {
			t.Fatalf("manual create failed: %v", err)
		}
	}
	if _, err := env.tasks.CreateManual(ctx, "uid-2", ManualTaskInput{Title: "theirs"}); err != nil {
		t.Fatalf("manual create failed: %v", err)
	}

	count, err := env.tasks.DeleteAll(ctx, "uid-1")
	if err != nil {
		t.Fatalf("delete all failed: %v", err)
	}
	if count != 3 {
		t.Errorf("expected 3 deleted, got %d", count)
	}

	others, _ := env.tasks.List(ctx, "uid-2")
	if len(others) != 1 {
		t.Errorf("expected the other user's task to survive, got %d", len(others))
	}
}

func TestCategoryService_CreateAndList(t *testing.T) {
	env := setupServices(t, nil)
	seedUser(t, env, "uid-1")
	seedUser(t, env, "uid-2")
	ctx := context.Background()

	categories := NewCategoryService(env.users, env.catRepo)

	created, err := categories.Create(ctx, "uid-1", "reading", "")
	if err != nil {
		t.Fatalf("category create failed: %v", err)
	}
	if created.Color != "#3B82F6" {
		t.Errorf("expected default color, got %s", created.Color)
	}

	if _, err := categories.Create(ctx, "uid-1", "writing", "not-a-color"); !errors.Is(err, apperrors.ErrInvalidColor) {
		t.Errorf("expected invalid color, got %v", err)
	}

	mine, err := categories.List(ctx, "uid-1")
	if err != nil {
		t.Fatalf("category list failed: %v", err)
	}
	if len(mine) != 1 {
		t.Errorf("expected 1 category, got %d", len(mine))
	}

	theirs, err := categories.List(ctx, "uid-2")
	if err != nil {
		t.Fatalf("category list failed: %v", err)
	}
	if len(theirs) != 0 {
		t.Errorf("expected no categories for the other user, got %d", len(theirs))
	}
}

func TestTaskService_ManualWithOwnCategory(t *testing.T) {
	env := setupServices(t, nil)
	seedUser(t, env, "uid-1")
	ctx := context.Background()

	categories := NewCategoryService(env.users, env.catRepo)
	category, err := categories.Create(ctx, "uid-1", "reading", "#112233")
	if err != nil {
		t.Fatalf("category create failed: %v", err)
	}

	task, err := env.tasks.CreateManual(ctx, "uid-1", ManualTaskInput{Title: "Read a chapter", CategoryID: &category.ID})
	if err != nil {
		t.Fatalf("manual create failed: %v", err)
	}
	if task.CategoryID == nil || *task.CategoryID != category.ID {
		t.Error("expected the task linked to the category")
	}
}

func TestTaskService_ListNewestFirstRoundTrip(t *testing.T) {
	env := setupServices(t, nil)
	user := seedUser(t, env, "uid-1")
	ctx := context.Background()

	older := &model.Task{
		Title:     "older",
		Priority:  constants.PriorityMedium,
		UserID:    user.ID,
		CreatedAt: time.Now().UTC().Add(-time.Hour),
	}
	if err := env.taskRepo.Create(ctx, older); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	newer, err := env.tasks.CreateManual(ctx, "uid-1", ManualTaskInput{Title: "newer"})
	if err != nil {
		t.Fatalf("manual create failed: %v", err)
	}

	tasks, err := env.tasks.List(ctx, "uid-1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}
	if tasks[0].ID != newer.ID {
		t.Errorf("expected newest task first, got %q", tasks[0].Title)
	}
	if tasks[0].Title != "newer" || tasks[0].Priority != constants.PriorityMedium {
		t.Errorf("expected round-tripped field values, got %+v", tasks[0])
	}
}
