package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"learn-tasks.com/learn-tasks/internal/constants"
	apperrors "learn-tasks.com/learn-tasks/internal/errors"
	"learn-tasks.com/learn-tasks/internal/genai"
	model "learn-tasks.com/learn-tasks/internal/models"
	"learn-tasks.com/learn-tasks/internal/queue"
	repository "learn-tasks.com/learn-tasks/internal/repositories"
)

// GenerationService coordinates one generation request end to end:
// validate, resolve the user, call the generator under a capacity
// token, and persist the returned titles as a single batch.
type GenerationService struct {
	users     *UserService
	tasks     *repository.TaskRepository
	generator genai.TaskGenerator
	tokens    queue.TokenManager
}

// NewGenerationService wires the orchestrator. A nil generator means
// the upstream credential was absent at start; requests then fail with
// a configuration error rather than the process refusing to boot.
func NewGenerationService(
	users *UserService,
	tasks *repository.TaskRepository,
	generator genai.TaskGenerator,
	tokens queue.TokenManager,
) *GenerationService {
	return &GenerationService{
		users:     users,
		tasks:     tasks,
		generator: generator,
		tokens:    tokens,
	}
}

type GenerationResult struct {
	Tasks []model.Task
	Topic string
}

// Generate validates in order (topic, identity, configuration, user),
// then generates and persists. Unknown users never cost an upstream
// call.
func (s *GenerationService) Generate(ctx context.Context, externalID, topic string) (*GenerationResult, error) {
	if strings.TrimSpace(topic) == "" {
		return nil, apperrors.ErrTopicRequired
	}
	if externalID == "" {
		return nil, apperrors.ErrAuthRequired
	}
	if s.generator == nil {
		return nil, apperrors.ErrGenerationNotConfigured
	}

	user, err := s.users.Resolve(ctx, externalID)
	if err != nil {
		return nil, err
	}

	titles, err := s.generateWithToken(ctx, topic)
	if err != nil {
		return nil, err
	}

	generatedTopic := topic
	tasks := make([]model.Task, 0, len(titles))
	for _, title := range titles {
		tasks = append(tasks, model.Task{
			Title:          title,
			Priority:       constants.PriorityMedium,
			UserID:         user.ID,
			GeneratedTopic: &generatedTopic,
		})
	}

	created, err := s.tasks.CreateBatch(ctx, tasks)
	if err != nil {
		return nil, fmt.Errorf("persist generated tasks: %w", err)
	}

	return &GenerationResult{Tasks: created, Topic: topic}, nil
}

func (s *GenerationService) generateWithToken(ctx context.Context, topic string) ([]string, error) {
	if s.tokens != nil {
		if err := s.tokens.AcquireToken(ctx); err != nil {
			if errors.Is(err, queue.ErrNoTokenAvailable) {
				return nil, apperrors.ErrGenerationBusy
			}
			return nil, err
		}
		defer func() { _ = s.tokens.ReleaseToken(ctx) }()
	}

	titles, err := s.generator.GenerateTasks(ctx, topic)
	if err != nil {
		return nil, mapGenerationError(err)
	}

	return titles, nil
}

// mapGenerationError converts classified generator failures into the
// HTTP-facing taxonomy. Rate limiting keeps its retryable status; every
// other classified kind surfaces its sanitized message as an internal
// error.
func mapGenerationError(err error) error {
	var genErr *genai.Error
	if !errors.As(err, &genErr) {
		return apperrors.ErrGenerationFailed
	}

	status := http.StatusInternalServerError
	if genErr.Kind == genai.KindRateLimited {
		status = http.StatusTooManyRequests
	}

	return apperrors.New(genErr.Message, status)
}
