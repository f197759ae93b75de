package validators

import (
	"strings"

	dto "learn-tasks.com/learn-tasks/internal/data_models"
	apperrors "learn-tasks.com/learn-tasks/internal/errors"
)

const maxTopicLength = 100

func ValidateGenerateTasksRequest(r *dto.GenerateTasksRequest) error {
	if strings.TrimSpace(r.Topic) == "" {
		return apperrors.ErrTopicRequired
	}
	if len(r.Topic) > maxTopicLength {
		return apperrors.ErrTopicTooLong
	}
	if r.ExternalID == "" {
		return apperrors.ErrAuthRequired
	}
	return nil
}
