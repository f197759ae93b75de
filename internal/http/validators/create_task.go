package validators

import (
	"strings"

	dto "learn-tasks.com/learn-tasks/internal/data_models"
	apperrors "learn-tasks.com/learn-tasks/internal/errors"
)

const maxTitleLength = 255

func ValidateCreateTaskRequest(r *dto.CreateTaskRequest) error {
	if strings.TrimSpace(r.Title) == "" {
		return apperrors.ErrTitleRequired
	}
	if len(r.Title) > maxTitleLength {
		return apperrors.ErrTitleTooLong
	}
	if r.ExternalID == "" {
		return apperrors.ErrExternalIDRequired
	}
	return nil
}
