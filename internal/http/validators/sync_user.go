package validators

import (
	dto "learn-tasks.com/learn-tasks/internal/data_models"
	apperrors "learn-tasks.com/learn-tasks/internal/errors"
)

func ValidateSyncUserRequest(r *dto.SyncUserRequest) error {
	if r.ExternalID == "" || r.Email == "" {
		return apperrors.ErrSyncFieldsRequired
	}
	return nil
}
