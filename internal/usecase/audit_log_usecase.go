package usecase

import (
	"context"

	"orderconsole/internal/domain/model"
	repo "orderconsole/internal/repository"
)

type AuditLogUsecase struct {
	auditRepo repo.AuditLogRepository
}

func NewAuditLogUsecase(auditRepo repo.AuditLogRepository) *AuditLogUsecase {
	return &AuditLogUsecase{auditRepo: auditRepo}
}

const (
	defaultAuditLimit = 50
	maxAuditLimit     = 200
)

func (u *AuditLogUsecase) List(ctx context.Context, f repo.AuditLogFilter) ([]model.AuditLog, error) {
	if f.Limit == 0 {
		f.Limit = defaultAuditLimit
	}
	if f.Limit < 0 || f.Limit > maxAuditLimit {
		return nil, model.NewValidationError("limit", "limit must be between 1 and %d", maxAuditLimit)
	}
	if f.Offset < 0 {
		return nil, model.NewValidationError("offset", "invalid offset")
	}
	if f.CreatedFrom != nil && f.CreatedTo != nil && f.CreatedTo.Before(*f.CreatedFrom) {
		return nil, model.NewValidationError("to", "to must not be before from")
	}
	logs, err := u.auditRepo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	if logs == nil {
		logs = []model.AuditLog{}
	}
	return logs, nil
}
