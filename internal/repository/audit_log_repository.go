package repository

import (
	"context"
	"time"

	"orderconsole/internal/domain/model"
)

// AuditLogFilter narrows the local audit listing.
type AuditLogFilter struct {
	ActorID      *string
	Action       *model.AuditAction
	ResourceType *model.AuditResourceType
	ResourceID   *string
	OrderCode    *string
	CreatedFrom  *time.Time
	CreatedTo    *time.Time
	Limit        int
	Offset       int
}

type AuditLogRepository interface {
	Create(ctx context.Context, log model.AuditLog) error

	//newest first
	List(ctx context.Context, filter AuditLogFilter) ([]model.AuditLog, error)
}
