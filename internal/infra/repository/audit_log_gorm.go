package repository

import (
	"context"

	"orderconsole/internal/domain/model"
	repo "orderconsole/internal/repository"

	"gorm.io/gorm"
)

const (
	auditDefaultLimit = 50
	auditMaxLimit     = 200
)

type auditLogGormRepository struct {
	db *gorm.DB
}

func NewAuditLogGormRepository(db *gorm.DB) repo.AuditLogRepository {
	return &auditLogGormRepository{db: db}
}

// Create appends one row. Rows are never updated; event_id is unique.
func (r *auditLogGormRepository) Create(ctx context.Context, entry model.AuditLog) error {
	return r.db.WithContext(ctx).Create(&entry).Error
}

func (r *auditLogGormRepository) List(ctx context.Context, f repo.AuditLogFilter) ([]model.AuditLog, error) {
	logs := make([]model.AuditLog, 0)
	err := r.db.WithContext(ctx).
		Scopes(auditMatching(f), newestFirst, auditPage(f.Limit, f.Offset)).
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}

// auditMatching turns the set filter fields into WHERE clauses. Nil fields match everything.
func auditMatching(f repo.AuditLogFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		eq := map[string]any{}
		if f.ActorID != nil {
			eq["actor_id"] = *f.ActorID
		}
		if f.Action != nil {
			eq["action"] = string(*f.Action)
		}
		if f.ResourceType != nil {
			eq["resource_type"] = string(*f.ResourceType)
		}
		if f.ResourceID != nil {
			eq["resource_id"] = *f.ResourceID
		}
		if f.OrderCode != nil {
			eq["order_code"] = *f.OrderCode
		}
		if len(eq) > 0 {
			db = db.Where(eq)
		}

		//期間
		if f.CreatedFrom != nil {
			db = db.Where("created_at >= ?", *f.CreatedFrom)
		}
		if f.CreatedTo != nil {
			db = db.Where("created_at <= ?", *f.CreatedTo)
		}
		return db
	}
}

// id breaks ties between rows written in the same instant.
func newestFirst(db *gorm.DB) *gorm.DB {
	return db.Order("created_at DESC, id DESC")
}

func auditPage(limit, offset int) func(*gorm.DB) *gorm.DB {
	if limit <= 0 || limit > auditMaxLimit {
		limit = auditDefaultLimit
	}
	if offset < 0 {
		offset = 0
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Limit(limit).Offset(offset)
	}
}
