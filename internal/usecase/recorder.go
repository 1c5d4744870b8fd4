package usecase

import (
	"context"
	"encoding/json"
	"time"

	"orderconsole/internal/domain/model"
	repo "orderconsole/internal/repository"

	"go.uber.org/zap"
)

type IDGenerator interface {
	NewID() string
}

type Clock interface {
	Now() time.Time
}

// DefaultPublishTimeout bounds how long a lifecycle event may hold up the request.
const DefaultPublishTimeout = 500 * time.Millisecond

// EventPublisher ships lifecycle events to other services.
type EventPublisher interface {
	Publish(ctx context.Context, e model.LifecycleEvent) error
}

// Recorder writes the local audit row and the lifecycle event for an action the
// backend already accepted. Its failures are logged, never returned: by the time
// it runs the backend state has changed and the caller must see that success.
type Recorder struct {
	audit  repo.AuditLogRepository
	events EventPublisher
	ids    IDGenerator
	clock  Clock
	logger *zap.Logger

	publishTimeout time.Duration
}

func NewRecorder(audit repo.AuditLogRepository, events EventPublisher, ids IDGenerator, clock Clock, logger *zap.Logger) *Recorder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Recorder{audit: audit, events: events, ids: ids, clock: clock, logger: logger, publishTimeout: DefaultPublishTimeout}
}

// SetPublishTimeout overrides DefaultPublishTimeout. d <= 0 keeps the current value.
func (r *Recorder) SetPublishTimeout(d time.Duration) {
	if d > 0 {
		r.publishTimeout = d
	}
}

func (r *Recorder) Now() time.Time {
	if r == nil || r.clock == nil {
		return time.Now()
	}
	return r.clock.Now()
}

func (r *Recorder) Record(ctx context.Context, e model.LifecycleEvent, action model.AuditAction, before, after any) {
	if r == nil {
		return
	}
	e.EventID = r.ids.NewID()
	e.OccurredAt = r.Now()

	if r.audit != nil {
		if err := r.audit.Create(ctx, model.AuditLog{
			EventID:      e.EventID,
			ActorID:      e.Actor,
			Action:       action,
			ResourceType: model.AuditResourceOrder,
			ResourceID:   e.OrderID,
			OrderCode:    e.OrderCode,
			BeforeJSON:   toJSON(before),
			AfterJSON:    toJSON(after),
			CreatedAt:    e.OccurredAt,
		}); err != nil {
			r.logger.Error("failed to write audit log",
				zap.String("order_id", e.OrderID),
				zap.String("action", string(action)),
				zap.Error(err),
			)
		}
	}

	if r.events != nil {
		pubCtx, cancel := context.WithTimeout(ctx, r.publishTimeout)
		defer cancel()
		if err := r.events.Publish(pubCtx, e); err != nil {
			r.logger.Error("failed to publish lifecycle event",
				zap.String("order_code", e.OrderCode),
				zap.String("type", string(e.Type)),
				zap.Error(err),
			)
		}
	}
}

func toJSON(v any) string {
	if v == nil {
		return ""
	}
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}
