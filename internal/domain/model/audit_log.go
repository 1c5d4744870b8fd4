package model

import "time"

// AuditAction is the kind of operator action recorded locally.
type AuditAction string

const (
	AuditActionUpdateOrderStatus AuditAction = "UPDATE_ORDER_STATUS"
	AuditActionCancelOrder       AuditAction = "CANCEL_ORDER"
	AuditActionAutoRefund        AuditAction = "AUTO_REFUND"
	AuditActionManualRefund      AuditAction = "MANUAL_REFUND"
	AuditActionReconcileRefund   AuditAction = "RECONCILE_REFUND"
)

type AuditResourceType string

const (
	AuditResourceOrder AuditResourceType = "order"
)

// AuditLog is the console's own trail of who did what to which order.
// The backend history is authoritative; this records the console's side.
type AuditLog struct {
	ID int64 `gorm:"primaryKey;autoIncrement" json:"id"`

	// EventID ties the row to the published lifecycle event.
	EventID string `gorm:"type:varchar(36);not null;uniqueIndex" json:"event_id"`

	ActorID string `gorm:"type:varchar(64);not null;index" json:"actor_id"`

	Action AuditAction `gorm:"type:varchar(50);not null;index" json:"action"`

	ResourceType AuditResourceType `gorm:"type:varchar(50);not null;index" json:"resource_type"`

	ResourceID string `gorm:"type:varchar(64);not null;index" json:"resource_id"`

	OrderCode string `gorm:"type:varchar(64);index" json:"order_code"`

	BeforeJSON string `gorm:"type:text" json:"before_json"`

	AfterJSON string `gorm:"type:text" json:"after_json"`

	CreatedAt time.Time `gorm:"not null;index" json:"created_at"`
}
