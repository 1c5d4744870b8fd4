package model

import "time"

type LifecycleEventType string

const (
	EventStatusChanged  LifecycleEventType = "order.status_changed"
	EventOrderCancelled LifecycleEventType = "order.cancelled"
	EventAutoRefund     LifecycleEventType = "refund.auto"
	EventManualRefund   LifecycleEventType = "refund.manual"
	EventRefundSynced   LifecycleEventType = "refund.reconciled"
)

// LifecycleEvent announces an operator action the backend accepted.
type LifecycleEvent struct {
	EventID    string             `json:"event_id"`
	Type       LifecycleEventType `json:"type"`
	OrderID    string             `json:"order_id"`
	OrderCode  string             `json:"order_code"`
	Actor      string             `json:"actor"`
	From       string             `json:"from,omitempty"`
	To         string             `json:"to,omitempty"`
	Reason     string             `json:"reason,omitempty"`
	OccurredAt time.Time          `json:"occurred_at"`
}
