package repository

import (
	"context"

	"orderconsole/internal/domain/model"
)

// ErrNotFound is the domain sentinel, re-exported for callers that only import repository.
var ErrNotFound = model.ErrNotFound

// OrderRepository is the backend's order API. The backend owns order state and
// appends the status history itself on every mutation.
type OrderRepository interface {
	FindByID(ctx context.Context, orderID string) (model.Order, error)
	List(ctx context.Context, f model.OrderFilter) ([]model.Order, error)

	//History is keyed by the human-facing order code, not the id.
	History(ctx context.Context, orderCode string) ([]model.StatusHistoryEntry, error)

	UpdateStatus(ctx context.Context, orderID string, patch model.StatusPatch) (model.Order, error)
	Cancel(ctx context.Context, orderID string, req model.CancelRequest) (model.Order, error)
}

// RefundRepository reaches the payment providers through the backend.
type RefundRepository interface {
	AutoRefund(ctx context.Context, orderID string, operator string) (model.RefundOutcome, error)
	ManualRefund(ctx context.Context, orderID string, in model.ManualRefund) (model.RefundOutcome, error)

	//ProviderStatus only reads; it never changes the stored refund.
	ProviderStatus(ctx context.Context, orderID string) (model.RefundOutcome, error)
	UpdateStatus(ctx context.Context, orderID string, u model.RefundUpdate) (model.RefundOutcome, error)
}
