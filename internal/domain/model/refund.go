package model

import (
	"strings"
	"time"
)

// RefundAction is an operator decision in the manual refund flow.
type RefundAction string

const (
	RefundActionApprove   RefundAction = "approve"
	RefundActionReject    RefundAction = "reject"
	RefundActionCompleted RefundAction = "completed"
)

func ParseRefundAction(v string) (RefundAction, error) {
	switch a := RefundAction(strings.TrimSpace(v)); a {
	case RefundActionApprove, RefundActionReject, RefundActionCompleted:
		return a, nil
	default:
		return "", NewValidationError("action", "unknown refund action %q", v)
	}
}

// ManualRefund is the payload of one manual refund step.
type ManualRefund struct {
	Action        RefundAction `json:"action"`
	Note          string       `json:"note,omitempty"`
	Method        string       `json:"method,omitempty"`
	TransactionID string       `json:"transactionId,omitempty"`
	UpdatedBy     string       `json:"updatedBy"`
}

// Validate checks the input alone, before any order state is looked at.
func (m *ManualRefund) Validate() error {
	a, err := ParseRefundAction(string(m.Action))
	if err != nil {
		return err
	}
	m.Action = a
	m.Note = strings.TrimSpace(m.Note)
	m.Method = strings.TrimSpace(m.Method)
	m.TransactionID = strings.TrimSpace(m.TransactionID)

	switch a {
	case RefundActionReject:
		if m.Note == "" {
			return NewValidationError("note", "a rejection reason is required")
		}
	case RefundActionCompleted:
		if m.Method == "" {
			return NewValidationError("method", "refund method is required to complete a refund")
		}
		if m.TransactionID == "" {
			return NewValidationError("transactionId", "transaction id is required to complete a refund")
		}
	}
	return nil
}

// ApplyManualRefund returns the refund status an action leads to from current.
func ApplyManualRefund(current RefundStatus, action RefundAction) (RefundStatus, error) {
	switch action {
	case RefundActionApprove:
		if current == RefundPending {
			return RefundProcessing, nil
		}
	case RefundActionReject:
		if current == RefundPending || current == RefundProcessing {
			return RefundFailed, nil
		}
	case RefundActionCompleted:
		if current == RefundPending || current == RefundProcessing {
			return RefundCompleted, nil
		}
	default:
		return current, NewValidationError("action", "unknown refund action %q", action)
	}
	return current, NewPreconditionError("manual refund "+string(action), "refund is %s", describeRefund(current))
}

// CheckAutoRefund reports why o cannot be auto refunded, or nil if it can.
// A failed refund may be retried here, but only on an operator's request.
func CheckAutoRefund(o Order) error {
	if !o.PaymentMethod.SupportsAutoRefund() {
		return NewPreconditionError("auto refund", "payment method %q has no refund API", o.PaymentMethod)
	}
	if !o.RefundRequested() {
		return NewPreconditionError("auto refund", "no refund was requested for order %s", o.Code)
	}
	switch s := o.RefundStatus(); s {
	case RefundPending, RefundFailed:
		return nil
	default:
		return NewPreconditionError("auto refund", "refund is %s", describeRefund(s))
	}
}

// RefundOutcome is what the backend reports after a refund call or provider query.
type RefundOutcome struct {
	Status        RefundStatus `json:"refundStatus" validate:"required,refund_status"`
	TransactionID string       `json:"transactionId,omitempty"`
	CompletedAt   *time.Time   `json:"refundCompletedAt,omitempty"`
	Message       string       `json:"message,omitempty"`
}

// ReconcileRefund decides the local status after the provider reported `reported`.
// Only terminal reports are adopted, and completed is never regressed.
func ReconcileRefund(local, reported RefundStatus) (RefundStatus, bool) {
	if local == RefundCompleted {
		return local, false
	}
	if !reported.IsTerminal() || reported == local {
		return local, false
	}
	return reported, true
}

// RefundUpdate persists a reconciled refund status.
type RefundUpdate struct {
	Status      RefundStatus `json:"refundStatus"`
	CompletedAt *time.Time   `json:"refundCompletedAt,omitempty"`
	UpdatedBy   string       `json:"updatedBy"`
}

func describeRefund(s RefundStatus) string {
	if s == RefundNone {
		return "not requested"
	}
	return string(s)
}
