package model

import (
	"fmt"
	"strings"
)

// Statuses (payment or shipping) that rule out a cancellation.
var nonCancellable = map[string]struct{}{
	string(ShippingBuyerCancelled):      {},
	string(ShippingSellerCancelled):     {},
	string(ShippingReceived):            {},
	string(ShippingDelivered):           {},
	string(ShippingComplaintRaised):     {},
	string(ShippingComplaintProcessing): {},
	string(ShippingComplaintResolved):   {},
	string(ShippingComplaintRejected):   {},
}

// CanCancel decides whether an operator may cancel an order in this state.
func CanCancel(payment PaymentStatus, shipping ShippingStatus) bool {
	if _, blocked := nonCancellable[string(payment)]; blocked {
		return false
	}
	if _, blocked := nonCancellable[string(shipping)]; blocked {
		return false
	}
	switch shipping {
	case ShippingAwaitingConfirmation, ShippingConfirmed, ShippingInTransit, ShippingDeliveryFailed:
		return true
	default:
		return false
	}
}

func (o Order) CanCancel() bool {
	return CanCancel(o.PaymentStatus, o.ShippingStatus)
}

// CancelRequest is what the backend receives for an operator cancellation.
// IsAutomatic is always false; the backend copies it onto the history entry.
type CancelRequest struct {
	Reason      string         `json:"reason"`
	CancelledBy ShippingStatus `json:"cancelledBy"`
	UpdatedBy   string         `json:"updatedBy"`
	IsAutomatic bool           `json:"isAutomatic"`
}

// NewCancelRequest validates the reason. Operator cancellations are always seller-side.
func NewCancelRequest(reason string, operator string) (CancelRequest, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return CancelRequest{}, NewValidationError("reason", "cancellation reason is required")
	}
	return CancelRequest{
		Reason:      reason,
		CancelledBy: ShippingSellerCancelled,
		UpdatedBy:   operator,
		IsAutomatic: false,
	}, nil
}

// RefundRequired reports whether cancelling o leaves captured money to return.
// It must be evaluated on the order as it was before the cancellation.
func RefundRequired(o Order) bool {
	return o.PaymentMethod.CapturesPayment() && !o.PaymentStatus.NeverCaptured()
}

// RefundGuidance tells the operator how to return money after a cancellation.
type RefundGuidance struct {
	Amount       int64         `json:"amount"`
	Method       PaymentMethod `json:"method"`
	AutoRefund   bool          `json:"autoRefund"`
	Instructions string        `json:"instructions"`
}

// NewRefundGuidance returns nil when the order has nothing to refund.
func NewRefundGuidance(o Order) *RefundGuidance {
	if !RefundRequired(o) {
		return nil
	}
	g := &RefundGuidance{
		Amount:     o.FinalAmount,
		Method:     o.PaymentMethod,
		AutoRefund: o.PaymentMethod.SupportsAutoRefund(),
	}
	if g.AutoRefund {
		g.Instructions = fmt.Sprintf(
			"Refund %d VND for order %s through %s with the auto refund action. If the provider fails, retry it yourself or fall back to a manual refund.",
			o.FinalAmount, o.Code, o.PaymentMethod)
	} else {
		g.Instructions = fmt.Sprintf(
			"Transfer %d VND for order %s back to the customer, then record the refund method and transaction id with the manual refund action.",
			o.FinalAmount, o.Code)
	}
	return g
}
