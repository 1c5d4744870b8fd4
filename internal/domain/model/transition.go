package model

// shippingTransitions is the operator transition table. Cancelled statuses are never
// destinations here; cancellation goes through CanCancel. Delivered has no operator
// exit because only the customer or the backend job confirms receipt.
var shippingTransitions = map[ShippingStatus][]ShippingStatus{
	ShippingAwaitingConfirmation: {ShippingConfirmed},
	ShippingConfirmed:            {ShippingInTransit},
	ShippingInTransit:            {ShippingDelivered, ShippingDeliveryFailed},
	ShippingDeliveryFailed:       {ShippingInTransit},
	ShippingDelivered:            {},
	ShippingComplaintRaised:      {ShippingComplaintProcessing},
	ShippingComplaintProcessing:  {ShippingComplaintResolved, ShippingComplaintRejected},
	ShippingReceived:             {},
	ShippingComplaintResolved:    {},
	ShippingComplaintRejected:    {},
	ShippingBuyerCancelled:       {},
	ShippingSellerCancelled:      {},
}

// paymentTransitions covers the generic patch only. Bank transfers are confirmed by hand.
var paymentTransitions = map[PaymentStatus][]PaymentStatus{
	PaymentAwaiting: {PaymentPaid},
}

// AllowedTransitions returns the shipping statuses an operator may move current to.
// The result is a fresh slice; statuses missing from the table get an empty one.
func AllowedTransitions(current ShippingStatus) []ShippingStatus {
	next := shippingTransitions[current]
	out := make([]ShippingStatus, len(next))
	copy(out, next)
	return out
}

func CanTransition(from, to ShippingStatus) bool {
	for _, s := range shippingTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

func AllowedPaymentTransitions(current PaymentStatus) []PaymentStatus {
	next := paymentTransitions[current]
	out := make([]PaymentStatus, len(next))
	copy(out, next)
	return out
}

func CanTransitionPayment(from, to PaymentStatus) bool {
	for _, s := range paymentTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// TransitionTable exposes the whole shipping graph for display.
func TransitionTable() map[ShippingStatus][]ShippingStatus {
	out := make(map[ShippingStatus][]ShippingStatus, len(shippingTransitions))
	for from := range shippingTransitions {
		out[from] = AllowedTransitions(from)
	}
	return out
}
