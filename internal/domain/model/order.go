package model

import "time"

// Order is the backend order record as the console sees it. Only the status fields
// and payment details drive the lifecycle; the rest is passed through for display.
type Order struct {
	ID             string          `json:"id" validate:"required"`
	Code           string          `json:"code" validate:"required"`
	PaymentStatus  PaymentStatus   `json:"paymentStatus" validate:"required,payment_status"`
	ShippingStatus ShippingStatus  `json:"shippingStatus" validate:"required,shipping_status"`
	PaymentMethod  PaymentMethod   `json:"paymentMethod" validate:"required,payment_method"`
	PaymentDetails *PaymentDetails `json:"paymentDetails,omitempty" validate:"omitempty"`
	FinalAmount    int64           `json:"finalAmount" validate:"gte=0"`
	Items          []OrderItem     `json:"items"`
	Receiver       Receiver        `json:"receiver"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

type PaymentDetails struct {
	RefundRequested     bool         `json:"refundRequested"`
	RefundStatus        RefundStatus `json:"refundStatus,omitempty" validate:"omitempty,refund_status"`
	RefundMethod        string       `json:"refundMethod,omitempty"`
	RefundTransactionID string       `json:"refundTransactionId,omitempty"`
	RefundNote          string       `json:"refundNote,omitempty"`
	RefundRequestedAt   *time.Time   `json:"refundRequestedAt,omitempty"`
	RefundCompletedAt   *time.Time   `json:"refundCompletedAt,omitempty"`
}

type OrderItem struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Variant   string `json:"variant,omitempty"`
	Quantity  int64  `json:"quantity"`
	Price     int64  `json:"price"`
}

type Receiver struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// RefundStatus is RefundNone unless a refund was requested.
func (o Order) RefundStatus() RefundStatus {
	if o.PaymentDetails == nil || !o.PaymentDetails.RefundRequested {
		return RefundNone
	}
	return o.PaymentDetails.RefundStatus
}

func (o Order) RefundRequested() bool {
	return o.PaymentDetails != nil && o.PaymentDetails.RefundRequested
}

// OrderFilter narrows a backend order listing.
type OrderFilter struct {
	RefundStatus RefundStatus
	Page         int
	Limit        int
}

// StatusPatch is the generic update sent for an operator transition.
type StatusPatch struct {
	ShippingStatus *ShippingStatus `json:"shippingStatus,omitempty"`
	PaymentStatus  *PaymentStatus  `json:"paymentStatus,omitempty"`
	Note           string          `json:"note,omitempty"`
	Reason         string          `json:"reason,omitempty"`
	UpdatedBy      string          `json:"updatedBy"`
	IsAutomatic    bool            `json:"isAutomatic"`
}
