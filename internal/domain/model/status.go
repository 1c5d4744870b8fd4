package model

// ShippingStatus is the fulfilment state of an order as the backend stores it.
type ShippingStatus string

const (
	ShippingAwaitingConfirmation ShippingStatus = "Chờ xác nhận"
	ShippingConfirmed            ShippingStatus = "Đã xác nhận"
	ShippingInTransit            ShippingStatus = "Đang giao hàng"
	ShippingDelivered            ShippingStatus = "Giao hàng thành công"
	ShippingDeliveryFailed       ShippingStatus = "Giao hàng thất bại"
	ShippingReceived             ShippingStatus = "Đã nhận hàng"
	ShippingComplaintRaised      ShippingStatus = "Khiếu nại"
	ShippingComplaintProcessing  ShippingStatus = "Đang xử lý khiếu nại"
	ShippingComplaintResolved    ShippingStatus = "Khiếu nại được giải quyết"
	ShippingComplaintRejected    ShippingStatus = "Khiếu nại bị từ chối"
	ShippingBuyerCancelled       ShippingStatus = "Người mua huỷ"
	ShippingSellerCancelled      ShippingStatus = "Người bán huỷ"
)

// PaymentStatus is the settlement state of an order.
type PaymentStatus string

const (
	PaymentAwaiting        PaymentStatus = "Chưa thanh toán"
	PaymentPaid            PaymentStatus = "Đã thanh toán"
	PaymentCashOnDelivery  PaymentStatus = "Thanh toán khi nhận hàng"
	PaymentBuyerCancelled  PaymentStatus = "Người mua huỷ"
	PaymentSellerCancelled PaymentStatus = "Người bán huỷ"
	PaymentRejectedByBank  PaymentStatus = "Bị từ chối bởi nhà phát hành"
	PaymentWindowExpired   PaymentStatus = "Hết hạn thanh toán"
)

// PaymentMethod is how the customer paid at checkout.
type PaymentMethod string

const (
	PaymentMethodCOD          PaymentMethod = "cod"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodMoMo         PaymentMethod = "MoMo"
	PaymentMethodZaloPay      PaymentMethod = "ZaloPay"
	PaymentMethodVNPay        PaymentMethod = "VNPay"
)

// RefundStatus tracks a refund independently of the payment/shipping pair.
// The zero value means no refund was requested.
type RefundStatus string

const (
	RefundNone       RefundStatus = ""
	RefundPending    RefundStatus = "pending"
	RefundProcessing RefundStatus = "processing"
	RefundCompleted  RefundStatus = "completed"
	RefundFailed     RefundStatus = "failed"
)

// ShippingStatuses lists every shipping status in lifecycle order.
var ShippingStatuses = []ShippingStatus{
	ShippingAwaitingConfirmation,
	ShippingConfirmed,
	ShippingInTransit,
	ShippingDelivered,
	ShippingDeliveryFailed,
	ShippingReceived,
	ShippingComplaintRaised,
	ShippingComplaintProcessing,
	ShippingComplaintResolved,
	ShippingComplaintRejected,
	ShippingBuyerCancelled,
	ShippingSellerCancelled,
}

var PaymentStatuses = []PaymentStatus{
	PaymentAwaiting,
	PaymentPaid,
	PaymentCashOnDelivery,
	PaymentBuyerCancelled,
	PaymentSellerCancelled,
	PaymentRejectedByBank,
	PaymentWindowExpired,
}

var PaymentMethods = []PaymentMethod{
	PaymentMethodCOD,
	PaymentMethodBankTransfer,
	PaymentMethodMoMo,
	PaymentMethodZaloPay,
	PaymentMethodVNPay,
}

var RefundStatuses = []RefundStatus{
	RefundPending,
	RefundProcessing,
	RefundCompleted,
	RefundFailed,
}

func (s ShippingStatus) IsValid() bool {
	for _, v := range ShippingStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no operator transition can leave s.
func (s ShippingStatus) IsTerminal() bool {
	switch s {
	case ShippingReceived,
		ShippingBuyerCancelled,
		ShippingSellerCancelled,
		ShippingComplaintResolved,
		ShippingComplaintRejected:
		return true
	default:
		return false
	}
}

func (s ShippingStatus) IsCancelled() bool {
	return s == ShippingBuyerCancelled || s == ShippingSellerCancelled
}

func (s PaymentStatus) IsValid() bool {
	for _, v := range PaymentStatuses {
		if v == s {
			return true
		}
	}
	return false
}

func (s PaymentStatus) IsCancelled() bool {
	return s == PaymentBuyerCancelled || s == PaymentSellerCancelled
}

// NeverCaptured reports whether the status proves no money reached the shop.
func (s PaymentStatus) NeverCaptured() bool {
	switch s {
	case PaymentAwaiting, PaymentWindowExpired, PaymentRejectedByBank:
		return true
	default:
		return false
	}
}

func (m PaymentMethod) IsValid() bool {
	for _, v := range PaymentMethods {
		if v == m {
			return true
		}
	}
	return false
}

// CapturesPayment is false only for cash on delivery, where nothing is paid up front.
func (m PaymentMethod) CapturesPayment() bool {
	return m.IsValid() && m != PaymentMethodCOD
}

// SupportsAutoRefund reports whether the provider behind m exposes a refund API.
func (m PaymentMethod) SupportsAutoRefund() bool {
	switch m {
	case PaymentMethodMoMo, PaymentMethodZaloPay, PaymentMethodVNPay:
		return true
	default:
		return false
	}
}

func (s RefundStatus) IsValid() bool {
	for _, v := range RefundStatuses {
		if v == s {
			return true
		}
	}
	return false
}

func (s RefundStatus) IsTerminal() bool {
	return s == RefundCompleted || s == RefundFailed
}

func ParseShippingStatus(v string) (ShippingStatus, error) {
	s := ShippingStatus(v)
	if !s.IsValid() {
		return "", NewValidationError("shippingStatus", "unknown shipping status %q", v)
	}
	return s, nil
}

func ParsePaymentStatus(v string) (PaymentStatus, error) {
	s := PaymentStatus(v)
	if !s.IsValid() {
		return "", NewValidationError("paymentStatus", "unknown payment status %q", v)
	}
	return s, nil
}

func ParsePaymentMethod(v string) (PaymentMethod, error) {
	m := PaymentMethod(v)
	if !m.IsValid() {
		return "", NewValidationError("paymentMethod", "unknown payment method %q", v)
	}
	return m, nil
}

func ParseRefundStatus(v string) (RefundStatus, error) {
	s := RefundStatus(v)
	if !s.IsValid() {
		return "", NewValidationError("refundStatus", "unknown refund status %q", v)
	}
	return s, nil
}
