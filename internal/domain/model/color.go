package model

// Category is the display tag the console colours a status badge with.
type Category string

const (
	CategoryWarning Category = "warning"
	CategoryInfo    Category = "info"
	CategorySuccess Category = "success"
	CategoryDanger  Category = "danger"
	CategoryNeutral Category = "neutral"
)

// Payment and shipping share the two cancelled strings; both map to danger.
var statusCategories = map[string]Category{
	string(ShippingAwaitingConfirmation): CategoryWarning,
	string(ShippingConfirmed):            CategoryInfo,
	string(ShippingInTransit):            CategoryInfo,
	string(ShippingDelivered):            CategorySuccess,
	string(ShippingDeliveryFailed):       CategoryDanger,
	string(ShippingReceived):             CategorySuccess,
	string(ShippingComplaintRaised):      CategoryWarning,
	string(ShippingComplaintProcessing):  CategoryWarning,
	string(ShippingComplaintResolved):    CategorySuccess,
	string(ShippingComplaintRejected):    CategoryDanger,
	string(ShippingBuyerCancelled):       CategoryDanger,
	string(ShippingSellerCancelled):      CategoryDanger,

	string(PaymentAwaiting):       CategoryWarning,
	string(PaymentPaid):           CategorySuccess,
	string(PaymentCashOnDelivery): CategoryInfo,
	string(PaymentRejectedByBank): CategoryDanger,
	string(PaymentWindowExpired):  CategoryDanger,

	string(RefundPending):    CategoryWarning,
	string(RefundProcessing): CategoryInfo,
	string(RefundCompleted):  CategorySuccess,
	string(RefundFailed):     CategoryDanger,
}

// ColorFor returns the badge category of any status string. Unknown input is neutral.
func ColorFor(status string) Category {
	if c, ok := statusCategories[status]; ok {
		return c
	}
	return CategoryNeutral
}
