package handler

import (
	"net/http"

	"orderconsole/internal/domain/model"

	"github.com/labstack/echo/v4"
)

// OrderStatusHandler serves the status taxonomy the console UI renders badges and
// dropdowns from. It has no state.
type OrderStatusHandler struct{}

func NewOrderStatusHandler() *OrderStatusHandler {
	return &OrderStatusHandler{}
}

type StatusInfo struct {
	Value    string         `json:"value"`
	Category model.Category `json:"category"`
	Terminal bool           `json:"terminal,omitempty"`
}

type MethodInfo struct {
	Value           model.PaymentMethod `json:"value"`
	CapturesPayment bool                `json:"capturesPayment"`
	AutoRefund      bool                `json:"autoRefund"`
}

type StatusCatalog struct {
	Shipping           []StatusInfo                                    `json:"shipping"`
	Payment            []StatusInfo                                    `json:"payment"`
	Refund             []StatusInfo                                    `json:"refund"`
	PaymentMethods     []MethodInfo                                    `json:"paymentMethods"`
	ShippingTransition map[model.ShippingStatus][]model.ShippingStatus `json:"shippingTransitions"`
}

func (h *OrderStatusHandler) RegisterRoutes(admin *echo.Group) {
	admin.GET("/order-statuses", h.catalog)
}

func (h *OrderStatusHandler) catalog(c echo.Context) error {
	return c.JSON(http.StatusOK, BuildStatusCatalog())
}

func BuildStatusCatalog() StatusCatalog {
	out := StatusCatalog{ShippingTransition: model.TransitionTable()}
	for _, s := range model.ShippingStatuses {
		out.Shipping = append(out.Shipping, StatusInfo{Value: string(s), Category: model.ColorFor(string(s)), Terminal: s.IsTerminal()})
	}
	for _, s := range model.PaymentStatuses {
		out.Payment = append(out.Payment, StatusInfo{Value: string(s), Category: model.ColorFor(string(s))})
	}
	for _, s := range model.RefundStatuses {
		out.Refund = append(out.Refund, StatusInfo{Value: string(s), Category: model.ColorFor(string(s)), Terminal: s.IsTerminal()})
	}
	for _, m := range model.PaymentMethods {
		out.PaymentMethods = append(out.PaymentMethods, MethodInfo{
			Value:           m,
			CapturesPayment: m.CapturesPayment(),
			AutoRefund:      m.SupportsAutoRefund(),
		})
	}
	return out
}
