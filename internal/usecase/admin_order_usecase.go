package usecase

import (
	"context"
	"strings"

	"orderconsole/internal/domain/model"
	"orderconsole/internal/infra/metrics"
	repo "orderconsole/internal/repository"

	"go.uber.org/zap"
)

type AdminOrderUsecase struct {
	orders  repo.OrderRepository
	rec     *Recorder
	metrics *metrics.Metrics
	logger  *zap.Logger
}

func NewAdminOrderUsecase(orders repo.OrderRepository, rec *Recorder, m *metrics.Metrics, logger *zap.Logger) *AdminOrderUsecase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AdminOrderUsecase{orders: orders, rec: rec, metrics: m, logger: logger}
}

// OrderView is an order plus everything the console derives from its state.
type OrderView struct {
	Order                     model.Order            `json:"order"`
	ShippingCategory          model.Category         `json:"shippingCategory"`
	PaymentCategory           model.Category         `json:"paymentCategory"`
	RefundCategory            model.Category         `json:"refundCategory,omitempty"`
	AllowedTransitions        []model.ShippingStatus `json:"allowedTransitions"`
	AllowedPaymentTransitions []model.PaymentStatus  `json:"allowedPaymentTransitions"`
	CanCancel                 bool                   `json:"canCancel"`
	CanAutoRefund             bool                   `json:"canAutoRefund"`
}

func NewOrderView(o model.Order) OrderView {
	v := OrderView{
		Order:                     o,
		ShippingCategory:          model.ColorFor(string(o.ShippingStatus)),
		PaymentCategory:           model.ColorFor(string(o.PaymentStatus)),
		AllowedTransitions:        model.AllowedTransitions(o.ShippingStatus),
		AllowedPaymentTransitions: model.AllowedPaymentTransitions(o.PaymentStatus),
		CanCancel:                 o.CanCancel(),
		CanAutoRefund:             model.CheckAutoRefund(o) == nil,
	}
	if rs := o.RefundStatus(); rs != model.RefundNone {
		v.RefundCategory = model.ColorFor(string(rs))
	}
	return v
}

type UpdateOrderStatusInput struct {
	ShippingStatus string
	PaymentStatus  string
	Note           string
	Reason         string
}

// CancelResult carries the cancelled order and, when money was captured, how to give it back.
type CancelResult struct {
	OrderView
	Refund *model.RefundGuidance `json:"refund,omitempty"`
}

func (u *AdminOrderUsecase) Get(ctx context.Context, orderID string) (OrderView, error) {
	if strings.TrimSpace(orderID) == "" {
		return OrderView{}, model.NewValidationError("id", "order id is required")
	}
	o, err := u.orders.FindByID(ctx, orderID)
	if err != nil {
		return OrderView{}, err
	}
	return NewOrderView(o), nil
}

func (u *AdminOrderUsecase) List(ctx context.Context, f model.OrderFilter) ([]OrderView, error) {
	if f.Page < 0 {
		return nil, model.NewValidationError("page", "invalid page")
	}
	if f.Limit < 0 || f.Limit > 100 {
		return nil, model.NewValidationError("limit", "invalid limit")
	}
	if f.RefundStatus != model.RefundNone && !f.RefundStatus.IsValid() {
		return nil, model.NewValidationError("refundStatus", "unknown refund status %q", f.RefundStatus)
	}
	orders, err := u.orders.List(ctx, f)
	if err != nil {
		return nil, err
	}
	outs := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		outs = append(outs, NewOrderView(o))
	}
	return outs, nil
}

// History returns the status timeline, which the backend keys by order code.
func (u *AdminOrderUsecase) History(ctx context.Context, orderID string) ([]model.StatusHistoryEntry, error) {
	if strings.TrimSpace(orderID) == "" {
		return nil, model.NewValidationError("id", "order id is required")
	}
	o, err := u.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	entries, err := u.orders.History(ctx, o.Code)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []model.StatusHistoryEntry{}
	}
	return entries, nil
}

// UpdateStatus moves shipping and/or payment status along the transition table.
// Cancelled targets are refused here; they go through Cancel.
func (u *AdminOrderUsecase) UpdateStatus(ctx context.Context, actor string, orderID string, in UpdateOrderStatusInput) (OrderView, error) {
	if actor == "" {
		return OrderView{}, model.ErrUnauthenticated
	}
	if strings.TrimSpace(orderID) == "" {
		return OrderView{}, model.NewValidationError("id", "order id is required")
	}

	shippingRaw := strings.TrimSpace(in.ShippingStatus)
	paymentRaw := strings.TrimSpace(in.PaymentStatus)
	if shippingRaw == "" && paymentRaw == "" {
		return OrderView{}, model.NewValidationError("status", "shippingStatus or paymentStatus is required")
	}

	var (
		shipping *model.ShippingStatus
		payment  *model.PaymentStatus
	)
	if shippingRaw != "" {
		s, err := model.ParseShippingStatus(shippingRaw)
		if err != nil {
			return OrderView{}, err
		}
		if s.IsCancelled() {
			return OrderView{}, model.NewPreconditionError("update status", "use cancel to cancel an order")
		}
		shipping = &s
	}
	if paymentRaw != "" {
		p, err := model.ParsePaymentStatus(paymentRaw)
		if err != nil {
			return OrderView{}, err
		}
		if p.IsCancelled() {
			return OrderView{}, model.NewPreconditionError("update status", "use cancel to cancel an order")
		}
		payment = &p
	}

	before, err := u.orders.FindByID(ctx, orderID)
	if err != nil {
		return OrderView{}, err
	}

	// same status: nothing to send
	if shipping != nil && *shipping == before.ShippingStatus {
		shipping = nil
	}
	if payment != nil && *payment == before.PaymentStatus {
		payment = nil
	}
	if shipping == nil && payment == nil {
		return NewOrderView(before), nil
	}

	if shipping != nil && !model.CanTransition(before.ShippingStatus, *shipping) {
		return OrderView{}, model.NewPreconditionError("update status",
			"shipping cannot move from %q to %q", before.ShippingStatus, *shipping)
	}
	if payment != nil && !model.CanTransitionPayment(before.PaymentStatus, *payment) {
		return OrderView{}, model.NewPreconditionError("update status",
			"payment cannot move from %q to %q", before.PaymentStatus, *payment)
	}

	patch := model.StatusPatch{
		ShippingStatus: shipping,
		PaymentStatus:  payment,
		Note:           strings.TrimSpace(in.Note),
		Reason:         strings.TrimSpace(in.Reason),
		UpdatedBy:      actor,
	}
	after, err := u.orders.UpdateStatus(ctx, orderID, patch)
	if err != nil {
		return OrderView{}, err
	}

	if shipping != nil {
		u.recordTransition(ctx, actor, before, after, string(model.HistoryShipping), string(before.ShippingStatus), string(*shipping), patch.Reason)
	}
	if payment != nil {
		u.recordTransition(ctx, actor, before, after, string(model.HistoryPayment), string(before.PaymentStatus), string(*payment), patch.Reason)
	}

	u.logger.Info("order status updated",
		zap.String("order_id", orderID),
		zap.String("order_code", before.Code),
		zap.String("actor", actor),
	)
	return NewOrderView(after), nil
}

func (u *AdminOrderUsecase) recordTransition(ctx context.Context, actor string, before, after model.Order, kind, from, to, reason string) {
	u.metrics.StatusTransition(kind, from, to)
	u.rec.Record(ctx, model.LifecycleEvent{
		Type:      model.EventStatusChanged,
		OrderID:   before.ID,
		OrderCode: before.Code,
		Actor:     actor,
		From:      from,
		To:        to,
		Reason:    reason,
	}, model.AuditActionUpdateOrderStatus, statusSnapshot(before), statusSnapshot(after))
}

// Cancel cancels an order on the seller's behalf. The reason is checked before
// any backend call, and refund guidance is computed from the pre-cancel order.
func (u *AdminOrderUsecase) Cancel(ctx context.Context, actor string, orderID string, reason string) (CancelResult, error) {
	if actor == "" {
		return CancelResult{}, model.ErrUnauthenticated
	}
	if strings.TrimSpace(orderID) == "" {
		return CancelResult{}, model.NewValidationError("id", "order id is required")
	}
	req, err := model.NewCancelRequest(reason, actor)
	if err != nil {
		return CancelResult{}, err
	}

	before, err := u.orders.FindByID(ctx, orderID)
	if err != nil {
		return CancelResult{}, err
	}
	if !before.CanCancel() {
		return CancelResult{}, model.NewPreconditionError("cancel",
			"order %s is %q / %q", before.Code, before.PaymentStatus, before.ShippingStatus)
	}

	after, err := u.orders.Cancel(ctx, orderID, req)
	if err != nil {
		return CancelResult{}, err
	}

	guidance := model.NewRefundGuidance(before)
	u.metrics.Cancellation(string(before.PaymentMethod), guidance != nil)
	u.rec.Record(ctx, model.LifecycleEvent{
		Type:      model.EventOrderCancelled,
		OrderID:   before.ID,
		OrderCode: before.Code,
		Actor:     actor,
		From:      string(before.ShippingStatus),
		To:        string(after.ShippingStatus),
		Reason:    req.Reason,
	}, model.AuditActionCancelOrder, statusSnapshot(before), statusSnapshot(after))

	u.logger.Info("order cancelled",
		zap.String("order_id", orderID),
		zap.String("order_code", before.Code),
		zap.String("actor", actor),
		zap.Bool("refund_required", guidance != nil),
	)
	return CancelResult{OrderView: NewOrderView(after), Refund: guidance}, nil
}

type orderSnapshot struct {
	PaymentStatus  model.PaymentStatus  `json:"paymentStatus"`
	ShippingStatus model.ShippingStatus `json:"shippingStatus"`
	RefundStatus   model.RefundStatus   `json:"refundStatus,omitempty"`
}

func statusSnapshot(o model.Order) orderSnapshot {
	return orderSnapshot{
		PaymentStatus:  o.PaymentStatus,
		ShippingStatus: o.ShippingStatus,
		RefundStatus:   o.RefundStatus(),
	}
}
