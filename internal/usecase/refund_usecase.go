package usecase

import (
	"context"
	"errors"
	"strings"

	"orderconsole/internal/domain/model"
	"orderconsole/internal/infra/metrics"
	repo "orderconsole/internal/repository"

	"go.uber.org/zap"
)

type RefundUsecase struct {
	orders  repo.OrderRepository
	refunds repo.RefundRepository
	rec     *Recorder
	metrics *metrics.Metrics
	logger  *zap.Logger
}

func NewRefundUsecase(orders repo.OrderRepository, refunds repo.RefundRepository, rec *Recorder, m *metrics.Metrics, logger *zap.Logger) *RefundUsecase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RefundUsecase{orders: orders, refunds: refunds, rec: rec, metrics: m, logger: logger}
}

type RefundResult struct {
	OrderID   string              `json:"orderId"`
	OrderCode string              `json:"orderCode"`
	Previous  model.RefundStatus  `json:"previousStatus"`
	Outcome   model.RefundOutcome `json:"outcome"`
	Changed   bool                `json:"changed"`
}

// AutoRefund asks the backend to refund through the order's payment provider.
// A provider failure is returned as-is; retrying is the operator's call.
func (u *RefundUsecase) AutoRefund(ctx context.Context, actor string, orderID string) (RefundResult, error) {
	if actor == "" {
		return RefundResult{}, model.ErrUnauthenticated
	}
	if strings.TrimSpace(orderID) == "" {
		return RefundResult{}, model.NewValidationError("id", "order id is required")
	}

	o, err := u.orders.FindByID(ctx, orderID)
	if err != nil {
		return RefundResult{}, err
	}
	if err := model.CheckAutoRefund(o); err != nil {
		return RefundResult{}, err
	}

	prev := o.RefundStatus()
	out, err := u.refunds.AutoRefund(ctx, orderID, actor)
	if err != nil {
		var pe *model.ProviderError
		if errors.As(err, &pe) {
			pe.Provider = o.PaymentMethod
			u.metrics.RefundAction("auto", "provider_error")
			u.logger.Warn("auto refund failed at provider",
				zap.String("order_code", o.Code),
				zap.String("provider", string(o.PaymentMethod)),
				zap.String("message", pe.Message),
			)
			return RefundResult{}, pe
		}
		u.metrics.RefundAction("auto", "error")
		return RefundResult{}, err
	}

	u.metrics.RefundAction("auto", string(out.Status))
	u.rec.Record(ctx, model.LifecycleEvent{
		Type:      model.EventAutoRefund,
		OrderID:   o.ID,
		OrderCode: o.Code,
		Actor:     actor,
		From:      string(prev),
		To:        string(out.Status),
	}, model.AuditActionAutoRefund, statusSnapshot(o), out)

	return RefundResult{OrderID: o.ID, OrderCode: o.Code, Previous: prev, Outcome: out, Changed: out.Status != prev}, nil
}

// ManualRefund records one operator step of an off-provider refund.
// Input is validated before the order is fetched.
func (u *RefundUsecase) ManualRefund(ctx context.Context, actor string, orderID string, in model.ManualRefund) (RefundResult, error) {
	if actor == "" {
		return RefundResult{}, model.ErrUnauthenticated
	}
	if strings.TrimSpace(orderID) == "" {
		return RefundResult{}, model.NewValidationError("id", "order id is required")
	}
	in.UpdatedBy = actor
	if err := in.Validate(); err != nil {
		return RefundResult{}, err
	}

	o, err := u.orders.FindByID(ctx, orderID)
	if err != nil {
		return RefundResult{}, err
	}
	if !o.RefundRequested() {
		return RefundResult{}, model.NewPreconditionError("manual refund "+string(in.Action),
			"no refund was requested for order %s", o.Code)
	}
	prev := o.RefundStatus()
	if _, err := model.ApplyManualRefund(prev, in.Action); err != nil {
		return RefundResult{}, err
	}

	out, err := u.refunds.ManualRefund(ctx, orderID, in)
	if err != nil {
		u.metrics.RefundAction("manual_"+string(in.Action), "error")
		return RefundResult{}, err
	}

	u.metrics.RefundAction("manual_"+string(in.Action), string(out.Status))
	u.rec.Record(ctx, model.LifecycleEvent{
		Type:      model.EventManualRefund,
		OrderID:   o.ID,
		OrderCode: o.Code,
		Actor:     actor,
		From:      string(prev),
		To:        string(out.Status),
		Reason:    in.Note,
	}, model.AuditActionManualRefund, statusSnapshot(o), in)

	return RefundResult{OrderID: o.ID, OrderCode: o.Code, Previous: prev, Outcome: out, Changed: out.Status != prev}, nil
}

// CheckRefundStatus asks the provider where a refund stands and persists the
// answer when it settles the refund. Completed refunds are never moved back.
func (u *RefundUsecase) CheckRefundStatus(ctx context.Context, actor string, orderID string) (RefundResult, error) {
	if actor == "" {
		return RefundResult{}, model.ErrUnauthenticated
	}
	if strings.TrimSpace(orderID) == "" {
		return RefundResult{}, model.NewValidationError("id", "order id is required")
	}

	o, err := u.orders.FindByID(ctx, orderID)
	if err != nil {
		return RefundResult{}, err
	}
	if !o.RefundRequested() {
		return RefundResult{}, model.NewPreconditionError("refund status",
			"no refund was requested for order %s", o.Code)
	}

	local := o.RefundStatus()
	reported, err := u.refunds.ProviderStatus(ctx, orderID)
	if err != nil {
		var pe *model.ProviderError
		if errors.As(err, &pe) {
			pe.Provider = o.PaymentMethod
			return RefundResult{}, pe
		}
		return RefundResult{}, err
	}

	next, changed := model.ReconcileRefund(local, reported.Status)
	if !changed {
		if local == model.RefundCompleted && reported.Status != model.RefundCompleted {
			u.logger.Warn("provider disagrees with completed refund",
				zap.String("order_code", o.Code),
				zap.String("reported", string(reported.Status)),
			)
		}
		return RefundResult{
			OrderID:   o.ID,
			OrderCode: o.Code,
			Previous:  local,
			Outcome:   model.RefundOutcome{Status: local, TransactionID: reported.TransactionID, Message: reported.Message},
		}, nil
	}

	upd := model.RefundUpdate{Status: next, UpdatedBy: actor}
	if next == model.RefundCompleted {
		upd.CompletedAt = reported.CompletedAt
		if upd.CompletedAt == nil {
			now := u.rec.Now()
			upd.CompletedAt = &now
		}
	}
	out, err := u.refunds.UpdateStatus(ctx, orderID, upd)
	if err != nil {
		return RefundResult{}, err
	}

	u.metrics.RefundReconciled(string(local), string(next))
	u.rec.Record(ctx, model.LifecycleEvent{
		Type:      model.EventRefundSynced,
		OrderID:   o.ID,
		OrderCode: o.Code,
		Actor:     actor,
		From:      string(local),
		To:        string(next),
	}, model.AuditActionReconcileRefund, statusSnapshot(o), out)

	u.logger.Info("refund reconciled",
		zap.String("order_code", o.Code),
		zap.String("from", string(local)),
		zap.String("to", string(next)),
	)
	return RefundResult{OrderID: o.ID, OrderCode: o.Code, Previous: local, Outcome: out, Changed: true}, nil
}
