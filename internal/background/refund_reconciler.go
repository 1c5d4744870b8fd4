package background

import (
	"context"
	"time"

	"orderconsole/internal/credential"
	"orderconsole/internal/domain/model"
	"orderconsole/internal/usecase"

	"go.uber.org/zap"
)

const (
	reconcilePageSize = 50
	reconcileMaxPages = 20

	// SystemOperatorID is recorded as the actor of reconciler-driven changes.
	SystemOperatorID = "system:refund-reconciler"
)

type OrderLister interface {
	List(ctx context.Context, f model.OrderFilter) ([]usecase.OrderView, error)
}

type RefundChecker interface {
	CheckRefundStatus(ctx context.Context, actor string, orderID string) (usecase.RefundResult, error)
}

// RefundReconciler periodically asks the provider about refunds stuck in processing.
type RefundReconciler struct {
	orders       OrderLister
	refunds      RefundChecker
	serviceToken string
	interval     time.Duration
	logger       *zap.Logger
}

func NewRefundReconciler(orders OrderLister, refunds RefundChecker, serviceToken string, interval time.Duration, logger *zap.Logger) *RefundReconciler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RefundReconciler{
		orders:       orders,
		refunds:      refunds,
		serviceToken: serviceToken,
		interval:     interval,
		logger:       logger,
	}
}

// Run ticks until ctx is cancelled.
func (r *RefundReconciler) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.logger.Info("refund reconciler started", zap.Duration("interval", r.interval))
	for {
		select {
		case <-ctx.Done():
			r.logger.Info("refund reconciler stopped")
			return
		case <-ticker.C:
			r.RunOnce(ctx)
		}
	}
}

// RunOnce reconciles every processing refund once and returns how many changed.
func (r *RefundReconciler) RunOnce(ctx context.Context) int {
	ctx = credential.WithToken(ctx, r.serviceToken)
	ctx = credential.WithOperator(ctx, credential.Operator{ID: SystemOperatorID, Role: "SYSTEM"})

	// collect first: reconciled orders drop out of the processing listing
	var ids []string
	for page := 1; page <= reconcileMaxPages; page++ {
		views, err := r.orders.List(ctx, model.OrderFilter{
			RefundStatus: model.RefundProcessing,
			Page:         page,
			Limit:        reconcilePageSize,
		})
		if err != nil {
			r.logger.Error("refund reconciler: list processing refunds failed", zap.Int("page", page), zap.Error(err))
			break
		}
		for _, v := range views {
			ids = append(ids, v.Order.ID)
		}
		if len(views) < reconcilePageSize {
			break
		}
	}

	changed := 0
	for _, id := range ids {
		if ctx.Err() != nil {
			return changed
		}
		res, err := r.refunds.CheckRefundStatus(ctx, SystemOperatorID, id)
		if err != nil {
			r.logger.Warn("refund reconciler: check failed", zap.String("order_id", id), zap.Error(err))
			continue
		}
		if res.Changed {
			changed++
		}
	}
	if len(ids) > 0 {
		r.logger.Info("refund reconciler pass done", zap.Int("checked", len(ids)), zap.Int("changed", changed))
	}
	return changed
}
