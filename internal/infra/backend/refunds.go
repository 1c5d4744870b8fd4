package backend

import (
	"context"
	"net/http"
	"net/url"

	"orderconsole/internal/domain/model"
	repo "orderconsole/internal/repository"
)

// RefundBackend implements repository.RefundRepository. Provider failures relayed by
// the backend come back as *model.ProviderError.
type RefundBackend struct {
	c *Client
}

func NewRefundBackend(c *Client) *RefundBackend {
	return &RefundBackend{c: c}
}

var _ repo.RefundRepository = (*RefundBackend)(nil)

type autoRefundRequest struct {
	UpdatedBy string `json:"updatedBy"`
}

func refundPath(orderID, suffix string) string {
	return "/orders/" + url.PathEscape(orderID) + "/refund" + suffix
}

func (b *RefundBackend) AutoRefund(ctx context.Context, orderID string, operator string) (model.RefundOutcome, error) {
	return b.call(ctx, "auto refund", http.MethodPost, refundPath(orderID, "/auto"), autoRefundRequest{UpdatedBy: operator})
}

func (b *RefundBackend) ManualRefund(ctx context.Context, orderID string, in model.ManualRefund) (model.RefundOutcome, error) {
	return b.call(ctx, "manual refund", http.MethodPost, refundPath(orderID, "/manual"), in)
}

func (b *RefundBackend) ProviderStatus(ctx context.Context, orderID string) (model.RefundOutcome, error) {
	return b.call(ctx, "refund status", http.MethodGet, refundPath(orderID, "/status"), nil)
}

func (b *RefundBackend) UpdateStatus(ctx context.Context, orderID string, u model.RefundUpdate) (model.RefundOutcome, error) {
	var out model.RefundOutcome
	if err := b.c.do(ctx, "update refund", http.MethodPatch, refundPath(orderID, ""), u, &out, callOpts{}); err != nil {
		return model.RefundOutcome{}, err
	}
	if err := b.c.check("update refund", out); err != nil {
		return model.RefundOutcome{}, err
	}
	return out, nil
}

func (b *RefundBackend) call(ctx context.Context, op, method, path string, body any) (model.RefundOutcome, error) {
	var out model.RefundOutcome
	if err := b.c.do(ctx, op, method, path, body, &out, callOpts{provider: true}); err != nil {
		return model.RefundOutcome{}, err
	}
	if err := b.c.check(op, out); err != nil {
		return model.RefundOutcome{}, err
	}
	return out, nil
}
