package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"orderconsole/internal/domain/model"
	repo "orderconsole/internal/repository"
)

// OrderBackend implements repository.OrderRepository over the backend API.
type OrderBackend struct {
	c *Client
}

func NewOrderBackend(c *Client) *OrderBackend {
	return &OrderBackend{c: c}
}

var _ repo.OrderRepository = (*OrderBackend)(nil)

func (b *OrderBackend) FindByID(ctx context.Context, orderID string) (model.Order, error) {
	var o model.Order
	if err := b.c.do(ctx, "get order", http.MethodGet, "/orders/"+url.PathEscape(orderID), nil, &o, callOpts{}); err != nil {
		return model.Order{}, err
	}
	if err := b.c.check("get order", o); err != nil {
		return model.Order{}, err
	}
	return o, nil
}

func (b *OrderBackend) List(ctx context.Context, f model.OrderFilter) ([]model.Order, error) {
	q := url.Values{}
	if f.RefundStatus != model.RefundNone {
		q.Set("refundStatus", string(f.RefundStatus))
	}
	if f.Page > 0 {
		q.Set("page", strconv.Itoa(f.Page))
	}
	if f.Limit > 0 {
		q.Set("limit", strconv.Itoa(f.Limit))
	}
	path := "/orders"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var orders []model.Order
	if err := b.c.do(ctx, "list orders", http.MethodGet, path, nil, &orders, callOpts{}); err != nil {
		return nil, err
	}
	for _, o := range orders {
		if err := b.c.check("list orders", o); err != nil {
			return nil, err
		}
	}
	return orders, nil
}

func (b *OrderBackend) History(ctx context.Context, orderCode string) ([]model.StatusHistoryEntry, error) {
	var entries []model.StatusHistoryEntry
	if err := b.c.do(ctx, "get history", http.MethodGet, "/orders/history/"+url.PathEscape(orderCode), nil, &entries, callOpts{}); err != nil {
		return nil, err
	}
	for _, e := range entries {
		if err := b.c.check("get history", e); err != nil {
			return nil, err
		}
	}
	return entries, nil
}

func (b *OrderBackend) UpdateStatus(ctx context.Context, orderID string, patch model.StatusPatch) (model.Order, error) {
	var o model.Order
	if err := b.c.do(ctx, "update order", http.MethodPatch, "/orders/"+url.PathEscape(orderID), patch, &o, callOpts{}); err != nil {
		return model.Order{}, err
	}
	if err := b.c.check("update order", o); err != nil {
		return model.Order{}, err
	}
	return o, nil
}

func (b *OrderBackend) Cancel(ctx context.Context, orderID string, req model.CancelRequest) (model.Order, error) {
	var o model.Order
	if err := b.c.do(ctx, "cancel order", http.MethodPost, "/orders/"+url.PathEscape(orderID)+"/cancel", req, &o, callOpts{}); err != nil {
		return model.Order{}, err
	}
	if err := b.c.check("cancel order", o); err != nil {
		return model.Order{}, err
	}
	return o, nil
}
