package usecase_test

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"orderconsole/internal/domain/model"
	repo "orderconsole/internal/repository"
	"orderconsole/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// =====================
// Repository mocks
// =====================

type OrderRepoMock struct{ mock.Mock }

func (m *OrderRepoMock) FindByID(ctx context.Context, orderID string) (model.Order, error) {
	args := m.Called(ctx, orderID)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *OrderRepoMock) List(ctx context.Context, f model.OrderFilter) ([]model.Order, error) {
	args := m.Called(ctx, f)
	orders, _ := args.Get(0).([]model.Order)
	return orders, args.Error(1)
}

func (m *OrderRepoMock) History(ctx context.Context, orderCode string) ([]model.StatusHistoryEntry, error) {
	args := m.Called(ctx, orderCode)
	entries, _ := args.Get(0).([]model.StatusHistoryEntry)
	return entries, args.Error(1)
}

func (m *OrderRepoMock) UpdateStatus(ctx context.Context, orderID string, patch model.StatusPatch) (model.Order, error) {
	args := m.Called(ctx, orderID, patch)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *OrderRepoMock) Cancel(ctx context.Context, orderID string, req model.CancelRequest) (model.Order, error) {
	args := m.Called(ctx, orderID, req)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

type RefundRepoMock struct{ mock.Mock }

func (m *RefundRepoMock) AutoRefund(ctx context.Context, orderID string, operator string) (model.RefundOutcome, error) {
	args := m.Called(ctx, orderID, operator)
	out, _ := args.Get(0).(model.RefundOutcome)
	return out, args.Error(1)
}

func (m *RefundRepoMock) ManualRefund(ctx context.Context, orderID string, in model.ManualRefund) (model.RefundOutcome, error) {
	args := m.Called(ctx, orderID, in)
	out, _ := args.Get(0).(model.RefundOutcome)
	return out, args.Error(1)
}

func (m *RefundRepoMock) ProviderStatus(ctx context.Context, orderID string) (model.RefundOutcome, error) {
	args := m.Called(ctx, orderID)
	out, _ := args.Get(0).(model.RefundOutcome)
	return out, args.Error(1)
}

func (m *RefundRepoMock) UpdateStatus(ctx context.Context, orderID string, u model.RefundUpdate) (model.RefundOutcome, error) {
	args := m.Called(ctx, orderID, u)
	out, _ := args.Get(0).(model.RefundOutcome)
	return out, args.Error(1)
}

type AuditRepoMock struct{ mock.Mock }

func (m *AuditRepoMock) Create(ctx context.Context, log model.AuditLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *AuditRepoMock) List(ctx context.Context, filter repo.AuditLogFilter) ([]model.AuditLog, error) {
	args := m.Called(ctx, filter)
	logs, _ := args.Get(0).([]model.AuditLog)
	return logs, args.Error(1)
}

type PublisherMock struct{ mock.Mock }

func (m *PublisherMock) Publish(ctx context.Context, e model.LifecycleEvent) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

// =====================
// Fixed clock / ids
// =====================

var fixedNow = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

type fixedClock struct{}

func (fixedClock) Now() time.Time { return fixedNow }

type seqIDs struct{ n int }

func (s *seqIDs) NewID() string {
	s.n++
	return fmt.Sprintf("evt-%d", s.n)
}

type deps struct {
	orders    *OrderRepoMock
	refunds   *RefundRepoMock
	audit     *AuditRepoMock
	publisher *PublisherMock
	rec       *usecase.Recorder
}

func newDeps() deps {
	d := deps{
		orders:    new(OrderRepoMock),
		refunds:   new(RefundRepoMock),
		audit:     new(AuditRepoMock),
		publisher: new(PublisherMock),
	}
	d.rec = usecase.NewRecorder(d.audit, d.publisher, &seqIDs{}, fixedClock{}, nil)
	return d
}

func (d deps) expectRecord() {
	d.audit.On("Create", mock.Anything, mock.AnythingOfType("model.AuditLog")).Return(nil)
	d.publisher.On("Publish", mock.Anything, mock.AnythingOfType("model.LifecycleEvent")).Return(nil)
}

// =====================
// Fixtures
// =====================

func momoOrder() model.Order {
	return model.Order{
		ID:             "ord-1",
		Code:           "DH0001",
		PaymentStatus:  model.PaymentPaid,
		ShippingStatus: model.ShippingConfirmed,
		PaymentMethod:  model.PaymentMethodMoMo,
		FinalAmount:    250000,
	}
}

func codOrder() model.Order {
	return model.Order{
		ID:             "ord-2",
		Code:           "DH0002",
		PaymentStatus:  model.PaymentCashOnDelivery,
		ShippingStatus: model.ShippingAwaitingConfirmation,
		PaymentMethod:  model.PaymentMethodCOD,
		FinalAmount:    120000,
	}
}

func withRefund(o model.Order, s model.RefundStatus) model.Order {
	o.PaymentDetails = &model.PaymentDetails{RefundRequested: true, RefundStatus: s}
	return o
}

func assertErrContains(t *testing.T, err error, wantSubstr string) {
	t.Helper()
	if assert.Error(t, err) {
		assert.True(t, strings.Contains(err.Error(), wantSubstr), "err=%q want contains %q", err.Error(), wantSubstr)
	}
}
