package background_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"orderconsole/internal/background"
	"orderconsole/internal/credential"
	"orderconsole/internal/domain/model"
	"orderconsole/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type listerMock struct{ mock.Mock }

func (m *listerMock) List(ctx context.Context, f model.OrderFilter) ([]usecase.OrderView, error) {
	args := m.Called(ctx, f)
	v, _ := args.Get(0).([]usecase.OrderView)
	return v, args.Error(1)
}

type checkerMock struct{ mock.Mock }

func (m *checkerMock) CheckRefundStatus(ctx context.Context, actor string, orderID string) (usecase.RefundResult, error) {
	args := m.Called(ctx, actor, orderID)
	r, _ := args.Get(0).(usecase.RefundResult)
	return r, args.Error(1)
}

func view(id string) usecase.OrderView {
	return usecase.OrderView{Order: model.Order{ID: id}}
}

func hasServiceToken(ctx context.Context) bool {
	tok, ok := credential.Token(ctx)
	return ok && tok == "svc-token"
}

func TestRefundReconciler_RunOnce_ChecksEveryProcessingRefund(t *testing.T) {
	orders := new(listerMock)
	refunds := new(checkerMock)

	orders.On("List", mock.MatchedBy(hasServiceToken), model.OrderFilter{
		RefundStatus: model.RefundProcessing, Page: 1, Limit: 50,
	}).Return([]usecase.OrderView{view("a"), view("b")}, nil)

	refunds.On("CheckRefundStatus", mock.MatchedBy(hasServiceToken), background.SystemOperatorID, "a").
		Return(usecase.RefundResult{Changed: true}, nil)
	refunds.On("CheckRefundStatus", mock.Anything, background.SystemOperatorID, "b").
		Return(usecase.RefundResult{}, errors.New("provider down"))

	r := background.NewRefundReconciler(orders, refunds, "svc-token", time.Minute, nil)

	changed := r.RunOnce(context.Background())
	assert.Equal(t, 1, changed)
	orders.AssertExpectations(t)
	refunds.AssertExpectations(t)
}

func TestRefundReconciler_RunOnce_ListFailureChecksNothing(t *testing.T) {
	orders := new(listerMock)
	refunds := new(checkerMock)
	orders.On("List", mock.Anything, mock.Anything).Return(nil, &model.TransportError{Op: "list orders"})

	r := background.NewRefundReconciler(orders, refunds, "svc-token", time.Minute, nil)

	assert.Equal(t, 0, r.RunOnce(context.Background()))
	refunds.AssertNotCalled(t, "CheckRefundStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestRefundReconciler_Run_StopsOnCancel(t *testing.T) {
	orders := new(listerMock)
	refunds := new(checkerMock)
	orders.On("List", mock.Anything, mock.Anything).Return(nil, nil).Maybe()

	r := background.NewRefundReconciler(orders, refunds, "svc-token", 10*time.Millisecond, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		r.Run(ctx)
		close(done)
	}()

	time.Sleep(30 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("reconciler did not stop after cancel")
	}
}
