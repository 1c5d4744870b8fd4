package model_test

import (
	"testing"

	"orderconsole/internal/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =====================
// taxonomy / transitions
// =====================

func TestAllowedTransitions_TerminalStatusesHaveNone(t *testing.T) {
	for _, s := range model.ShippingStatuses {
		if s.IsTerminal() {
			assert.Empty(t, model.AllowedTransitions(s), "terminal %q", s)
		}
	}
}

func TestAllowedTransitions_MembersAreValidAndNeverCancelled(t *testing.T) {
	for _, s := range model.ShippingStatuses {
		for _, next := range model.AllowedTransitions(s) {
			assert.True(t, next.IsValid(), "%q -> %q", s, next)
			assert.False(t, next.IsCancelled(), "%q -> %q", s, next)
		}
	}
}

func TestAllowedTransitions_TableIsTotal(t *testing.T) {
	table := model.TransitionTable()
	for _, s := range model.ShippingStatuses {
		_, ok := table[s]
		assert.True(t, ok, "missing %q", s)
	}
}

func TestAllowedTransitions_ReturnsCopy(t *testing.T) {
	got := model.AllowedTransitions(model.ShippingInTransit)
	got[0] = model.ShippingReceived
	assert.Equal(t, model.ShippingDelivered, model.AllowedTransitions(model.ShippingInTransit)[0])
}

func TestAllowedTransitions_UnknownStatusIsEmpty(t *testing.T) {
	assert.Empty(t, model.AllowedTransitions(model.ShippingStatus("SHIPPED")))
}

// Scenario A
func TestAllowedTransitions_InTransit(t *testing.T) {
	assert.ElementsMatch(t,
		[]model.ShippingStatus{model.ShippingDelivered, model.ShippingDeliveryFailed},
		model.AllowedTransitions(model.ShippingInTransit))
}

// Scenario B
func TestReceived_NoTransitionsNoCancel(t *testing.T) {
	assert.Empty(t, model.AllowedTransitions(model.ShippingReceived))
	assert.False(t, model.CanCancel(model.PaymentPaid, model.ShippingReceived))
}

func TestDeliveredHasNoOperatorExit(t *testing.T) {
	assert.Empty(t, model.AllowedTransitions(model.ShippingDelivered))
	assert.False(t, model.ShippingDelivered.IsTerminal())
}

func TestPaymentTransitions(t *testing.T) {
	assert.True(t, model.CanTransitionPayment(model.PaymentAwaiting, model.PaymentPaid))
	assert.False(t, model.CanTransitionPayment(model.PaymentPaid, model.PaymentAwaiting))
	assert.False(t, model.CanTransitionPayment(model.PaymentCashOnDelivery, model.PaymentPaid))
}

func TestColorFor(t *testing.T) {
	assert.Equal(t, model.CategoryDanger, model.ColorFor(string(model.ShippingSellerCancelled)))
	assert.Equal(t, model.CategorySuccess, model.ColorFor(string(model.RefundCompleted)))
	assert.Equal(t, model.CategoryNeutral, model.ColorFor("whatever"))
	assert.Equal(t, model.CategoryNeutral, model.ColorFor(""))

	for _, s := range model.ShippingStatuses {
		assert.NotEqual(t, model.CategoryNeutral, model.ColorFor(string(s)), "%q", s)
	}
	for _, s := range model.PaymentStatuses {
		assert.NotEqual(t, model.CategoryNeutral, model.ColorFor(string(s)), "%q", s)
	}
}

func TestParse_Unknown(t *testing.T) {
	_, err := model.ParseShippingStatus("SHIPPED")
	assert.True(t, model.IsValidation(err))
	_, err = model.ParsePaymentMethod("paypal")
	assert.True(t, model.IsValidation(err))
	_, err = model.ParseRefundStatus("")
	assert.True(t, model.IsValidation(err))
}

// =====================
// cancellation guard
// =====================

func TestCanCancel_Matrix(t *testing.T) {
	cancellable := map[model.ShippingStatus]bool{
		model.ShippingAwaitingConfirmation: true,
		model.ShippingConfirmed:            true,
		model.ShippingInTransit:            true,
		model.ShippingDeliveryFailed:       true,
	}

	for _, p := range model.PaymentStatuses {
		for _, s := range model.ShippingStatuses {
			want := cancellable[s] && !p.IsCancelled()
			assert.Equal(t, want, model.CanCancel(p, s), "payment=%q shipping=%q", p, s)
		}
	}
}

func TestNewCancelRequest(t *testing.T) {
	_, err := model.NewCancelRequest("  \t ", "op-1")
	assert.True(t, model.IsValidation(err))

	req, err := model.NewCancelRequest(" khách đổi ý ", "op-1")
	require.NoError(t, err)
	assert.Equal(t, "khách đổi ý", req.Reason)
	assert.Equal(t, model.ShippingSellerCancelled, req.CancelledBy)
	assert.False(t, req.IsAutomatic)
}

// Scenario C. The method alone is not enough: guidance also needs a payment
// status that may have captured money (see the unpaid case in TestRefundRequired).
func TestCancel_MoMoAwaitingConfirmation_NeedsAutoRefund(t *testing.T) {
	o := model.Order{
		ID:             "ord-1",
		Code:           "DH0001",
		PaymentStatus:  model.PaymentPaid,
		ShippingStatus: model.ShippingAwaitingConfirmation,
		PaymentMethod:  model.PaymentMethodMoMo,
		FinalAmount:    99000,
	}
	assert.True(t, o.CanCancel())

	g := model.NewRefundGuidance(o)
	require.NotNil(t, g)
	assert.True(t, g.AutoRefund)
	assert.Equal(t, int64(99000), g.Amount)
	assert.Contains(t, g.Instructions, "DH0001")
}

func TestRefundRequired(t *testing.T) {
	cases := []struct {
		name   string
		method model.PaymentMethod
		status model.PaymentStatus
		want   bool
	}{
		{"cod never captures", model.PaymentMethodCOD, model.PaymentCashOnDelivery, false},
		{"paid momo", model.PaymentMethodMoMo, model.PaymentPaid, true},
		// captured-payment method, but nothing was captured yet
		{"unpaid momo awaiting confirmation", model.PaymentMethodMoMo, model.PaymentAwaiting, false},
		{"paid bank transfer", model.PaymentMethodBankTransfer, model.PaymentPaid, true},
		{"unpaid vnpay", model.PaymentMethodVNPay, model.PaymentAwaiting, false},
		{"expired zalopay", model.PaymentMethodZaloPay, model.PaymentWindowExpired, false},
		{"rejected by issuer", model.PaymentMethodVNPay, model.PaymentRejectedByBank, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			o := model.Order{PaymentMethod: tc.method, PaymentStatus: tc.status}
			assert.Equal(t, tc.want, model.RefundRequired(o))
		})
	}
}

func TestCancel_UnpaidMoMo_CancellableWithoutGuidance(t *testing.T) {
	o := model.Order{
		Code:           "DH0003",
		PaymentStatus:  model.PaymentAwaiting,
		ShippingStatus: model.ShippingAwaitingConfirmation,
		PaymentMethod:  model.PaymentMethodMoMo,
		FinalAmount:    99000,
	}
	assert.True(t, o.CanCancel())
	assert.False(t, model.RefundRequired(o))
	assert.Nil(t, model.NewRefundGuidance(o))
}

func TestRefundGuidance_BankTransferIsManual(t *testing.T) {
	g := model.NewRefundGuidance(model.Order{
		Code:          "DH0009",
		PaymentMethod: model.PaymentMethodBankTransfer,
		PaymentStatus: model.PaymentPaid,
		FinalAmount:   500000,
	})
	require.NotNil(t, g)
	assert.False(t, g.AutoRefund)
	assert.Contains(t, g.Instructions, "transaction id")
}

// =====================
// refund sub-workflow
// =====================

func refundOrder(m model.PaymentMethod, s model.RefundStatus) model.Order {
	return model.Order{
		Code:           "DH0001",
		PaymentMethod:  m,
		PaymentStatus:  model.PaymentSellerCancelled,
		ShippingStatus: model.ShippingSellerCancelled,
		PaymentDetails: &model.PaymentDetails{RefundRequested: true, RefundStatus: s},
	}
}

// Scenario D
func TestCheckAutoRefund_COD(t *testing.T) {
	err := model.CheckAutoRefund(refundOrder(model.PaymentMethodCOD, model.RefundPending))
	assert.True(t, model.IsPrecondition(err))
}

func TestCheckAutoRefund_States(t *testing.T) {
	assert.NoError(t, model.CheckAutoRefund(refundOrder(model.PaymentMethodMoMo, model.RefundPending)))
	assert.NoError(t, model.CheckAutoRefund(refundOrder(model.PaymentMethodZaloPay, model.RefundFailed)))
	assert.Error(t, model.CheckAutoRefund(refundOrder(model.PaymentMethodVNPay, model.RefundProcessing)))
	assert.Error(t, model.CheckAutoRefund(refundOrder(model.PaymentMethodVNPay, model.RefundCompleted)))
	assert.Error(t, model.CheckAutoRefund(refundOrder(model.PaymentMethodBankTransfer, model.RefundPending)))
}

func TestManualRefund_Validate(t *testing.T) {
	m := model.ManualRefund{Action: model.RefundActionCompleted, Method: "bank"}
	assert.True(t, model.IsValidation(m.Validate()))

	m = model.ManualRefund{Action: model.RefundActionCompleted, TransactionID: "tx"}
	assert.True(t, model.IsValidation(m.Validate()))

	m = model.ManualRefund{Action: model.RefundActionReject, Note: "   "}
	assert.True(t, model.IsValidation(m.Validate()))

	m = model.ManualRefund{Action: "refund"}
	assert.True(t, model.IsValidation(m.Validate()))

	m = model.ManualRefund{Action: " approve "}
	require.NoError(t, m.Validate())
	assert.Equal(t, model.RefundActionApprove, m.Action)
}

func TestApplyManualRefund(t *testing.T) {
	cases := []struct {
		from   model.RefundStatus
		action model.RefundAction
		want   model.RefundStatus
		ok     bool
	}{
		{model.RefundPending, model.RefundActionApprove, model.RefundProcessing, true},
		{model.RefundProcessing, model.RefundActionApprove, model.RefundProcessing, false},
		{model.RefundPending, model.RefundActionReject, model.RefundFailed, true},
		{model.RefundProcessing, model.RefundActionReject, model.RefundFailed, true},
		{model.RefundCompleted, model.RefundActionReject, model.RefundCompleted, false},
		{model.RefundFailed, model.RefundActionReject, model.RefundFailed, false},
		{model.RefundPending, model.RefundActionCompleted, model.RefundCompleted, true},
		{model.RefundProcessing, model.RefundActionCompleted, model.RefundCompleted, true},
		{model.RefundCompleted, model.RefundActionCompleted, model.RefundCompleted, false},
		{model.RefundNone, model.RefundActionApprove, model.RefundNone, false},
	}
	for _, tc := range cases {
		got, err := model.ApplyManualRefund(tc.from, tc.action)
		assert.Equal(t, tc.want, got, "%q + %q", tc.from, tc.action)
		if tc.ok {
			assert.NoError(t, err)
		} else {
			assert.True(t, model.IsPrecondition(err), "%q + %q", tc.from, tc.action)
		}
	}
}

func TestReconcileRefund(t *testing.T) {
	next, changed := model.ReconcileRefund(model.RefundProcessing, model.RefundCompleted)
	assert.True(t, changed)
	assert.Equal(t, model.RefundCompleted, next)

	next, changed = model.ReconcileRefund(model.RefundProcessing, model.RefundFailed)
	assert.True(t, changed)
	assert.Equal(t, model.RefundFailed, next)

	// completed never regresses
	next, changed = model.ReconcileRefund(model.RefundCompleted, model.RefundFailed)
	assert.False(t, changed)
	assert.Equal(t, model.RefundCompleted, next)

	// non-terminal reports are ignored
	next, changed = model.ReconcileRefund(model.RefundProcessing, model.RefundPending)
	assert.False(t, changed)
	assert.Equal(t, model.RefundProcessing, next)

	_, changed = model.ReconcileRefund(model.RefundFailed, model.RefundFailed)
	assert.False(t, changed)
}

func TestOrder_RefundStatusWithoutRequest(t *testing.T) {
	o := model.Order{PaymentDetails: &model.PaymentDetails{RefundStatus: model.RefundPending}}
	assert.Equal(t, model.RefundNone, o.RefundStatus())
	assert.False(t, o.RefundRequested())
}
