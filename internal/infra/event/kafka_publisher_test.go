package event_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"orderconsole/internal/domain/model"
	"orderconsole/internal/infra/event"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMessage_KeyedByOrderCode(t *testing.T) {
	at := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	e := model.LifecycleEvent{
		EventID:    "evt-1",
		Type:       model.EventOrderCancelled,
		OrderID:    "ord-1",
		OrderCode:  "DH0001",
		Actor:      "op-1",
		From:       string(model.ShippingConfirmed),
		To:         string(model.ShippingSellerCancelled),
		Reason:     "hết hàng",
		OccurredAt: at,
	}

	msg, err := event.NewMessage(e)
	require.NoError(t, err)
	assert.Equal(t, "DH0001", string(msg.Key))
	assert.Equal(t, at, msg.Time)
	require.Len(t, msg.Headers, 1)
	assert.Equal(t, "event_type", msg.Headers[0].Key)
	assert.Equal(t, "order.cancelled", string(msg.Headers[0].Value))

	var got model.LifecycleEvent
	require.NoError(t, json.Unmarshal(msg.Value, &got))
	assert.Equal(t, e, got)
}

func TestNopPublisher(t *testing.T) {
	var p event.NopPublisher
	assert.NoError(t, p.Publish(context.Background(), model.LifecycleEvent{}))
	assert.NoError(t, p.Close())
}
