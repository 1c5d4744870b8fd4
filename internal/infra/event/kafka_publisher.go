package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"orderconsole/internal/domain/model"

	"github.com/segmentio/kafka-go"
)

// KafkaPublisher writes lifecycle events keyed by order code, so one order's
// events stay on one partition in order.
type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
			BatchTimeout: 10 * time.Millisecond,
			WriteTimeout: 2 * time.Second,
			MaxAttempts:  2,
		},
	}
}

func (p *KafkaPublisher) Publish(ctx context.Context, e model.LifecycleEvent) error {
	msg, err := NewMessage(e)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, msg)
}

// NewMessage encodes e as a kafka message keyed by order code.
func NewMessage(e model.LifecycleEvent) (kafka.Message, error) {
	v, err := json.Marshal(e)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("marshal lifecycle event: %w", err)
	}
	return kafka.Message{
		Key:   []byte(e.OrderCode),
		Value: v,
		Time:  e.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(e.Type)},
		},
	}, nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NopPublisher drops events. Used when no brokers are configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, model.LifecycleEvent) error { return nil }

func (NopPublisher) Close() error { return nil }
