// Package kafka publishes order lifecycle events to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"waypoint/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

// Writer is the subset of *kafka.Writer the publisher needs.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// orderChangedMessage is the wire payload of the order-changed topic.
type orderChangedMessage struct {
	OrderID    string    `json:"orderId"`
	ClientID   string    `json:"clientId"`
	Status     string    `json:"status"`
	Change     string    `json:"change"`
	OccurredAt time.Time `json:"occurredAt"`
}

// OrderChangedPublisher implements ports.OrderEventPublisher. Messages are
// keyed by order id so every change to one order lands on one partition.
type OrderChangedPublisher struct {
	writer Writer
}

var _ ports.OrderEventPublisher = (*OrderChangedPublisher)(nil)

// NewOrderChangedPublisher connects to broker and writes to topic.
func NewOrderChangedPublisher(broker, topic string) *OrderChangedPublisher {
	return NewOrderChangedPublisherWithWriter(&kafka.Writer{
		Addr:                   kafka.TCP(broker),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	})
}

func NewOrderChangedPublisherWithWriter(w Writer) *OrderChangedPublisher {
	return &OrderChangedPublisher{writer: w}
}

func (p *OrderChangedPublisher) PublishOrderChanged(ctx context.Context, event ports.OrderChangedEvent) error {
	payload, err := json.Marshal(orderChangedMessage{
		OrderID:    event.OrderID.String(),
		ClientID:   event.ClientID.String(),
		Status:     event.Status.String(),
		Change:     string(event.Change),
		OccurredAt: event.OccurredAt.UTC(),
	})
	if err != nil {
		return fmt.Errorf("marshal order changed event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(event.OrderID.String()),
		Value: payload,
		Time:  event.OccurredAt,
		Headers: []kafka.Header{
			{Key: "change", Value: []byte(event.Change)},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write order changed event: %w", err)
	}

	return nil
}

// Close flushes pending messages and releases the connection.
func (p *OrderChangedPublisher) Close() error {
	return p.writer.Close()
}

// NopPublisher drops every event. Used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) PublishOrderChanged(context.Context, ports.OrderChangedEvent) error { return nil }
