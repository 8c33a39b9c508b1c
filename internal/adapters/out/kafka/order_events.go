// Package kafka publishes order lifecycle events to a Kafka topic.
// Consumers such as notification services and analytics pipelines subscribe
// to the order changed topic to follow the lifecycle without polling the API.
package kafka

import (
	"context"
	"encoding/json"
	"time"

	"logistics/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

// OrderEventProducer implements ports.OrderEventPublisher on top of a Kafka
// writer. Messages are keyed by order ID so all events for one order land in
// the same partition, preserving their relative order.
type OrderEventProducer struct {
	writer *kafka.Writer
	topic  string
}

// NewOrderEventProducer creates a producer writing to the given topic.
func NewOrderEventProducer(brokers []string, topic string) *OrderEventProducer {
	return &OrderEventProducer{
		topic: topic,
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.LeastBytes{},
			AllowAutoTopicCreation: true,
			BatchTimeout:           100 * time.Millisecond,
		},
	}
}

// PublishOrderChanged writes the event to the order changed topic.
func (p *OrderEventProducer) PublishOrderChanged(ctx context.Context, event ports.OrderChangedEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.OrderID),
		Value: data,
	})
}

// Close flushes pending messages and releases the writer.
func (p *OrderEventProducer) Close() error {
	return p.writer.Close()
}
