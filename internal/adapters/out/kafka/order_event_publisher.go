package kafka

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/twmb/franz-go/pkg/kgo"
)

// orderStatusChangedEvent is the wire representation of a status transition.
type orderStatusChangedEvent struct {
	OrderID        string    `json:"order_id"`
	PreviousStatus string    `json:"previous_status"`
	Status         string    `json:"status"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// OrderEventPublisher publishes order status change events to Kafka.
// It implements ports.StatusObserver.
type OrderEventPublisher struct {
	client *kgo.Client
	topic  string
	logger *slog.Logger
}

// NewOrderEventPublisher creates a Kafka publisher for order status events.
// The caller owns the publisher lifecycle and must call Close on shutdown.
func NewOrderEventPublisher(brokers []string, topic string, logger *slog.Logger) (*OrderEventPublisher, error) {
	if len(brokers) == 0 {
		return nil, errs.NewValueIsRequiredError("brokers")
	}
	if topic == "" {
		return nil, errs.NewValueIsRequiredError("topic")
	}
	if logger == nil {
		return nil, errs.NewValueIsRequiredError("logger")
	}

	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.DefaultProduceTopic(topic),
		kgo.ProduceRequestTimeout(10*time.Second),
		kgo.RequiredAcks(kgo.AllISRAcks()),
		kgo.ClientID("ordering"),
	)
	if err != nil {
		return nil, err
	}

	return &OrderEventPublisher{
		client: client,
		topic:  topic,
		logger: logger.With("component", "kafka_order_events"),
	}, nil
}

// OnStatusChanged publishes a status change event keyed by order ID, so all
// events of one order land in the same partition in transition order.
func (p *OrderEventPublisher) OnStatusChanged(ctx context.Context, aggregate *order.Order, previousStatus string) error {
	if aggregate == nil {
		return errs.NewValueIsRequiredError("aggregate")
	}

	event := orderStatusChangedEvent{
		OrderID:        aggregate.ID().String(),
		PreviousStatus: previousStatus,
		Status:         aggregate.Status().String(),
		OccurredAt:     time.Now().UTC(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	record := &kgo.Record{
		Topic: p.topic,
		Key:   []byte(event.OrderID),
		Value: data,
	}

	if err := p.client.ProduceSync(ctx, record).FirstErr(); err != nil {
		return err
	}

	p.logger.Debug("order status event published",
		"order_id", event.OrderID,
		"previous_status", event.PreviousStatus,
		"status", event.Status)

	return nil
}

// Close flushes pending records and releases the Kafka client.
func (p *OrderEventPublisher) Close() {
	p.client.Close()
}
