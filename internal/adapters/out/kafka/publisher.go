package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"shipping/internal/core/domain/model/shipment"

	"github.com/segmentio/kafka-go"
)

// Publisher implements the EventPublisher port on top of kafka-go writers.
// Each event kind goes to its own topic; the message key is the shipment
// number, so all events for one shipment land on the same partition in order.
//
// Delivery is at-least-once: the broker acknowledges the write before the
// surrounding business transaction commits, and a commit failure after a
// successful publish leaves the event without a matching row.
type Publisher struct {
	createdWriter *kafka.Writer
	statusWriter  *kafka.Writer
}

// NewPublisher creates a publisher writing to the given broker and topics.
func NewPublisher(brokerAddress, createdTopic, statusUpdatedTopic string) *Publisher {
	return &Publisher{
		createdWriter: &kafka.Writer{
			Addr:     kafka.TCP(brokerAddress),
			Topic:    createdTopic,
			Balancer: &kafka.Hash{},
		},
		statusWriter: &kafka.Writer{
			Addr:     kafka.TCP(brokerAddress),
			Topic:    statusUpdatedTopic,
			Balancer: &kafka.Hash{},
		},
	}
}

// PublishShipmentCreated emits a shipment.created event with the full
// shipment snapshot.
func (p *Publisher) PublishShipmentCreated(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	event := newShipmentCreatedEvent(aggregate)
	return p.publish(ctx, p.createdWriter, event.ShipmentNumber, event)
}

// PublishShipmentStatusUpdated emits a shipment.status_updated event.
func (p *Publisher) PublishShipmentStatusUpdated(
	ctx context.Context,
	number string,
	status shipment.Status,
) error {
	if err := status.Validate(); err != nil {
		return err
	}

	event := newShipmentStatusUpdatedEvent(number, status)
	return p.publish(ctx, p.statusWriter, number, event)
}

func (p *Publisher) publish(ctx context.Context, writer *kafka.Writer, key string, event any) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	err = writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: value,
	})
	if err != nil {
		return fmt.Errorf("failed to write message to %s: %w", writer.Topic, err)
	}

	return nil
}

// Close releases both underlying writers.
func (p *Publisher) Close() error {
	if err := p.createdWriter.Close(); err != nil {
		return err
	}
	return p.statusWriter.Close()
}
