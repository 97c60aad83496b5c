// Package kafka publishes shipment domain events to Kafka topics.
package kafka

import (
	"time"

	"shipping/internal/core/domain/model/shipment"
)

// Event type constants for shipment domain events.
const (
	EventShipmentCreated       = "shipment.created"
	EventShipmentStatusUpdated = "shipment.status_updated"
)

// AddressPayload carries the receiver address inside event envelopes.
type AddressPayload struct {
	Street string `json:"street"`
	City   string `json:"city"`
	Zip    string `json:"zip"`
}

// ItemPayload carries one ordered product line inside event envelopes.
type ItemPayload struct {
	Product  string `json:"product"`
	Quantity int    `json:"quantity"`
}

// ShipmentCreatedEvent is the Kafka message envelope for shipment creation.
type ShipmentCreatedEvent struct {
	EventType      string         `json:"event_type"`
	ShipmentNumber string         `json:"shipment_number"`
	OrderID        string         `json:"order_id"`
	Address        AddressPayload `json:"address"`
	Carrier        string         `json:"carrier"`
	ReceiverEmail  string         `json:"receiver_email"`
	Status         string         `json:"status"`
	Items          []ItemPayload  `json:"items"`
	OccurredAt     time.Time      `json:"occurred_at"`
}

// ShipmentStatusUpdatedEvent is the Kafka message envelope for status changes.
type ShipmentStatusUpdatedEvent struct {
	EventType      string    `json:"event_type"`
	ShipmentNumber string    `json:"shipment_number"`
	Status         string    `json:"status"`
	OccurredAt     time.Time `json:"occurred_at"`
}

func newShipmentCreatedEvent(aggregate *shipment.Shipment) ShipmentCreatedEvent {
	items := aggregate.Items()
	payloadItems := make([]ItemPayload, 0, len(items))
	for _, item := range items {
		payloadItems = append(payloadItems, ItemPayload{
			Product:  item.Product(),
			Quantity: item.Quantity(),
		})
	}

	return ShipmentCreatedEvent{
		EventType:      EventShipmentCreated,
		ShipmentNumber: aggregate.Number(),
		OrderID:        aggregate.OrderID(),
		Address: AddressPayload{
			Street: aggregate.Address().Street(),
			City:   aggregate.Address().City(),
			Zip:    aggregate.Address().Zip(),
		},
		Carrier:       aggregate.Carrier(),
		ReceiverEmail: aggregate.ReceiverEmail(),
		Status:        aggregate.Status().String(),
		Items:         payloadItems,
		OccurredAt:    time.Now().UTC(),
	}
}

func newShipmentStatusUpdatedEvent(number string, status shipment.Status) ShipmentStatusUpdatedEvent {
	return ShipmentStatusUpdatedEvent{
		EventType:      EventShipmentStatusUpdated,
		ShipmentNumber: number,
		Status:         status.String(),
		OccurredAt:     time.Now().UTC(),
	}
}
