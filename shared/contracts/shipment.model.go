package contracts

import (
	"context"

	"github.com/Tanmoy095/LogiSynapse/internal/models"
)

// Event names published after a shipment changes.
const (
	EventShipmentCreated = "shipment.created"
	EventShipmentUpdated = "shipment.updated"
)

// ShipmentEvent is the envelope every backend receives. Consumers switch on
// Event and read the full record from Payload.
type ShipmentEvent struct {
	Event      string          `json:"event"`
	Payload    models.Shipment `json:"payload"`
	OccurredAt string          `json:"occurredAt"`
}

// Publisher is implemented by the kafka producer and the rabbitmq publisher.
// The key is the shipment id so one shipment's events stay ordered.
type Publisher interface {
	Publish(ctx context.Context, key string, value any) error
	Close() error
}
