// store/store.go
package store

import (
	"context"
	"errors"

	"github.com/Tanmoy095/LogiSynapse/internal/models"
)

// ErrDuplicateID is returned when a shipment id is already taken.
var ErrDuplicateID = errors.New("shipment id already exists")

// ShipmentStore defines the storage layer used by the shipment service.
// Lookups of unknown ids are not errors: they report found == false.
type ShipmentStore interface {
	// GetShipments returns every shipment in insertion order.
	GetShipments(ctx context.Context) ([]models.Shipment, error)

	// GetShipment returns one shipment by id.
	GetShipment(ctx context.Context, id string) (shipment models.Shipment, found bool, err error)

	// CreateShipment adds a new shipment. The id must be unused.
	CreateShipment(ctx context.Context, shipment models.Shipment) error

	// UpdateShipment runs apply on the current record and stores its result
	// as one atomic read-modify-write. apply is not called for unknown ids.
	UpdateShipment(ctx context.Context, id string, apply func(current models.Shipment) models.Shipment) (updated models.Shipment, found bool, err error)

	// CountShipments returns how many shipments are stored.
	CountShipments(ctx context.Context) (int, error)
}
