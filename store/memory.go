package store

import (
	"context"
	"sync"

	"github.com/Tanmoy095/LogiSynapse/internal/models"
)

// MemoryStore keeps shipments in a map for the lifetime of the process.
// One mutex guards the map and the insertion order, so UpdateShipment is
// atomic. There is no version token: two updates of the same id are
// last-write-wins.
type MemoryStore struct {
	mu        sync.RWMutex
	shipments map[string]models.Shipment
	order     []string // ids in insertion order
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		shipments: make(map[string]models.Shipment),
	}
}

func (s *MemoryStore) GetShipments(ctx context.Context) ([]models.Shipment, error) {
	// Check if the context is canceled or timed out
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.Shipment, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, s.shipments[id].Clone())
	}
	return result, nil
}

func (s *MemoryStore) GetShipment(ctx context.Context, id string) (models.Shipment, bool, error) {
	if err := ctx.Err(); err != nil {
		return models.Shipment{}, false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	shipment, ok := s.shipments[id]
	if !ok {
		return models.Shipment{}, false, nil
	}
	return shipment.Clone(), true, nil
}

func (s *MemoryStore) CreateShipment(ctx context.Context, shipment models.Shipment) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.shipments[shipment.ID]; exists {
		return ErrDuplicateID
	}
	s.shipments[shipment.ID] = shipment.Clone()
	s.order = append(s.order, shipment.ID)
	return nil
}

func (s *MemoryStore) UpdateShipment(ctx context.Context, id string, apply func(current models.Shipment) models.Shipment) (models.Shipment, bool, error) {
	if err := ctx.Err(); err != nil {
		return models.Shipment{}, false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.shipments[id]
	if !ok {
		return models.Shipment{}, false, nil
	}
	updated := apply(current.Clone())
	// the id is immutable whatever apply returns
	updated.ID = id
	s.shipments[id] = updated.Clone()
	return updated, true, nil
}

func (s *MemoryStore) CountShipments(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.shipments), nil
}
