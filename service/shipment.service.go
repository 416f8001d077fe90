// service/shipment.service.go
package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Tanmoy095/LogiSynapse/internal/models"
	"github.com/Tanmoy095/LogiSynapse/pkg/logger"
	"github.com/Tanmoy095/LogiSynapse/query"
	"github.com/Tanmoy095/LogiSynapse/shared/contracts"
	"github.com/Tanmoy095/LogiSynapse/store"
)

// DefaultPublishTimeout bounds one fire-and-forget event publish.
const DefaultPublishTimeout = 5 * time.Second

// ShipmentAPI is the read/write surface the GraphQL layer calls.
// ShipmentService implements it; auth.Guard wraps it with role checks.
type ShipmentAPI interface {
	List(ctx context.Context, filter *query.Filter, sort *query.Sort) ([]models.Shipment, error)
	ListPaginated(ctx context.Context, filter *query.Filter, sort *query.Sort, page *query.PageRequest) (query.Connection[models.Shipment], error)
	GetByID(ctx context.Context, id string) (*models.Shipment, error)
	Create(ctx context.Context, input models.ShipmentCreateInput) (*models.Shipment, error)
	Update(ctx context.Context, id string, input models.ShipmentUpdateInput) (*models.Shipment, error)
}

// ShipmentService owns the shipment rules: it shapes lists through the
// filter, sort and paginate pipeline, validates and stamps new records,
// and merges patches. It does not check who is calling.
type ShipmentService struct {
	store           store.ShipmentStore
	publisher       contracts.Publisher
	logger          logger.Logger
	now             func() time.Time
	newID           func() string
	defaultPageSize int
	publishTimeout  time.Duration

	inflight sync.WaitGroup // pending event publishes
}

// Option configures a ShipmentService.
type Option func(*ShipmentService) error

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *ShipmentService) error {
		s.now = now
		return nil
	}
}

// WithIDGenerator replaces the "ship-<uuid>" id scheme.
func WithIDGenerator(newID func() string) Option {
	return func(s *ShipmentService) error {
		s.newID = newID
		return nil
	}
}

// WithPublisher enables shipment.created / shipment.updated events.
func WithPublisher(p contracts.Publisher) Option {
	return func(s *ShipmentService) error {
		s.publisher = p
		return nil
	}
}

// WithPublishTimeout bounds each event publish.
func WithPublishTimeout(d time.Duration) Option {
	return func(s *ShipmentService) error {
		if d > 0 {
			s.publishTimeout = d
		}
		return nil
	}
}

func WithLogger(l logger.Logger) Option {
	return func(s *ShipmentService) error {
		s.logger = l
		return nil
	}
}

// WithDefaultPageSize sets the limit used when a paginated request has none.
func WithDefaultPageSize(size int) Option {
	return func(s *ShipmentService) error {
		if size < 1 || size > query.MaxPageSize {
			return fmt.Errorf("%w: got %d", ErrInvalidPageSize, size)
		}
		s.defaultPageSize = size
		return nil
	}
}

// NewShipmentService wires the service to its store.
func NewShipmentService(st store.ShipmentStore, opts ...Option) (*ShipmentService, error) {
	s := &ShipmentService{
		store:           st,
		logger:          logger.Nop(),
		now:             time.Now,
		newID:           NewShipmentID,
		defaultPageSize: query.DefaultPageSize,
		publishTimeout:  DefaultPublishTimeout,
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// NewShipmentID returns "ship-" followed by a random UUID.
func NewShipmentID() string {
	return "ship-" + uuid.NewString()
}

// NewID exposes the configured id generator so the demo seed shares it.
func (s *ShipmentService) NewID() string {
	return s.newID()
}

// List returns every shipment matching filter, ordered by sort.
func (s *ShipmentService) List(ctx context.Context, filter *query.Filter, sort *query.Sort) ([]models.Shipment, error) {
	all, err := s.store.GetShipments(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load shipments: %w", err)
	}
	return query.SortShipments(query.FilterShipments(all, filter), sort), nil
}

// ListPaginated is List followed by one page of the result.
func (s *ShipmentService) ListPaginated(ctx context.Context, filter *query.Filter, sort *query.Sort, page *query.PageRequest) (query.Connection[models.Shipment], error) {
	shipments, err := s.List(ctx, filter, sort)
	if err != nil {
		return query.Connection[models.Shipment]{}, err
	}
	return query.Paginate(shipments, page, s.defaultPageSize), nil
}

// GetByID returns nil, nil for an unknown id.
func (s *ShipmentService) GetByID(ctx context.Context, id string) (*models.Shipment, error) {
	shipment, found, err := s.store.GetShipment(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get shipment %s: %w", id, err)
	}
	if !found {
		return nil, nil
	}
	return &shipment, nil
}

// Create validates input, assigns id and timestamps, fills default tracking
// data and stores the new shipment.
func (s *ShipmentService) Create(ctx context.Context, input models.ShipmentCreateInput) (*models.Shipment, error) {
	if missing := missingCreateFields(input); len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing required fields: %s", ErrValidation, strings.Join(missing, ", "))
	}

	now := models.FormatTimestamp(s.now())
	shipment := models.Shipment{
		ID:                s.newID(),
		ShipperName:       input.ShipperName,
		CarrierName:       input.CarrierName,
		PickupLocation:    *input.PickupLocation,
		DeliveryLocation:  *input.DeliveryLocation,
		TrackingData:      defaultTracking(input.TrackingData, now),
		Rates:             *input.Rates,
		Status:            input.Status,
		EstimatedDelivery: input.EstimatedDelivery,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	// detach from caller-owned pointers
	shipment = shipment.Clone()

	if err := s.store.CreateShipment(ctx, shipment); err != nil {
		return nil, fmt.Errorf("failed to create shipment: %w", err)
	}
	s.logger.Info("shipment created", "shipment_id", shipment.ID, "status", shipment.Status)
	s.publish(contracts.EventShipmentCreated, shipment)
	return &shipment, nil
}

// Update applies a partial patch and returns the merged record, or nil, nil
// when the id is unknown. Addresses are replaced whole; tracking data and
// rates are merged one level deep.
func (s *ShipmentService) Update(ctx context.Context, id string, input models.ShipmentUpdateInput) (*models.Shipment, error) {
	now := models.FormatTimestamp(s.now())
	updated, found, err := s.store.UpdateShipment(ctx, id, func(current models.Shipment) models.Shipment {
		return applyUpdate(current, input, now)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update shipment %s: %w", id, err)
	}
	if !found {
		return nil, nil
	}
	s.logger.Info("shipment updated", "shipment_id", id, "status", updated.Status)
	s.publish(contracts.EventShipmentUpdated, updated)
	return &updated, nil
}

// Drain waits for in-flight event publishes. Call it before closing the publisher.
func (s *ShipmentService) Drain() {
	s.inflight.Wait()
}

// publish sends the event in the background. Failures are logged only: the
// store write has already happened and the caller gets its record regardless.
func (s *ShipmentService) publish(event string, shipment models.Shipment) {
	if s.publisher == nil {
		return
	}
	envelope := contracts.ShipmentEvent{
		Event:      event,
		Payload:    shipment,
		OccurredAt: models.FormatTimestamp(s.now()),
	}
	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()
		ctx, cancel := context.WithTimeout(context.Background(), s.publishTimeout)
		defer cancel()
		if err := s.publisher.Publish(ctx, shipment.ID, envelope); err != nil {
			s.logger.Error("failed to publish shipment event", "event", event, "shipment_id", shipment.ID, "error", err)
		}
	}()
}

func missingCreateFields(in models.ShipmentCreateInput) []string {
	var missing []string
	if strings.TrimSpace(in.ShipperName) == "" {
		missing = append(missing, "shipperName")
	}
	if strings.TrimSpace(in.CarrierName) == "" {
		missing = append(missing, "carrierName")
	}
	missing = append(missing, missingAddressFields("pickupLocation", in.PickupLocation)...)
	missing = append(missing, missingAddressFields("deliveryLocation", in.DeliveryLocation)...)
	if in.Rates == nil {
		missing = append(missing, "rates")
	} else if strings.TrimSpace(in.Rates.Currency) == "" {
		missing = append(missing, "rates.currency")
	}
	if strings.TrimSpace(in.Status) == "" {
		missing = append(missing, "status")
	}
	return missing
}

func missingAddressFields(prefix string, a *models.Address) []string {
	if a == nil {
		return []string{prefix}
	}
	var missing []string
	parts := []struct {
		name  string
		value string
	}{
		{"street", a.Street},
		{"city", a.City},
		{"state", a.State},
		{"postalCode", a.PostalCode},
		{"country", a.Country},
	}
	for _, p := range parts {
		if strings.TrimSpace(p.value) == "" {
			missing = append(missing, prefix+"."+p.name)
		}
	}
	return missing
}

// defaultTracking fills whatever part of the tracking data the caller left out.
func defaultTracking(in *models.TrackingDataInput, now string) models.TrackingData {
	td := models.TrackingData{
		Status:      models.ShipmentStatusPending,
		Events:      []models.TrackingEvent{},
		LastUpdated: now,
	}
	if in == nil {
		return td
	}
	if in.Status != nil {
		td.Status = *in.Status
	}
	if in.Events != nil {
		td.Events = in.Events
	}
	if in.LastUpdated != nil {
		td.LastUpdated = *in.LastUpdated
	}
	return td
}

func applyUpdate(current models.Shipment, in models.ShipmentUpdateInput, now string) models.Shipment {
	if in.ShipperName != nil {
		current.ShipperName = *in.ShipperName
	}
	if in.CarrierName != nil {
		current.CarrierName = *in.CarrierName
	}
	if in.PickupLocation != nil {
		current.PickupLocation = *in.PickupLocation
	}
	if in.DeliveryLocation != nil {
		current.DeliveryLocation = *in.DeliveryLocation
	}
	if td := in.TrackingData; td != nil {
		if td.Status != nil {
			current.TrackingData.Status = *td.Status
		}
		switch {
		case td.ClearEvents:
			current.TrackingData.Events = nil
		case td.Events != nil:
			current.TrackingData.Events = td.Events
		}
		if td.LastUpdated != nil {
			current.TrackingData.LastUpdated = *td.LastUpdated
		}
	}
	if r := in.Rates; r != nil {
		if r.Amount != nil {
			current.Rates.Amount = *r.Amount
		}
		if r.Currency != nil {
			current.Rates.Currency = *r.Currency
		}
		switch {
		case r.ClearTax:
			current.Rates.Tax = nil
		case r.Tax != nil:
			current.Rates.Tax = r.Tax
		}
		switch {
		case r.ClearTotal:
			current.Rates.Total = nil
		case r.Total != nil:
			current.Rates.Total = r.Total
		}
	}
	if in.Status != nil {
		current.Status = *in.Status
	}
	switch {
	case in.ClearEstimatedDelivery:
		current.EstimatedDelivery = nil
	case in.EstimatedDelivery != nil:
		current.EstimatedDelivery = in.EstimatedDelivery
	}
	current.UpdatedAt = now
	return current.Clone()
}
