package models

import "time"

/*
Shipment records held by the tracker store and served over GraphQL.
JSON tags match the GraphQL field names, the executor projects on them.
*/

// Shipment statuses seen in practice. The set is open: any string is stored as given.
const (
	ShipmentStatusPending   = "pending"
	ShipmentStatusInTransit = "in_transit"
	ShipmentStatusDelivered = "delivered"
	ShipmentStatusCancelled = "cancelled"
)

// Shipment is the single tracked entity.
type Shipment struct {
	ID                string       `json:"id"` // "ship-<uuid>", assigned once
	ShipperName       string       `json:"shipperName"`
	CarrierName       string       `json:"carrierName"`
	PickupLocation    Address      `json:"pickupLocation"`
	DeliveryLocation  Address      `json:"deliveryLocation"`
	TrackingData      TrackingData `json:"trackingData"`
	Rates             Rates        `json:"rates"`
	Status            string       `json:"status"`
	EstimatedDelivery *string      `json:"estimatedDelivery,omitempty"`
	CreatedAt         string       `json:"createdAt"` // ISO-8601, never changes after create
	UpdatedAt         string       `json:"updatedAt"` // ISO-8601, bumped on every mutation
}

// Address is a postal address. Every part is required on input.
type Address struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// TrackingEvent is one step in a shipment's journey.
type TrackingEvent struct {
	Timestamp   string  `json:"timestamp"`
	Status      string  `json:"status"`
	Location    *string `json:"location,omitempty"`
	Description *string `json:"description,omitempty"`
}

// TrackingData groups the carrier-facing tracking state.
type TrackingData struct {
	Status      string          `json:"status"`
	Events      []TrackingEvent `json:"events"`
	LastUpdated string          `json:"lastUpdated"`
}

// Rates is the price of a shipment. Tax and Total are optional.
type Rates struct {
	Amount   float64  `json:"amount"`
	Currency string   `json:"currency"`
	Tax      *float64 `json:"tax,omitempty"`
	Total    *float64 `json:"total,omitempty"`
}

// Clone returns a copy that shares no slices or pointers with s.
func (s Shipment) Clone() Shipment {
	out := s
	out.EstimatedDelivery = cloneString(s.EstimatedDelivery)
	out.Rates.Tax = cloneFloat(s.Rates.Tax)
	out.Rates.Total = cloneFloat(s.Rates.Total)
	if s.TrackingData.Events != nil {
		out.TrackingData.Events = make([]TrackingEvent, len(s.TrackingData.Events))
		for i, e := range s.TrackingData.Events {
			e.Location = cloneString(e.Location)
			e.Description = cloneString(e.Description)
			out.TrackingData.Events[i] = e
		}
	}
	return out
}

func cloneString(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneFloat(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// TimestampLayout renders UTC instants as fixed-width ISO-8601 text
// ("2006-01-02T15:04:05.000Z"), so text order and time order agree.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// FormatTimestamp renders t in TimestampLayout, in UTC.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}
