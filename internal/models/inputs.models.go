package models

// ShipmentCreateInput carries the caller-supplied part of a new shipment.
// Pointers mark nested objects that the boundary may omit; the service
// rejects the input when a required one is missing.
type ShipmentCreateInput struct {
	ShipperName       string             `json:"shipperName"`
	CarrierName       string             `json:"carrierName"`
	PickupLocation    *Address           `json:"pickupLocation"`
	DeliveryLocation  *Address           `json:"deliveryLocation"`
	TrackingData      *TrackingDataInput `json:"trackingData"`
	Rates             *Rates             `json:"rates"`
	Status            string             `json:"status"`
	EstimatedDelivery *string            `json:"estimatedDelivery"`
}

// ShipmentUpdateInput is a partial patch. Nil means "keep the current value".
type ShipmentUpdateInput struct {
	ShipperName      *string            `json:"shipperName"`
	CarrierName      *string            `json:"carrierName"`
	PickupLocation   *Address           `json:"pickupLocation"`
	DeliveryLocation *Address           `json:"deliveryLocation"`
	TrackingData     *TrackingDataInput `json:"trackingData"`
	Rates            *RatesInput        `json:"rates"`
	Status           *string            `json:"status"`

	EstimatedDelivery *string `json:"estimatedDelivery"`
	// ClearEstimatedDelivery is set when the caller sent an explicit null,
	// which removes the estimate instead of keeping it.
	ClearEstimatedDelivery bool `json:"-"`
}

// TrackingDataInput is merged one level deep into the existing tracking data.
type TrackingDataInput struct {
	Status      *string         `json:"status"`
	Events      []TrackingEvent `json:"events"`
	LastUpdated *string         `json:"lastUpdated"`

	// ClearEvents marks an explicit null for events on update.
	ClearEvents bool `json:"-"`
}

// RatesInput is merged one level deep into the existing rates.
// ClearTax and ClearTotal mark explicit nulls, which remove the value.
type RatesInput struct {
	Amount   *float64 `json:"amount"`
	Currency *string  `json:"currency"`
	Tax      *float64 `json:"tax"`
	Total    *float64 `json:"total"`

	ClearTax   bool `json:"-"`
	ClearTotal bool `json:"-"`
}
