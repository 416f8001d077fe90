// Package query holds the list-shaping pipeline: filter, then sort, then paginate.
// Every function here is pure; none of them touch the store.
package query

import (
	"strings"

	"github.com/Tanmoy095/LogiSynapse/internal/models"
)

// Filter narrows a shipment list. Every non-empty field is one predicate and
// predicates are AND-combined. An empty string means "not provided".
type Filter struct {
	ShipperName   string `json:"shipperName"`   // case-insensitive substring
	CarrierName   string `json:"carrierName"`   // case-insensitive substring
	Status        string `json:"status"`        // case-insensitive exact
	CreatedAfter  string `json:"createdAfter"`  // inclusive, compared as ISO-8601 text
	CreatedBefore string `json:"createdBefore"` // inclusive, compared as ISO-8601 text
}

// IsZero reports whether the filter has no active predicate.
func (f Filter) IsZero() bool {
	return f == Filter{}
}

// Matches reports whether s satisfies every active predicate of f.
func (f Filter) Matches(s models.Shipment) bool {
	if f.ShipperName != "" && !containsFold(s.ShipperName, f.ShipperName) {
		return false
	}
	if f.CarrierName != "" && !containsFold(s.CarrierName, f.CarrierName) {
		return false
	}
	if f.Status != "" && !strings.EqualFold(s.Status, f.Status) {
		return false
	}
	// ISO-8601 timestamps order the same way as text and as time.
	if f.CreatedAfter != "" && s.CreatedAt < f.CreatedAfter {
		return false
	}
	if f.CreatedBefore != "" && s.CreatedAt > f.CreatedBefore {
		return false
	}
	return true
}

// FilterShipments returns the shipments matching filter, in input order.
// A nil or empty filter returns the input slice itself.
func FilterShipments(shipments []models.Shipment, filter *Filter) []models.Shipment {
	if filter == nil || filter.IsZero() {
		return shipments
	}
	out := make([]models.Shipment, 0, len(shipments))
	for _, s := range shipments {
		if filter.Matches(s) {
			out = append(out, s)
		}
	}
	return out
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
