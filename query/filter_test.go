package query

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Tanmoy095/LogiSynapse/internal/models"
)

func testShipments() []models.Shipment {
	return []models.Shipment{
		{ID: "s1", ShipperName: "Acme Corp", CarrierName: "FedEx", Status: "pending", CreatedAt: "2025-01-01T10:00:00.000Z"},
		{ID: "s2", ShipperName: "Global Goods", CarrierName: "DHL Express", Status: "delivered", CreatedAt: "2025-01-02T10:00:00.000Z"},
		{ID: "s3", ShipperName: "Pacific Imports", CarrierName: "UPS", Status: "in_transit", CreatedAt: "2025-01-03T10:00:00.000Z"},
		{ID: "s4", ShipperName: "acme logistics", CarrierName: "fedex ground", Status: "Delivered", CreatedAt: "2025-01-04T10:00:00.000Z"},
	}
}

func ids(shipments []models.Shipment) []string {
	out := make([]string, len(shipments))
	for i, s := range shipments {
		out[i] = s.ID
	}
	return out
}

func TestFilterShipments(t *testing.T) {
	tests := []struct {
		name     string
		filter   *Filter
		expected []string
	}{
		{name: "nil_filter_is_identity", filter: nil, expected: []string{"s1", "s2", "s3", "s4"}},
		{name: "zero_filter_keeps_everything", filter: &Filter{}, expected: []string{"s1", "s2", "s3", "s4"}},
		{name: "shipper_substring_ignores_case", filter: &Filter{ShipperName: "ACME"}, expected: []string{"s1", "s4"}},
		{name: "carrier_substring_ignores_case", filter: &Filter{CarrierName: "fed"}, expected: []string{"s1", "s4"}},
		{name: "status_is_exact_and_ignores_case", filter: &Filter{Status: "DELIVERED"}, expected: []string{"s2", "s4"}},
		{name: "status_does_not_match_substring", filter: &Filter{Status: "deliver"}, expected: []string{}},
		{name: "created_after_is_inclusive", filter: &Filter{CreatedAfter: "2025-01-03T10:00:00.000Z"}, expected: []string{"s3", "s4"}},
		{name: "created_before_is_inclusive", filter: &Filter{CreatedBefore: "2025-01-02T10:00:00.000Z"}, expected: []string{"s1", "s2"}},
		{
			name:     "predicates_are_and_combined",
			filter:   &Filter{ShipperName: "acme", Status: "delivered", CreatedAfter: "2025-01-01T00:00:00.000Z"},
			expected: []string{"s4"},
		},
		{name: "no_match_returns_empty", filter: &Filter{ShipperName: "nobody"}, expected: []string{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := FilterShipments(testShipments(), tc.filter)
			assert.Equal(t, tc.expected, ids(got))
		})
	}
}

func TestFilterShipments_ResultIsSubsetSatisfyingEveryPredicate(t *testing.T) {
	all := testShipments()
	filters := []Filter{
		{ShipperName: "a"},
		{CarrierName: "e", Status: "pending"},
		{CreatedAfter: "2025-01-02", CreatedBefore: "2025-01-04"},
		{ShipperName: "o", CarrierName: "x", Status: "delivered"},
	}

	for _, f := range filters {
		got := FilterShipments(all, &f)
		assert.LessOrEqual(t, len(got), len(all))
		for _, s := range got {
			assert.Contains(t, all, s)
			assert.True(t, f.Matches(s), "every result must satisfy the filter %+v", f)
		}
	}
}

func TestFilter_IsZero(t *testing.T) {
	assert.True(t, Filter{}.IsZero())
	assert.False(t, Filter{Status: "pending"}.IsZero())
}

func TestFilterShipments_EmptyFilterKeepsEverythingInOrder(t *testing.T) {
	all := testShipments()

	got := FilterShipments(all, &Filter{})

	assert.Equal(t, []string{"s1", "s2", "s3", "s4"}, ids(got))
}
