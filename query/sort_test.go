package query

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/Tanmoy095/LogiSynapse/internal/models"
)

func strPtr(s string) *string { return &s }

func TestSortShipments_DefaultIsNewestFirst(t *testing.T) {
	got := SortShipments(testShipments(), nil)

	assert.Equal(t, []string{"s4", "s3", "s2", "s1"}, ids(got))
}

func TestSortShipments_MissingDirectionMeansAscending(t *testing.T) {
	got := SortShipments(testShipments(), &Sort{Field: SortByCreatedAt})

	assert.Equal(t, []string{"s1", "s2", "s3", "s4"}, ids(got))
}

func TestSortShipments_ByField(t *testing.T) {
	tests := []struct {
		name     string
		sort     Sort
		expected []string
	}{
		{name: "shipper_asc_is_case_insensitive_by_locale", sort: Sort{Field: SortByShipperName, Direction: Ascending}, expected: []string{"s1", "s4", "s2", "s3"}},
		{name: "shipper_desc", sort: Sort{Field: SortByShipperName, Direction: Descending}, expected: []string{"s3", "s2", "s4", "s1"}},
		{name: "carrier_asc", sort: Sort{Field: SortByCarrierName, Direction: Ascending}, expected: []string{"s2", "s1", "s4", "s3"}},
		{name: "unknown_field_falls_back_to_created_at", sort: Sort{Field: "weight", Direction: Ascending}, expected: []string{"s1", "s2", "s3", "s4"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := SortShipments(testShipments(), &tc.sort)
			assert.Equal(t, tc.expected, ids(got))
		})
	}
}

func TestSortShipments_DoesNotMutateInput(t *testing.T) {
	input := testShipments()
	before := slices.Clone(input)

	_ = SortShipments(input, &Sort{Field: SortByShipperName, Direction: Descending})

	assert.Equal(t, before, input)
}

func TestSortShipments_IsPermutation(t *testing.T) {
	input := testShipments()
	for _, field := range []SortField{SortByCreatedAt, SortByUpdatedAt, SortByStatus, SortByShipperName, SortByCarrierName, SortByEstimatedDelivery} {
		for _, dir := range []SortDirection{Ascending, Descending} {
			got := SortShipments(input, &Sort{Field: field, Direction: dir})
			assert.ElementsMatch(t, input, got, "field %s dir %s", field, dir)
		}
	}
}

func TestSortShipments_DescendingReversesAscending(t *testing.T) {
	input := testShipments()

	asc := ids(SortShipments(input, &Sort{Field: SortByCreatedAt, Direction: Ascending}))
	desc := ids(SortShipments(input, &Sort{Field: SortByCreatedAt, Direction: Descending}))
	slices.Reverse(desc)

	assert.Equal(t, asc, desc)
}

func TestSortShipments_MissingEstimatedDeliverySortsFirstAscending(t *testing.T) {
	input := []models.Shipment{
		{ID: "late", EstimatedDelivery: strPtr("2025-03-01T00:00:00.000Z")},
		{ID: "none"},
		{ID: "early", EstimatedDelivery: strPtr("2025-02-01T00:00:00.000Z")},
	}

	asc := SortShipments(input, &Sort{Field: SortByEstimatedDelivery, Direction: Ascending})
	desc := SortShipments(input, &Sort{Field: SortByEstimatedDelivery, Direction: Descending})

	assert.Equal(t, []string{"none", "early", "late"}, ids(asc))
	assert.Equal(t, []string{"late", "early", "none"}, ids(desc))
}

func TestCompareKeys(t *testing.T) {
	coll := collate.New(language.English)

	tests := []struct {
		name     string
		a, b     string
		expected int
	}{
		{name: "equal_strings", a: "x", b: "x", expected: 0},
		{name: "empty_goes_first", a: "", b: "a", expected: -1},
		{name: "locale_order_ignores_case_first", a: "apple", b: "Banana", expected: -1},
		{name: "locale_order_reversed", a: "Banana", b: "apple", expected: 1},
		{name: "iso_timestamps", a: "2025-01-02T00:00:00.000Z", b: "2025-01-10T00:00:00.000Z", expected: -1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := compareKeys(coll, tc.a, tc.b)
			require.Equal(t, tc.expected, got)
		})
	}
}
