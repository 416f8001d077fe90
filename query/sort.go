package query

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/Tanmoy095/LogiSynapse/internal/models"
)

// SortField names a sortable shipment attribute. Values match the GraphQL enum.
type SortField string

const (
	SortByCreatedAt         SortField = "createdAt"
	SortByUpdatedAt         SortField = "updatedAt"
	SortByStatus            SortField = "status"
	SortByShipperName       SortField = "shipperName"
	SortByCarrierName       SortField = "carrierName"
	SortByEstimatedDelivery SortField = "estimatedDelivery"
)

// SortDirection is ASC or DESC.
type SortDirection string

const (
	Ascending  SortDirection = "ASC"
	Descending SortDirection = "DESC"
)

// Sort selects the ordering of a list. An empty Direction means ASC.
type Sort struct {
	Field     SortField     `json:"field"`
	Direction SortDirection `json:"direction"`
}

// DefaultSort applies when the caller gives no sort at all: newest first.
var DefaultSort = Sort{Field: SortByCreatedAt, Direction: Descending}

// SortShipments returns a sorted copy of shipments; the input is never mutated.
// A nil sort means DefaultSort. The sort is stable and adds no tie-break.
func SortShipments(shipments []models.Shipment, sort *Sort) []models.Shipment {
	spec := DefaultSort
	if sort != nil {
		spec = *sort
	}
	desc := strings.EqualFold(string(spec.Direction), string(Descending))

	// collate.Collator keeps internal buffers, so one per call.
	coll := collate.New(language.English)

	out := slices.Clone(shipments)
	slices.SortStableFunc(out, func(a, b models.Shipment) int {
		c := compareKeys(coll, sortKey(a, spec.Field), sortKey(b, spec.Field))
		if desc {
			return -c
		}
		return c
	})
	return out
}

// sortKey returns the text a shipment sorts by. Unknown fields fall back to
// createdAt; a missing estimatedDelivery sorts as the empty string.
func sortKey(s models.Shipment, field SortField) string {
	switch field {
	case SortByUpdatedAt:
		return s.UpdatedAt
	case SortByStatus:
		return s.Status
	case SortByShipperName:
		return s.ShipperName
	case SortByCarrierName:
		return s.CarrierName
	case SortByEstimatedDelivery:
		if s.EstimatedDelivery == nil {
			return ""
		}
		return *s.EstimatedDelivery
	default:
		return s.CreatedAt
	}
}

// compareKeys is the ascending comparator.
func compareKeys(coll *collate.Collator, a, b string) int {
	if a == b {
		return 0
	}
	return coll.CompareString(a, b)
}
