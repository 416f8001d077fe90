package store

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/Tanmoy095/LogiSynapse/internal/models"
)

// DemoShipmentCount is how many shipments Seed inserts into an empty store.
const DemoShipmentCount = 30

var demoCities = []models.Address{
	{Street: "123 Main St", City: "New York", State: "NY", PostalCode: "10001"},
	{Street: "456 Oak Ave", City: "Los Angeles", State: "CA", PostalCode: "90001"},
	{Street: "789 Harbor Rd", City: "Miami", State: "FL", PostalCode: "33101"},
	{Street: "321 Commerce St", City: "Chicago", State: "IL", PostalCode: "60601"},
	{Street: "100 Port Ave", City: "Seattle", State: "WA", PostalCode: "98101"},
	{Street: "200 Trade St", City: "Boston", State: "MA", PostalCode: "02101"},
	{Street: "500 Innovation Dr", City: "Austin", State: "TX", PostalCode: "78701"},
	{Street: "600 Market St", City: "San Francisco", State: "CA", PostalCode: "94102"},
	{Street: "700 Industrial Blvd", City: "Denver", State: "CO", PostalCode: "80201"},
	{Street: "800 Logistics Way", City: "Phoenix", State: "AZ", PostalCode: "85001"},
	{Street: "900 Warehouse Rd", City: "Dallas", State: "TX", PostalCode: "75201"},
	{Street: "1100 Cargo Ln", City: "Atlanta", State: "GA", PostalCode: "30301"},
	{Street: "1200 Freight Ave", City: "Detroit", State: "MI", PostalCode: "48201"},
	{Street: "1300 Ship St", City: "Philadelphia", State: "PA", PostalCode: "19101"},
	{Street: "1400 Transit Blvd", City: "Houston", State: "TX", PostalCode: "77001"},
}

var demoShippers = []string{
	"Acme Corp", "Global Goods", "Pacific Imports", "Tech Supplies Inc",
	"North Star Logistics", "Summit Freight", "Valley Distribution", "Coast to Coast",
	"Metro Movers", "Prime Cargo", "Elite Shipping", "Swift Logistics",
	"United Freight", "Central Transport", "Eastern Express", "Western Carriers",
	"Delta Logistics", "Omega Shipping", "Alpha Freight", "Beta Transport",
	"Gamma Cargo", "Atlas Movers", "Pioneer Logistics", "Horizon Shipping",
	"Apex Freight", "Vertex Transport", "Nova Logistics", "Stellar Cargo",
	"Quantum Shipping", "Zenith Freight",
}

var demoCarriers = []string{
	"FastFreight", "ShipIt", "DHL Express", "FedEx", "UPS", "USPS",
	"XPO Logistics", "JB Hunt", "Werner", "Schneider", "Landstar",
	"Old Dominion", "Estes", "ABF", "R+L Carriers", "Saia",
	"Yellow Freight", "Xpress", "Knight-Swift", "Heartland",
	"Covenant", "Prime Inc", "Swift Transport", "Werner Enterprises",
	"CR England", "Roehl", "Marten", "USA Truck", "Celadon", "Forward Air",
}

var demoStatuses = []string{
	models.ShipmentStatusPending,
	models.ShipmentStatusInTransit,
	models.ShipmentStatusDelivered,
}

// DemoShipments builds the deterministic demo dataset relative to now.
// Ids come from newID so callers share the service's id scheme.
func DemoShipments(now time.Time, newID func() string) []models.Shipment {
	stamp := models.FormatTimestamp(now)
	out := make([]models.Shipment, 0, DemoShipmentCount)

	for i := 0; i < DemoShipmentCount; i++ {
		status := demoStatuses[i%len(demoStatuses)]
		pickup := demoAddress(demoCities[i%len(demoCities)])
		delivery := demoAddress(demoCities[(i+5)%len(demoCities)])

		amount := 50 + float64(i%20)*12.5
		tax := math.Round(amount*0.08*100) / 100
		total := amount + tax
		eta := models.FormatTimestamp(now.AddDate(0, 0, 3+i%14))

		events := []models.TrackingEvent{}
		if status != models.ShipmentStatusPending {
			eventStatus, description := "picked_up", "Package picked up"
			if status == models.ShipmentStatusDelivered {
				eventStatus, description = "delivered", "Delivered"
			}
			city := pickup.City
			events = append(events, models.TrackingEvent{
				Timestamp:   stamp,
				Status:      eventStatus,
				Location:    &city,
				Description: &description,
			})
		}

		out = append(out, models.Shipment{
			ID:               newID(),
			ShipperName:      demoShippers[i],
			CarrierName:      demoCarriers[i],
			PickupLocation:   pickup,
			DeliveryLocation: delivery,
			TrackingData: models.TrackingData{
				Status:      status,
				Events:      events,
				LastUpdated: stamp,
			},
			Rates: models.Rates{
				Amount:   amount,
				Currency: "USD",
				Tax:      &tax,
				Total:    &total,
			},
			Status:            status,
			EstimatedDelivery: &eta,
			CreatedAt:         stamp,
			UpdatedAt:         stamp,
		})
	}
	return out
}

// Seed fills an empty store with DemoShipments and returns how many were
// inserted. A store that already holds data is left alone.
func Seed(ctx context.Context, st ShipmentStore, now time.Time, newID func() string) (int, error) {
	count, err := st.CountShipments(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count shipments: %w", err)
	}
	if count > 0 {
		return 0, nil
	}
	demos := DemoShipments(now, newID)
	for _, s := range demos {
		if err := st.CreateShipment(ctx, s); err != nil {
			return 0, fmt.Errorf("failed to seed shipment %s: %w", s.ID, err)
		}
	}
	return len(demos), nil
}

func demoAddress(a models.Address) models.Address {
	a.Country = "USA"
	return a
}
