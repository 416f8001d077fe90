package graph

import (
	"context"
	"fmt"

	"github.com/go-viper/mapstructure/v2"

	"github.com/Tanmoy095/LogiSynapse/internal/models"
	"github.com/Tanmoy095/LogiSynapse/query"
	"github.com/Tanmoy095/LogiSynapse/service"
)

// Resolver maps the schema's root fields onto the shipment API.
// It only decodes arguments; every rule lives behind the API.
type Resolver struct {
	api service.ShipmentAPI
}

func NewResolver(api service.ShipmentAPI) *Resolver {
	return &Resolver{api: api}
}

func (r *Resolver) queryFields() map[string]rootField {
	return map[string]rootField{
		"getShipmentsQuery":          r.getShipments,
		"getShipmentByIdQuery":       r.getShipmentByID,
		"getShipmentsPaginatedQuery": r.getShipmentsPaginated,
	}
}

func (r *Resolver) mutationFields() map[string]rootField {
	return map[string]rootField{
		"addShipmentMutation":    r.addShipment,
		"updateShipmentMutation": r.updateShipment,
	}
}

func (r *Resolver) getShipments(ctx context.Context, args map[string]any) (any, error) {
	filter, sort, err := listArgs(args)
	if err != nil {
		return nil, err
	}
	shipments, err := r.api.List(ctx, filter, sort)
	if err != nil {
		return nil, err
	}
	if shipments == nil {
		shipments = []models.Shipment{}
	}
	return shipments, nil
}

func (r *Resolver) getShipmentByID(ctx context.Context, args map[string]any) (any, error) {
	id := idArg(args)
	shipment, err := r.api.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if shipment == nil {
		return nil, nil
	}
	return shipment, nil
}

func (r *Resolver) getShipmentsPaginated(ctx context.Context, args map[string]any) (any, error) {
	filter, sort, err := listArgs(args)
	if err != nil {
		return nil, err
	}
	page, err := decodeArg[query.PageRequest](args, "pagination")
	if err != nil {
		return nil, err
	}
	return r.api.ListPaginated(ctx, filter, sort, page)
}

func (r *Resolver) addShipment(ctx context.Context, args map[string]any) (any, error) {
	input, err := decodeArg[models.ShipmentCreateInput](args, "input")
	if err != nil {
		return nil, err
	}
	if input == nil {
		return nil, fmt.Errorf("%w: input is required", ErrInvalidArgument)
	}
	return r.api.Create(ctx, *input)
}

func (r *Resolver) updateShipment(ctx context.Context, args map[string]any) (any, error) {
	id := idArg(args)
	input, err := decodeArg[models.ShipmentUpdateInput](args, "input")
	if err != nil {
		return nil, err
	}
	if input == nil {
		return nil, fmt.Errorf("%w: input is required", ErrInvalidArgument)
	}
	// an explicit null clears the value, an absent key keeps it
	raw := args["input"]
	input.ClearEstimatedDelivery = explicitNull(raw, "estimatedDelivery")
	if input.Rates != nil {
		input.Rates.ClearTax = explicitNull(raw, "rates", "tax")
		input.Rates.ClearTotal = explicitNull(raw, "rates", "total")
	}
	if input.TrackingData != nil {
		input.TrackingData.ClearEvents = explicitNull(raw, "trackingData", "events")
	}
	shipment, err := r.api.Update(ctx, id, *input)
	if err != nil {
		return nil, err
	}
	if shipment == nil {
		return nil, nil
	}
	return shipment, nil
}

func listArgs(args map[string]any) (*query.Filter, *query.Sort, error) {
	filter, err := decodeArg[query.Filter](args, "filter")
	if err != nil {
		return nil, nil, err
	}
	sort, err := decodeArg[query.Sort](args, "sort")
	if err != nil {
		return nil, nil, err
	}
	return filter, sort, nil
}

// idArg reads the id argument. ID accepts Int literals too, so any
// coerced value is formatted as text.
func idArg(args map[string]any) string {
	v, ok := args["id"]
	if !ok || v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

// explicitNull reports whether the input object holds the key at path with
// a null value. A missing key is not null.
func explicitNull(obj any, path ...string) bool {
	for i, key := range path {
		m, ok := obj.(map[string]any)
		if !ok {
			return false
		}
		v, present := m[key]
		if !present {
			return false
		}
		if i == len(path)-1 {
			return v == nil
		}
		obj = v
	}
	return false
}

// decodeArg decodes args[name] into a new T. A missing or null argument is nil.
func decodeArg[T any](args map[string]any, name string) (*T, error) {
	raw, ok := args[name]
	if !ok || raw == nil {
		return nil, nil
	}
	out := new(T)
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(raw); err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrInvalidArgument, name, err)
	}
	return out, nil
}
