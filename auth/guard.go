package auth

import (
	"context"

	"github.com/Tanmoy095/LogiSynapse/internal/models"
	"github.com/Tanmoy095/LogiSynapse/query"
	"github.com/Tanmoy095/LogiSynapse/service"
)

// Guard enforces the role rules in front of a ShipmentAPI:
// reads are open, create needs any known role, update needs admin.
type Guard struct {
	next service.ShipmentAPI
}

var _ service.ShipmentAPI = (*Guard)(nil)

func NewGuard(next service.ShipmentAPI) *Guard {
	return &Guard{next: next}
}

func (g *Guard) List(ctx context.Context, filter *query.Filter, sort *query.Sort) ([]models.Shipment, error) {
	return g.next.List(ctx, filter, sort)
}

func (g *Guard) ListPaginated(ctx context.Context, filter *query.Filter, sort *query.Sort, page *query.PageRequest) (query.Connection[models.Shipment], error) {
	return g.next.ListPaginated(ctx, filter, sort, page)
}

func (g *Guard) GetByID(ctx context.Context, id string) (*models.Shipment, error) {
	return g.next.GetByID(ctx, id)
}

func (g *Guard) Create(ctx context.Context, input models.ShipmentCreateInput) (*models.Shipment, error) {
	if !FromContext(ctx).Authenticated() {
		return nil, ErrUnauthenticated
	}
	return g.next.Create(ctx, input)
}

func (g *Guard) Update(ctx context.Context, id string, input models.ShipmentUpdateInput) (*models.Shipment, error) {
	caller := FromContext(ctx)
	if !caller.Authenticated() {
		return nil, ErrUnauthenticated
	}
	if !caller.IsAdmin() {
		return nil, ErrForbidden
	}
	return g.next.Update(ctx, id, input)
}
