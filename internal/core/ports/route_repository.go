package ports

import (
	"context"

	"waypoint/internal/core/domain/model/kernel"
	"waypoint/internal/core/domain/model/route"
)

// RouteRepository defines the persistence contract for routes.
type RouteRepository interface {
	Add(ctx context.Context, r *route.Route) error
	Update(ctx context.Context, r *route.Route) error
	Get(ctx context.Context, id kernel.UUID) (*route.Route, error)
	GetAll(ctx context.Context) ([]*route.Route, error)
	GetAllByVehicle(ctx context.Context, vehicleID kernel.UUID) ([]*route.Route, error)
	Delete(ctx context.Context, id kernel.UUID) error
	Exists(ctx context.Context, id kernel.UUID) (bool, error)
}
