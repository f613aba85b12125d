// Package resolver turns foreign-key identifiers into the referenced entities.
//
// Resolution always goes to the repository it is handed, which services take
// from the unit of work of the running operation. Nothing is cached: each call
// reflects the state visible to that transaction at the time of the call.
package resolver

import (
	"context"
	"errors"

	"waypoint/internal/core/domain/model/kernel"
	"waypoint/internal/core/domain/model/order"
	"waypoint/internal/core/domain/model/user"
	"waypoint/internal/core/domain/model/vehicle"
	"waypoint/internal/core/ports"
	"waypoint/internal/pkg/errs"
)

// Reference kinds reported in not found errors.
const (
	KindClient  = "client"
	KindDriver  = "driver"
	KindManager = "manager"
	KindOrder   = "order"
	KindVehicle = "vehicle"
)

// Resolver is stateless; the zero value is ready to use.
type Resolver struct{}

func New() Resolver {
	return Resolver{}
}

// Client resolves the user who places an order.
func (Resolver) Client(ctx context.Context, users ports.UserRepository, id kernel.UUID) (*user.User, error) {
	return resolveUser(ctx, users, id, KindClient)
}

// Driver resolves the user assigned to drive a vehicle.
func (Resolver) Driver(ctx context.Context, users ports.UserRepository, id kernel.UUID) (*user.User, error) {
	return resolveUser(ctx, users, id, KindDriver)
}

// Manager resolves the user managing a warehouse.
func (Resolver) Manager(ctx context.Context, users ports.UserRepository, id kernel.UUID) (*user.User, error) {
	return resolveUser(ctx, users, id, KindManager)
}

func (Resolver) Order(ctx context.Context, orders ports.OrderRepository, id kernel.UUID) (*order.Order, error) {
	o, err := orders.Get(ctx, id)
	if err != nil {
		return nil, rekind(err, KindOrder, id)
	}
	return o, nil
}

func (Resolver) Vehicle(ctx context.Context, vehicles ports.VehicleRepository, id kernel.UUID) (*vehicle.Vehicle, error) {
	v, err := vehicles.Get(ctx, id)
	if err != nil {
		return nil, rekind(err, KindVehicle, id)
	}
	return v, nil
}

func resolveUser(ctx context.Context, users ports.UserRepository, id kernel.UUID, kind string) (*user.User, error) {
	u, err := users.Get(ctx, id)
	if err != nil {
		return nil, rekind(err, kind, id)
	}
	return u, nil
}

// rekind reports a missing row under the role it plays in the relation,
// so a missing user surfaces as a missing client, driver or manager.
func rekind(err error, kind string, id kernel.UUID) error {
	if errors.Is(err, errs.ErrObjectNotFound) {
		return errs.NewObjectNotFoundError(kind, id)
	}
	return err
}
