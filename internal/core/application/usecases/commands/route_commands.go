package commands

import (
	"errors"

	"waypoint/internal/core/domain/model/kernel"
	"waypoint/internal/pkg/guard"
)

var (
	ErrCreateRouteCommandIsNotConstructed = errors.New(
		"CreateRouteCommand must be created via NewCreateRouteCommand constructor",
	)
	ErrUpdateRouteCommandIsNotConstructed = errors.New(
		"UpdateRouteCommand must be created via NewUpdateRouteCommand constructor",
	)
)

// RouteDetails holds the route fields that can be replaced after creation.
type RouteDetails struct {
	Origin            string
	Destination       string
	EstimatedTime     string
	TrafficConditions string
}

func (d RouteDetails) validate() error {
	return errors.Join(
		requireText("origin", d.Origin),
		requireText("destination", d.Destination),
	)
}

// CreateRouteCommand registers a route for an existing vehicle.
type CreateRouteCommand struct {
	vehicleID kernel.UUID
	details   RouteDetails

	guard guard.ConstructorGuard
}

func NewCreateRouteCommand(vehicleID kernel.UUID, details RouteDetails) (CreateRouteCommand, error) {
	if err := errors.Join(requireID("vehicleId", vehicleID), details.validate()); err != nil {
		return CreateRouteCommand{}, err
	}

	return CreateRouteCommand{
		vehicleID: vehicleID,
		details:   details,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c CreateRouteCommand) Validate() error {
	return c.guard.Validate(ErrCreateRouteCommandIsNotConstructed)
}

func (c CreateRouteCommand) VehicleID() kernel.UUID { return c.vehicleID }
func (c CreateRouteCommand) Details() RouteDetails  { return c.details }

// UpdateRouteCommand replaces every route field except its vehicle.
type UpdateRouteCommand struct {
	routeID kernel.UUID
	details RouteDetails

	guard guard.ConstructorGuard
}

func NewUpdateRouteCommand(routeID kernel.UUID, details RouteDetails) (UpdateRouteCommand, error) {
	if err := errors.Join(requireID("routeId", routeID), details.validate()); err != nil {
		return UpdateRouteCommand{}, err
	}

	return UpdateRouteCommand{
		routeID: routeID,
		details: details,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateRouteCommand) Validate() error {
	return c.guard.Validate(ErrUpdateRouteCommandIsNotConstructed)
}

func (c UpdateRouteCommand) RouteID() kernel.UUID  { return c.routeID }
func (c UpdateRouteCommand) Details() RouteDetails { return c.details }
