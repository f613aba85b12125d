package route

import (
	"errors"
	"strings"

	"waypoint/internal/core/domain/model/kernel"
	"waypoint/internal/pkg/errs"
)

// ErrRouteIsNotConstructed indicates a Route that was not built by NewRoute or RestoreRoute.
var ErrRouteIsNotConstructed = errors.New("Route must be created via NewRoute constructor")

// Route is bound to one vehicle for its whole life.
type Route struct {
	id                kernel.UUID
	vehicleID         kernel.UUID
	origin            string
	destination       string
	estimatedTime     string
	trafficConditions string

	isConstructed bool
}

// NewRoute creates a route for the given vehicle.
//
// Parameters:
//   - id: The route identifier, must not be the nil UUID
//   - vehicleID: The vehicle serving the route, required
//   - origin, destination: Required, blank values are rejected
//   - estimatedTime, trafficConditions: Free text, may be empty
//
// Returns:
//   - *Route: The created route if all validations pass
//   - error: Every validation failure joined together
//
// Example:
//
//	r, err := route.NewRoute(kernel.NewUUID(), v.ID(), "Depot", "Harbor", "2h", "light")
//	if err != nil {
//	    // Handle validation error
//	}
func NewRoute(id, vehicleID kernel.UUID, origin, destination, estimatedTime, trafficConditions string) (*Route, error) {
	r := &Route{id: id, vehicleID: vehicleID, isConstructed: true}

	var vehicleErr error
	if err := vehicleID.Validate(); err != nil {
		vehicleErr = errs.NewValueIsRequiredErrorWithCause("vehicleId", err)
	}

	if err := errors.Join(
		id.Validate(),
		vehicleErr,
		r.setDetails(origin, destination, estimatedTime, trafficConditions),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRoute rebuilds a Route from persisted state with the same validation as NewRoute.
func RestoreRoute(id, vehicleID kernel.UUID, origin, destination, estimatedTime, trafficConditions string) (*Route, error) {
	return NewRoute(id, vehicleID, origin, destination, estimatedTime, trafficConditions)
}

// Validate ensures the Route instance was properly constructed.
//
// Returns:
//   - nil if the route is valid
//   - ErrRouteIsNotConstructed if the route was not created via NewRoute
func (r *Route) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRouteIsNotConstructed
	}
	return nil
}

// ID returns the route's unique identifier.
func (r *Route) ID() kernel.UUID {
	return r.id
}

// VehicleID returns the vehicle the route is bound to. It never changes.
func (r *Route) VehicleID() kernel.UUID {
	return r.vehicleID
}

// Origin returns the starting point.
func (r *Route) Origin() string {
	return r.origin
}

// Destination returns the end point.
func (r *Route) Destination() string {
	return r.destination
}

// EstimatedTime returns the free-text travel estimate, such as "2h 30m".
func (r *Route) EstimatedTime() string {
	return r.estimatedTime
}

// TrafficConditions returns the free-text traffic note.
func (r *Route) TrafficConditions() string {
	return r.trafficConditions
}

// Revise replaces every field except the id and the vehicle. On a validation
// failure the route is left unchanged.
func (r *Route) Revise(origin, destination, estimatedTime, trafficConditions string) error {
	next := *r
	if err := next.setDetails(origin, destination, estimatedTime, trafficConditions); err != nil {
		return err
	}
	*r = next
	return nil
}

func (r *Route) setDetails(origin, destination, estimatedTime, trafficConditions string) error {
	var problems []error
	if strings.TrimSpace(origin) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("origin"))
	}
	if strings.TrimSpace(destination) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("destination"))
	}
	if err := errors.Join(problems...); err != nil {
		return err
	}

	r.origin = origin
	r.destination = destination
	r.estimatedTime = estimatedTime
	r.trafficConditions = trafficConditions
	return nil
}
