package order

import (
	"errors"
	"strings"
	"time"

	"waypoint/internal/core/domain/model/kernel"
	"waypoint/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order represents a client's shipment request. It is the aggregate root that owns
// the order status; packages refer to it by id.
//
// Order follows these invariants:
//   - Must have a valid unique identifier
//   - Must reference a client by a valid identifier
//   - Must have a non-empty status, origin and destination
//   - The client reference never changes after creation
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// clientID references the user who placed the order
	clientID kernel.UUID

	// status is the current lifecycle state
	status Status

	// origin is the pickup point
	origin string

	// destination is the delivery point
	destination string

	// estimatedDeliveryTime is optional
	estimatedDeliveryTime *time.Time

	// isConstructed ensures the order was created via NewOrder or RestoreOrder
	isConstructed bool
}

// NewOrder creates a new Order instance with validation.
//
// Parameters:
//   - id: Unique identifier for the order
//   - clientID: Identifier of the already resolved client
//   - status: Initial status, any non-empty value
//   - origin, destination: Route endpoints, both required
//   - estimatedDeliveryTime: Optional delivery estimate
//
// Returns:
//   - *Order: The created order if all validations pass
//   - error: Every validation failure joined together
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID(), client.ID(), order.Pending, "A", "B", nil)
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(
	id, clientID kernel.UUID,
	status Status,
	origin, destination string,
	estimatedDeliveryTime *time.Time,
) (*Order, error) {
	o := &Order{isConstructed: true}

	if err := errors.Join(
		o.setID(id),
		o.setClientID(clientID),
		o.setStatus(status),
		o.setOrigin(origin),
		o.setDestination(destination),
	); err != nil {
		return nil, err
	}
	o.estimatedDeliveryTime = copyTime(estimatedDeliveryTime)

	return o, nil
}

// RestoreOrder rebuilds an Order from persisted state. It applies the same
// validation as NewOrder so corrupted rows surface as errors.
func RestoreOrder(
	id, clientID kernel.UUID,
	status Status,
	origin, destination string,
	estimatedDeliveryTime *time.Time,
) (*Order, error) {
	return NewOrder(id, clientID, status, origin, destination, estimatedDeliveryTime)
}

// Validate ensures the Order instance was properly constructed.
//
// Returns:
//   - nil if the order is valid
//   - ErrOrderIsNotConstructed if the order was not created via NewOrder
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// ClientID returns the identifier of the user who placed the order.
func (o *Order) ClientID() kernel.UUID {
	return o.clientID
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Origin returns the pickup point.
func (o *Order) Origin() string {
	return o.origin
}

// Destination returns the delivery point.
func (o *Order) Destination() string {
	return o.destination
}

// EstimatedDeliveryTime returns a copy of the delivery estimate, or nil.
func (o *Order) EstimatedDeliveryTime() *time.Time {
	return copyTime(o.estimatedDeliveryTime)
}

// ChangeStatus overwrites the order status. No transition table is consulted:
// the only rule is that the new status is non-empty.
//
// Example:
//
//	if err := o.ChangeStatus(order.InTransit); err != nil {
//	    // status was blank
//	}
func (o *Order) ChangeStatus(status Status) error {
	return o.setStatus(status)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("clientId", err)
	}
	o.clientID = clientID
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setOrigin(origin string) error {
	if strings.TrimSpace(origin) == "" {
		return errs.NewValueIsRequiredError("origin")
	}
	o.origin = origin
	return nil
}

func (o *Order) setDestination(destination string) error {
	if strings.TrimSpace(destination) == "" {
		return errs.NewValueIsRequiredError("destination")
	}
	o.destination = destination
	return nil
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
