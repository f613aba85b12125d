package commands

import (
	"errors"
	"time"

	"waypoint/internal/core/domain/model/kernel"
	"waypoint/internal/core/domain/model/order"
	"waypoint/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
		"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
	)
)

// CreateOrderCommand represents a request to place a new order for an existing client.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(clientID, order.Pending, "Warehouse 7", "Main St 1", nil)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	created, err := orderService.Create(ctx, cmd)
type CreateOrderCommand struct {
	clientID              kernel.UUID
	status                order.Status
	origin                string
	destination           string
	estimatedDeliveryTime *time.Time

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates that client, status, origin and destination are present.
// The estimated delivery time is optional.
func NewCreateOrderCommand(
	clientID kernel.UUID,
	status order.Status,
	origin, destination string,
	estimatedDeliveryTime *time.Time,
) (CreateOrderCommand, error) {
	if err := errors.Join(
		requireID("clientId", clientID),
		status.Validate(),
		requireText("origin", origin),
		requireText("destination", destination),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return CreateOrderCommand{
		clientID:              clientID,
		status:                status,
		origin:                origin,
		destination:           destination,
		estimatedDeliveryTime: estimatedDeliveryTime,
		guard:                 guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) ClientID() kernel.UUID             { return c.clientID }
func (c CreateOrderCommand) Status() order.Status              { return c.status }
func (c CreateOrderCommand) Origin() string                    { return c.origin }
func (c CreateOrderCommand) Destination() string               { return c.destination }
func (c CreateOrderCommand) EstimatedDeliveryTime() *time.Time { return c.estimatedDeliveryTime }

// UpdateOrderStatusCommand overwrites the status of an order. Any non-empty
// status is accepted.
type UpdateOrderStatusCommand struct {
	orderID kernel.UUID
	status  order.Status

	guard guard.ConstructorGuard
}

func NewUpdateOrderStatusCommand(orderID kernel.UUID, status order.Status) (UpdateOrderStatusCommand, error) {
	if err := errors.Join(requireID("orderId", orderID), status.Validate()); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return UpdateOrderStatusCommand{
		orderID: orderID,
		status:  status,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

func (c UpdateOrderStatusCommand) OrderID() kernel.UUID { return c.orderID }
func (c UpdateOrderStatusCommand) Status() order.Status { return c.status }
