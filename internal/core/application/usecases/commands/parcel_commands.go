package commands

import (
	"errors"

	"waypoint/internal/core/domain/model/kernel"
	"waypoint/internal/core/domain/model/parcel"
	"waypoint/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCreateParcelCommandIsNotConstructed = errors.New(
		"CreateParcelCommand must be created via NewCreateParcelCommand constructor",
	)
	ErrUpdateParcelCommandIsNotConstructed = errors.New(
		"UpdateParcelCommand must be created via NewUpdateParcelCommand constructor",
	)
)

// CreateParcelCommand adds a package to an existing order.
type CreateParcelCommand struct {
	orderID     kernel.UUID
	description string
	weight      decimal.Decimal
	status      parcel.Status

	guard guard.ConstructorGuard
}

func NewCreateParcelCommand(
	orderID kernel.UUID,
	description string,
	weight decimal.Decimal,
	status parcel.Status,
) (CreateParcelCommand, error) {
	if err := errors.Join(requireID("orderId", orderID), status.Validate()); err != nil {
		return CreateParcelCommand{}, err
	}

	return CreateParcelCommand{
		orderID:     orderID,
		description: description,
		weight:      weight,
		status:      status,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c CreateParcelCommand) Validate() error {
	return c.guard.Validate(ErrCreateParcelCommandIsNotConstructed)
}

func (c CreateParcelCommand) OrderID() kernel.UUID    { return c.orderID }
func (c CreateParcelCommand) Description() string     { return c.description }
func (c CreateParcelCommand) Weight() decimal.Decimal { return c.weight }
func (c CreateParcelCommand) Status() parcel.Status   { return c.status }

// UpdateParcelCommand replaces description, weight and status of a package.
// The order a package belongs to cannot be changed.
type UpdateParcelCommand struct {
	parcelID    kernel.UUID
	description string
	weight      decimal.Decimal
	status      parcel.Status

	guard guard.ConstructorGuard
}

func NewUpdateParcelCommand(
	parcelID kernel.UUID,
	description string,
	weight decimal.Decimal,
	status parcel.Status,
) (UpdateParcelCommand, error) {
	if err := errors.Join(requireID("packageId", parcelID), status.Validate()); err != nil {
		return UpdateParcelCommand{}, err
	}

	return UpdateParcelCommand{
		parcelID:    parcelID,
		description: description,
		weight:      weight,
		status:      status,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateParcelCommand) Validate() error {
	return c.guard.Validate(ErrUpdateParcelCommandIsNotConstructed)
}

func (c UpdateParcelCommand) ParcelID() kernel.UUID   { return c.parcelID }
func (c UpdateParcelCommand) Description() string     { return c.description }
func (c UpdateParcelCommand) Weight() decimal.Decimal { return c.weight }
func (c UpdateParcelCommand) Status() parcel.Status   { return c.status }
