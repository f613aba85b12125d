package commands

import (
	"errors"

	"waypoint/internal/core/domain/model/kernel"
	"waypoint/internal/pkg/guard"
)

var (
	ErrCreateWarehouseCommandIsNotConstructed = errors.New(
		"CreateWarehouseCommand must be created via NewCreateWarehouseCommand constructor",
	)
	ErrUpdateWarehouseCommandIsNotConstructed = errors.New(
		"UpdateWarehouseCommand must be created via NewUpdateWarehouseCommand constructor",
	)
)

// WarehouseDetails holds the warehouse fields that can be replaced after creation.
// AvailableSpace is not checked against Capacity.
type WarehouseDetails struct {
	Location       string
	Capacity       int
	AvailableSpace int
}

// CreateWarehouseCommand registers a warehouse run by an existing manager.
type CreateWarehouseCommand struct {
	managerID kernel.UUID
	details   WarehouseDetails

	guard guard.ConstructorGuard
}

func NewCreateWarehouseCommand(managerID kernel.UUID, details WarehouseDetails) (CreateWarehouseCommand, error) {
	if err := errors.Join(
		requireID("managerId", managerID),
		requireText("location", details.Location),
	); err != nil {
		return CreateWarehouseCommand{}, err
	}

	return CreateWarehouseCommand{
		managerID: managerID,
		details:   details,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c CreateWarehouseCommand) Validate() error {
	return c.guard.Validate(ErrCreateWarehouseCommandIsNotConstructed)
}

func (c CreateWarehouseCommand) ManagerID() kernel.UUID    { return c.managerID }
func (c CreateWarehouseCommand) Details() WarehouseDetails { return c.details }

// UpdateWarehouseCommand replaces location, capacity and available space.
// The manager stays as it was.
type UpdateWarehouseCommand struct {
	warehouseID kernel.UUID
	details     WarehouseDetails

	guard guard.ConstructorGuard
}

func NewUpdateWarehouseCommand(warehouseID kernel.UUID, details WarehouseDetails) (UpdateWarehouseCommand, error) {
	if err := errors.Join(
		requireID("warehouseId", warehouseID),
		requireText("location", details.Location),
	); err != nil {
		return UpdateWarehouseCommand{}, err
	}

	return UpdateWarehouseCommand{
		warehouseID: warehouseID,
		details:     details,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateWarehouseCommand) Validate() error {
	return c.guard.Validate(ErrUpdateWarehouseCommandIsNotConstructed)
}

func (c UpdateWarehouseCommand) WarehouseID() kernel.UUID  { return c.warehouseID }
func (c UpdateWarehouseCommand) Details() WarehouseDetails { return c.details }
