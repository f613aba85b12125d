package commands

import (
	"errors"
	"fmt"

	"waypoint/internal/core/domain/model/kernel"
	"waypoint/internal/pkg/errs"
	"waypoint/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCreateVehicleCommandIsNotConstructed = errors.New(
		"CreateVehicleCommand must be created via NewCreateVehicleCommand constructor",
	)
	ErrUpdateVehicleCommandIsNotConstructed = errors.New(
		"UpdateVehicleCommand must be created via NewUpdateVehicleCommand constructor",
	)
	ErrAssignDriverCommandIsNotConstructed = errors.New(
		"AssignDriverCommand must be created via NewAssignDriverCommand constructor",
	)
)

// VehicleDetails holds the descriptive vehicle fields. The driver is not part of
// it: drivers change only through AssignDriverCommand.
type VehicleDetails struct {
	Type            string
	LicensePlate    string
	Capacity        decimal.Decimal
	CurrentLocation string
}

func (d VehicleDetails) validate() error {
	var capacityErr error
	if d.Capacity.IsNegative() {
		capacityErr = errs.NewValueIsInvalidErrorWithCause("capacity", fmt.Errorf("%s is negative", d.Capacity))
	}
	return errors.Join(
		requireText("type", d.Type),
		requireText("licensePlate", d.LicensePlate),
		capacityErr,
	)
}

// CreateVehicleCommand registers a vehicle without a driver.
type CreateVehicleCommand struct {
	details VehicleDetails

	guard guard.ConstructorGuard
}

func NewCreateVehicleCommand(details VehicleDetails) (CreateVehicleCommand, error) {
	if err := details.validate(); err != nil {
		return CreateVehicleCommand{}, err
	}

	return CreateVehicleCommand{details: details, guard: guard.NewConstructorGuard()}, nil
}

func (c CreateVehicleCommand) Validate() error {
	return c.guard.Validate(ErrCreateVehicleCommandIsNotConstructed)
}

func (c CreateVehicleCommand) Details() VehicleDetails { return c.details }

// UpdateVehicleCommand replaces type, license plate, capacity and location.
type UpdateVehicleCommand struct {
	vehicleID kernel.UUID
	details   VehicleDetails

	guard guard.ConstructorGuard
}

func NewUpdateVehicleCommand(vehicleID kernel.UUID, details VehicleDetails) (UpdateVehicleCommand, error) {
	if err := errors.Join(requireID("vehicleId", vehicleID), details.validate()); err != nil {
		return UpdateVehicleCommand{}, err
	}

	return UpdateVehicleCommand{
		vehicleID: vehicleID,
		details:   details,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateVehicleCommand) Validate() error {
	return c.guard.Validate(ErrUpdateVehicleCommandIsNotConstructed)
}

func (c UpdateVehicleCommand) VehicleID() kernel.UUID  { return c.vehicleID }
func (c UpdateVehicleCommand) Details() VehicleDetails { return c.details }

// AssignDriverCommand sets the driver of a vehicle, replacing any previous one.
type AssignDriverCommand struct {
	vehicleID kernel.UUID
	driverID  kernel.UUID

	guard guard.ConstructorGuard
}

func NewAssignDriverCommand(vehicleID, driverID kernel.UUID) (AssignDriverCommand, error) {
	if err := errors.Join(requireID("vehicleId", vehicleID), requireID("driverId", driverID)); err != nil {
		return AssignDriverCommand{}, err
	}

	return AssignDriverCommand{
		vehicleID: vehicleID,
		driverID:  driverID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c AssignDriverCommand) Validate() error {
	return c.guard.Validate(ErrAssignDriverCommandIsNotConstructed)
}

func (c AssignDriverCommand) VehicleID() kernel.UUID { return c.vehicleID }
func (c AssignDriverCommand) DriverID() kernel.UUID  { return c.driverID }
