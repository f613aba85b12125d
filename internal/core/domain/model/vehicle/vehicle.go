package vehicle

import (
	"errors"
	"fmt"
	"strings"

	"waypoint/internal/core/domain/model/kernel"
	"waypoint/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrVehicleIsNotConstructed indicates a Vehicle that was not built by NewVehicle or RestoreVehicle.
var ErrVehicleIsNotConstructed = errors.New("Vehicle must be created via NewVehicle constructor")

// Vehicle carries routes and is driven by at most one user.
//
// The driver is changed only through AssignDriver; Revise replaces the descriptive
// fields and never touches the driver.
type Vehicle struct {
	id              kernel.UUID
	driverID        *kernel.UUID
	vehicleType     string
	licensePlate    string
	capacity        decimal.Decimal
	currentLocation string

	isConstructed bool
}

// NewVehicle creates a vehicle without a driver.
//
// Parameters:
//   - id: The vehicle identifier, must not be the nil UUID
//   - vehicleType, licensePlate: Required; the plate is stored trimmed
//   - capacity: Load capacity, must not be negative
//   - currentLocation: Free text, may be empty
//
// Returns:
//   - *Vehicle: The created vehicle if all validations pass
//   - error: Every validation failure joined together
//
// Example:
//
//	v, err := vehicle.NewVehicle(kernel.NewUUID(), "van", "XYZ-789", decimal.NewFromInt(1200), "Depot")
//	if err != nil {
//	    // Handle validation error
//	}
func NewVehicle(id kernel.UUID, vehicleType, licensePlate string, capacity decimal.Decimal, currentLocation string) (*Vehicle, error) {
	v := &Vehicle{id: id, isConstructed: true}

	if err := errors.Join(
		id.Validate(),
		v.setDetails(vehicleType, licensePlate, capacity, currentLocation),
	); err != nil {
		return nil, err
	}

	return v, nil
}

// RestoreVehicle rebuilds a vehicle from persisted state, including its driver.
func RestoreVehicle(
	id kernel.UUID,
	driverID *kernel.UUID,
	vehicleType, licensePlate string,
	capacity decimal.Decimal,
	currentLocation string,
) (*Vehicle, error) {
	v, err := NewVehicle(id, vehicleType, licensePlate, capacity, currentLocation)
	if err != nil {
		return nil, err
	}
	if driverID != nil {
		if err := v.AssignDriver(*driverID); err != nil {
			return nil, err
		}
	}
	return v, nil
}

// Validate ensures the Vehicle instance was properly constructed.
//
// Returns:
//   - nil if the vehicle is valid
//   - ErrVehicleIsNotConstructed if the vehicle was not created via NewVehicle
func (v *Vehicle) Validate() error {
	if v == nil || !v.isConstructed {
		return ErrVehicleIsNotConstructed
	}
	return nil
}

// ID returns the vehicle's unique identifier.
func (v *Vehicle) ID() kernel.UUID {
	return v.id
}

// DriverID returns a copy of the driver reference, or nil when unassigned.
func (v *Vehicle) DriverID() *kernel.UUID {
	if v.driverID == nil {
		return nil
	}
	id := *v.driverID
	return &id
}

// Type returns the kind of vehicle, such as "van" or "truck".
func (v *Vehicle) Type() string {
	return v.vehicleType
}

// LicensePlate returns the plate. Plates are unique across vehicles.
func (v *Vehicle) LicensePlate() string {
	return v.licensePlate
}

// Capacity returns the load capacity.
func (v *Vehicle) Capacity() decimal.Decimal {
	return v.capacity
}

// CurrentLocation returns the last reported location as free text.
func (v *Vehicle) CurrentLocation() string {
	return v.currentLocation
}

// AssignDriver overwrites any existing driver. The caller is responsible for
// checking that the driver exists.
func (v *Vehicle) AssignDriver(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("driverId", err)
	}
	v.driverID = &driverID
	return nil
}

// Revise replaces type, license plate, capacity and current location. On a
// validation failure the vehicle is left unchanged.
func (v *Vehicle) Revise(vehicleType, licensePlate string, capacity decimal.Decimal, currentLocation string) error {
	next := *v
	if err := next.setDetails(vehicleType, licensePlate, capacity, currentLocation); err != nil {
		return err
	}
	*v = next
	return nil
}

func (v *Vehicle) setDetails(vehicleType, licensePlate string, capacity decimal.Decimal, currentLocation string) error {
	var problems []error
	if strings.TrimSpace(vehicleType) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("type"))
	}
	if strings.TrimSpace(licensePlate) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("licensePlate"))
	}
	if capacity.IsNegative() {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("capacity", fmt.Errorf("%s is negative", capacity)))
	}
	if err := errors.Join(problems...); err != nil {
		return err
	}

	v.vehicleType = vehicleType
	v.licensePlate = strings.TrimSpace(licensePlate)
	v.capacity = capacity
	v.currentLocation = currentLocation
	return nil
}
