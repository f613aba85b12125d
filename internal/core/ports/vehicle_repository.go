package ports

import (
	"context"

	"waypoint/internal/core/domain/model/kernel"
	"waypoint/internal/core/domain/model/vehicle"
)

// VehicleRepository defines the persistence contract for vehicles.
// Add and Update return an *errs.ObjectAlreadyExistsError when the license
// plate collides with another stored vehicle.
type VehicleRepository interface {
	Add(ctx context.Context, v *vehicle.Vehicle) error
	Update(ctx context.Context, v *vehicle.Vehicle) error
	Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error)
	GetByLicensePlate(ctx context.Context, plate string) (*vehicle.Vehicle, error)
	GetAll(ctx context.Context) ([]*vehicle.Vehicle, error)
	Delete(ctx context.Context, id kernel.UUID) error
	Exists(ctx context.Context, id kernel.UUID) (bool, error)
}
