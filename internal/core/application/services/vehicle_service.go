package services

import (
	"context"

	"waypoint/internal/core/application/usecases/commands"
	"waypoint/internal/core/domain/model/kernel"
	"waypoint/internal/core/domain/model/vehicle"
	"waypoint/internal/pkg/logger"
)

const kindVehicle = "vehicle"

// VehicleService manages vehicles and their drivers.
//
// Vehicles are created without a driver. AssignDriver is the only operation that
// resolves a driver and the only one that changes it. License plate uniqueness
// is enforced by the store: a collision surfaces as an already exists error from
// Create or Update.
type VehicleService struct {
	uowFactory VehicleUoWFactory
	resolver   ReferenceResolver
	log        *logger.Logger
}

func NewVehicleService(uowFactory VehicleUoWFactory, resolver ReferenceResolver, log *logger.Logger) *VehicleService {
	return &VehicleService{
		uowFactory: uowFactory,
		resolver:   resolver,
		log:        log.Named("vehicle-service"),
	}
}

func (s *VehicleService) ListAll(ctx context.Context) ([]*vehicle.Vehicle, error) {
	return s.uowFactory.Create().VehicleRepository().GetAll(ctx)
}

func (s *VehicleService) Create(ctx context.Context, cmd commands.CreateVehicleCommand) (*vehicle.Vehicle, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	d := cmd.Details()
	v, err := vehicle.NewVehicle(kernel.NewUUID(), d.Type, d.LicensePlate, d.Capacity, d.CurrentLocation)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer rollback(ctx, uow)

	if err = uow.VehicleRepository().Add(ctx, v); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	s.log.Debug().Str("vehicleId", v.ID().String()).Str("licensePlate", v.LicensePlate()).Msg("vehicle created")
	return v, nil
}

func (s *VehicleService) Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error) {
	return s.uowFactory.Create().VehicleRepository().Get(ctx, id)
}

// GetByLicensePlate fails with kind "vehicle" when no vehicle carries the plate.
func (s *VehicleService) GetByLicensePlate(ctx context.Context, plate string) (*vehicle.Vehicle, error) {
	return s.uowFactory.Create().VehicleRepository().GetByLicensePlate(ctx, plate)
}

// AssignDriver resolves both the vehicle and the driver before changing anything.
// Any previous driver is replaced.
func (s *VehicleService) AssignDriver(ctx context.Context, cmd commands.AssignDriverCommand) (*vehicle.Vehicle, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer rollback(ctx, uow)

	repo := uow.VehicleRepository()
	v, err := repo.Get(ctx, cmd.VehicleID())
	if err != nil {
		return nil, err
	}

	driver, err := s.resolver.Driver(ctx, uow.UserRepository(), cmd.DriverID())
	if err != nil {
		return nil, err
	}

	if err = v.AssignDriver(driver.ID()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, v); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	s.log.Debug().Str("vehicleId", v.ID().String()).Str("driverId", driver.ID().String()).Msg("driver assigned")
	return v, nil
}

// Update replaces type, license plate, capacity and current location. The driver
// is kept.
func (s *VehicleService) Update(ctx context.Context, cmd commands.UpdateVehicleCommand) (*vehicle.Vehicle, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer rollback(ctx, uow)

	repo := uow.VehicleRepository()
	v, err := repo.Get(ctx, cmd.VehicleID())
	if err != nil {
		return nil, err
	}

	d := cmd.Details()
	if err = v.Revise(d.Type, d.LicensePlate, d.Capacity, d.CurrentLocation); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, v); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	s.log.Debug().Str("vehicleId", v.ID().String()).Msg("vehicle updated")
	return v, nil
}

// Delete removes a vehicle. Its routes are left in place.
func (s *VehicleService) Delete(ctx context.Context, id kernel.UUID) error {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer rollback(ctx, uow)

	repo := uow.VehicleRepository()
	exists, err := repo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return notFound(kindVehicle, id)
	}

	if err = repo.Delete(ctx, id); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	s.log.Debug().Str("vehicleId", id.String()).Msg("vehicle deleted")
	return nil
}
