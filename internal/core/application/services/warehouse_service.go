package services

import (
	"context"

	"waypoint/internal/core/application/usecases/commands"
	"waypoint/internal/core/domain/model/kernel"
	"waypoint/internal/core/domain/model/warehouse"
	"waypoint/internal/pkg/logger"
)

const kindWarehouse = "warehouse"

// WarehouseService manages warehouses. The manager is resolved on creation and
// kept by updates. Location uniqueness is enforced by the store.
type WarehouseService struct {
	uowFactory WarehouseUoWFactory
	resolver   ReferenceResolver
	log        *logger.Logger
}

func NewWarehouseService(uowFactory WarehouseUoWFactory, resolver ReferenceResolver, log *logger.Logger) *WarehouseService {
	return &WarehouseService{
		uowFactory: uowFactory,
		resolver:   resolver,
		log:        log.Named("warehouse-service"),
	}
}

func (s *WarehouseService) ListAll(ctx context.Context) ([]*warehouse.Warehouse, error) {
	return s.uowFactory.Create().WarehouseRepository().GetAll(ctx)
}

// Create registers a warehouse; a missing manager fails with kind "manager".
func (s *WarehouseService) Create(ctx context.Context, cmd commands.CreateWarehouseCommand) (*warehouse.Warehouse, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer rollback(ctx, uow)

	manager, err := s.resolver.Manager(ctx, uow.UserRepository(), cmd.ManagerID())
	if err != nil {
		return nil, err
	}

	managerID := manager.ID()
	d := cmd.Details()
	w, err := warehouse.NewWarehouse(kernel.NewUUID(), d.Location, d.Capacity, d.AvailableSpace, &managerID)
	if err != nil {
		return nil, err
	}

	if err = uow.WarehouseRepository().Add(ctx, w); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	s.log.Debug().Str("warehouseId", w.ID().String()).Str("location", w.Location()).Msg("warehouse created")
	return w, nil
}

func (s *WarehouseService) Get(ctx context.Context, id kernel.UUID) (*warehouse.Warehouse, error) {
	return s.uowFactory.Create().WarehouseRepository().Get(ctx, id)
}

// GetByLocation fails with kind "warehouse" when no warehouse is at location.
func (s *WarehouseService) GetByLocation(ctx context.Context, location string) (*warehouse.Warehouse, error) {
	return s.uowFactory.Create().WarehouseRepository().GetByLocation(ctx, location)
}

// Update replaces location, capacity and available space.
func (s *WarehouseService) Update(ctx context.Context, cmd commands.UpdateWarehouseCommand) (*warehouse.Warehouse, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer rollback(ctx, uow)

	repo := uow.WarehouseRepository()
	w, err := repo.Get(ctx, cmd.WarehouseID())
	if err != nil {
		return nil, err
	}

	d := cmd.Details()
	if err = w.Revise(d.Location, d.Capacity, d.AvailableSpace); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, w); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	s.log.Debug().Str("warehouseId", w.ID().String()).Msg("warehouse updated")
	return w, nil
}

func (s *WarehouseService) Delete(ctx context.Context, id kernel.UUID) error {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer rollback(ctx, uow)

	repo := uow.WarehouseRepository()
	exists, err := repo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return notFound(kindWarehouse, id)
	}

	if err = repo.Delete(ctx, id); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	s.log.Debug().Str("warehouseId", id.String()).Msg("warehouse deleted")
	return nil
}
