package ports

import (
	"context"

	"waypoint/internal/core/domain/model/kernel"
	"waypoint/internal/core/domain/model/warehouse"
)

// WarehouseRepository defines the persistence contract for warehouses.
// Location is unique across warehouses.
type WarehouseRepository interface {
	Add(ctx context.Context, w *warehouse.Warehouse) error
	Update(ctx context.Context, w *warehouse.Warehouse) error
	Get(ctx context.Context, id kernel.UUID) (*warehouse.Warehouse, error)
	GetByLocation(ctx context.Context, location string) (*warehouse.Warehouse, error)
	GetAll(ctx context.Context) ([]*warehouse.Warehouse, error)
	Delete(ctx context.Context, id kernel.UUID) error
	Exists(ctx context.Context, id kernel.UUID) (bool, error)
}
