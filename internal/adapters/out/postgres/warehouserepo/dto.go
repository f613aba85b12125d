// Package warehouserepo persists warehouses in the warehouses table.
package warehouserepo

import (
	"waypoint/internal/core/domain/model/kernel"
	"waypoint/internal/core/domain/model/warehouse"

	"github.com/google/uuid"
)

// WarehouseDTO is the row layout of the warehouses table. location is unique.
type WarehouseDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ManagerID      *uuid.UUID `gorm:"type:uuid;index"`
	Location       string     `gorm:"uniqueIndex;not null"`
	Capacity       int        `gorm:"not null"`
	AvailableSpace int        `gorm:"not null"`
}

func (WarehouseDTO) TableName() string {
	return "warehouses"
}

func fromDomain(w *warehouse.Warehouse) WarehouseDTO {
	var managerID *uuid.UUID
	if id := w.ManagerID(); id != nil {
		raw := id.Bytes()
		managerID = &raw
	}

	return WarehouseDTO{
		ID:             w.ID().Bytes(),
		ManagerID:      managerID,
		Location:       w.Location(),
		Capacity:       w.Capacity(),
		AvailableSpace: w.AvailableSpace(),
	}
}

func toDomain(dto WarehouseDTO) (*warehouse.Warehouse, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var managerID *kernel.UUID
	if dto.ManagerID != nil {
		mID, managerErr := kernel.UUIDFromBytes((*dto.ManagerID)[:])
		if managerErr != nil {
			return nil, managerErr
		}

		managerID = &mID
	}

	return warehouse.RestoreWarehouse(id, dto.Location, dto.Capacity, dto.AvailableSpace, managerID)
}
