// Package vehiclerepo persists vehicles in the vehicles table.
package vehiclerepo

import (
	"waypoint/internal/core/domain/model/kernel"
	"waypoint/internal/core/domain/model/vehicle"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// VehicleDTO is the row layout of the vehicles table. license_plate is
// unique; driver_id is an unconstrained reference to users.
type VehicleDTO struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	DriverID        *uuid.UUID      `gorm:"type:uuid;index"`
	Type            string          `gorm:"size:64;not null"`
	LicensePlate    string          `gorm:"size:32;uniqueIndex;not null"`
	Capacity        decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	CurrentLocation string
}

func (VehicleDTO) TableName() string {
	return "vehicles"
}

func fromDomain(v *vehicle.Vehicle) VehicleDTO {
	var driverID *uuid.UUID
	if id := v.DriverID(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	return VehicleDTO{
		ID:              v.ID().Bytes(),
		DriverID:        driverID,
		Type:            v.Type(),
		LicensePlate:    v.LicensePlate(),
		Capacity:        v.Capacity(),
		CurrentLocation: v.CurrentLocation(),
	}
}

func toDomain(dto VehicleDTO) (*vehicle.Vehicle, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		dID, driverErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}

		driverID = &dID
	}

	return vehicle.RestoreVehicle(id, driverID, dto.Type, dto.LicensePlate, dto.Capacity, dto.CurrentLocation)
}
