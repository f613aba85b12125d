// Package parcelrepo persists packages. The table keeps the external name
// "packages"; Go code calls them parcels since package is a keyword.
package parcelrepo

import (
	"waypoint/internal/core/domain/model/kernel"
	"waypoint/internal/core/domain/model/parcel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ParcelDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID       `gorm:"type:uuid;index;not null"`
	Description string          `gorm:"type:text"`
	Weight      decimal.Decimal `gorm:"type:numeric(12,3);not null"`
	Status      string          `gorm:"size:64;not null"`
}

func (ParcelDTO) TableName() string {
	return "packages"
}

func fromDomain(p *parcel.Parcel) ParcelDTO {
	return ParcelDTO{
		ID:          p.ID().Bytes(),
		OrderID:     p.OrderID().Bytes(),
		Description: p.Description(),
		Weight:      p.Weight(),
		Status:      p.Status().String(),
	}
}

func toDomain(dto ParcelDTO) (*parcel.Parcel, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	return parcel.RestoreParcel(id, orderID, dto.Description, dto.Weight, parcel.Status(dto.Status))
}

func toDomainList(dtos []ParcelDTO) ([]*parcel.Parcel, error) {
	parcels := make([]*parcel.Parcel, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		parcels = append(parcels, p)
	}
	return parcels, nil
}
