// Package orderrepo persists order aggregates in the orders table.
package orderrepo

import (
	"time"

	"waypoint/internal/core/domain/model/kernel"
	"waypoint/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is the row layout of the orders table. client_id is indexed for
// the by-client listing and deliberately carries no foreign key constraint.
type OrderDTO struct {
	ID                    uuid.UUID `gorm:"type:uuid;primaryKey"`
	ClientID              uuid.UUID `gorm:"type:uuid;index;not null"`
	Status                string    `gorm:"size:64;not null"`
	Origin                string    `gorm:"not null"`
	Destination           string    `gorm:"not null"`
	EstimatedDeliveryTime *time.Time
}

// TableName overrides GORM's default naming convention.
func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:                    aggregate.ID().Bytes(),
		ClientID:              aggregate.ClientID().Bytes(),
		Status:                aggregate.Status().String(),
		Origin:                aggregate.Origin(),
		Destination:           aggregate.Destination(),
		EstimatedDeliveryTime: aggregate.EstimatedDeliveryTime(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}

	var eta *time.Time
	if dto.EstimatedDeliveryTime != nil {
		t := dto.EstimatedDeliveryTime.UTC()
		eta = &t
	}

	return order.RestoreOrder(id, clientID, order.Status(dto.Status), dto.Origin, dto.Destination, eta)
}

func toDomainList(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}
