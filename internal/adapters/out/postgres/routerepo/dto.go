// Package routerepo persists routes in the routes table.
package routerepo

import (
	"waypoint/internal/core/domain/model/kernel"
	"waypoint/internal/core/domain/model/route"

	"github.com/google/uuid"
)

type RouteDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	VehicleID         uuid.UUID `gorm:"type:uuid;index;not null"`
	Origin            string    `gorm:"not null"`
	Destination       string    `gorm:"not null"`
	EstimatedTime     string
	TrafficConditions string
}

func (RouteDTO) TableName() string {
	return "routes"
}

func fromDomain(r *route.Route) RouteDTO {
	return RouteDTO{
		ID:                r.ID().Bytes(),
		VehicleID:         r.VehicleID().Bytes(),
		Origin:            r.Origin(),
		Destination:       r.Destination(),
		EstimatedTime:     r.EstimatedTime(),
		TrafficConditions: r.TrafficConditions(),
	}
}

func toDomain(dto RouteDTO) (*route.Route, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	vehicleID, err := kernel.UUIDFromBytes(dto.VehicleID[:])
	if err != nil {
		return nil, err
	}

	return route.RestoreRoute(id, vehicleID, dto.Origin, dto.Destination, dto.EstimatedTime, dto.TrafficConditions)
}

func toDomainList(dtos []RouteDTO) ([]*route.Route, error) {
	routes := make([]*route.Route, 0, len(dtos))
	for _, dto := range dtos {
		r, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		routes = append(routes, r)
	}
	return routes, nil
}
