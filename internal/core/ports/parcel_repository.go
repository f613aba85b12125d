package ports

import (
	"context"

	"waypoint/internal/core/domain/model/kernel"
	"waypoint/internal/core/domain/model/parcel"
)

// ParcelRepository defines the persistence contract for packages.
type ParcelRepository interface {
	Add(ctx context.Context, p *parcel.Parcel) error
	Update(ctx context.Context, p *parcel.Parcel) error
	Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error)
	GetAll(ctx context.Context) ([]*parcel.Parcel, error)
	GetAllByOrder(ctx context.Context, orderID kernel.UUID) ([]*parcel.Parcel, error)
	Delete(ctx context.Context, id kernel.UUID) error
	Exists(ctx context.Context, id kernel.UUID) (bool, error)
}
