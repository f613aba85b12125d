package warehouserepo

import (
	"context"
	"errors"
	"strings"

	"waypoint/internal/adapters/out/postgres/pgerrs"
	"waypoint/internal/core/domain/model/kernel"
	"waypoint/internal/core/domain/model/warehouse"
	"waypoint/internal/pkg/errs"

	"gorm.io/gorm"
)

const kind = "warehouse"

type GormWarehouseRepository struct {
	db *gorm.DB
}

func NewGormWarehouseRepository(db *gorm.DB) *GormWarehouseRepository {
	return &GormWarehouseRepository{db: db}
}

func (r *GormWarehouseRepository) Add(ctx context.Context, w *warehouse.Warehouse) error {
	if err := w.Validate(); err != nil {
		return err
	}

	dto := fromDomain(w)
	return pgerrs.Unique(r.db.WithContext(ctx).Create(&dto).Error, "location", dto.Location)
}

// Update rewrites location, capacity and available space. The manager is
// fixed at creation.
func (r *GormWarehouseRepository) Update(ctx context.Context, w *warehouse.Warehouse) error {
	if err := w.Validate(); err != nil {
		return err
	}

	dto := fromDomain(w)
	result := r.db.WithContext(ctx).Model(&WarehouseDTO{}).Where("id = ?", dto.ID).
		Select("location", "capacity", "available_space").Updates(&dto)
	if result.Error != nil {
		return pgerrs.Unique(result.Error, "location", dto.Location)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError(kind, w.ID().String())
	}

	return nil
}

func (r *GormWarehouseRepository) Get(ctx context.Context, id kernel.UUID) (*warehouse.Warehouse, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto WarehouseDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError(kind, id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormWarehouseRepository) GetByLocation(ctx context.Context, location string) (*warehouse.Warehouse, error) {
	location = strings.TrimSpace(location)

	var dto WarehouseDTO
	if err := r.db.WithContext(ctx).First(&dto, "location = ?", location).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError(kind, location)
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormWarehouseRepository) GetAll(ctx context.Context) ([]*warehouse.Warehouse, error) {
	var dtos []WarehouseDTO
	if err := r.db.WithContext(ctx).Order("location").Find(&dtos).Error; err != nil {
		return nil, err
	}

	warehouses := make([]*warehouse.Warehouse, 0, len(dtos))
	for _, dto := range dtos {
		w, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		warehouses = append(warehouses, w)
	}

	return warehouses, nil
}

func (r *GormWarehouseRepository) Delete(ctx context.Context, id kernel.UUID) error {
	result := r.db.WithContext(ctx).Delete(&WarehouseDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError(kind, id.String())
	}

	return nil
}

func (r *GormWarehouseRepository) Exists(ctx context.Context, id kernel.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&WarehouseDTO{}).Where("id = ?", id.Bytes()).Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}
