package postgres

import (
	"waypoint/internal/adapters/out/postgres/orderrepo"
	"waypoint/internal/adapters/out/postgres/parcelrepo"
	"waypoint/internal/adapters/out/postgres/routerepo"
	"waypoint/internal/adapters/out/postgres/userrepo"
	"waypoint/internal/adapters/out/postgres/vehiclerepo"
	"waypoint/internal/adapters/out/postgres/warehouserepo"

	"gorm.io/gorm"
)

// Models lists the row types of every table the service owns.
func Models() []any {
	return []any{
		&userrepo.UserDTO{},
		&orderrepo.OrderDTO{},
		&parcelrepo.ParcelDTO{},
		&vehiclerepo.VehicleDTO{},
		&routerepo.RouteDTO{},
		&warehouserepo.WarehouseDTO{},
	}
}

// Migrate creates or alters the tables and unique indexes.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
