package queries

import (
	"context"

	"gorm.io/gorm"
)

const danglingReferencesSQL = `
	SELECT
		(SELECT COUNT(*) FROM orders o
			WHERE NOT EXISTS (SELECT 1 FROM users u WHERE u.id = o.client_id)) AS orders_without_client,
		(SELECT COUNT(*) FROM packages p
			WHERE NOT EXISTS (SELECT 1 FROM orders o WHERE o.id = p.order_id)) AS packages_without_order,
		(SELECT COUNT(*) FROM routes r
			WHERE NOT EXISTS (SELECT 1 FROM vehicles v WHERE v.id = r.vehicle_id)) AS routes_without_vehicle,
		(SELECT COUNT(*) FROM vehicles v
			WHERE v.driver_id IS NOT NULL
			AND NOT EXISTS (SELECT 1 FROM users u WHERE u.id = v.driver_id)) AS vehicles_without_driver,
		(SELECT COUNT(*) FROM warehouses w
			WHERE w.manager_id IS NOT NULL
			AND NOT EXISTS (SELECT 1 FROM users u WHERE u.id = w.manager_id)) AS warehouses_without_manager
`

// GetDanglingReferencesQueryHandler runs the audit in a single round trip.
type GetDanglingReferencesQueryHandler struct {
	db *gorm.DB
}

func NewGetDanglingReferencesQueryHandler(db *gorm.DB) GetDanglingReferencesQueryHandler {
	return GetDanglingReferencesQueryHandler{db: db}
}

func (h GetDanglingReferencesQueryHandler) Handle(
	ctx context.Context,
	query GetDanglingReferencesQuery,
) (GetDanglingReferencesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDanglingReferencesQueryResponse{}, err
	}

	var row struct {
		OrdersWithoutClient      int64
		PackagesWithoutOrder     int64
		RoutesWithoutVehicle     int64
		VehiclesWithoutDriver    int64
		WarehousesWithoutManager int64
	}
	if err := h.db.WithContext(ctx).Raw(danglingReferencesSQL).Scan(&row).Error; err != nil {
		return GetDanglingReferencesQueryResponse{}, err
	}

	return GetDanglingReferencesQueryResponse(row), nil
}
