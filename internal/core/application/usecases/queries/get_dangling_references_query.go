// Package queries contains read-side operations that bypass the aggregates
// and run SQL directly against the store.
package queries

import (
	"errors"

	"waypoint/internal/pkg/guard"
)

var ErrGetDanglingReferencesQueryIsNotConstructed = errors.New(
	"GetDanglingReferencesQuery must be created via NewGetDanglingReferencesQuery constructor",
)

// GetDanglingReferencesQuery counts rows whose reference column points at a
// row that no longer exists. Deletes never cascade, so such rows are expected
// after a parent is removed.
type GetDanglingReferencesQuery struct {
	guard guard.ConstructorGuard
}

func NewGetDanglingReferencesQuery() GetDanglingReferencesQuery {
	return GetDanglingReferencesQuery{guard: guard.NewConstructorGuard()}
}

func (q GetDanglingReferencesQuery) Validate() error {
	return q.guard.Validate(ErrGetDanglingReferencesQueryIsNotConstructed)
}

// GetDanglingReferencesQueryResponse holds one count per reference column.
// Vehicles without any driver and warehouses without any manager are not
// dangling and are not counted.
type GetDanglingReferencesQueryResponse struct {
	OrdersWithoutClient      int64 `json:"ordersWithoutClient"`
	PackagesWithoutOrder     int64 `json:"packagesWithoutOrder"`
	RoutesWithoutVehicle     int64 `json:"routesWithoutVehicle"`
	VehiclesWithoutDriver    int64 `json:"vehiclesWithoutDriver"`
	WarehousesWithoutManager int64 `json:"warehousesWithoutManager"`
}

// Total sums every count.
func (r GetDanglingReferencesQueryResponse) Total() int64 {
	return r.OrdersWithoutClient +
		r.PackagesWithoutOrder +
		r.RoutesWithoutVehicle +
		r.VehiclesWithoutDriver +
		r.WarehousesWithoutManager
}
