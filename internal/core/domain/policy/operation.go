package policy

import "waypoint/internal/core/domain/model/user"

// Operation names a single service operation.
type Operation string

const (
	OrderList         Operation = "order.list"
	OrderCreate       Operation = "order.create"
	OrderGet          Operation = "order.get"
	OrderListByClient Operation = "order.listByClient"
	OrderUpdateStatus Operation = "order.updateStatus"
	OrderDelete       Operation = "order.delete"

	PackageList        Operation = "package.list"
	PackageCreate      Operation = "package.create"
	PackageGet         Operation = "package.get"
	PackageListByOrder Operation = "package.listByOrder"
	PackageUpdate      Operation = "package.update"
	PackageDelete      Operation = "package.delete"

	RouteList          Operation = "route.list"
	RouteCreate        Operation = "route.create"
	RouteGet           Operation = "route.get"
	RouteListByVehicle Operation = "route.listByVehicle"
	RouteUpdate        Operation = "route.update"
	RouteDelete        Operation = "route.delete"

	VehicleList              Operation = "vehicle.list"
	VehicleCreate            Operation = "vehicle.create"
	VehicleGet               Operation = "vehicle.get"
	VehicleGetByLicensePlate Operation = "vehicle.getByLicensePlate"
	VehicleAssignDriver      Operation = "vehicle.assignDriver"
	VehicleUpdate            Operation = "vehicle.update"
	VehicleDelete            Operation = "vehicle.delete"

	WarehouseList          Operation = "warehouse.list"
	WarehouseCreate        Operation = "warehouse.create"
	WarehouseGet           Operation = "warehouse.get"
	WarehouseGetByLocation Operation = "warehouse.getByLocation"
	WarehouseUpdate        Operation = "warehouse.update"
	WarehouseDelete        Operation = "warehouse.delete"

	UserList          Operation = "user.list"
	UserGet           Operation = "user.get"
	UserUpdateProfile Operation = "user.updateProfile"

	// UserRegisterAdmin gates registering an account with the ADMIN role.
	// Registering a USER account is public.
	UserRegisterAdmin Operation = "user.registerAdmin"
)

var (
	adminOnly   = []user.Role{user.Admin}
	anyMember   = []user.Role{user.Regular, user.Admin}
	requiredFor = map[Operation][]user.Role{
		OrderList:         adminOnly,
		OrderCreate:       anyMember,
		OrderGet:          anyMember,
		OrderListByClient: anyMember,
		OrderUpdateStatus: adminOnly,
		OrderDelete:       adminOnly,

		PackageList:        adminOnly,
		PackageCreate:      anyMember,
		PackageGet:         anyMember,
		PackageListByOrder: anyMember,
		PackageUpdate:      adminOnly,
		PackageDelete:      adminOnly,

		RouteList:          adminOnly,
		RouteCreate:        adminOnly,
		RouteGet:           anyMember,
		RouteListByVehicle: adminOnly,
		RouteUpdate:        adminOnly,
		RouteDelete:        adminOnly,

		VehicleList:              adminOnly,
		VehicleCreate:            adminOnly,
		VehicleGet:               anyMember,
		VehicleGetByLicensePlate: anyMember,
		VehicleAssignDriver:      adminOnly,
		VehicleUpdate:            adminOnly,
		VehicleDelete:            adminOnly,

		WarehouseList:          adminOnly,
		WarehouseCreate:        adminOnly,
		WarehouseGet:           anyMember,
		WarehouseGetByLocation: adminOnly,
		WarehouseUpdate:        adminOnly,
		WarehouseDelete:        adminOnly,

		UserList:          adminOnly,
		UserGet:           anyMember,
		UserUpdateProfile: anyMember,
		UserRegisterAdmin: adminOnly,
	}
)

// RequiredRoles returns the roles allowed to call op. An unknown operation
// returns nil, which no identity satisfies.
func RequiredRoles(op Operation) []user.Role {
	roles, ok := requiredFor[op]
	if !ok {
		return nil
	}
	out := make([]user.Role, len(roles))
	copy(out, roles)
	return out
}

// Operations lists every operation known to the gate.
func Operations() []Operation {
	ops := make([]Operation, 0, len(requiredFor))
	for op := range requiredFor {
		ops = append(ops, op)
	}
	return ops
}
