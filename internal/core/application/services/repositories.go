// Package services implements the six entity services of the logistics core.
//
// Each operation runs against a fresh unit of work. Write operations begin a
// transaction, resolve every foreign key inside it, mutate, and commit; read
// operations use the unit of work without a transaction. Services keep no state
// between calls.
package services

import (
	"context"

	"waypoint/internal/core/domain/model/kernel"
	"waypoint/internal/core/domain/model/order"
	"waypoint/internal/core/domain/model/user"
	"waypoint/internal/core/domain/model/vehicle"
	"waypoint/internal/core/ports"
	"waypoint/internal/pkg/errs"
)

// Unit of Work interfaces narrowed to the repositories each service touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	ParcelRepoFactory interface {
		ParcelRepository() ports.ParcelRepository
	}

	VehicleRepoFactory interface {
		VehicleRepository() ports.VehicleRepository
	}

	RouteRepoFactory interface {
		RouteRepository() ports.RouteRepository
	}

	WarehouseRepoFactory interface {
		WarehouseRepository() ports.WarehouseRepository
	}

	// OrderUoW covers orders and the users they reference as clients.
	OrderUoW interface {
		TxManager
		UserRepoFactory
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// ParcelUoW covers packages and the orders they belong to.
	ParcelUoW interface {
		TxManager
		OrderRepoFactory
		ParcelRepoFactory
	}

	ParcelUoWFactory interface {
		Create() ParcelUoW
	}

	// RouteUoW covers routes and the vehicles they are bound to.
	RouteUoW interface {
		TxManager
		VehicleRepoFactory
		RouteRepoFactory
	}

	RouteUoWFactory interface {
		Create() RouteUoW
	}

	// VehicleUoW covers vehicles and the users they reference as drivers.
	VehicleUoW interface {
		TxManager
		UserRepoFactory
		VehicleRepoFactory
	}

	VehicleUoWFactory interface {
		Create() VehicleUoW
	}

	// WarehouseUoW covers warehouses and the users they reference as managers.
	WarehouseUoW interface {
		TxManager
		UserRepoFactory
		WarehouseRepoFactory
	}

	WarehouseUoWFactory interface {
		Create() WarehouseUoW
	}

	UserUoW interface {
		TxManager
		UserRepoFactory
	}

	UserUoWFactory interface {
		Create() UserUoW
	}
)

// ReferenceResolver turns foreign keys into entities, failing with a not found
// error named after the role of the reference.
type ReferenceResolver interface {
	Client(ctx context.Context, users ports.UserRepository, id kernel.UUID) (*user.User, error)
	Driver(ctx context.Context, users ports.UserRepository, id kernel.UUID) (*user.User, error)
	Manager(ctx context.Context, users ports.UserRepository, id kernel.UUID) (*user.User, error)
	Order(ctx context.Context, orders ports.OrderRepository, id kernel.UUID) (*order.Order, error)
	Vehicle(ctx context.Context, vehicles ports.VehicleRepository, id kernel.UUID) (*vehicle.Vehicle, error)
}

// rollback is deferred by every write operation; after Commit it does nothing.
func rollback(ctx context.Context, tx TxManager) {
	_ = tx.Rollback(ctx)
}

// notFound reports a delete target that does not exist.
func notFound(kind string, id kernel.UUID) error {
	return errs.NewObjectNotFoundError(kind, id)
}
