package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each service operation.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// Repositories obtained after Begin are bound to the transaction; repositories
// obtained without Begin read the committed state directly.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	UserRepository() UserRepository
	OrderRepository() OrderRepository
	ParcelRepository() ParcelRepository
	VehicleRepository() VehicleRepository
	RouteRepository() RouteRepository
	WarehouseRepository() WarehouseRepository
}
