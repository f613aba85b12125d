// Package ports defines the persistence and messaging contracts of the logistics core.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
//
// Every Get-style method returns an *errs.ObjectNotFoundError when nothing matches;
// every list method returns an empty slice rather than an error when nothing matches.
package ports

import (
	"context"

	"waypoint/internal/core/domain/model/kernel"
	"waypoint/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAll returns every order, unfiltered and unpaginated.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// GetAllByClient returns the orders placed by clientID. The client itself
	// is not checked for existence.
	GetAllByClient(ctx context.Context, clientID kernel.UUID) ([]*order.Order, error)

	// Delete removes the order row. Packages referring to it are left in place.
	Delete(ctx context.Context, id kernel.UUID) error

	// Exists reports whether an order with id is stored.
	Exists(ctx context.Context, id kernel.UUID) (bool, error)
}
