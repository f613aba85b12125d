package ports

import (
	"context"
	"time"

	"waypoint/internal/core/domain/model/kernel"
	"waypoint/internal/core/domain/model/order"
)

// OrderChange names what happened to an order.
type OrderChange string

const (
	OrderCreated       OrderChange = "CREATED"
	OrderStatusChanged OrderChange = "STATUS_CHANGED"
	OrderDeleted       OrderChange = "DELETED"
)

// OrderChangedEvent is emitted after an order write has been committed.
type OrderChangedEvent struct {
	OrderID    kernel.UUID
	ClientID   kernel.UUID
	Status     order.Status
	Change     OrderChange
	OccurredAt time.Time
}

// OrderEventPublisher delivers order events to interested parties outside the process.
type OrderEventPublisher interface {
	PublishOrderChanged(ctx context.Context, event OrderChangedEvent) error
}
