package services

import (
	"context"
	"time"

	"waypoint/internal/core/application/usecases/commands"
	"waypoint/internal/core/domain/model/kernel"
	"waypoint/internal/core/domain/model/order"
	"waypoint/internal/core/ports"
	"waypoint/internal/pkg/logger"
)

// OrderService manages orders placed by clients.
//
// Creating an order resolves its client first; a missing client fails with a
// not found error of kind "client" and nothing is written. Status updates accept
// any non-empty status with no transition rules. Deleting an order leaves its
// packages in place.
//
// Every committed write is announced through the OrderEventPublisher. Publishing
// happens after commit and its failures are logged, never returned.
type OrderService struct {
	uowFactory     OrderUoWFactory
	resolver       ReferenceResolver
	publisher      ports.OrderEventPublisher
	publishTimeout time.Duration
	log            *logger.Logger
	now            func() time.Time
}

// DefaultPublishTimeout bounds a single event publish after commit.
const DefaultPublishTimeout = 5 * time.Second

func NewOrderService(
	uowFactory OrderUoWFactory,
	resolver ReferenceResolver,
	publisher ports.OrderEventPublisher,
	log *logger.Logger,
) *OrderService {
	return &OrderService{
		uowFactory:     uowFactory,
		resolver:       resolver,
		publisher:      publisher,
		publishTimeout: DefaultPublishTimeout,
		log:            log.Named("order-service"),
		now:            time.Now,
	}
}

// ListAll returns every order, unfiltered.
func (s *OrderService) ListAll(ctx context.Context) ([]*order.Order, error) {
	return s.uowFactory.Create().OrderRepository().GetAll(ctx)
}

// Create places an order for an existing client.
func (s *OrderService) Create(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer rollback(ctx, uow)

	client, err := s.resolver.Client(ctx, uow.UserRepository(), cmd.ClientID())
	if err != nil {
		return nil, err
	}

	o, err := order.NewOrder(
		kernel.NewUUID(),
		client.ID(),
		cmd.Status(),
		cmd.Origin(),
		cmd.Destination(),
		cmd.EstimatedDeliveryTime(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	s.log.Debug().Str("orderId", o.ID().String()).Str("clientId", client.ID().String()).Msg("order created")
	s.publish(ctx, o, ports.OrderCreated)
	return o, nil
}

// Get returns the order or a not found error of kind "order".
func (s *OrderService) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return s.uowFactory.Create().OrderRepository().Get(ctx, id)
}

// ListByClient returns the client's orders. An unknown client yields an empty list.
func (s *OrderService) ListByClient(ctx context.Context, clientID kernel.UUID) ([]*order.Order, error) {
	return s.uowFactory.Create().OrderRepository().GetAllByClient(ctx, clientID)
}

// UpdateStatus overwrites the status of an order.
func (s *OrderService) UpdateStatus(ctx context.Context, cmd commands.UpdateOrderStatusCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer rollback(ctx, uow)

	repo := uow.OrderRepository()
	o, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	previous := o.Status()
	if err = o.ChangeStatus(cmd.Status()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	s.log.Debug().
		Str("orderId", o.ID().String()).
		Str("from", previous.String()).
		Str("to", o.Status().String()).
		Msg("order status changed")
	s.publish(ctx, o, ports.OrderStatusChanged)
	return o, nil
}

// Delete removes an order after checking that it exists.
func (s *OrderService) Delete(ctx context.Context, id kernel.UUID) error {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer rollback(ctx, uow)

	repo := uow.OrderRepository()
	o, err := repo.Get(ctx, id)
	if err != nil {
		return err
	}

	if err = repo.Delete(ctx, id); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	s.log.Debug().Str("orderId", id.String()).Msg("order deleted")
	s.publish(ctx, o, ports.OrderDeleted)
	return nil
}

func (s *OrderService) publish(ctx context.Context, o *order.Order, change ports.OrderChange) {
	event := ports.OrderChangedEvent{
		OrderID:    o.ID(),
		ClientID:   o.ClientID(),
		Status:     o.Status(),
		Change:     change,
		OccurredAt: s.now().UTC(),
	}
	// the write is committed: a caller that went away must not cancel the event
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.publishTimeout)
	defer cancel()

	if err := s.publisher.PublishOrderChanged(ctx, event); err != nil {
		s.log.Warn().Err(err).
			Str("orderId", o.ID().String()).
			Str("change", string(change)).
			Msg("failed to publish order changed event")
	}
}
