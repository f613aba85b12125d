package services

import (
	"context"

	"waypoint/internal/core/application/usecases/commands"
	"waypoint/internal/core/domain/model/kernel"
	"waypoint/internal/core/domain/model/route"
	"waypoint/internal/pkg/logger"
)

const kindRoute = "route"

// RouteService manages routes. The vehicle of a route is resolved on creation
// and cannot be changed afterwards.
type RouteService struct {
	uowFactory RouteUoWFactory
	resolver   ReferenceResolver
	log        *logger.Logger
}

func NewRouteService(uowFactory RouteUoWFactory, resolver ReferenceResolver, log *logger.Logger) *RouteService {
	return &RouteService{
		uowFactory: uowFactory,
		resolver:   resolver,
		log:        log.Named("route-service"),
	}
}

func (s *RouteService) ListAll(ctx context.Context) ([]*route.Route, error) {
	return s.uowFactory.Create().RouteRepository().GetAll(ctx)
}

// Create registers a route; a missing vehicle fails with kind "vehicle".
func (s *RouteService) Create(ctx context.Context, cmd commands.CreateRouteCommand) (*route.Route, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer rollback(ctx, uow)

	v, err := s.resolver.Vehicle(ctx, uow.VehicleRepository(), cmd.VehicleID())
	if err != nil {
		return nil, err
	}

	d := cmd.Details()
	r, err := route.NewRoute(kernel.NewUUID(), v.ID(), d.Origin, d.Destination, d.EstimatedTime, d.TrafficConditions)
	if err != nil {
		return nil, err
	}

	if err = uow.RouteRepository().Add(ctx, r); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	s.log.Debug().Str("routeId", r.ID().String()).Str("vehicleId", v.ID().String()).Msg("route created")
	return r, nil
}

func (s *RouteService) Get(ctx context.Context, id kernel.UUID) (*route.Route, error) {
	return s.uowFactory.Create().RouteRepository().Get(ctx, id)
}

// ListByVehicle returns the routes of a vehicle. An unknown vehicle yields an empty list.
func (s *RouteService) ListByVehicle(ctx context.Context, vehicleID kernel.UUID) ([]*route.Route, error) {
	return s.uowFactory.Create().RouteRepository().GetAllByVehicle(ctx, vehicleID)
}

// Update replaces origin, destination, estimated time and traffic conditions.
func (s *RouteService) Update(ctx context.Context, cmd commands.UpdateRouteCommand) (*route.Route, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer rollback(ctx, uow)

	repo := uow.RouteRepository()
	r, err := repo.Get(ctx, cmd.RouteID())
	if err != nil {
		return nil, err
	}

	d := cmd.Details()
	if err = r.Revise(d.Origin, d.Destination, d.EstimatedTime, d.TrafficConditions); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, r); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	s.log.Debug().Str("routeId", r.ID().String()).Msg("route updated")
	return r, nil
}

func (s *RouteService) Delete(ctx context.Context, id kernel.UUID) error {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer rollback(ctx, uow)

	repo := uow.RouteRepository()
	exists, err := repo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return notFound(kindRoute, id)
	}

	if err = repo.Delete(ctx, id); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	s.log.Debug().Str("routeId", id.String()).Msg("route deleted")
	return nil
}
