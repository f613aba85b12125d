package services

import (
	"context"

	"waypoint/internal/core/application/usecases/commands"
	"waypoint/internal/core/domain/model/kernel"
	"waypoint/internal/core/domain/model/parcel"
	"waypoint/internal/pkg/logger"
)

const kindPackage = "package"

// ParcelService manages packages. A package is created for an existing order and
// stays attached to it; updates replace description, weight and status together.
type ParcelService struct {
	uowFactory ParcelUoWFactory
	resolver   ReferenceResolver
	log        *logger.Logger
}

func NewParcelService(uowFactory ParcelUoWFactory, resolver ReferenceResolver, log *logger.Logger) *ParcelService {
	return &ParcelService{
		uowFactory: uowFactory,
		resolver:   resolver,
		log:        log.Named("package-service"),
	}
}

func (s *ParcelService) ListAll(ctx context.Context) ([]*parcel.Parcel, error) {
	return s.uowFactory.Create().ParcelRepository().GetAll(ctx)
}

// Create adds a package to an order; a missing order fails with kind "order".
func (s *ParcelService) Create(ctx context.Context, cmd commands.CreateParcelCommand) (*parcel.Parcel, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer rollback(ctx, uow)

	o, err := s.resolver.Order(ctx, uow.OrderRepository(), cmd.OrderID())
	if err != nil {
		return nil, err
	}

	p, err := parcel.NewParcel(kernel.NewUUID(), o.ID(), cmd.Description(), cmd.Weight(), cmd.Status())
	if err != nil {
		return nil, err
	}

	if err = uow.ParcelRepository().Add(ctx, p); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	s.log.Debug().Str("packageId", p.ID().String()).Str("orderId", o.ID().String()).Msg("package created")
	return p, nil
}

func (s *ParcelService) Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	return s.uowFactory.Create().ParcelRepository().Get(ctx, id)
}

// ListByOrder returns the packages of an order. An unknown order yields an empty list.
func (s *ParcelService) ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*parcel.Parcel, error) {
	return s.uowFactory.Create().ParcelRepository().GetAllByOrder(ctx, orderID)
}

func (s *ParcelService) Update(ctx context.Context, cmd commands.UpdateParcelCommand) (*parcel.Parcel, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer rollback(ctx, uow)

	repo := uow.ParcelRepository()
	p, err := repo.Get(ctx, cmd.ParcelID())
	if err != nil {
		return nil, err
	}

	if err = p.Revise(cmd.Description(), cmd.Weight(), cmd.Status()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, p); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	s.log.Debug().Str("packageId", p.ID().String()).Msg("package updated")
	return p, nil
}

func (s *ParcelService) Delete(ctx context.Context, id kernel.UUID) error {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer rollback(ctx, uow)

	repo := uow.ParcelRepository()
	exists, err := repo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return notFound(kindPackage, id)
	}

	if err = repo.Delete(ctx, id); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	s.log.Debug().Str("packageId", id.String()).Msg("package deleted")
	return nil
}
