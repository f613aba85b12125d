package services_test

import (
	"testing"

	"waypoint/internal/core/application/resolver"
	"waypoint/internal/core/application/services"
	"waypoint/internal/core/application/usecases/commands"
	"waypoint/internal/core/domain/model/kernel"
	"waypoint/internal/core/domain/model/route"
	"waypoint/internal/core/domain/model/vehicle"
	"waypoint/internal/pkg/errs"
	"waypoint/internal/pkg/logger"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type routeFixture struct {
	uow      *MockUoW
	vehicles *MockVehicleRepository
	routes   *MockRouteRepository
	service  *services.RouteService
}

func newRouteFixture() *routeFixture {
	f := &routeFixture{
		uow:      new(MockUoW),
		vehicles: new(MockVehicleRepository),
		routes:   new(MockRouteRepository),
	}
	f.uow.On("VehicleRepository").Return(f.vehicles).Maybe()
	f.uow.On("RouteRepository").Return(f.routes).Maybe()
	f.service = services.NewRouteService(newFactory[services.RouteUoW](f.uow), resolver.New(), logger.Nop())
	return f
}

func newVan(t *testing.T, plate string) *vehicle.Vehicle {
	t.Helper()
	v, err := vehicle.NewVehicle(kernel.NewUUID(), "VAN", plate, decimal.NewFromInt(1000), "depot")
	require.NoError(t, err)
	return v
}

func TestRouteService_Create(t *testing.T) {
	details := commands.RouteDetails{Origin: "A", Destination: "B", EstimatedTime: "2h", TrafficConditions: "light"}

	t.Run("route is bound to the resolved vehicle", func(t *testing.T) {
		ctx := t.Context()
		v := newVan(t, "R-1")
		cmd, err := commands.NewCreateRouteCommand(v.ID(), details)
		require.NoError(t, err)

		f := newRouteFixture()
		mock.InOrder(
			f.uow.On("Begin", ctx).Return(nil).Once(),
			f.vehicles.On("Get", ctx, v.ID()).Return(v, nil).Once(),
			f.routes.On("Add", ctx, mock.AnythingOfType("*route.Route")).Return(nil).Once(),
			f.uow.On("Commit", ctx).Return(nil).Once(),
			f.uow.On("Rollback", ctx).Return(nil).Once(),
		)

		r, err := f.service.Create(ctx, cmd)

		require.NoError(t, err)
		assert.True(t, r.VehicleID().IsEqual(v.ID()))
		assert.Equal(t, "light", r.TrafficConditions())
		f.uow.AssertExpectations(t)
	})

	t.Run("missing vehicle fails with vehicle not found", func(t *testing.T) {
		ctx := t.Context()
		vehicleID := kernel.NewUUID()
		cmd, _ := commands.NewCreateRouteCommand(vehicleID, details)

		f := newRouteFixture()
		f.uow.On("Begin", ctx).Return(nil).Once()
		f.vehicles.On("Get", ctx, vehicleID).Return(nil, errs.NewObjectNotFoundError("vehicle", vehicleID)).Once()
		f.uow.On("Rollback", ctx).Return(nil).Once()

		_, err := f.service.Create(ctx, cmd)

		assertNotFoundKind(t, err, "vehicle")
		f.routes.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	})
}

func TestRouteService_Update_KeepsVehicle(t *testing.T) {
	ctx := t.Context()
	vehicleID := kernel.NewUUID()
	existing, err := route.NewRoute(kernel.NewUUID(), vehicleID, "A", "B", "", "")
	require.NoError(t, err)
	cmd, _ := commands.NewUpdateRouteCommand(existing.ID(), commands.RouteDetails{Origin: "C", Destination: "D", EstimatedTime: "3h"})

	f := newRouteFixture()
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.routes.On("Get", ctx, existing.ID()).Return(existing, nil).Once()
	f.routes.On("Update", ctx, existing).Return(nil).Once()
	f.uow.On("Commit", ctx).Return(nil).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()

	updated, err := f.service.Update(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, updated.ID().IsEqual(existing.ID()))
	assert.True(t, updated.VehicleID().IsEqual(vehicleID))
	assert.Equal(t, "C", updated.Origin())
	assert.Equal(t, "3h", updated.EstimatedTime())
	f.vehicles.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	f.routes.AssertExpectations(t)
}

func TestRouteService_Delete_Absent(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()

	f := newRouteFixture()
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.routes.On("Exists", ctx, id).Return(false, nil).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()

	assertNotFoundKind(t, f.service.Delete(ctx, id), "route")
	f.routes.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestRouteService_ListByVehicle(t *testing.T) {
	ctx := t.Context()
	vehicleID := kernel.NewUUID()

	f := newRouteFixture()
	f.routes.On("GetAllByVehicle", ctx, vehicleID).Return([]*route.Route{}, nil).Once()

	list, err := f.service.ListByVehicle(ctx, vehicleID)

	require.NoError(t, err)
	assert.Empty(t, list)
}
