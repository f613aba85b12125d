package services_test

import (
	"testing"

	"waypoint/internal/core/application/resolver"
	"waypoint/internal/core/application/services"
	"waypoint/internal/core/application/usecases/commands"
	"waypoint/internal/core/domain/model/kernel"
	"waypoint/internal/core/domain/model/warehouse"
	"waypoint/internal/pkg/errs"
	"waypoint/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type warehouseFixture struct {
	uow        *MockUoW
	users      *MockUserRepository
	warehouses *MockWarehouseRepository
	service    *services.WarehouseService
}

func newWarehouseFixture() *warehouseFixture {
	f := &warehouseFixture{
		uow:        new(MockUoW),
		users:      new(MockUserRepository),
		warehouses: new(MockWarehouseRepository),
	}
	f.uow.On("UserRepository").Return(f.users).Maybe()
	f.uow.On("WarehouseRepository").Return(f.warehouses).Maybe()
	f.service = services.NewWarehouseService(newFactory[services.WarehouseUoW](f.uow), resolver.New(), logger.Nop())
	return f
}

func TestWarehouseService_Create(t *testing.T) {
	details := commands.WarehouseDetails{Location: "Dock 7", Capacity: 100, AvailableSpace: 250}

	t.Run("manager is resolved and kept", func(t *testing.T) {
		ctx := t.Context()
		manager := newClient(t)
		cmd, err := commands.NewCreateWarehouseCommand(manager.ID(), details)
		require.NoError(t, err)

		f := newWarehouseFixture()
		mock.InOrder(
			f.uow.On("Begin", ctx).Return(nil).Once(),
			f.users.On("Get", ctx, manager.ID()).Return(manager, nil).Once(),
			f.warehouses.On("Add", ctx, mock.AnythingOfType("*warehouse.Warehouse")).Return(nil).Once(),
			f.uow.On("Commit", ctx).Return(nil).Once(),
			f.uow.On("Rollback", ctx).Return(nil).Once(),
		)

		w, err := f.service.Create(ctx, cmd)

		require.NoError(t, err)
		assert.True(t, w.ManagerID().IsEqual(manager.ID()))
		assert.Equal(t, 250, w.AvailableSpace(), "available space is not bounded by capacity")
		f.uow.AssertExpectations(t)
	})

	t.Run("missing manager fails with manager not found", func(t *testing.T) {
		ctx := t.Context()
		managerID := kernel.NewUUID()
		cmd, _ := commands.NewCreateWarehouseCommand(managerID, details)

		f := newWarehouseFixture()
		f.uow.On("Begin", ctx).Return(nil).Once()
		f.users.On("Get", ctx, managerID).Return(nil, errs.NewObjectNotFoundError("user", managerID)).Once()
		f.uow.On("Rollback", ctx).Return(nil).Once()

		_, err := f.service.Create(ctx, cmd)

		assertNotFoundKind(t, err, resolver.KindManager)
		f.warehouses.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	})
}

func TestWarehouseService_Update_KeepsManager(t *testing.T) {
	ctx := t.Context()
	managerID := kernel.NewUUID()
	existing, err := warehouse.NewWarehouse(kernel.NewUUID(), "Dock 7", 100, 40, &managerID)
	require.NoError(t, err)
	cmd, _ := commands.NewUpdateWarehouseCommand(existing.ID(), commands.WarehouseDetails{Location: "Dock 9", Capacity: 10, AvailableSpace: 1})

	f := newWarehouseFixture()
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.warehouses.On("Get", ctx, existing.ID()).Return(existing, nil).Once()
	f.warehouses.On("Update", ctx, existing).Return(nil).Once()
	f.uow.On("Commit", ctx).Return(nil).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()

	updated, err := f.service.Update(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "Dock 9", updated.Location())
	assert.True(t, updated.ManagerID().IsEqual(managerID))
	f.users.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestWarehouseService_GetByLocation(t *testing.T) {
	ctx := t.Context()
	f := newWarehouseFixture()
	f.warehouses.On("GetByLocation", ctx, "Nowhere").
		Return(nil, errs.NewObjectNotFoundError("warehouse", "Nowhere")).Once()

	_, err := f.service.GetByLocation(ctx, "Nowhere")

	assertNotFoundKind(t, err, "warehouse")
}

func TestWarehouseService_Delete_Absent(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()

	f := newWarehouseFixture()
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.warehouses.On("Exists", ctx, id).Return(false, nil).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()

	assertNotFoundKind(t, f.service.Delete(ctx, id), "warehouse")
	f.warehouses.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
