package services_test

import (
	"context"

	"waypoint/internal/core/domain/model/kernel"
	"waypoint/internal/core/domain/model/order"
	"waypoint/internal/core/domain/model/parcel"
	"waypoint/internal/core/domain/model/route"
	"waypoint/internal/core/domain/model/user"
	"waypoint/internal/core/domain/model/vehicle"
	"waypoint/internal/core/domain/model/warehouse"
	"waypoint/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, e *user.User) error {
	return m.Called(ctx, e).Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, e *user.User) error {
	return m.Called(ctx, e).Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	e, _ := args.Get(0).(*user.User)
	return e, args.Error(1)
}

func (m *MockUserRepository) GetAll(ctx context.Context) ([]*user.User, error) {
	args := m.Called(ctx)
	e, _ := args.Get(0).([]*user.User)
	return e, args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	e, _ := args.Get(0).(*user.User)
	return e, args.Error(1)
}

func (m *MockUserRepository) Exists(ctx context.Context, id kernel.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, e *order.Order) error {
	return m.Called(ctx, e).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, e *order.Order) error {
	return m.Called(ctx, e).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	e, _ := args.Get(0).(*order.Order)
	return e, args.Error(1)
}

func (m *MockOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	e, _ := args.Get(0).([]*order.Order)
	return e, args.Error(1)
}

func (m *MockOrderRepository) GetAllByClient(ctx context.Context, clientID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, clientID)
	e, _ := args.Get(0).([]*order.Order)
	return e, args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockOrderRepository) Exists(ctx context.Context, id kernel.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockParcelRepository struct{ mock.Mock }

func (m *MockParcelRepository) Add(ctx context.Context, e *parcel.Parcel) error {
	return m.Called(ctx, e).Error(0)
}

func (m *MockParcelRepository) Update(ctx context.Context, e *parcel.Parcel) error {
	return m.Called(ctx, e).Error(0)
}

func (m *MockParcelRepository) Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	args := m.Called(ctx, id)
	e, _ := args.Get(0).(*parcel.Parcel)
	return e, args.Error(1)
}

func (m *MockParcelRepository) GetAll(ctx context.Context) ([]*parcel.Parcel, error) {
	args := m.Called(ctx)
	e, _ := args.Get(0).([]*parcel.Parcel)
	return e, args.Error(1)
}

func (m *MockParcelRepository) GetAllByOrder(ctx context.Context, orderID kernel.UUID) ([]*parcel.Parcel, error) {
	args := m.Called(ctx, orderID)
	e, _ := args.Get(0).([]*parcel.Parcel)
	return e, args.Error(1)
}

func (m *MockParcelRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockParcelRepository) Exists(ctx context.Context, id kernel.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockVehicleRepository struct{ mock.Mock }

func (m *MockVehicleRepository) Add(ctx context.Context, e *vehicle.Vehicle) error {
	return m.Called(ctx, e).Error(0)
}

func (m *MockVehicleRepository) Update(ctx context.Context, e *vehicle.Vehicle) error {
	return m.Called(ctx, e).Error(0)
}

func (m *MockVehicleRepository) Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error) {
	args := m.Called(ctx, id)
	e, _ := args.Get(0).(*vehicle.Vehicle)
	return e, args.Error(1)
}

func (m *MockVehicleRepository) GetAll(ctx context.Context) ([]*vehicle.Vehicle, error) {
	args := m.Called(ctx)
	e, _ := args.Get(0).([]*vehicle.Vehicle)
	return e, args.Error(1)
}

func (m *MockVehicleRepository) GetByLicensePlate(ctx context.Context, plate string) (*vehicle.Vehicle, error) {
	args := m.Called(ctx, plate)
	e, _ := args.Get(0).(*vehicle.Vehicle)
	return e, args.Error(1)
}

func (m *MockVehicleRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockVehicleRepository) Exists(ctx context.Context, id kernel.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockRouteRepository struct{ mock.Mock }

func (m *MockRouteRepository) Add(ctx context.Context, e *route.Route) error {
	return m.Called(ctx, e).Error(0)
}

func (m *MockRouteRepository) Update(ctx context.Context, e *route.Route) error {
	return m.Called(ctx, e).Error(0)
}

func (m *MockRouteRepository) Get(ctx context.Context, id kernel.UUID) (*route.Route, error) {
	args := m.Called(ctx, id)
	e, _ := args.Get(0).(*route.Route)
	return e, args.Error(1)
}

func (m *MockRouteRepository) GetAll(ctx context.Context) ([]*route.Route, error) {
	args := m.Called(ctx)
	e, _ := args.Get(0).([]*route.Route)
	return e, args.Error(1)
}

func (m *MockRouteRepository) GetAllByVehicle(ctx context.Context, vehicleID kernel.UUID) ([]*route.Route, error) {
	args := m.Called(ctx, vehicleID)
	e, _ := args.Get(0).([]*route.Route)
	return e, args.Error(1)
}

func (m *MockRouteRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockRouteRepository) Exists(ctx context.Context, id kernel.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockWarehouseRepository struct{ mock.Mock }

func (m *MockWarehouseRepository) Add(ctx context.Context, e *warehouse.Warehouse) error {
	return m.Called(ctx, e).Error(0)
}

func (m *MockWarehouseRepository) Update(ctx context.Context, e *warehouse.Warehouse) error {
	return m.Called(ctx, e).Error(0)
}

func (m *MockWarehouseRepository) Get(ctx context.Context, id kernel.UUID) (*warehouse.Warehouse, error) {
	args := m.Called(ctx, id)
	e, _ := args.Get(0).(*warehouse.Warehouse)
	return e, args.Error(1)
}

func (m *MockWarehouseRepository) GetAll(ctx context.Context) ([]*warehouse.Warehouse, error) {
	args := m.Called(ctx)
	e, _ := args.Get(0).([]*warehouse.Warehouse)
	return e, args.Error(1)
}

func (m *MockWarehouseRepository) GetByLocation(ctx context.Context, location string) (*warehouse.Warehouse, error) {
	args := m.Called(ctx, location)
	e, _ := args.Get(0).(*warehouse.Warehouse)
	return e, args.Error(1)
}

func (m *MockWarehouseRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockWarehouseRepository) Exists(ctx context.Context, id kernel.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockUoW satisfies every narrowed unit of work of the services package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) UserRepository() ports.UserRepository {
	return m.Called().Get(0).(ports.UserRepository)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

func (m *MockUoW) ParcelRepository() ports.ParcelRepository {
	return m.Called().Get(0).(ports.ParcelRepository)
}

func (m *MockUoW) VehicleRepository() ports.VehicleRepository {
	return m.Called().Get(0).(ports.VehicleRepository)
}

func (m *MockUoW) RouteRepository() ports.RouteRepository {
	return m.Called().Get(0).(ports.RouteRepository)
}

func (m *MockUoW) WarehouseRepository() ports.WarehouseRepository {
	return m.Called().Get(0).(ports.WarehouseRepository)
}

// uowFactory hands out the same unit of work on every Create call and counts them.
type uowFactory[T any] struct {
	uow     T
	created int
}

func (f *uowFactory[T]) Create() T {
	f.created++
	return f.uow
}

func newFactory[T any](uow T) *uowFactory[T] {
	return &uowFactory[T]{uow: uow}
}

type MockOrderEventPublisher struct{ mock.Mock }

func (m *MockOrderEventPublisher) PublishOrderChanged(ctx context.Context, event ports.OrderChangedEvent) error {
	return m.Called(ctx, event).Error(0)
}
