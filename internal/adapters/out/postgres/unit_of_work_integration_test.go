package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "waypoint/internal/adapters/out/postgres"
	"waypoint/internal/adapters/out/postgres/pgtest"
	"waypoint/internal/core/domain/model/kernel"
	"waypoint/internal/core/domain/model/order"
	"waypoint/internal/core/domain/model/parcel"
	"waypoint/internal/core/domain/model/user"
	"waypoint/internal/core/domain/model/vehicle"
	"waypoint/internal/core/ports"
	"waypoint/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// UnitOfWorkIntegrationTestSuite exercises transaction boundaries against a
// real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	database *pgtest.Database
	factory  ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background(), postgres_adapter.Models()...)
	suite.Require().NoError(err)
	suite.database = database
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(database.DB)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate("users", "orders", "packages", "vehicles", "routes", "warehouses"))
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *UnitOfWorkIntegrationTestSuite) newClient() *user.User {
	u, err := user.NewUser(kernel.NewUUID(), kernel.NewUUID().String()+"@example.com", "client", "hash", user.Regular, time.Now())
	suite.Require().NoError(err)
	return u
}

func (suite *UnitOfWorkIntegrationTestSuite) newOrder(clientID kernel.UUID) *order.Order {
	o, err := order.NewOrder(kernel.NewUUID(), clientID, order.Pending, "A", "B", nil)
	suite.Require().NoError(err)
	return o
}

func (suite *UnitOfWorkIntegrationTestSuite) TestMigrate_IsIdempotent() {
	suite.Require().NoError(postgres_adapter.Migrate(suite.database.DB))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestFactoryCreate_ReturnsSeparateInstances() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2)
	suite.NotNil(uow1.UserRepository())
	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow1.ParcelRepository())
	suite.NotNil(uow1.VehicleRepository())
	suite.NotNil(uow1.RouteRepository())
	suite.NotNil(uow1.WarehouseRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "repeated Begin is a no-op")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))

	suite.Require().Error(uow.Commit(ctx), "commit without a transaction")
	suite.Require().Error(uow.Rollback(ctx), "rollback without a transaction")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsAcrossRepositories() {
	ctx := context.Background()
	uow := suite.factory.Create()
	client := suite.newClient()
	o := suite.newOrder(client.ID())
	p, err := parcel.NewParcel(kernel.NewUUID(), o.ID(), "books", decimal.NewFromInt(2), parcel.Pending)
	suite.Require().NoError(err)

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.UserRepository().Add(ctx, client))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.ParcelRepository().Add(ctx, p))
	suite.Require().NoError(uow.Commit(ctx))

	reader := suite.factory.Create()
	_, err = reader.UserRepository().Get(ctx, client.ID())
	suite.Require().NoError(err)
	_, err = reader.OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	parcels, err := reader.ParcelRepository().GetAllByOrder(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Len(parcels, 1)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsEverything() {
	ctx := context.Background()
	uow := suite.factory.Create()
	client := suite.newClient()
	o := suite.newOrder(client.ID())

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.UserRepository().Add(ctx, client))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))

	_, err := uow.OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err, "visible inside the transaction")

	suite.Require().NoError(uow.Rollback(ctx))

	reader := suite.factory.Create()
	_, err = reader.OrderRepository().Get(ctx, o.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	_, err = reader.UserRepository().Get(ctx, client.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUncommittedWrites_InvisibleToOtherUnits() {
	ctx := context.Background()
	writer := suite.factory.Create()
	client := suite.newClient()

	suite.Require().NoError(writer.Begin(ctx))
	suite.Require().NoError(writer.UserRepository().Add(ctx, client))

	exists, err := suite.factory.Create().UserRepository().Exists(ctx, client.ID())
	suite.Require().NoError(err)
	suite.False(exists)

	suite.Require().NoError(writer.Commit(ctx))

	exists, err = suite.factory.Create().UserRepository().Exists(ctx, client.ID())
	suite.Require().NoError(err)
	suite.True(exists)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUniqueViolation_AbortsTransaction() {
	ctx := context.Background()
	first, err := vehicle.NewVehicle(kernel.NewUUID(), "VAN", "DUP-1", decimal.NewFromInt(1), "")
	suite.Require().NoError(err)
	second, err := vehicle.NewVehicle(kernel.NewUUID(), "VAN", "DUP-1", decimal.NewFromInt(1), "")
	suite.Require().NoError(err)

	suite.Require().NoError(suite.factory.Create().VehicleRepository().Add(ctx, first))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	err = uow.VehicleRepository().Add(ctx, second)
	suite.Require().ErrorIs(err, errs.ErrObjectAlreadyExists)
	suite.Require().NoError(uow.Rollback(ctx))

	all, err := suite.factory.Create().VehicleRepository().GetAll(ctx)
	suite.Require().NoError(err)
	suite.Len(all, 1)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestDeleteOrder_LeavesPackagesInPlace() {
	ctx := context.Background()
	o := suite.newOrder(kernel.NewUUID())
	p, err := parcel.NewParcel(kernel.NewUUID(), o.ID(), "", decimal.Zero, parcel.Pending)
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.ParcelRepository().Add(ctx, p))
	suite.Require().NoError(uow.OrderRepository().Delete(ctx, o.ID()))
	suite.Require().NoError(uow.Commit(ctx))

	got, err := suite.factory.Create().ParcelRepository().Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.True(got.OrderID().IsEqual(o.ID()))
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
