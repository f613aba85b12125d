package warehouserepo_test

import (
	"context"
	"testing"

	"waypoint/internal/adapters/out/postgres/pgtest"
	"waypoint/internal/adapters/out/postgres/warehouserepo"
	"waypoint/internal/core/domain/model/kernel"
	"waypoint/internal/core/domain/model/warehouse"
	"waypoint/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type WarehouseRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *warehouserepo.GormWarehouseRepository
}

func (suite *WarehouseRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background(), &warehouserepo.WarehouseDTO{})
	suite.Require().NoError(err)
	suite.database = database
}

func (suite *WarehouseRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate("warehouses"))
	suite.repository = warehouserepo.NewGormWarehouseRepository(suite.database.DB)
}

func (suite *WarehouseRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *WarehouseRepositoryIntegrationTestSuite) newWarehouse(location string) *warehouse.Warehouse {
	managerID := kernel.NewUUID()
	w, err := warehouse.NewWarehouse(kernel.NewUUID(), location, 500, 120, &managerID)
	suite.Require().NoError(err)
	return w
}

func (suite *WarehouseRepositoryIntegrationTestSuite) TestAdd_ThenGetByLocation() {
	ctx := context.Background()
	w := suite.newWarehouse("Dock 7")
	suite.Require().NoError(suite.repository.Add(ctx, w))

	got, err := suite.repository.GetByLocation(ctx, "Dock 7")
	suite.Require().NoError(err)
	suite.True(got.ID().IsEqual(w.ID()))
	suite.Equal(500, got.Capacity())
	suite.Equal(120, got.AvailableSpace())
	suite.Require().NotNil(got.ManagerID())
	suite.True(got.ManagerID().IsEqual(*w.ManagerID()))
}

func (suite *WarehouseRepositoryIntegrationTestSuite) TestGetByLocation_Unknown_ReturnsWarehouseNotFound() {
	_, err := suite.repository.GetByLocation(context.Background(), "Nowhere")

	var notFound *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFound)
	suite.Equal("warehouse", notFound.Kind())
}

func (suite *WarehouseRepositoryIntegrationTestSuite) TestAdd_DuplicateLocation_ReturnsAlreadyExists() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newWarehouse("Dock 7")))

	err := suite.repository.Add(ctx, suite.newWarehouse("Dock 7"))

	var exists *errs.ObjectAlreadyExistsError
	suite.Require().ErrorAs(err, &exists)
	suite.Equal("location", exists.ParamName)
}

func (suite *WarehouseRepositoryIntegrationTestSuite) TestUpdate_AllowsAvailableSpaceAboveCapacity() {
	ctx := context.Background()
	w := suite.newWarehouse("Dock 8")
	suite.Require().NoError(suite.repository.Add(ctx, w))
	manager := *w.ManagerID()

	suite.Require().NoError(w.Revise("Dock 9", 10, 900))
	suite.Require().NoError(suite.repository.Update(ctx, w))

	got, err := suite.repository.Get(ctx, w.ID())
	suite.Require().NoError(err)
	suite.Equal("Dock 9", got.Location())
	suite.Equal(10, got.Capacity())
	suite.Equal(900, got.AvailableSpace())
	suite.True(got.ManagerID().IsEqual(manager))
}

func (suite *WarehouseRepositoryIntegrationTestSuite) TestDelete_ThenGet_ReturnsNotFound() {
	ctx := context.Background()
	w := suite.newWarehouse("Dock 1")
	suite.Require().NoError(suite.repository.Add(ctx, w))
	suite.Require().NoError(suite.repository.Delete(ctx, w.ID()))

	_, err := suite.repository.Get(ctx, w.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	all, err := suite.repository.GetAll(ctx)
	suite.Require().NoError(err)
	suite.Empty(all)
}

func TestWarehouseRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(WarehouseRepositoryIntegrationTestSuite))
}
