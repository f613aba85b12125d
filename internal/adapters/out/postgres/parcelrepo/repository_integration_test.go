package parcelrepo_test

import (
	"context"
	"testing"

	"waypoint/internal/adapters/out/postgres/parcelrepo"
	"waypoint/internal/adapters/out/postgres/pgtest"
	"waypoint/internal/core/domain/model/kernel"
	"waypoint/internal/core/domain/model/parcel"
	"waypoint/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ParcelRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *parcelrepo.GormParcelRepository
}

func (suite *ParcelRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background(), &parcelrepo.ParcelDTO{})
	suite.Require().NoError(err)
	suite.database = database
}

func (suite *ParcelRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate("packages"))
	suite.repository = parcelrepo.NewGormParcelRepository(suite.database.DB)
}

func (suite *ParcelRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *ParcelRepositoryIntegrationTestSuite) newParcel(orderID kernel.UUID, weight string) *parcel.Parcel {
	p, err := parcel.NewParcel(kernel.NewUUID(), orderID, "books", decimal.RequireFromString(weight), parcel.Pending)
	suite.Require().NoError(err)
	return p
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestAdd_ThenGet_PreservesDecimalWeight() {
	ctx := context.Background()
	orderID := kernel.NewUUID()
	p := suite.newParcel(orderID, "12.345")
	suite.Require().NoError(suite.repository.Add(ctx, p))

	got, err := suite.repository.Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.True(got.OrderID().IsEqual(orderID))
	suite.Equal("books", got.Description())
	suite.True(got.Weight().Equal(decimal.RequireFromString("12.345")))
	suite.Equal(parcel.Pending, got.Status())
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestAdd_OrphanOrderIsAccepted() {
	// No foreign key: the order id does not need a matching row.
	suite.Require().NoError(suite.repository.Add(context.Background(), suite.newParcel(kernel.NewUUID(), "1")))
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestUpdate_ReplacesDescriptionWeightAndStatus() {
	ctx := context.Background()
	p := suite.newParcel(kernel.NewUUID(), "2.5")
	suite.Require().NoError(suite.repository.Add(ctx, p))

	suite.Require().NoError(p.Revise("", decimal.Zero, parcel.Lost))
	suite.Require().NoError(suite.repository.Update(ctx, p))

	got, err := suite.repository.Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Empty(got.Description())
	suite.True(got.Weight().IsZero())
	suite.Equal(parcel.Lost, got.Status())
	suite.True(got.OrderID().IsEqual(p.OrderID()))
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestUpdate_NonExistent_ReturnsNotFound() {
	err := suite.repository.Update(context.Background(), suite.newParcel(kernel.NewUUID(), "1"))
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestGetAllByOrder() {
	ctx := context.Background()
	first, second := kernel.NewUUID(), kernel.NewUUID()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newParcel(first, "1")))
	suite.Require().NoError(suite.repository.Add(ctx, suite.newParcel(first, "2")))
	suite.Require().NoError(suite.repository.Add(ctx, suite.newParcel(second, "3")))

	parcels, err := suite.repository.GetAllByOrder(ctx, first)
	suite.Require().NoError(err)
	suite.Len(parcels, 2)

	none, err := suite.repository.GetAllByOrder(ctx, kernel.NewUUID())
	suite.Require().NoError(err)
	suite.Empty(none)

	all, err := suite.repository.GetAll(ctx)
	suite.Require().NoError(err)
	suite.Len(all, 3)
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestDelete_ThenGet_ReturnsNotFound() {
	ctx := context.Background()
	p := suite.newParcel(kernel.NewUUID(), "1")
	suite.Require().NoError(suite.repository.Add(ctx, p))

	suite.Require().NoError(suite.repository.Delete(ctx, p.ID()))

	_, err := suite.repository.Get(ctx, p.ID())
	var notFound *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFound)
	suite.Equal("package", notFound.Kind())

	exists, err := suite.repository.Exists(ctx, p.ID())
	suite.Require().NoError(err)
	suite.False(exists)
}

func TestParcelRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(ParcelRepositoryIntegrationTestSuite))
}
