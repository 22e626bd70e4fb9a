package deliveryrepo_test

import (
	"context"
	"testing"
	"time"

	"dispatch/internal/adapters/out/postgres/deliveryrepo"
	"dispatch/internal/adapters/out/postgres/pgtest"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

type DeliveryRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *deliveryrepo.GormDeliveryRepository
	tracker    *MockAggregateTracker
}

func (suite *DeliveryRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
}

func (suite *DeliveryRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())
	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = deliveryrepo.NewGormDeliveryRepository(suite.database.DB, suite.tracker)
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.database != nil {
		suite.Require().NoError(suite.database.Terminate(context.Background()))
	}
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestAddAndGetAllByDriver() {
	ctx := suite.T().Context()
	driverID := kernel.NewUUID()
	base := time.Date(2026, 10, 16, 18, 0, 0, 0, time.UTC)

	late := suite.createDelivery(driverID, base.Add(3*time.Hour), 7.25)
	early := suite.createDelivery(driverID, base, 12.5)
	suite.createDelivery(kernel.NewUUID(), base, 3)

	deliveries, err := suite.repository.GetAllByDriver(ctx, driverID)
	suite.Require().NoError(err)
	suite.Require().Len(deliveries, 2)

	suite.True(deliveries[0].ID().IsEqual(early.ID()))
	suite.True(deliveries[1].ID().IsEqual(late.ID()))
	suite.True(deliveries[0].DeliveryTime().Equal(base))
	suite.InDelta(12.5, deliveries[0].Distance().Kilometers(), 1e-9)
	suite.True(deliveries[0].RestaurantID().IsEqual(early.RestaurantID()))
	suite.True(deliveries[0].CustomerID().IsEqual(early.CustomerID()))
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestGetAllByDriver_NoDeliveries() {
	deliveries, err := suite.repository.GetAllByDriver(suite.T().Context(), kernel.NewUUID())

	suite.Require().NoError(err)
	suite.Empty(deliveries)
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestAdd_NotConstructed() {
	err := suite.repository.Add(suite.T().Context(), &delivery.Delivery{})

	suite.Require().ErrorIs(err, delivery.ErrDeliveryIsNotConstructed)
}

func (suite *DeliveryRepositoryIntegrationTestSuite) createDelivery(driverID kernel.UUID, at time.Time, km float64) *delivery.Delivery {
	distance, err := kernel.NewDistance(km)
	suite.Require().NoError(err)
	d, err := delivery.NewDelivery(kernel.NewUUID(), driverID, kernel.NewUUID(), kernel.NewUUID(), at, distance)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(suite.T().Context(), d))
	return d
}

func TestDeliveryRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(DeliveryRepositoryIntegrationTestSuite))
}
