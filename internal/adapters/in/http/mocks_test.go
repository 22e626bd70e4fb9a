package http_test

import (
	"context"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/report"

	"github.com/stretchr/testify/mock"
)

type MockOrderPlacer struct{ mock.Mock }

func (m *MockOrderPlacer) Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*delivery.Delivery, error) {
	args := m.Called(ctx, cmd)
	d, _ := args.Get(0).(*delivery.Delivery)
	return d, args.Error(1)
}

type MockCityCreator struct{ mock.Mock }

func (m *MockCityCreator) Handle(ctx context.Context, cmd commands.CreateCityCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockDriverCreator struct{ mock.Mock }

func (m *MockDriverCreator) Handle(ctx context.Context, cmd commands.CreateDriverCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockRestaurantCreator struct{ mock.Mock }

func (m *MockRestaurantCreator) Handle(ctx context.Context, cmd commands.CreateRestaurantCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockDriverLister struct{ mock.Mock }

func (m *MockDriverLister) Handle(
	ctx context.Context,
	query queries.GetAllDriversQuery,
) ([]queries.GetAllDriversQueryResponse, error) {
	args := m.Called(ctx, query)
	rows, _ := args.Get(0).([]queries.GetAllDriversQueryResponse)
	return rows, args.Error(1)
}

type MockDriverDeliveriesLister struct{ mock.Mock }

func (m *MockDriverDeliveriesLister) Handle(
	ctx context.Context,
	query queries.GetDriverDeliveriesQuery,
) ([]queries.GetDriverDeliveriesQueryResponse, error) {
	args := m.Called(ctx, query)
	rows, _ := args.Get(0).([]queries.GetDriverDeliveriesQueryResponse)
	return rows, args.Error(1)
}

type MockRankReporter struct{ mock.Mock }

func (m *MockRankReporter) Handle(
	ctx context.Context,
	query queries.GetDriverRankReportQuery,
) ([]report.DriverDistance, error) {
	args := m.Called(ctx, query)
	rows, _ := args.Get(0).([]report.DriverDistance)
	return rows, args.Error(1)
}

type MockCityRankReporter struct{ mock.Mock }

func (m *MockCityRankReporter) Handle(
	ctx context.Context,
	query queries.GetDriverRankReportByCityQuery,
) ([]report.DriverDistance, error) {
	args := m.Called(ctx, query)
	rows, _ := args.Get(0).([]report.DriverDistance)
	return rows, args.Error(1)
}
