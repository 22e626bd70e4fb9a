package commands_test

import (
	"context"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/city"
	"dispatch/internal/core/domain/model/customer"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/restaurant"
	"dispatch/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockCityRepository struct{ mock.Mock }

func (m *MockCityRepository) Add(ctx context.Context, c *city.City) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCityRepository) Get(ctx context.Context, id kernel.UUID) (*city.City, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*city.City)
	return c, args.Error(1)
}

type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) Add(ctx context.Context, c *customer.Customer) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCustomerRepository) GetByName(ctx context.Context, name string) (*customer.Customer, error) {
	args := m.Called(ctx, name)
	c, _ := args.Get(0).(*customer.Customer)
	return c, args.Error(1)
}

type MockRestaurantRepository struct{ mock.Mock }

func (m *MockRestaurantRepository) Add(ctx context.Context, r *restaurant.Restaurant) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockRestaurantRepository) Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(*restaurant.Restaurant)
	return r, args.Error(1)
}

type MockDriverRepository struct{ mock.Mock }

func (m *MockDriverRepository) Add(ctx context.Context, d *driver.Driver) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockDriverRepository) Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error) {
	args := m.Called(ctx, id)
	d, _ := args.Get(0).(*driver.Driver)
	return d, args.Error(1)
}

func (m *MockDriverRepository) GetAllByCity(ctx context.Context, cityID kernel.UUID) ([]*driver.Driver, error) {
	args := m.Called(ctx, cityID)
	d, _ := args.Get(0).([]*driver.Driver)
	return d, args.Error(1)
}

type MockDeliveryRepository struct{ mock.Mock }

func (m *MockDeliveryRepository) Add(ctx context.Context, d *delivery.Delivery) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockDeliveryRepository) GetAllByDriver(ctx context.Context, driverID kernel.UUID) ([]*delivery.Delivery, error) {
	args := m.Called(ctx, driverID)
	d, _ := args.Get(0).([]*delivery.Delivery)
	return d, args.Error(1)
}

// MockUoW mocks the transaction methods and hands out the repositories it holds.
type MockUoW struct {
	mock.Mock
	cities      *MockCityRepository
	customers   *MockCustomerRepository
	restaurants *MockRestaurantRepository
	drivers     *MockDriverRepository
	deliveries  *MockDeliveryRepository
}

func newMockUoW() *MockUoW {
	return &MockUoW{
		cities:      new(MockCityRepository),
		customers:   new(MockCustomerRepository),
		restaurants: new(MockRestaurantRepository),
		drivers:     new(MockDriverRepository),
		deliveries:  new(MockDeliveryRepository),
	}
}

func (m *MockUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockUoW) CityRepository() ports.CityRepository             { return m.cities }
func (m *MockUoW) CustomerRepository() ports.CustomerRepository     { return m.customers }
func (m *MockUoW) RestaurantRepository() ports.RestaurantRepository { return m.restaurants }
func (m *MockUoW) DriverRepository() ports.DriverRepository         { return m.drivers }
func (m *MockUoW) DeliveryRepository() ports.DeliveryRepository     { return m.deliveries }

// expectTx sets up a transaction that begins, and optionally commits.
func (m *MockUoW) expectTx(commit bool) {
	m.On("Begin", mock.Anything).Return(nil).Once()
	if commit {
		m.On("Commit", mock.Anything).Return(nil).Once()
	}
	m.On("Rollback", mock.Anything).Return(nil).Maybe()
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	return m.Called().Get(0).(commands.UoW)
}

type MockCityUoWFactory struct{ mock.Mock }

func (m *MockCityUoWFactory) Create() commands.CityUoW {
	return m.Called().Get(0).(commands.CityUoW)
}

type MockDriverUoWFactory struct{ mock.Mock }

func (m *MockDriverUoWFactory) Create() commands.DriverUoW {
	return m.Called().Get(0).(commands.DriverUoW)
}

type MockRestaurantUoWFactory struct{ mock.Mock }

func (m *MockRestaurantUoWFactory) Create() commands.RestaurantUoW {
	return m.Called().Get(0).(commands.RestaurantUoW)
}

type MockOrderMetrics struct{ mock.Mock }

func (m *MockOrderMetrics) DeliveryAssigned()           { m.Called() }
func (m *MockOrderMetrics) OrderRejected(reason string) { m.Called(reason) }

type MockDeliveryEvents struct{ mock.Mock }

func (m *MockDeliveryEvents) DeliveryAssigned(ctx context.Context, d *delivery.Delivery) {
	m.Called(ctx, d)
}
