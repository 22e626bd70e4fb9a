package commands

import (
	"context"
	"errors"
	"time"

	"dispatch/internal/core/domain/model/customer"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

// OrderMetrics receives the outcome of every handled order.
type OrderMetrics interface {
	DeliveryAssigned()
	OrderRejected(reason string)
}

// DeliveryEvents is notified of every committed delivery.
type DeliveryEvents interface {
	DeliveryAssigned(ctx context.Context, d *delivery.Delivery)
}

// CreateOrderCommandHandler places an order and assigns it to a driver.
//
// The handler works in three steps:
//  1. Register the customer by name if unknown. This step commits on its own
//     and is kept even when the order is rejected later.
//  2. Check that restaurant and customer share a city and that the delivery
//     time lies in the future.
//  3. In one transaction, lock the drivers of the customer's city, load their
//     deliveries, pick a driver and store the new delivery.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, dispatcher, recorder, time.Now)
//	d, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, services.ErrNoFreeDrivers):
//	    log.Println("All drivers are busy")
//	case err != nil:
//	    log.Printf("Order failed: %v", err)
//	default:
//	    log.Printf("Driver %s assigned", d.DriverID())
//	}
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	validator  services.OrderValidator
	dispatcher services.DriverDispatcher
	metrics    OrderMetrics
	events     DeliveryEvents
	now        func() time.Time
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// now is consulted for every order to reject delivery times in the past.
func NewCreateOrderCommandHandler(
	uowFactory UoWFactory,
	dispatcher services.DriverDispatcher,
	metrics OrderMetrics,
	now func() time.Time,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		validator:  services.NewOrderValidator(),
		dispatcher: dispatcher,
		metrics:    metrics,
		now:        now,
	}
}

// WithDeliveryEvents returns a copy of the handler that reports committed
// deliveries to events.
func (h CreateOrderCommandHandler) WithDeliveryEvents(events DeliveryEvents) CreateOrderCommandHandler {
	h.events = events
	return h
}

// Handle processes the order and returns the persisted delivery.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*delivery.Delivery, error) {
	d, err := h.handle(ctx, cmd)
	if err != nil {
		if reason, ok := RejectionReason(err); ok {
			h.metrics.OrderRejected(reason)
		}
		return nil, err
	}

	h.metrics.DeliveryAssigned()
	if h.events != nil {
		h.events.DeliveryAssigned(ctx, d)
	}
	return d, nil
}

func (h CreateOrderCommandHandler) handle(ctx context.Context, cmd CreateOrderCommand) (*delivery.Delivery, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	orderer, err := h.ensureCustomer(ctx, cmd.Customer())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	r, err := uow.RestaurantRepository().Get(ctx, cmd.RestaurantID())
	if err != nil {
		return nil, err
	}

	at := cmd.DeliveryTime()
	if err = h.validator.Validate(orderer, r, at, h.now()); err != nil {
		return nil, err
	}

	drivers, err := uow.DriverRepository().GetAllByCity(ctx, orderer.CityID())
	if err != nil {
		return nil, err
	}

	history := make(services.History, len(drivers))
	deliveryRepo := uow.DeliveryRepository()
	for _, drv := range drivers {
		deliveries, getErr := deliveryRepo.GetAllByDriver(ctx, drv.ID())
		if getErr != nil {
			return nil, getErr
		}
		history[drv.ID()] = deliveries
	}

	chosen, err := h.dispatcher.Dispatch(drivers, history, at)
	if err != nil {
		return nil, err
	}

	d, err := h.dispatcher.CreateDelivery(chosen, r, orderer, at)
	if err != nil {
		return nil, err
	}

	if err = deliveryRepo.Add(ctx, d); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return d, nil
}

// ensureCustomer returns the stored customer with the given name, registering
// requested when nobody has that name yet. A stored customer wins over the
// requested one.
func (h CreateOrderCommandHandler) ensureCustomer(
	ctx context.Context,
	requested *customer.Customer,
) (*customer.Customer, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	existing, err := uow.CustomerRepository().GetByName(ctx, requested.Name())
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	if _, err = uow.CityRepository().Get(ctx, requested.CityID()); err != nil {
		return nil, err
	}

	if err = uow.CustomerRepository().Add(ctx, requested); err != nil {
		if !errors.Is(err, ports.ErrCustomerAlreadyExists) {
			return nil, err
		}
		// Lost a race against a concurrent order of the same customer.
		// The failed transaction is aborted, so the winner is read in a fresh one.
		_ = uow.Rollback(ctx)
		return h.readCustomer(ctx, requested.Name())
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return requested, nil
}

func (h CreateOrderCommandHandler) readCustomer(ctx context.Context, name string) (*customer.Customer, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	return uow.CustomerRepository().GetByName(ctx, name)
}

// RejectionReason maps a business rejection to its metrics label.
// Infrastructure failures are not rejections and report false.
func RejectionReason(err error) (string, bool) {
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		return "invalid_input", true
	case errors.Is(err, services.ErrCityMismatch):
		return "city_mismatch", true
	case errors.Is(err, services.ErrPastDeliveryTime):
		return "past_delivery_time", true
	case errors.Is(err, services.ErrNoDriversInCity):
		return "no_drivers_in_city", true
	case errors.Is(err, services.ErrNoFreeDrivers):
		return "no_free_drivers", true
	case errors.Is(err, services.ErrNoCandidates):
		return "no_candidates", true
	case errors.Is(err, errs.ErrObjectNotFound):
		return "not_found", true
	default:
		return "", false
	}
}
