// Package metrics holds the Prometheus collectors of the dispatch service.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// NewDeliveriesAssignedTotal returns a Prometheus counter for the number of orders assigned to a driver
func NewDeliveriesAssignedTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "dispatch_deliveries_assigned_total",
		Help: "Total number of orders assigned to a driver",
	})
}

// NewOrdersRejectedTotal returns a Prometheus counter vector for rejected orders, labelled by reason
func NewOrdersRejectedTotal() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "dispatch_orders_rejected_total",
		Help: "Total number of orders rejected before a driver was assigned",
	}, []string{"reason"})
}

// Dispatch records the outcome of order placement.
type Dispatch struct {
	assigned prometheus.Counter
	rejected *prometheus.CounterVec
}

// NewDispatch creates the dispatch collectors and registers them with reg.
// Collectors that are already registered are reused, so calling it twice
// against the same registry is safe.
func NewDispatch(reg prometheus.Registerer) (*Dispatch, error) {
	assigned, err := register(reg, NewDeliveriesAssignedTotal())
	if err != nil {
		return nil, err
	}
	rejected, err := register(reg, NewOrdersRejectedTotal())
	if err != nil {
		return nil, err
	}
	return &Dispatch{assigned: assigned, rejected: rejected}, nil
}

// DeliveryAssigned counts one successfully dispatched order.
func (d *Dispatch) DeliveryAssigned() {
	d.assigned.Inc()
}

// OrderRejected counts one rejected order.
func (d *Dispatch) OrderRejected(reason string) {
	d.rejected.WithLabelValues(reason).Inc()
}

func register[T prometheus.Collector](reg prometheus.Registerer, c T) (T, error) {
	if err := reg.Register(c); err != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(err, &already) {
			if existing, ok := already.ExistingCollector.(T); ok {
				return existing, nil
			}
		}
		var zero T
		return zero, err
	}
	return c, nil
}
