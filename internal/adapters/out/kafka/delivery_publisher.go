// Package kafka publishes dispatch events to Kafka.
package kafka

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"dispatch/internal/core/domain/model/delivery"

	"github.com/IBM/sarama"
)

// DeliveryAssignedEvent is the message value written for every new delivery.
type DeliveryAssignedEvent struct {
	DeliveryID   string    `json:"deliveryId"`
	DriverID     string    `json:"driverId"`
	RestaurantID string    `json:"restaurantId"`
	CustomerID   string    `json:"customerId"`
	DeliveryTime time.Time `json:"deliveryTime"`
	Distance     float64   `json:"distance"`
}

// DeliveryPublisher writes DeliveryAssignedEvent messages keyed by driver ID.
// A nil publisher is valid and publishes nothing.
type DeliveryPublisher struct {
	producer sarama.SyncProducer
	topic    string
	logger   *slog.Logger
}

var newSyncProducer = sarama.NewSyncProducer

// NewDeliveryPublisher connects to brokers. It returns nil without error when
// brokers or topic are not configured.
func NewDeliveryPublisher(brokers []string, topic string, logger *slog.Logger) (*DeliveryPublisher, error) {
	if len(brokers) == 0 || strings.TrimSpace(topic) == "" {
		return nil, nil
	}

	cfg := sarama.NewConfig()
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Return.Successes = true

	producer, err := newSyncProducer(brokers, cfg)
	if err != nil {
		return nil, err
	}

	return NewDeliveryPublisherWithProducer(producer, topic, logger), nil
}

// NewDeliveryPublisherWithProducer wraps an existing producer.
func NewDeliveryPublisherWithProducer(producer sarama.SyncProducer, topic string, logger *slog.Logger) *DeliveryPublisher {
	return &DeliveryPublisher{
		producer: producer,
		topic:    topic,
		logger:   logger.With("component", "delivery_publisher"),
	}
}

// DeliveryAssigned publishes the event for d. The delivery is already
// committed, so failures are logged and not returned.
func (p *DeliveryPublisher) DeliveryAssigned(ctx context.Context, d *delivery.Delivery) {
	if p == nil {
		return
	}

	value, err := json.Marshal(DeliveryAssignedEvent{
		DeliveryID:   d.ID().String(),
		DriverID:     d.DriverID().String(),
		RestaurantID: d.RestaurantID().String(),
		CustomerID:   d.CustomerID().String(),
		DeliveryTime: d.DeliveryTime().UTC(),
		Distance:     d.Distance().Kilometers(),
	})
	if err != nil {
		p.logger.ErrorContext(ctx, "Failed to encode delivery event", "error", err)
		return
	}

	_, _, err = p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(d.DriverID().String()),
		Value: sarama.ByteEncoder(value),
	})
	if err != nil {
		p.logger.ErrorContext(ctx, "Failed to publish delivery event",
			"delivery_id", d.ID().String(), "error", err)
	}
}

// Close releases the producer.
func (p *DeliveryPublisher) Close() error {
	if p == nil {
		return nil
	}
	return p.producer.Close()
}
