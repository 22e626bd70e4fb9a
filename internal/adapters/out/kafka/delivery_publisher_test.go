package kafka

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDelivery(t *testing.T) *delivery.Delivery {
	t.Helper()
	distance, err := kernel.NewDistance(7.5)
	require.NoError(t, err)
	d, err := delivery.NewDelivery(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		time.Date(2026, 10, 17, 18, 0, 0, 0, time.UTC), distance)
	require.NoError(t, err)
	return d
}

func TestNewDeliveryPublisher_SkipsWhenNotConfigured(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	got, err := NewDeliveryPublisher(nil, "deliveries", logger)
	require.NoError(t, err)
	require.Nil(t, got)

	got, err = NewDeliveryPublisher([]string{"b:9092"}, "  ", logger)
	require.NoError(t, err)
	require.Nil(t, got)

	// nil publisher is a no-op
	got.DeliveryAssigned(t.Context(), newDelivery(t))
	require.NoError(t, got.Close())
}

func TestNewDeliveryPublisher_ReturnsErrorWhenSaramaFails(t *testing.T) {
	orig := newSyncProducer
	t.Cleanup(func() { newSyncProducer = orig })

	sentinel := errors.New("boom")
	newSyncProducer = func(_ []string, _ *sarama.Config) (sarama.SyncProducer, error) {
		return nil, sentinel
	}

	got, err := NewDeliveryPublisher([]string{"b:9092"}, "deliveries", slog.Default())
	require.ErrorIs(t, err, sentinel)
	require.Nil(t, got)
}

func TestDeliveryPublisher_PublishesEvent(t *testing.T) {
	d := newDelivery(t)
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		key, err := msg.Key.Encode()
		if err != nil {
			return err
		}
		if string(key) != d.DriverID().String() {
			return errors.New("message is not keyed by driver")
		}

		value, err := msg.Value.Encode()
		if err != nil {
			return err
		}
		var event DeliveryAssignedEvent
		if err = json.Unmarshal(value, &event); err != nil {
			return err
		}
		if event.DeliveryID != d.ID().String() || event.Distance != 7.5 {
			return errors.New("unexpected event payload")
		}
		return nil
	})

	publisher := NewDeliveryPublisherWithProducer(producer, "deliveries", slog.Default())
	publisher.DeliveryAssigned(t.Context(), d)

	require.NoError(t, publisher.Close())
}

func TestDeliveryPublisher_LogsFailures(t *testing.T) {
	buf := &bytes.Buffer{}
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	publisher := NewDeliveryPublisherWithProducer(producer, "deliveries", slog.New(slog.NewJSONHandler(buf, nil)))
	publisher.DeliveryAssigned(t.Context(), newDelivery(t))

	assert.Contains(t, buf.String(), "Failed to publish delivery event")
	assert.Contains(t, buf.String(), `"component":"delivery_publisher"`)
	require.NoError(t, publisher.Close())
}
