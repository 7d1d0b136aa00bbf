package syncqueue

import (
	"context"
	"errors"
	"testing"
	"time"

	"family-health-service/internal/app/models"
	"family-health-service/internal/pkg/constvars"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeChannel struct {
	published []amqp.Publishing
	keys      []string
	err       error
	confirms  chan amqp.Confirmation
	ack       bool
}

func (f *fakeChannel) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, msg)
	f.keys = append(f.keys, key)
	f.confirms <- amqp.Confirmation{DeliveryTag: uint64(len(f.published)), Ack: f.ack}
	return nil
}

func newTestService(ch *fakeChannel) *Service {
	ch.confirms = make(chan amqp.Confirmation, 1)
	return &Service{ch: ch, log: zap.NewNop(), queueName: DefaultQueueName, confirms: ch.confirms}
}

func TestService_PublishSyncEvent(t *testing.T) {
	event := models.SyncEvent{
		EventID:     "evt-1",
		Outcome:     constvars.SyncOutcomeFailed,
		MemberCount: 4,
		OccurredAt:  time.Date(2024, time.March, 5, 9, 0, 0, 0, time.UTC),
	}

	t.Run("Publishes Persistent JSON", func(t *testing.T) {
		ch := &fakeChannel{ack: true}
		service := newTestService(ch)

		err := service.PublishSyncEvent(context.Background(), event)

		require.NoError(t, err)
		require.Len(t, ch.published, 1)
		assert.Equal(t, DefaultQueueName, ch.keys[0])
		assert.Equal(t, amqp.Persistent, ch.published[0].DeliveryMode)
		assert.Equal(t, "evt-1", ch.published[0].MessageId)
		var decoded models.SyncEvent
		require.NoError(t, json.Unmarshal(ch.published[0].Body, &decoded))
		assert.Equal(t, event, decoded)
	})

	t.Run("Nack Is An Error", func(t *testing.T) {
		service := newTestService(&fakeChannel{ack: false})

		assert.Error(t, service.PublishSyncEvent(context.Background(), event))
	})

	t.Run("Publish Failure Is An Error", func(t *testing.T) {
		service := newTestService(&fakeChannel{err: errors.New("channel closed")})

		assert.Error(t, service.PublishSyncEvent(context.Background(), event))
	})
}
