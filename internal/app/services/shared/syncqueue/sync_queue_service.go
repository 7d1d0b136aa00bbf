package syncqueue

import (
	"context"
	"fmt"
	"sync"

	"family-health-service/internal/app/contracts"
	"family-health-service/internal/app/models"
	"family-health-service/internal/pkg/constvars"
	"family-health-service/internal/pkg/exceptions"
	"family-health-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const DefaultQueueName = "household_sync_events"

type publishChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// Service publishes sync outcomes to a durable queue and waits for the
// broker confirm of each message.
type Service struct {
	ch        publishChannel
	log       *zap.Logger
	queueName string
	confirms  <-chan amqp.Confirmation
	mu        sync.Mutex
}

var _ contracts.SyncEventPublisher = (*Service)(nil)

// NewService opens a channel, declares the queue and enables publisher confirms.
func NewService(conn *amqp.Connection, queueName string, log *zap.Logger) (*Service, error) {
	if queueName == "" {
		queueName = DefaultQueueName
	}

	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		queueName, // name
		true,      // durable
		false,     // autoDelete
		false,     // exclusive
		false,     // noWait
		nil,       // args
	)
	if err != nil {
		return nil, err
	}

	if err := ch.Confirm(false); err != nil {
		return nil, err
	}

	return &Service{
		ch:        ch,
		log:       log,
		queueName: queueName,
		confirms:  ch.NotifyPublish(make(chan amqp.Confirmation, 1)),
	}, nil
}

func (s *Service) PublishSyncEvent(ctx context.Context, event models.SyncEvent) error {
	requestID := utils.GetRequestID(ctx)
	s.log.Info("SyncQueue.PublishSyncEvent called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueNameKey, s.queueName),
		zap.String(constvars.LoggingSyncOutcomeKey, event.Outcome),
	)

	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	msg := amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp.Persistent,
		MessageId:    event.EventID,
		Timestamp:    event.OccurredAt,
	}

	if err := s.ch.PublishWithContext(ctx, "", s.queueName, false, false, msg); err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, s.queueName)
	}

	select {
	case confirmed := <-s.confirms:
		if !confirmed.Ack {
			return exceptions.ErrRabbitMQPublishMessage(fmt.Errorf("message not confirmed"), s.queueName)
		}
	case <-ctx.Done():
		return exceptions.ErrRabbitMQPublishMessage(ctx.Err(), s.queueName)
	}

	s.log.Info("SyncQueue.PublishSyncEvent succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueNameKey, s.queueName),
	)
	return nil
}
