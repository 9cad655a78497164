package service

import (
	"context"

	"lessonplan-review-be/internal/pkg/logger"
	"lessonplan-review-be/pkg/events"
	pktNats "lessonplan-review-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
)

type IPublisherService interface {
	Publish(ctx context.Context, event events.Event) error
}

type publisherService struct {
	topicName string
	publisher message.Publisher
	external  *pktNats.Publisher
	logger    logger.ILogger
}

// NewPublisherService publishes to the in-process topic and, when
// external is not nil, forwards the same event to NATS.
func NewPublisherService(topicName string, publisher message.Publisher, external *pktNats.Publisher, log logger.ILogger) IPublisherService {
	return &publisherService{
		topicName: topicName,
		publisher: publisher,
		external:  external,
		logger:    log,
	}
}

func (p *publisherService) Publish(ctx context.Context, event events.Event) error {
	payload, err := events.Marshal(event)
	if err != nil {
		return err
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.SetContext(ctx)
	if err := p.publisher.Publish(p.topicName, msg); err != nil {
		return err
	}

	// External consumers are auxiliary; a NATS outage must not fail the request.
	if err := p.external.Publish(ctx, event); err != nil {
		p.logger.Warn("PublisherService", "Failed to forward event to NATS", map[string]interface{}{
			"type":  event.EventType(),
			"error": err.Error(),
		})
	}
	return nil
}

// publishQuietly is used after a state change already happened: the
// caller's result must not depend on the bus.
func publishQuietly(ctx context.Context, p IPublisherService, log logger.ILogger, module string, event events.Event) {
	if err := p.Publish(ctx, event); err != nil {
		log.Warn(module, "Failed to publish event", map[string]interface{}{
			"type":  event.EventType(),
			"error": err.Error(),
		})
	}
}
