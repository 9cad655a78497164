package service

import (
	"context"

	"lessonplan-review-be/internal/pkg/logger"
	"lessonplan-review-be/pkg/events"
	"lessonplan-review-be/pkg/review"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

type IGenerateService interface {
	Generate(ctx context.Context, sessionId uuid.UUID, kind string) (*review.Document, error)
}

type generateService struct {
	store     SessionStore
	publisher IPublisherService
	logger    logger.ILogger
	rejection
}

func NewGenerateService(store SessionStore, notifier INotificationService, publisher IPublisherService, log logger.ILogger) IGenerateService {
	return &generateService{
		store:     store,
		publisher: publisher,
		logger:    log,
		rejection: rejection{notifier: notifier, logger: log},
	}
}

func (s *generateService) Generate(ctx context.Context, sessionId uuid.UUID, kind string) (*review.Document, error) {
	ctx, span := tracer.Start(ctx, "GenerateService.Generate")
	defer span.End()
	span.SetAttributes(attribute.String("document.kind", kind))

	session, err := loadSession(s.store, sessionId)
	if err != nil {
		return nil, err
	}

	doc, err := session.Generate(kind)
	if err != nil {
		return nil, s.report("GenerateService", sessionId, err, "請先選擇教案來源")
	}

	publishQuietly(ctx, s.publisher, s.logger, "GenerateService", events.New(events.TypeContentGenerated, map[string]interface{}{
		"session_id": sessionId,
		"kind":       doc.Kind,
	}))
	return &doc, nil
}
