package service

import (
	"context"
	"fmt"

	"lessonplan-review-be/internal/dto"
	"lessonplan-review-be/internal/pkg/logger"
	"lessonplan-review-be/pkg/events"
	"lessonplan-review-be/pkg/review"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

type ISourceService interface {
	Ingest(ctx context.Context, sessionId uuid.UUID, request *dto.IngestSourcesRequest) (*dto.IngestSourcesResponse, error)
	Toggle(ctx context.Context, sessionId, sourceId uuid.UUID) (*review.Source, error)
	Search(ctx context.Context, sessionId uuid.UUID, request *dto.SearchSourcesRequest) ([]review.Source, error)
	Selected(ctx context.Context, sessionId uuid.UUID) ([]review.Source, error)
}

type sourceService struct {
	store     SessionStore
	notifier  INotificationService
	publisher IPublisherService
	logger    logger.ILogger
	rejection
}

func NewSourceService(store SessionStore, notifier INotificationService, publisher IPublisherService, log logger.ILogger) ISourceService {
	return &sourceService{
		store:     store,
		notifier:  notifier,
		publisher: publisher,
		logger:    log,
		rejection: rejection{notifier: notifier, logger: log},
	}
}

func (s *sourceService) Ingest(ctx context.Context, sessionId uuid.UUID, request *dto.IngestSourcesRequest) (*dto.IngestSourcesResponse, error) {
	ctx, span := tracer.Start(ctx, "SourceService.Ingest")
	defer span.End()

	session, err := loadSession(s.store, sessionId)
	if err != nil {
		return nil, err
	}

	files := make([]review.FileDescriptor, 0, len(request.Files))
	for _, f := range request.Files {
		files = append(files, review.FileDescriptor{Name: f.Name, MediaType: f.MediaType, SizeBytes: f.SizeBytes})
	}
	sources := session.Ingest(files)
	span.SetAttributes(attribute.Int("sources.ingested", len(sources)))

	if len(sources) == 0 {
		return &dto.IngestSourcesResponse{Sources: sources}, nil
	}

	s.notifier.Notify(sessionId, fmt.Sprintf("成功上傳 %d 個教案文件", len(sources)), SeveritySuccess)
	publishQuietly(ctx, s.publisher, s.logger, "SourceService", events.New(events.TypeSourcesIngested, map[string]interface{}{
		"session_id": sessionId,
		"sources":    sources,
	}))

	return &dto.IngestSourcesResponse{Sources: sources}, nil
}

func (s *sourceService) Toggle(ctx context.Context, sessionId, sourceId uuid.UUID) (*review.Source, error) {
	ctx, span := tracer.Start(ctx, "SourceService.Toggle")
	defer span.End()

	session, err := loadSession(s.store, sessionId)
	if err != nil {
		return nil, err
	}

	source, err := session.ToggleSelection(sourceId)
	if err != nil {
		return nil, s.report("SourceService", sessionId, err, "")
	}

	publishQuietly(ctx, s.publisher, s.logger, "SourceService", events.New(events.TypeSourceToggled, map[string]interface{}{
		"session_id": sessionId,
		"source_id":  source.Id,
		"selected":   source.Selected,
	}))
	return &source, nil
}

func (s *sourceService) Search(ctx context.Context, sessionId uuid.UUID, request *dto.SearchSourcesRequest) ([]review.Source, error) {
	_, span := tracer.Start(ctx, "SourceService.Search")
	defer span.End()

	session, err := loadSession(s.store, sessionId)
	if err != nil {
		return nil, err
	}
	return session.Search(request.Query), nil
}

func (s *sourceService) Selected(ctx context.Context, sessionId uuid.UUID) ([]review.Source, error) {
	_, span := tracer.Start(ctx, "SourceService.Selected")
	defer span.End()

	session, err := loadSession(s.store, sessionId)
	if err != nil {
		return nil, err
	}
	return session.SelectedSources(), nil
}
