package service

import (
	"context"

	"lessonplan-review-be/internal/dto"
	"lessonplan-review-be/internal/pkg/logger"
	"lessonplan-review-be/pkg/events"
	"lessonplan-review-be/pkg/review"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

type IScoreService interface {
	Current(ctx context.Context, sessionId uuid.UUID) (*dto.ScoreResponse, error)
	Rate(ctx context.Context, sessionId uuid.UUID, request *dto.RateRequest) (*dto.ScoreResponse, error)
	Preview(ctx context.Context, sessionId uuid.UUID, category string, value int) (*review.StarPreview, error)
	Submit(ctx context.Context, sessionId uuid.UUID, request *dto.SubmitScoreRequest) (*review.ScoreRecord, error)
	Reset(ctx context.Context, sessionId uuid.UUID) (*dto.ScoreResponse, error)
	Records(ctx context.Context, sessionId uuid.UUID) ([]review.ScoreRecord, error)
}

type scoreService struct {
	store     SessionStore
	notifier  INotificationService
	publisher IPublisherService
	archive   IArchiveService
	logger    logger.ILogger
	rejection
}

func NewScoreService(
	store SessionStore,
	notifier INotificationService,
	publisher IPublisherService,
	archive IArchiveService,
	log logger.ILogger,
) IScoreService {
	return &scoreService{
		store:     store,
		notifier:  notifier,
		publisher: publisher,
		archive:   archive,
		logger:    log,
		rejection: rejection{notifier: notifier, logger: log},
	}
}

func (s *scoreService) Current(ctx context.Context, sessionId uuid.UUID) (*dto.ScoreResponse, error) {
	_, span := tracer.Start(ctx, "ScoreService.Current")
	defer span.End()

	session, err := loadSession(s.store, sessionId)
	if err != nil {
		return nil, err
	}
	return dto.NewScoreResponse(session.Scores()), nil
}

func (s *scoreService) Rate(ctx context.Context, sessionId uuid.UUID, request *dto.RateRequest) (*dto.ScoreResponse, error) {
	_, span := tracer.Start(ctx, "ScoreService.Rate")
	defer span.End()

	session, err := loadSession(s.store, sessionId)
	if err != nil {
		return nil, err
	}
	scores, err := session.Rate(request.Category, request.Value)
	if err != nil {
		return nil, s.report("ScoreService", sessionId, err, "")
	}
	return dto.NewScoreResponse(scores), nil
}

func (s *scoreService) Preview(ctx context.Context, sessionId uuid.UUID, category string, value int) (*review.StarPreview, error) {
	_, span := tracer.Start(ctx, "ScoreService.Preview")
	defer span.End()

	session, err := loadSession(s.store, sessionId)
	if err != nil {
		return nil, err
	}
	preview, err := session.PreviewRating(category, value)
	if err != nil {
		return nil, err
	}
	return &preview, nil
}

func (s *scoreService) Submit(ctx context.Context, sessionId uuid.UUID, request *dto.SubmitScoreRequest) (*review.ScoreRecord, error) {
	ctx, span := tracer.Start(ctx, "ScoreService.Submit")
	defer span.End()

	session, err := loadSession(s.store, sessionId)
	if err != nil {
		return nil, err
	}

	record, err := session.SubmitScore(request.Comment)
	if err != nil {
		return nil, s.report("ScoreService", sessionId, err, "請先進行評分")
	}
	span.SetAttributes(attribute.Float64("score.total", record.Total))

	s.logger.Info("ScoreService", "Score submitted", map[string]interface{}{
		"session_id": sessionId,
		"record_id":  record.Id,
		"total":      record.Total,
	})
	s.notifier.Notify(sessionId, "評分已提交成功", SeveritySuccess)
	publishQuietly(ctx, s.publisher, s.logger, "ScoreService", events.New(events.TypeScoreSubmitted, map[string]interface{}{
		"session_id": sessionId,
		"record":     record,
	}))
	return &record, nil
}

func (s *scoreService) Reset(ctx context.Context, sessionId uuid.UUID) (*dto.ScoreResponse, error) {
	_, span := tracer.Start(ctx, "ScoreService.Reset")
	defer span.End()

	session, err := loadSession(s.store, sessionId)
	if err != nil {
		return nil, err
	}
	session.ResetScores()
	return dto.NewScoreResponse(session.Scores()), nil
}

func (s *scoreService) Records(ctx context.Context, sessionId uuid.UUID) ([]review.ScoreRecord, error) {
	ctx, span := tracer.Start(ctx, "ScoreService.Records")
	defer span.End()

	if _, err := loadSession(s.store, sessionId); err != nil {
		return nil, err
	}
	return s.archive.ScoreRecords(ctx, sessionId)
}
