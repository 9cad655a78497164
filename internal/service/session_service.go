package service

import (
	"context"

	"lessonplan-review-be/internal/config"
	"lessonplan-review-be/internal/dto"
	"lessonplan-review-be/internal/pkg/logger"
	"lessonplan-review-be/internal/pkg/serverutils"
	"lessonplan-review-be/pkg/events"
	"lessonplan-review-be/pkg/review"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

type ISessionService interface {
	Create(ctx context.Context) (*dto.CreateSessionResponse, error)
	Snapshot(ctx context.Context, sessionId uuid.UUID) (*review.Snapshot, error)
	Close(ctx context.Context, sessionId uuid.UUID) error
	SwitchTab(ctx context.Context, sessionId uuid.UUID, request *dto.SwitchTabRequest) (*dto.SwitchTabResponse, error)
}

type sessionService struct {
	store     SessionStore
	cfg       config.SessionConfig
	notifier  INotificationService
	publisher IPublisherService
	logger    logger.ILogger
}

func NewSessionService(
	store SessionStore,
	cfg config.SessionConfig,
	notifier INotificationService,
	publisher IPublisherService,
	log logger.ILogger,
) ISessionService {
	return &sessionService{
		store:     store,
		cfg:       cfg,
		notifier:  notifier,
		publisher: publisher,
		logger:    log,
	}
}

func (s *sessionService) Create(ctx context.Context) (*dto.CreateSessionResponse, error) {
	_, span := tracer.Start(ctx, "SessionService.Create")
	defer span.End()

	session := review.NewSession(
		review.WithReplyDelay(s.cfg.ReplyDelay),
		review.WithReplyHook(s.onReply),
	)

	token, err := serverutils.IssueSessionToken(s.cfg.JwtSecret, session.Id)
	if err != nil {
		session.Close()
		return nil, err
	}
	s.store.Save(session)
	span.SetAttributes(attribute.String("session.id", session.Id.String()))

	s.logger.Info("SessionService", "Session created", map[string]interface{}{
		"session_id": session.Id,
	})

	return &dto.CreateSessionResponse{
		SessionId: session.Id,
		Token:     token,
		ExpiresIn: int64(s.cfg.TTL.Seconds()),
	}, nil
}

// onReply runs on the reply timer once an assistant turn is appended.
func (s *sessionService) onReply(sessionId uuid.UUID, turn review.ChatTurn) {
	s.notifier.PushReply(sessionId, turn)
	publishQuietly(context.Background(), s.publisher, s.logger, "SessionService", events.New(events.TypeChatTurnAppended, map[string]interface{}{
		"session_id": sessionId,
		"turn":       turn,
	}))
}

func (s *sessionService) Snapshot(ctx context.Context, sessionId uuid.UUID) (*review.Snapshot, error) {
	_, span := tracer.Start(ctx, "SessionService.Snapshot")
	defer span.End()

	session, err := loadSession(s.store, sessionId)
	if err != nil {
		return nil, err
	}
	snap := session.Snapshot()
	return &snap, nil
}

func (s *sessionService) Close(ctx context.Context, sessionId uuid.UUID) error {
	_, span := tracer.Start(ctx, "SessionService.Close")
	defer span.End()

	if _, err := loadSession(s.store, sessionId); err != nil {
		return err
	}
	// Eviction closes the session and stops its pending replies.
	s.store.Delete(sessionId)

	s.logger.Info("SessionService", "Session closed", map[string]interface{}{
		"session_id": sessionId,
	})
	return nil
}

func (s *sessionService) SwitchTab(ctx context.Context, sessionId uuid.UUID, request *dto.SwitchTabRequest) (*dto.SwitchTabResponse, error) {
	_, span := tracer.Start(ctx, "SessionService.SwitchTab")
	defer span.End()

	session, err := loadSession(s.store, sessionId)
	if err != nil {
		return nil, err
	}
	tab, err := session.SwitchTab(request.Tab)
	if err != nil {
		return nil, err
	}
	return &dto.SwitchTabResponse{Tab: string(tab)}, nil
}
