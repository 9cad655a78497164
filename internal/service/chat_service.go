package service

import (
	"context"

	"lessonplan-review-be/internal/dto"
	"lessonplan-review-be/internal/pkg/logger"
	"lessonplan-review-be/pkg/events"
	"lessonplan-review-be/pkg/review"

	"github.com/google/uuid"
)

type IChatService interface {
	Send(ctx context.Context, sessionId uuid.UUID, request *dto.SendChatRequest) (*dto.SendChatResponse, error)
	Transcript(ctx context.Context, sessionId uuid.UUID) ([]review.ChatTurn, error)
	Suggestion(ctx context.Context, sessionId uuid.UUID, action string) (*dto.SuggestionResponse, error)
	CancelPending(ctx context.Context, sessionId, turnId uuid.UUID) error
	SaveAsNote(ctx context.Context, sessionId uuid.UUID, index int) (*review.Note, error)
}

type chatService struct {
	store     SessionStore
	notifier  INotificationService
	publisher IPublisherService
	logger    logger.ILogger
	rejection
}

func NewChatService(store SessionStore, notifier INotificationService, publisher IPublisherService, log logger.ILogger) IChatService {
	return &chatService{
		store:     store,
		notifier:  notifier,
		publisher: publisher,
		logger:    log,
		rejection: rejection{notifier: notifier, logger: log},
	}
}

func (s *chatService) Send(ctx context.Context, sessionId uuid.UUID, request *dto.SendChatRequest) (*dto.SendChatResponse, error) {
	ctx, span := tracer.Start(ctx, "ChatService.Send")
	defer span.End()

	session, err := loadSession(s.store, sessionId)
	if err != nil {
		return nil, err
	}

	turn, err := session.Submit(request.Chat)
	if err != nil {
		return nil, s.report("ChatService", sessionId, err, "")
	}

	publishQuietly(ctx, s.publisher, s.logger, "ChatService", events.New(events.TypeChatTurnAppended, map[string]interface{}{
		"session_id": sessionId,
		"turn":       turn,
	}))

	return &dto.SendChatResponse{
		Sent:         turn,
		PendingReply: turn.Id,
	}, nil
}

func (s *chatService) Transcript(ctx context.Context, sessionId uuid.UUID) ([]review.ChatTurn, error) {
	_, span := tracer.Start(ctx, "ChatService.Transcript")
	defer span.End()

	session, err := loadSession(s.store, sessionId)
	if err != nil {
		return nil, err
	}
	return session.Transcript(), nil
}

func (s *chatService) Suggestion(ctx context.Context, sessionId uuid.UUID, action string) (*dto.SuggestionResponse, error) {
	_, span := tracer.Start(ctx, "ChatService.Suggestion")
	defer span.End()

	if _, err := loadSession(s.store, sessionId); err != nil {
		return nil, err
	}
	prompt, err := review.SuggestionPrompt(action)
	if err != nil {
		return nil, err
	}
	return &dto.SuggestionResponse{Action: action, Prompt: prompt}, nil
}

func (s *chatService) CancelPending(ctx context.Context, sessionId, turnId uuid.UUID) error {
	_, span := tracer.Start(ctx, "ChatService.CancelPending")
	defer span.End()

	session, err := loadSession(s.store, sessionId)
	if err != nil {
		return err
	}
	return session.CancelPending(turnId)
}

func (s *chatService) SaveAsNote(ctx context.Context, sessionId uuid.UUID, index int) (*review.Note, error) {
	ctx, span := tracer.Start(ctx, "ChatService.SaveAsNote")
	defer span.End()

	session, err := loadSession(s.store, sessionId)
	if err != nil {
		return nil, err
	}

	note, err := session.SaveTurnAsNote(index)
	if err != nil {
		return nil, s.report("ChatService", sessionId, err, "")
	}

	s.notifier.Notify(sessionId, "已儲存至記事", SeveritySuccess)
	publishQuietly(ctx, s.publisher, s.logger, "ChatService", events.New(events.TypeNoteCreated, map[string]interface{}{
		"session_id": sessionId,
		"note":       note,
	}))
	return &note, nil
}
