package service

import (
	"context"

	"lessonplan-review-be/internal/dto"
	"lessonplan-review-be/internal/pkg/logger"
	"lessonplan-review-be/pkg/events"
	"lessonplan-review-be/pkg/review"

	"github.com/google/uuid"
)

type INoteService interface {
	Create(ctx context.Context, sessionId uuid.UUID, request *dto.CreateNoteRequest) (*review.Note, error)
	List(ctx context.Context, sessionId uuid.UUID) ([]review.Note, error)
	View(ctx context.Context, sessionId, noteId uuid.UUID) (*review.Note, error)
	Open(ctx context.Context, sessionId uuid.UUID) (*review.Note, error)
	CloseDetail(ctx context.Context, sessionId uuid.UUID) error
}

type noteService struct {
	store     SessionStore
	notifier  INotificationService
	publisher IPublisherService
	logger    logger.ILogger
	rejection
}

func NewNoteService(store SessionStore, notifier INotificationService, publisher IPublisherService, log logger.ILogger) INoteService {
	return &noteService{
		store:     store,
		notifier:  notifier,
		publisher: publisher,
		logger:    log,
		rejection: rejection{notifier: notifier, logger: log},
	}
}

func (s *noteService) Create(ctx context.Context, sessionId uuid.UUID, request *dto.CreateNoteRequest) (*review.Note, error) {
	ctx, span := tracer.Start(ctx, "NoteService.Create")
	defer span.End()

	session, err := loadSession(s.store, sessionId)
	if err != nil {
		return nil, err
	}

	note, err := session.CreateNote(request.Content)
	if err != nil {
		return nil, s.report("NoteService", sessionId, err, "")
	}

	s.notifier.Notify(sessionId, "記事已新增", SeveritySuccess)
	publishQuietly(ctx, s.publisher, s.logger, "NoteService", events.New(events.TypeNoteCreated, map[string]interface{}{
		"session_id": sessionId,
		"note":       note,
	}))
	return &note, nil
}

func (s *noteService) List(ctx context.Context, sessionId uuid.UUID) ([]review.Note, error) {
	_, span := tracer.Start(ctx, "NoteService.List")
	defer span.End()

	session, err := loadSession(s.store, sessionId)
	if err != nil {
		return nil, err
	}
	return session.Notes(), nil
}

func (s *noteService) View(ctx context.Context, sessionId, noteId uuid.UUID) (*review.Note, error) {
	_, span := tracer.Start(ctx, "NoteService.View")
	defer span.End()

	session, err := loadSession(s.store, sessionId)
	if err != nil {
		return nil, err
	}
	note, err := session.ViewNote(noteId)
	if err != nil {
		return nil, err
	}
	return &note, nil
}

// Open returns nil when no note detail is shown.
func (s *noteService) Open(ctx context.Context, sessionId uuid.UUID) (*review.Note, error) {
	_, span := tracer.Start(ctx, "NoteService.Open")
	defer span.End()

	session, err := loadSession(s.store, sessionId)
	if err != nil {
		return nil, err
	}
	note, ok := session.OpenNote()
	if !ok {
		return nil, nil
	}
	return &note, nil
}

func (s *noteService) CloseDetail(ctx context.Context, sessionId uuid.UUID) error {
	_, span := tracer.Start(ctx, "NoteService.CloseDetail")
	defer span.End()

	session, err := loadSession(s.store, sessionId)
	if err != nil {
		return err
	}
	session.CloseNote()
	return nil
}
