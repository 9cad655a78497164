package service

import (
	"context"

	"lessonplan-review-be/internal/entity"
	"lessonplan-review-be/internal/pkg/logger"
	"lessonplan-review-be/internal/repository/specification"
	"lessonplan-review-be/internal/repository/unitofwork"
	"lessonplan-review-be/pkg/review"

	"github.com/google/uuid"
)

// IArchiveService writes finished review artefacts to long-term storage.
type IArchiveService interface {
	ArchiveScoreRecord(ctx context.Context, record review.ScoreRecord) error
	ArchiveNote(ctx context.Context, sessionId uuid.UUID, note review.Note) error
	ArchiveTurn(ctx context.Context, sessionId uuid.UUID, turn review.ChatTurn) error
	ScoreRecords(ctx context.Context, sessionId uuid.UUID) ([]review.ScoreRecord, error)
}

type archiveService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

// NewArchiveService accepts a nil factory: without a database every
// archive call is logged and discarded.
func NewArchiveService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) IArchiveService {
	return &archiveService{
		uowFactory: uowFactory,
		logger:     log,
	}
}

func (s *archiveService) discard(kind string, sessionId uuid.UUID) {
	s.logger.Info("ArchiveService", "No database configured, discarding "+kind, map[string]interface{}{
		"session_id": sessionId,
	})
}

func (s *archiveService) ArchiveScoreRecord(ctx context.Context, record review.ScoreRecord) error {
	if s.uowFactory == nil {
		s.discard("score record", record.SessionId)
		return nil
	}

	scores := make(map[string]int, len(record.Scores))
	for c, v := range record.Scores {
		scores[string(c)] = v
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	err := uow.ScoreRecordRepository().Create(ctx, &entity.ScoreRecord{
		Id:          record.Id,
		SessionId:   record.SessionId,
		Scores:      scores,
		Total:       record.Total,
		Comment:     record.Comment,
		SubmittedAt: record.SubmittedAt,
	})
	if err != nil {
		return err
	}
	return uow.Commit()
}

func (s *archiveService) ArchiveNote(ctx context.Context, sessionId uuid.UUID, note review.Note) error {
	if s.uowFactory == nil {
		s.discard("note", sessionId)
		return nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.NoteRepository().Create(ctx, &entity.Note{
		Id:        note.Id,
		SessionId: sessionId,
		Title:     note.Title,
		Content:   note.Content,
		Origin:    string(note.Origin),
		CreatedAt: note.CreatedAt,
	})
}

func (s *archiveService) ArchiveTurn(ctx context.Context, sessionId uuid.UUID, turn review.ChatTurn) error {
	if s.uowFactory == nil {
		s.discard("chat turn", sessionId)
		return nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.ChatTurnRepository().Create(ctx, &entity.ChatTurn{
		Id:        turn.Id,
		SessionId: sessionId,
		Role:      string(turn.Role),
		Content:   turn.Content,
		ReplyTo:   turn.ReplyTo,
		CreatedAt: turn.Timestamp,
	})
}

func (s *archiveService) ScoreRecords(ctx context.Context, sessionId uuid.UUID) ([]review.ScoreRecord, error) {
	if s.uowFactory == nil {
		return []review.ScoreRecord{}, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	rows, err := uow.ScoreRecordRepository().FindAll(ctx,
		specification.BySessionID{SessionID: sessionId},
		specification.OrderBy{Field: "submitted_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	records := make([]review.ScoreRecord, 0, len(rows))
	for _, r := range rows {
		scores := review.NewScoreSet()
		for k, v := range r.Scores {
			scores[review.Category(k)] = v
		}
		records = append(records, review.ScoreRecord{
			Id:          r.Id,
			SessionId:   r.SessionId,
			Scores:      scores,
			Total:       r.Total,
			Comment:     r.Comment,
			SubmittedAt: r.SubmittedAt,
		})
	}
	return records, nil
}
