package unitofwork

import (
	"context"

	"lessonplan-review-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	ScoreRecordRepository() contract.ScoreRecordRepository
	NoteRepository() contract.NoteRepository
	ChatTurnRepository() contract.ChatTurnRepository
}
