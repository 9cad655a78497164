package contract

import (
	"context"

	"lessonplan-review-be/internal/entity"
	"lessonplan-review-be/internal/repository/specification"
)

type ScoreRecordRepository interface {
	Create(ctx context.Context, record *entity.ScoreRecord) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ScoreRecord, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ScoreRecord, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
