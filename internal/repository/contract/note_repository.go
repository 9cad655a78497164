package contract

import (
	"context"

	"lessonplan-review-be/internal/entity"
	"lessonplan-review-be/internal/repository/specification"
)

type NoteRepository interface {
	Create(ctx context.Context, note *entity.Note) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Note, error)
}
