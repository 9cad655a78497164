package contract

import (
	"context"

	"lessonplan-review-be/internal/entity"
	"lessonplan-review-be/internal/repository/specification"
)

type ChatTurnRepository interface {
	Create(ctx context.Context, turn *entity.ChatTurn) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatTurn, error)
}
