package implementation

import (
	"context"
	"errors"

	"lessonplan-review-be/internal/entity"
	"lessonplan-review-be/internal/mapper"
	"lessonplan-review-be/internal/model"
	"lessonplan-review-be/internal/repository/contract"
	"lessonplan-review-be/internal/repository/specification"

	"gorm.io/gorm"
)

type ScoreRecordRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ScoreRecordMapper
}

func NewScoreRecordRepository(db *gorm.DB) contract.ScoreRecordRepository {
	return &ScoreRecordRepositoryImpl{
		db:     db,
		mapper: mapper.NewScoreRecordMapper(),
	}
}

func (r *ScoreRecordRepositoryImpl) Create(ctx context.Context, record *entity.ScoreRecord) error {
	m := r.mapper.ToModel(record)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*record = *r.mapper.ToEntity(m)
	return nil
}

func (r *ScoreRecordRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ScoreRecord, error) {
	var m model.ScoreRecord
	query := specification.ApplyAll(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ScoreRecordRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ScoreRecord, error) {
	var models []*model.ScoreRecord
	query := specification.ApplyAll(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *ScoreRecordRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := specification.ApplyAll(r.db.WithContext(ctx).Model(&model.ScoreRecord{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
