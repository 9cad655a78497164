package mapper

import (
	"lessonplan-review-be/internal/entity"
	"lessonplan-review-be/internal/model"

	"gorm.io/datatypes"
)

type ScoreRecordMapper struct{}

func NewScoreRecordMapper() *ScoreRecordMapper {
	return &ScoreRecordMapper{}
}

func (m *ScoreRecordMapper) ToEntity(r *model.ScoreRecord) *entity.ScoreRecord {
	if r == nil {
		return nil
	}
	return &entity.ScoreRecord{
		Id:          r.Id,
		SessionId:   r.SessionId,
		Scores:      r.Scores.Data(),
		Total:       r.Total,
		Comment:     r.Comment,
		SubmittedAt: r.SubmittedAt,
	}
}

func (m *ScoreRecordMapper) ToModel(r *entity.ScoreRecord) *model.ScoreRecord {
	if r == nil {
		return nil
	}
	scores := r.Scores
	if scores == nil {
		scores = map[string]int{}
	}
	return &model.ScoreRecord{
		Id:          r.Id,
		SessionId:   r.SessionId,
		Scores:      datatypes.NewJSONType(scores),
		Total:       r.Total,
		Comment:     r.Comment,
		SubmittedAt: r.SubmittedAt,
	}
}

func (m *ScoreRecordMapper) ToEntities(records []*model.ScoreRecord) []*entity.ScoreRecord {
	entities := make([]*entity.ScoreRecord, len(records))
	for i, r := range records {
		entities[i] = m.ToEntity(r)
	}
	return entities
}
