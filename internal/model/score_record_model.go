package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ScoreRecord struct {
	Id          uuid.UUID                          `gorm:"type:uuid;primaryKey"`
	SessionId   uuid.UUID                          `gorm:"type:uuid;not null;index"`
	Scores      datatypes.JSONType[map[string]int] `gorm:"type:jsonb;not null"`
	Total       float64                            `gorm:"type:numeric(2,1);not null"`
	Comment     string                             `gorm:"type:text"`
	SubmittedAt time.Time                          `gorm:"not null;index"`
}

func (ScoreRecord) TableName() string {
	return "score_records"
}
