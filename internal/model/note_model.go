package model

import (
	"time"

	"github.com/google/uuid"
)

type Note struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	SessionId uuid.UUID `gorm:"type:uuid;not null;index"`
	Title     string    `gorm:"type:varchar(255);not null"`
	Content   string    `gorm:"type:text"`
	Origin    string    `gorm:"type:varchar(20);not null;default:'manual'"`
	CreatedAt time.Time `gorm:"not null"`
}

func (Note) TableName() string {
	return "session_notes"
}
