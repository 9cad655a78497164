package model

import (
	"time"

	"github.com/google/uuid"
)

type ChatTurn struct {
	Id        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	SessionId uuid.UUID  `gorm:"type:uuid;not null;index:idx_chat_turns_session_created,priority:1"`
	Role      string     `gorm:"type:varchar(20);not null"`
	Content   string     `gorm:"type:text;not null"`
	ReplyTo   *uuid.UUID `gorm:"type:uuid"`
	CreatedAt time.Time  `gorm:"not null;index:idx_chat_turns_session_created,priority:2"`
}

func (ChatTurn) TableName() string {
	return "chat_turns"
}
