package entity

import (
	"time"

	"github.com/google/uuid"
)

type ChatTurn struct {
	Id        uuid.UUID
	SessionId uuid.UUID
	Role      string
	Content   string
	ReplyTo   *uuid.UUID
	CreatedAt time.Time
}
