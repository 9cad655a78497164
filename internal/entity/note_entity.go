package entity

import (
	"time"

	"github.com/google/uuid"
)

// Note is the archived copy of a note taken in a review session.
type Note struct {
	Id        uuid.UUID
	SessionId uuid.UUID
	Title     string
	Content   string
	Origin    string
	CreatedAt time.Time
}
