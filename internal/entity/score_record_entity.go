package entity

import (
	"time"

	"github.com/google/uuid"
)

type ScoreRecord struct {
	Id          uuid.UUID
	SessionId   uuid.UUID
	Scores      map[string]int
	Total       float64
	Comment     string
	SubmittedAt time.Time
}
