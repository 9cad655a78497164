package dto

import (
	"github.com/google/uuid"
)

type CreateSessionResponse struct {
	SessionId uuid.UUID `json:"session_id"`
	Token     string    `json:"token"`
	ExpiresIn int64     `json:"expires_in"` // seconds of inactivity before the session is dropped
}

type SwitchTabRequest struct {
	Tab string `json:"tab" validate:"required"`
}

type SwitchTabResponse struct {
	Tab string `json:"tab"`
}
