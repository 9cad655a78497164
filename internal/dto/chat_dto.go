package dto

import (
	"lessonplan-review-be/pkg/review"

	"github.com/google/uuid"
)

type SendChatRequest struct {
	Chat string `json:"chat" validate:"max=4000"`
}

type SendChatResponse struct {
	Sent review.ChatTurn `json:"sent"`
	// Reply arrives later as an assistant_reply WebSocket frame.
	PendingReply uuid.UUID `json:"pending_reply"`
}

type SuggestionResponse struct {
	Action string `json:"action"`
	Prompt string `json:"prompt"`
}
