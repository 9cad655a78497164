package service

import (
	"time"

	"lessonplan-review-be/internal/pkg/logger"
	"lessonplan-review-be/internal/websocket"
	"lessonplan-review-be/pkg/review"

	"github.com/google/uuid"
)

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
)

const (
	FrameNotification   = "notification"
	FrameAssistantReply = "assistant_reply"
)

// Notification is a transient toast; the browser decides how long to show it.
type Notification struct {
	Message   string    `json:"message"`
	Severity  Severity  `json:"severity"`
	CreatedAt time.Time `json:"created_at"`
}

// NotificationDelivery defines how to push real-time updates.
// Implemented by the WebSocket Hub.
type NotificationDelivery interface {
	Send(sessionID uuid.UUID, frame websocket.Frame)
}

type INotificationService interface {
	Notify(sessionId uuid.UUID, message string, severity Severity)
	PushReply(sessionId uuid.UUID, turn review.ChatTurn)
}

type notificationService struct {
	delivery NotificationDelivery
	logger   logger.ILogger
}

func NewNotificationService(delivery NotificationDelivery, log logger.ILogger) INotificationService {
	return &notificationService{
		delivery: delivery,
		logger:   log,
	}
}

func (s *notificationService) Notify(sessionId uuid.UUID, message string, severity Severity) {
	s.logger.Debug("NotificationService", "Notify", map[string]interface{}{
		"session_id": sessionId,
		"message":    message,
		"severity":   severity,
	})
	s.delivery.Send(sessionId, websocket.Frame{
		Type: FrameNotification,
		Data: Notification{Message: message, Severity: severity, CreatedAt: time.Now()},
	})
}

func (s *notificationService) PushReply(sessionId uuid.UUID, turn review.ChatTurn) {
	s.delivery.Send(sessionId, websocket.Frame{Type: FrameAssistantReply, Data: turn})
}
