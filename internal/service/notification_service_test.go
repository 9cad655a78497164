package service

import (
	"testing"

	"lessonplan-review-be/internal/pkg/logger"
	"lessonplan-review-be/internal/websocket"
	"lessonplan-review-be/pkg/review"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingDelivery struct {
	sessions []uuid.UUID
	frames   []websocket.Frame
}

func (d *recordingDelivery) Send(sessionID uuid.UUID, frame websocket.Frame) {
	d.sessions = append(d.sessions, sessionID)
	d.frames = append(d.frames, frame)
}

func TestNotificationService_Frames(t *testing.T) {
	delivery := &recordingDelivery{}
	svc := NewNotificationService(delivery, logger.NewNopLogger())
	sessionId := uuid.New()

	svc.Notify(sessionId, "記事已新增", SeveritySuccess)
	svc.PushReply(sessionId, review.ChatTurn{Id: uuid.New(), Role: review.RoleAssistant, Content: "ok"})

	require.Len(t, delivery.frames, 2)
	assert.Equal(t, []uuid.UUID{sessionId, sessionId}, delivery.sessions)

	assert.Equal(t, FrameNotification, delivery.frames[0].Type)
	n, ok := delivery.frames[0].Data.(Notification)
	require.True(t, ok)
	assert.Equal(t, "記事已新增", n.Message)
	assert.Equal(t, SeveritySuccess, n.Severity)

	assert.Equal(t, FrameAssistantReply, delivery.frames[1].Type)
	turn, ok := delivery.frames[1].Data.(review.ChatTurn)
	require.True(t, ok)
	assert.Equal(t, "ok", turn.Content)
}
