package service

import (
	"context"

	"lessonplan-review-be/internal/pkg/logger"
	"lessonplan-review-be/pkg/events"
	"lessonplan-review-be/pkg/review"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	subscriber message.Subscriber
	topicName  string
	archive    IArchiveService
	logger     logger.ILogger
}

func NewConsumerService(
	subscriber message.Subscriber,
	topicName string,
	archive IArchiveService,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		subscriber: subscriber,
		topicName:  topicName,
		archive:    archive,
		logger:     log,
	}
}

// Consume starts archiving in the background until ctx is cancelled.
func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.subscriber.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	// Archive failures are not retried; every message is acked.
	defer msg.Ack()

	event, err := events.Unmarshal(msg.Payload)
	if err != nil {
		cs.logger.Error("ConsumerService", "Failed to unmarshal event", map[string]interface{}{
			"message_id": msg.UUID,
			"error":      err.Error(),
		})
		return
	}

	if err := cs.archiveEvent(ctx, event); err != nil {
		cs.logger.Error("ConsumerService", "Failed to archive event", map[string]interface{}{
			"type":  event.Type,
			"error": err.Error(),
		})
	}
}

func (cs *consumerService) archiveEvent(ctx context.Context, event events.BaseEvent) error {
	switch event.Type {
	case events.TypeScoreSubmitted:
		var record review.ScoreRecord
		if err := event.Decode("record", &record); err != nil {
			return err
		}
		return cs.archive.ArchiveScoreRecord(ctx, record)

	case events.TypeNoteCreated:
		var sessionId uuid.UUID
		var note review.Note
		if err := event.Decode("session_id", &sessionId); err != nil {
			return err
		}
		if err := event.Decode("note", &note); err != nil {
			return err
		}
		return cs.archive.ArchiveNote(ctx, sessionId, note)

	case events.TypeChatTurnAppended:
		var sessionId uuid.UUID
		var turn review.ChatTurn
		if err := event.Decode("session_id", &sessionId); err != nil {
			return err
		}
		if err := event.Decode("turn", &turn); err != nil {
			return err
		}
		return cs.archive.ArchiveTurn(ctx, sessionId, turn)
	}
	return nil
}
