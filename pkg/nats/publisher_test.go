package nats

import (
	"context"
	"testing"
	"time"

	"lessonplan-review-be/pkg/events"

	"github.com/stretchr/testify/assert"
)

func TestSubject(t *testing.T) {
	assert.Equal(t, "review.SCORE_SUBMITTED", Subject(events.TypeScoreSubmitted))
}

func TestNilPublisher_Drops(t *testing.T) {
	var p *Publisher
	err := p.Publish(context.Background(), events.BaseEvent{Type: events.TypeNoteCreated, OccurredAt: time.Now()})
	assert.NoError(t, err)
	p.Close()
}
