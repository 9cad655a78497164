package events

import (
	"encoding/json"
	"time"
)

// Event defines the contract for all review-session events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "SCORE_SUBMITTED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

const (
	TypeSourcesIngested  = "SOURCES_INGESTED"
	TypeSourceToggled    = "SOURCE_TOGGLED"
	TypeChatTurnAppended = "CHAT_TURN_APPENDED"
	TypeNoteCreated      = "NOTE_CREATED"
	TypeScoreSubmitted   = "SCORE_SUBMITTED"
	TypeContentGenerated = "CONTENT_GENERATED"
)

type BaseEvent struct {
	Type       string                 `json:"type"`
	Data       map[string]interface{} `json:"data"`
	OccurredAt time.Time              `json:"occurred_at"`
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// Marshal encodes any Event as a BaseEvent document.
func Marshal(e Event) ([]byte, error) {
	return json.Marshal(BaseEvent{
		Type:       e.EventType(),
		Data:       e.Payload(),
		OccurredAt: e.Timestamp(),
	})
}

func Unmarshal(data []byte) (BaseEvent, error) {
	var e BaseEvent
	err := json.Unmarshal(data, &e)
	return e, err
}

// Decode re-reads one payload entry into a typed value. Payloads lose
// their Go types once they cross the bus as JSON.
func (e BaseEvent) Decode(key string, out any) error {
	raw, err := json.Marshal(e.Data[key])
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

// New stamps an event with the current time.
func New(eventType string, data map[string]interface{}) BaseEvent {
	return BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now(),
	}
}
