package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalRoundTrip_DecodeTyped(t *testing.T) {
	type record struct {
		Total   float64        `json:"total"`
		Scores  map[string]int `json:"scores"`
		Comment string         `json:"comment"`
	}
	at := time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)

	data, err := Marshal(BaseEvent{
		Type: TypeScoreSubmitted,
		Data: map[string]interface{}{
			"session_id": "abc",
			"record":     record{Total: 3.4, Scores: map[string]int{"timing": 3}, Comment: "ok"},
		},
		OccurredAt: at,
	})
	require.NoError(t, err)

	evt, err := Unmarshal(data)
	require.NoError(t, err)
	assert.Equal(t, TypeScoreSubmitted, evt.EventType())
	assert.True(t, at.Equal(evt.Timestamp()))
	assert.Equal(t, "abc", evt.Payload()["session_id"])

	var got record
	require.NoError(t, evt.Decode("record", &got))
	assert.Equal(t, 3.4, got.Total)
	assert.Equal(t, 3, got.Scores["timing"])
}
