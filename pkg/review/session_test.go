package review

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var fixedNow = time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)

func newTestSession(opts ...Option) *Session {
	base := []Option{
		WithClock(func() time.Time { return fixedNow }),
		WithReplyDelay(10 * time.Millisecond),
	}
	return NewSession(append(base, opts...)...)
}

func TestNewSession_Defaults(t *testing.T) {
	s := NewSession()
	defer s.Close()

	snap := s.Snapshot()
	assert.NotEqual(t, uuid.Nil, snap.Id)
	assert.Equal(t, TabNotes, snap.Tab)
	assert.Empty(t, snap.Sources)
	assert.Empty(t, snap.Transcript)
	assert.Empty(t, snap.Notes)
	assert.Nil(t, snap.OpenNote)
	assert.Len(t, snap.Scores, len(Categories))
	assert.Equal(t, 0.0, snap.Total)
}

func TestSnapshot_IsACopy(t *testing.T) {
	s := newTestSession()
	defer s.Close()

	s.Ingest([]FileDescriptor{{Name: "A.pdf"}})
	_, err := s.Rate("timing", 5)
	require.NoError(t, err)

	snap := s.Snapshot()
	snap.Sources[0].Selected = true
	snap.Scores[CategoryTiming] = 1

	assert.Empty(t, s.SelectedSources())
	assert.Equal(t, 5, s.Scores()[CategoryTiming])
}

func TestSwitchTab(t *testing.T) {
	s := newTestSession()
	defer s.Close()

	tab, err := s.SwitchTab("score")
	require.NoError(t, err)
	assert.Equal(t, TabScore, tab)
	assert.Equal(t, TabScore, s.CurrentTab())

	_, err = s.SwitchTab("settings")
	assert.ErrorIs(t, err, ErrValidationRejected)
	assert.Equal(t, TabScore, s.CurrentTab())
}
