package memory

import (
	"testing"
	"time"

	"lessonplan-review-be/pkg/review"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRepository_SaveGetDelete(t *testing.T) {
	repo := NewSessionRepository(time.Hour, time.Minute)
	s := review.NewSession()

	repo.Save(s)
	got, ok := repo.Get(s.Id)
	require.True(t, ok)
	assert.Same(t, s, got)
	assert.Equal(t, 1, repo.Count())

	_, ok = repo.Get(uuid.New())
	assert.False(t, ok)

	repo.Delete(s.Id)
	_, ok = repo.Get(s.Id)
	assert.False(t, ok)
	assert.True(t, s.Closed())
}

func TestSessionRepository_ExpiryClosesSession(t *testing.T) {
	repo := NewSessionRepository(20*time.Millisecond, 5*time.Millisecond)
	s := review.NewSession(review.WithReplyDelay(time.Hour))
	_, err := s.Submit("hello")
	require.NoError(t, err)

	repo.Save(s)

	require.Eventually(t, s.Closed, time.Second, 5*time.Millisecond)
	assert.Empty(t, s.PendingReplies())
	_, ok := repo.Get(s.Id)
	assert.False(t, ok)
}

func TestSessionRepository_SaveSlidesExpiry(t *testing.T) {
	repo := NewSessionRepository(60*time.Millisecond, 10*time.Millisecond)
	s := review.NewSession()
	defer s.Close()

	repo.Save(s)
	for i := 0; i < 4; i++ {
		time.Sleep(30 * time.Millisecond)
		repo.Save(s)
	}
	_, ok := repo.Get(s.Id)
	assert.True(t, ok)
	assert.False(t, s.Closed())
}
