package memory

import (
	"time"

	"lessonplan-review-be/pkg/review"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// SessionRepository keeps live review sessions. Every Save restarts the
// expiration clock; an expired or deleted session is closed so its
// pending replies never fire.
type SessionRepository struct {
	cache *cache.Cache
}

func NewSessionRepository(ttl, cleanupInterval time.Duration) *SessionRepository {
	c := cache.New(ttl, cleanupInterval)
	c.OnEvicted(func(_ string, x interface{}) {
		if s, ok := x.(*review.Session); ok {
			s.Close()
		}
	})
	return &SessionRepository{
		cache: c,
	}
}

func (r *SessionRepository) Save(session *review.Session) {
	r.cache.Set(session.Id.String(), session, cache.DefaultExpiration)
}

func (r *SessionRepository) Get(sessionId uuid.UUID) (*review.Session, bool) {
	if x, found := r.cache.Get(sessionId.String()); found {
		return x.(*review.Session), true
	}
	return nil, false
}

func (r *SessionRepository) Delete(sessionId uuid.UUID) {
	r.cache.Delete(sessionId.String())
}

func (r *SessionRepository) Count() int {
	return r.cache.ItemCount()
}
