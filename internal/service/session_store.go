package service

import (
	"errors"
	"fmt"

	"lessonplan-review-be/internal/pkg/logger"
	"lessonplan-review-be/pkg/review"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("review")

// ErrSessionNotFound is returned for expired, closed or unknown sessions.
var ErrSessionNotFound = fmt.Errorf("%w: session expired or closed", review.ErrLookupMiss)

// SessionStore is implemented by memory.SessionRepository.
type SessionStore interface {
	Save(session *review.Session)
	Get(sessionId uuid.UUID) (*review.Session, bool)
	Delete(sessionId uuid.UUID)
}

// loadSession fetches a live session and restarts its expiry clock.
func loadSession(store SessionStore, sessionId uuid.UUID) (*review.Session, error) {
	s, ok := store.Get(sessionId)
	if !ok || s.Closed() {
		return nil, ErrSessionNotFound
	}
	store.Save(s)
	return s, nil
}

// rejection logs a failed operation. Only unmet preconditions reach the
// user as a warning toast.
type rejection struct {
	notifier INotificationService
	logger   logger.ILogger
}

func (r rejection) report(module string, sessionId uuid.UUID, err error, warning string) error {
	r.logger.Warn(module, "Operation rejected", map[string]interface{}{
		"session_id": sessionId,
		"error":      err.Error(),
	})
	if warning != "" && errors.Is(err, review.ErrPreconditionUnmet) {
		r.notifier.Notify(sessionId, warning, SeverityWarning)
	}
	return err
}
