package review

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type ChatTurn struct {
	Id        uuid.UUID `json:"id"`
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
	// ReplyTo links an assistant turn to the user turn it answers.
	ReplyTo *uuid.UUID `json:"reply_to,omitempty"`
}

// Submit appends the user turn and schedules the assistant reply.
// Nothing blocks further submissions while replies are pending.
func (s *Session) Submit(text string) (ChatTurn, error) {
	msg := strings.TrimSpace(text)
	if msg == "" {
		return ChatTurn{}, fmt.Errorf("%w: empty message", ErrValidationRejected)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	turn := ChatTurn{
		Id:        uuid.New(),
		Role:      RoleUser,
		Content:   msg,
		Timestamp: s.now(),
	}
	s.turns = append(s.turns, turn)

	if !s.closed {
		s.pending[turn.Id] = time.AfterFunc(s.replyDelay, func() {
			s.resolveReply(turn)
		})
	}
	return turn, nil
}

func (s *Session) resolveReply(userTurn ChatTurn) {
	s.mu.Lock()
	if _, ok := s.pending[userTurn.Id]; !ok {
		// cancelled after the timer fired but before we got the lock
		s.mu.Unlock()
		return
	}
	delete(s.pending, userTurn.Id)

	replyTo := userTurn.Id
	reply := ChatTurn{
		Id:        uuid.New(),
		Role:      RoleAssistant,
		Content:   ResolveResponse(userTurn.Content),
		Timestamp: s.now(),
		ReplyTo:   &replyTo,
	}
	s.turns = append(s.turns, reply)
	hook := s.onReply
	s.mu.Unlock()

	if hook != nil {
		hook(s.Id, reply)
	}
}

// CancelPending drops the scheduled reply to one user turn.
func (s *Session) CancelPending(userTurnId uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.pending[userTurnId]
	if !ok {
		return fmt.Errorf("%w: no pending reply for turn %s", ErrLookupMiss, userTurnId)
	}
	t.Stop()
	delete(s.pending, userTurnId)
	return nil
}

// PendingReplies lists the user turns still waiting for a reply.
func (s *Session) PendingReplies() []uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pendingLocked()
}

func (s *Session) pendingLocked() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(s.pending))
	// transcript order, not map order
	for _, t := range s.turns {
		if _, ok := s.pending[t.Id]; ok {
			ids = append(ids, t.Id)
		}
	}
	return ids
}

func (s *Session) Transcript() []ChatTurn {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]ChatTurn{}, s.turns...)
}

// SaveTurnAsNote copies an assistant turn into a new note.
func (s *Session) SaveTurnAsNote(index int) (Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.turns) {
		return Note{}, fmt.Errorf("%w: turn %d", ErrLookupMiss, index)
	}
	turn := s.turns[index]
	if turn.Role != RoleAssistant {
		return Note{}, fmt.Errorf("%w: turn %d is not an assistant reply", ErrValidationRejected, index)
	}
	return s.appendNoteLocked(turn.Content, NoteOriginChat), nil
}
