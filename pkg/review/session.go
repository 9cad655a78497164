// Package review holds the state model of a lesson-plan review session:
// uploaded sources and their selection, the assistant transcript, notes,
// rubric scores and the generated report views.
//
// A Session is an explicit container. Every operation takes the session
// lock and runs to completion, so callers on different goroutines see the
// same ordering a single event loop would give them.
package review

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

const DefaultReplyDelay = time.Second

// ReplyHook receives every assistant turn once it has been appended.
// It runs outside the session lock.
type ReplyHook func(sessionId uuid.UUID, turn ChatTurn)

type Option func(*Session)

func WithReplyDelay(d time.Duration) Option {
	return func(s *Session) { s.replyDelay = d }
}

func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

func WithReplyHook(h ReplyHook) Option {
	return func(s *Session) { s.onReply = h }
}

type Session struct {
	Id        uuid.UUID
	CreatedAt time.Time

	mu sync.Mutex

	sources  []*Source
	turns    []ChatTurn
	notes    []Note
	openNote *uuid.UUID
	scores   ScoreSet
	tab      Tab

	// user turn id -> timer that will append the assistant reply
	pending map[uuid.UUID]*time.Timer
	closed  bool

	replyDelay time.Duration
	now        func() time.Time
	onReply    ReplyHook
}

func NewSession(opts ...Option) *Session {
	s := &Session{
		Id:         uuid.New(),
		scores:     NewScoreSet(),
		tab:        TabNotes,
		pending:    make(map[uuid.UUID]*time.Timer),
		replyDelay: DefaultReplyDelay,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.CreatedAt = s.now()
	return s
}

// Close cancels every pending assistant reply. The session keeps its
// state but schedules nothing further.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, t := range s.pending {
		t.Stop()
		delete(s.pending, id)
	}
	s.closed = true
}

func (s *Session) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// Snapshot is a consistent copy of the whole session.
type Snapshot struct {
	Id             uuid.UUID   `json:"id"`
	CreatedAt      time.Time   `json:"created_at"`
	Sources        []Source    `json:"sources"`
	SelectedIds    []uuid.UUID `json:"selected_ids"`
	Transcript     []ChatTurn  `json:"transcript"`
	PendingReplies []uuid.UUID `json:"pending_replies"`
	Notes          []Note      `json:"notes"`
	OpenNote       *Note       `json:"open_note"`
	Scores         ScoreSet    `json:"scores"`
	Total          float64     `json:"total"`
	Tab            Tab         `json:"tab"`
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		Id:             s.Id,
		CreatedAt:      s.CreatedAt,
		Sources:        make([]Source, 0, len(s.sources)),
		SelectedIds:    []uuid.UUID{},
		Transcript:     append([]ChatTurn{}, s.turns...),
		PendingReplies: s.pendingLocked(),
		Notes:          append([]Note{}, s.notes...),
		Scores:         s.scores.clone(),
		Total:          s.scores.Total(),
		Tab:            s.tab,
	}
	for _, src := range s.sources {
		snap.Sources = append(snap.Sources, *src)
		if src.Selected {
			snap.SelectedIds = append(snap.SelectedIds, src.Id)
		}
	}
	if n, ok := s.openNoteLocked(); ok {
		snap.OpenNote = &n
	}
	return snap
}
