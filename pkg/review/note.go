package review

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

const noteTitleLength = 30

type NoteOrigin string

const (
	NoteOriginManual NoteOrigin = "manual"
	NoteOriginChat   NoteOrigin = "chat"
)

type Note struct {
	Id        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	Origin    NoteOrigin `json:"origin"`
	CreatedAt time.Time  `json:"created_at"`
}

// NoteTitle is the first 30 characters of content, with "..." appended
// when anything was cut.
func NoteTitle(content string) string {
	if utf8.RuneCountInString(content) <= noteTitleLength {
		return content
	}
	return string([]rune(content)[:noteTitleLength]) + "..."
}

func (s *Session) CreateNote(content string) (Note, error) {
	if content == "" {
		return Note{}, fmt.Errorf("%w: empty note", ErrValidationRejected)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.appendNoteLocked(content, NoteOriginManual), nil
}

func (s *Session) appendNoteLocked(content string, origin NoteOrigin) Note {
	n := Note{
		Id:        uuid.New(),
		Title:     NoteTitle(content),
		Content:   content,
		Origin:    origin,
		CreatedAt: s.now(),
	}
	s.notes = append(s.notes, n)
	return n
}

// Notes returns every note, oldest first.
func (s *Session) Notes() []Note {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Note{}, s.notes...)
}

// ViewNote opens a note in the detail slot, replacing whichever note was
// open, and brings the notes tab to the front.
func (s *Session) ViewNote(id uuid.UUID) (Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, n := range s.notes {
		if n.Id == id {
			open := n.Id
			s.openNote = &open
			s.tab = TabNotes
			return n, nil
		}
	}
	return Note{}, fmt.Errorf("%w: note %s", ErrLookupMiss, id)
}

func (s *Session) CloseNote() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.openNote = nil
}

func (s *Session) OpenNote() (Note, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.openNoteLocked()
}

func (s *Session) openNoteLocked() (Note, bool) {
	if s.openNote == nil {
		return Note{}, false
	}
	for _, n := range s.notes {
		if n.Id == *s.openNote {
			return n, true
		}
	}
	return Note{}, false
}
