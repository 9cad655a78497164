package review

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// FileDescriptor is the metadata handed over by the file picker.
// File contents are never read.
type FileDescriptor struct {
	Name      string
	MediaType string
	SizeBytes int64
}

type Source struct {
	Id         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	MediaType  string    `json:"media_type"`
	SizeBytes  int64     `json:"size_bytes"`
	UploadedAt time.Time `json:"uploaded_at"`
	Selected   bool      `json:"selected"`
}

// Ingest registers one unselected source per descriptor, in order.
func (s *Session) Ingest(files []FileDescriptor) []Source {
	s.mu.Lock()
	defer s.mu.Unlock()

	created := make([]Source, 0, len(files))
	for _, f := range files {
		src := &Source{
			Id:         uuid.New(),
			Name:       f.Name,
			MediaType:  f.MediaType,
			SizeBytes:  f.SizeBytes,
			UploadedAt: s.now(),
		}
		s.sources = append(s.sources, src)
		created = append(created, *src)
	}
	return created
}

// ToggleSelection flips the selected flag of one source.
func (s *Session) ToggleSelection(id uuid.UUID) (Source, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	src := s.findSource(id)
	if src == nil {
		return Source{}, fmt.Errorf("%w: source %s", ErrLookupMiss, id)
	}
	src.Selected = !src.Selected
	return *src, nil
}

// Search matches query against source names, ignoring case.
// An empty query matches everything.
func (s *Session) Search(query string) []Source {
	s.mu.Lock()
	defer s.mu.Unlock()

	q := strings.ToLower(query)
	out := make([]Source, 0, len(s.sources))
	for _, src := range s.sources {
		if strings.Contains(strings.ToLower(src.Name), q) {
			out = append(out, *src)
		}
	}
	return out
}

// Sources returns every source in upload order.
func (s *Session) Sources() []Source {
	return s.Search("")
}

// SelectedSources is the selected subset, derived from the flag.
func (s *Session) SelectedSources() []Source {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedLocked()
}

func (s *Session) selectedLocked() []Source {
	var out []Source
	for _, src := range s.sources {
		if src.Selected {
			out = append(out, *src)
		}
	}
	return out
}

func (s *Session) findSource(id uuid.UUID) *Source {
	for _, src := range s.sources {
		if src.Id == id {
			return src
		}
	}
	return nil
}
