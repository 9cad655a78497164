package review

import "fmt"

// Tab is the active view of the notes panel.
type Tab string

const (
	TabNotes    Tab = "notes"
	TabScore    Tab = "score"
	TabGenerate Tab = "generate"
)

func ParseTab(v string) (Tab, error) {
	switch t := Tab(v); t {
	case TabNotes, TabScore, TabGenerate:
		return t, nil
	}
	return "", fmt.Errorf("%w: unknown tab %q", ErrValidationRejected, v)
}

func (s *Session) SwitchTab(v string) (Tab, error) {
	t, err := ParseTab(v)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.tab = t
	return t, nil
}

func (s *Session) CurrentTab() Tab {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tab
}
