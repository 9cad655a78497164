package review

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Category string

const (
	CategoryObjectives Category = "objectives"
	CategoryContent    Category = "content"
	CategoryInnovation Category = "innovation"
	CategoryAssessment Category = "assessment"
	CategoryTiming     Category = "timing"
)

// Categories in display order.
var Categories = []Category{
	CategoryObjectives,
	CategoryContent,
	CategoryInnovation,
	CategoryAssessment,
	CategoryTiming,
}

const (
	MinRating = 1
	MaxRating = 5
)

func ParseCategory(v string) (Category, error) {
	for _, c := range Categories {
		if string(c) == v {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: unknown category %q", ErrValidationRejected, v)
}

// ScoreSet maps every category to 0..5, where 0 means unrated.
type ScoreSet map[Category]int

func NewScoreSet() ScoreSet {
	set := make(ScoreSet, len(Categories))
	for _, c := range Categories {
		set[c] = 0
	}
	return set
}

// Total is the mean of all five categories, unrated counted as 0,
// rounded to one decimal.
func (set ScoreSet) Total() float64 {
	sum := 0
	for _, c := range Categories {
		sum += set[c]
	}
	mean := float64(sum) / float64(len(Categories))
	return math.Round(mean*10) / 10
}

func (set ScoreSet) clone() ScoreSet {
	out := NewScoreSet()
	for _, c := range Categories {
		out[c] = set[c]
	}
	return out
}

type ScoreRecord struct {
	Id          uuid.UUID `json:"id"`
	SessionId   uuid.UUID `json:"session_id"`
	Scores      ScoreSet  `json:"scores"`
	Total       float64   `json:"total"`
	Comment     string    `json:"comment"`
	SubmittedAt time.Time `json:"submitted_at"`
}

func (s *Session) Rate(category string, value int) (ScoreSet, error) {
	c, err := ParseCategory(category)
	if err != nil {
		return nil, err
	}
	if value < MinRating || value > MaxRating {
		return nil, fmt.Errorf("%w: rating %d outside %d..%d", ErrValidationRejected, value, MinRating, MaxRating)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.scores[c] = value
	return s.scores.clone(), nil
}

func (s *Session) Scores() ScoreSet {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scores.clone()
}

func (s *Session) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scores.Total()
}

// SubmitScore snapshots the current ratings. Ratings stay as they are.
func (s *Session) SubmitScore(comment string) (ScoreRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := s.scores.Total()
	if total == 0 {
		return ScoreRecord{}, fmt.Errorf("%w: not rated", ErrPreconditionUnmet)
	}
	return ScoreRecord{
		Id:          uuid.New(),
		SessionId:   s.Id,
		Scores:      s.scores.clone(),
		Total:       total,
		Comment:     strings.TrimSpace(comment),
		SubmittedAt: s.now(),
	}, nil
}

func (s *Session) ResetScores() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scores = NewScoreSet()
}

// StarPreview is what the star strip of one category shows.
type StarPreview struct {
	Category  Category `json:"category"`
	Value     int      `json:"value"`
	Committed int      `json:"committed"`
	Stars     string   `json:"stars"`
}

// PreviewRating renders the strip for a hovered value without touching
// the score set. Value 0 means the pointer left and yields the committed
// rating.
func (s *Session) PreviewRating(category string, value int) (StarPreview, error) {
	c, err := ParseCategory(category)
	if err != nil {
		return StarPreview{}, err
	}
	if value < 0 || value > MaxRating {
		return StarPreview{}, fmt.Errorf("%w: rating %d outside 0..%d", ErrValidationRejected, value, MaxRating)
	}

	s.mu.Lock()
	committed := s.scores[c]
	s.mu.Unlock()

	shown := value
	if shown == 0 {
		shown = committed
	}
	return StarPreview{
		Category:  c,
		Value:     shown,
		Committed: committed,
		Stars:     Stars(shown),
	}, nil
}

// Stars renders a rating as filled and empty stars.
func Stars(value int) string {
	return strings.Repeat("★", value) + strings.Repeat("☆", MaxRating-value)
}
