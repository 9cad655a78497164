package review

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRate_Rejects(t *testing.T) {
	s := newTestSession()
	defer s.Close()

	tests := []struct {
		name     string
		category string
		value    int
	}{
		{"unknown category", "creativity", 3},
		{"empty category", "", 3},
		{"zero", "objectives", 0},
		{"too high", "objectives", 6},
		{"negative", "timing", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Rate(tt.category, tt.value)
			assert.ErrorIs(t, err, ErrValidationRejected)
		})
	}
	assert.Equal(t, NewScoreSet(), s.Scores())
	assert.Equal(t, 0.0, s.Total())
}

func TestRate_TotalIsMeanOfAllFive(t *testing.T) {
	s := newTestSession()
	defer s.Close()

	steps := []struct {
		category string
		value    int
		want     float64
	}{
		{"objectives", 4, 0.8},
		{"content", 5, 1.8},
		{"innovation", 3, 2.4},
		{"objectives", 1, 1.8},
		{"assessment", 2, 2.2},
		{"timing", 2, 2.6},
		{"content", 1, 1.8},
	}

	for _, st := range steps {
		set, err := s.Rate(st.category, st.value)
		require.NoError(t, err)
		assert.Equal(t, st.value, set[Category(st.category)])

		sum := 0
		for _, v := range set {
			sum += v
		}
		assert.InDelta(t, float64(sum)/5, s.Total(), 0.05)
		assert.Equal(t, st.want, s.Total())
	}
}

func TestScoreSet_TotalRounding(t *testing.T) {
	set := NewScoreSet()
	set[CategoryObjectives] = 5
	set[CategoryContent] = 5
	set[CategoryInnovation] = 4
	assert.Equal(t, 2.8, set.Total())

	set[CategoryAssessment] = 5
	set[CategoryTiming] = 5
	assert.Equal(t, 4.8, set.Total())
}

func TestSubmitScore(t *testing.T) {
	s := newTestSession()
	defer s.Close()

	_, err := s.SubmitScore("looks fine")
	assert.ErrorIs(t, err, ErrPreconditionUnmet)

	_, err = s.Rate("innovation", 3)
	require.NoError(t, err)
	rec, err := s.SubmitScore("  加強互動  ")
	require.NoError(t, err)

	assert.Equal(t, s.Id, rec.SessionId)
	assert.Equal(t, 0.6, rec.Total)
	assert.Equal(t, "加強互動", rec.Comment)
	assert.Equal(t, 3, rec.Scores[CategoryInnovation])
	assert.Equal(t, fixedNow, rec.SubmittedAt)

	// ratings survive submission; the record is a snapshot
	_, err = s.Rate("innovation", 5)
	require.NoError(t, err)
	assert.Equal(t, 3, rec.Scores[CategoryInnovation])
	assert.Equal(t, 1.0, s.Total())
}

func TestResetScores(t *testing.T) {
	s := newTestSession()
	defer s.Close()

	for _, c := range Categories {
		_, err := s.Rate(string(c), 5)
		require.NoError(t, err)
	}
	assert.Equal(t, 5.0, s.Total())

	s.ResetScores()
	assert.Equal(t, NewScoreSet(), s.Scores())
	_, err := s.SubmitScore("")
	assert.ErrorIs(t, err, ErrPreconditionUnmet)
}

func TestPreviewRating_DoesNotCommit(t *testing.T) {
	s := newTestSession()
	defer s.Close()

	_, err := s.Rate("content", 2)
	require.NoError(t, err)

	p, err := s.PreviewRating("content", 4)
	require.NoError(t, err)
	assert.Equal(t, 4, p.Value)
	assert.Equal(t, 2, p.Committed)
	assert.Equal(t, "★★★★☆", p.Stars)
	assert.Equal(t, 2, s.Scores()[CategoryContent])

	p, err = s.PreviewRating("content", 0)
	require.NoError(t, err)
	assert.Equal(t, 2, p.Value)
	assert.Equal(t, "★★☆☆☆", p.Stars)

	_, err = s.PreviewRating("content", 7)
	assert.ErrorIs(t, err, ErrValidationRejected)
	_, err = s.PreviewRating("style", 3)
	assert.ErrorIs(t, err, ErrValidationRejected)
	assert.Equal(t, 0.4, s.Total())
}

func TestStars(t *testing.T) {
	assert.Equal(t, "☆☆☆☆☆", Stars(0))
	assert.Equal(t, "★★★★★", Stars(5))
}
