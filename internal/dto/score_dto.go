package dto

import (
	"strconv"

	"lessonplan-review-be/pkg/review"
)

type RateRequest struct {
	Category string
	Value    int `json:"value"`
}

type SubmitScoreRequest struct {
	Comment string `json:"comment" validate:"max=2000"`
}

// ScoreResponse carries the total twice: as a number and as the
// one-decimal text the score panel shows.
type ScoreResponse struct {
	Scores    review.ScoreSet `json:"scores"`
	Total     float64         `json:"total"`
	TotalText string          `json:"total_text"`
}

func NewScoreResponse(scores review.ScoreSet) *ScoreResponse {
	total := scores.Total()
	return &ScoreResponse{
		Scores:    scores,
		Total:     total,
		TotalText: strconv.FormatFloat(total, 'f', 1, 64),
	}
}
