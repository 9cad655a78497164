package dto

import (
	"lessonplan-review-be/pkg/review"
)

type FileDescriptor struct {
	Name      string `json:"name"`
	MediaType string `json:"media_type"`
	SizeBytes int64  `json:"size_bytes" validate:"gte=0"`
}

type IngestSourcesRequest struct {
	Files []FileDescriptor `json:"files" validate:"dive"`
}

type IngestSourcesResponse struct {
	Sources []review.Source `json:"sources"`
}

type SearchSourcesRequest struct {
	Query string
}
