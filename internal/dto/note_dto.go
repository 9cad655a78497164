package dto

type CreateNoteRequest struct {
	Content string `json:"content" validate:"max=20000"`
}

type CloseNoteResponse struct {
	Closed bool `json:"closed"`
}
