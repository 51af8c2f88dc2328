package response_models

import "time"

type QuoteData struct {
	ID          string    `json:"id"`
	QuoteText   string    `json:"quote_text"`
	QuoteAuthor string    `json:"quote_author"`
	Reason      string    `json:"reason,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
	CreatedAt   time.Time `json:"created_at"`

	IsFavourite bool   `json:"isFavourite"`
	ShareLink   string `json:"shareLink,omitempty"`
}

type QuoteResponse struct {
	Success bool       `json:"success"`
	Message string     `json:"message"`
	Data    *QuoteData `json:"data,omitempty"`
}

type QuotesResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    []QuoteData `json:"data"`
}

type ReactionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Reacted bool   `json:"reacted"`
}
