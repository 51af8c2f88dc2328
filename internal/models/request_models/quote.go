package request_models

type CreateQuoteRequest struct {
	QuoteText   string   `json:"quote_text" binding:"required"`
	QuoteAuthor string   `json:"quote_author"`
	Reason      string   `json:"reason"`
	Tags        []string `json:"tags"`
}

type UpdateQuoteRequest struct {
	QuoteText   string   `json:"quote_text"`
	QuoteAuthor string   `json:"quote_author"`
	Reason      string   `json:"reason"`
	Tags        []string `json:"tags"`
}
