package response_models

import "time"

type JournalData struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Type      string    `json:"type"`
	Title     string    `json:"title,omitempty"`
	Body      string    `json:"body,omitempty"`
	Audio     string    `json:"audio,omitempty"`
	AudioURL  string    `json:"audio_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`

	LikeCount int64 `json:"likeCount"`
	IsLiked   bool  `json:"isLiked"`
}

type JournalResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Data    *JournalData `json:"data,omitempty"`
}

type JournalsResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Data    []JournalData `json:"data"`
}

type LikeResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Liked   bool   `json:"liked"`
}
