package response_models

import "time"

type CommentAuthor struct {
	ID       string `json:"id"`
	Name     string `json:"name,omitempty"`
	Username string `json:"username"`
	Avatar   string `json:"avatar,omitempty"`
}

type CommentCounts struct {
	Likes   int64 `json:"likes"`
	Replies int64 `json:"replies"`
}

type CommentData struct {
	ID            string        `json:"id"`
	Body          string        `json:"body"`
	CreatedAt     time.Time     `json:"created_at"`
	User          CommentAuthor `json:"user"`
	CommentCounts CommentCounts `json:"comment_counts"`
	IsLiked       bool          `json:"isLiked"`
	Replies       []CommentData `json:"replies,omitempty"`
}

type PostCounts struct {
	Likes    int64 `json:"likes"`
	Comments int64 `json:"comments"`
}

type MurmurationData struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Type      string    `json:"type"`
	Title     string    `json:"title,omitempty"`
	Text      string    `json:"text,omitempty"`
	Audio     string    `json:"audio,omitempty"`
	Image     string    `json:"image,omitempty"`

	PostCounts PostCounts    `json:"post_counts"`
	Comments   []CommentData `json:"comments,omitempty"`
}

type MurmurationResponse struct {
	Success bool             `json:"success"`
	Message string           `json:"message"`
	Data    *MurmurationData `json:"data,omitempty"`
}

type MurmurationsResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Data    []MurmurationData `json:"data"`
}

type CommentResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Data    *CommentData `json:"data,omitempty"`
}
