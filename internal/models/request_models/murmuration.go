package request_models

type CreateMurmurationRequest struct {
	Type  string `form:"type" json:"type" binding:"required,oneof=Text Audio Image"`
	Title string `form:"title" json:"title"`
	Text  string `form:"text" json:"text"`
}

type CreateCommentRequest struct {
	Body             string  `json:"body" binding:"required"`
	ReplyToCommentID *string `json:"reply_to_comment_id"`
}
