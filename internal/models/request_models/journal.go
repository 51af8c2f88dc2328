package request_models

type CreateJournalRequest struct {
	Type  string `form:"type" json:"type" binding:"required,oneof=Text Audio"`
	Title string `form:"title" json:"title"`
	Body  string `form:"body" json:"body"`
}

type UpdateJournalRequest struct {
	Type  string `form:"type" json:"type" binding:"omitempty,oneof=Text Audio"`
	Title string `form:"title" json:"title"`
	Body  string `form:"body" json:"body"`
}
