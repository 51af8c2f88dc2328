package db_models

import "github.com/google/uuid"

type MurmurationType string

const (
	MurmurationTypeText  MurmurationType = "Text"
	MurmurationTypeAudio MurmurationType = "Audio"
	MurmurationTypeImage MurmurationType = "Image"
)

type Murmuration struct {
	BaseModel
	UserID uuid.UUID       `gorm:"index"`
	Type   MurmurationType `gorm:"type:varchar(16)"`
	Title  string
	Text   string
	Audio  string
	Image  string

	Comments []Comment         `gorm:"foreignKey:MurmurationID"`
	Likes    []MurmurationLike `gorm:"foreignKey:MurmurationID"`
}

// Comment threads one level deep: top-level rows have a nil
// ReplyToCommentID.
type Comment struct {
	BaseModel
	MurmurationID    uuid.UUID `gorm:"index"`
	UserID           uuid.UUID `gorm:"index"`
	Body             string
	ReplyToCommentID *uuid.UUID `gorm:"index"`

	User    User          `gorm:"foreignKey:UserID"`
	Replies []Comment     `gorm:"foreignKey:ReplyToCommentID"`
	Likes   []CommentLike `gorm:"foreignKey:CommentID"`
}

type MurmurationLike struct {
	BaseModel
	UserID        uuid.UUID `gorm:"uniqueIndex:idx_murmuration_like"`
	MurmurationID uuid.UUID `gorm:"uniqueIndex:idx_murmuration_like"`
}

type CommentLike struct {
	BaseModel
	UserID    uuid.UUID `gorm:"uniqueIndex:idx_comment_like"`
	CommentID uuid.UUID `gorm:"uniqueIndex:idx_comment_like"`
}
