package db_models

import "github.com/google/uuid"

type JournalType string

const (
	JournalTypeText  JournalType = "Text"
	JournalTypeAudio JournalType = "Audio"
)

type Journal struct {
	BaseModel
	UserID uuid.UUID   `gorm:"index"`
	Type   JournalType `gorm:"type:varchar(16)"`
	Title  string
	Body   string
	Audio  string // stored object name, audio type only

	Likes []JournalLike `gorm:"foreignKey:JournalID"`
}

// JournalLike existence IS the liked state; the unique index is the
// concurrency guard for toggling.
type JournalLike struct {
	BaseModel
	UserID    uuid.UUID `gorm:"uniqueIndex:idx_journal_like"`
	JournalID uuid.UUID `gorm:"uniqueIndex:idx_journal_like"`
}
