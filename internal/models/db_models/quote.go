package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Quote struct {
	BaseModel
	UserID      uuid.UUID `gorm:"index"`
	QuoteText   string
	QuoteAuthor string
	Reason      string
	Tags        pq.StringArray `gorm:"type:text[]"`

	User User `gorm:"foreignKey:UserID"`
}

type QuoteReaction struct {
	BaseModel
	UserID  uuid.UUID `gorm:"uniqueIndex:idx_quote_reaction"`
	QuoteID uuid.UUID `gorm:"uniqueIndex:idx_quote_reaction"`
}
