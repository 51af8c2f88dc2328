package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type LayerType string

const (
	LayerTypeOption LayerType = "option"
	LayerTypeText   LayerType = "text"
)

// Dig is a quiz unit authored by an admin. Type carries the focus-area tags
// used for rotation matching.
type Dig struct {
	BaseModel
	Title     string
	Type      pq.StringArray `gorm:"type:text[]"`
	CreatorID uuid.UUID      `gorm:"index"`

	Layers []Layer `gorm:"foreignKey:DigID"`
}

// Layer is one question within a dig.
type Layer struct {
	BaseModel
	DigID      uuid.UUID `gorm:"index"`
	Name       string
	Type       LayerType `gorm:"type:varchar(16)"`
	Points     int64
	Options    pq.StringArray `gorm:"type:text[]"`
	IsFreeText bool
}

// DigResponse records one answer per (user, layer). Never updated.
type DigResponse struct {
	BaseModel
	DigID   uuid.UUID `gorm:"index"`
	LayerID uuid.UUID `gorm:"uniqueIndex:idx_dig_response_user_layer"`
	UserID  uuid.UUID `gorm:"uniqueIndex:idx_dig_response_user_layer"`
	Answer  string
}

// UserWeeklyDig is the free-tier assignment: one row per slot, three slots
// per ISO week. WeekStart is unix milliseconds of Monday 00:00 UTC and is
// part of the weekly cache key.
type UserWeeklyDig struct {
	BaseModel
	UserID    uuid.UUID `gorm:"uniqueIndex:idx_weekly_dig_slot"`
	DigID     uuid.UUID `gorm:"index"`
	WeekStart int64     `gorm:"uniqueIndex:idx_weekly_dig_slot"`
	Position  int       `gorm:"uniqueIndex:idx_weekly_dig_slot"` // 1..3
	Completed bool

	Dig Dig `gorm:"foreignKey:DigID"`
}

// UserDailyDig is the paid-tier assignment. The (user, day, slot) unique
// index backs the two-per-day cap at the store level, so concurrent
// assignment attempts cannot overshoot it.
type UserDailyDig struct {
	BaseModel
	UserID         uuid.UUID `gorm:"uniqueIndex:idx_daily_dig_slot"`
	DigID          uuid.UUID `gorm:"index"`
	AssignedAt     int64     // unix seconds
	AssignedDay    int64     `gorm:"uniqueIndex:idx_daily_dig_slot"` // unix seconds of UTC midnight
	DailyDigNumber int       `gorm:"uniqueIndex:idx_daily_dig_slot"` // 1 or 2
	Completed      bool      `gorm:"index"`

	Dig Dig `gorm:"foreignKey:DigID"`
}
