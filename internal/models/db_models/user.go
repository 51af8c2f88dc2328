package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type UserType string

const (
	UserTypeAdmin UserType = "admin"
	UserTypeUser  UserType = "user"
)

type User struct {
	BaseModel
	Username  string `gorm:"uniqueIndex"`
	Email     string `gorm:"uniqueIndex"`
	Password  string
	Name      string
	FirstName string
	LastName  string
	Avatar    string

	Type UserType `gorm:"type:varchar(16);default:'user';index"`

	// Billing linkage. BillingID is the payment provider's customer id;
	// SubscriptionPlan is a denormalized label, the entitlement resolver is
	// the source of truth.
	BillingID              string `gorm:"index"`
	SubscriptionPlan       string `gorm:"default:'free'"`
	SubscriptionValidUntil int64

	Preferences  *UserPreferences  `gorm:"foreignKey:UserID"`
	Subscription *UserSubscription `gorm:"foreignKey:UserID"`
}

// UserPreferences lives independently of the subscription; focus areas drive
// dig and quote pool filtering.
type UserPreferences struct {
	BaseModel
	UserID           uuid.UUID      `gorm:"uniqueIndex"`
	FocusArea        pq.StringArray `gorm:"type:text[]"`
	ContentFrequency string
}
