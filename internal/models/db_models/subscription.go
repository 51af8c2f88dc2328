package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// UserSubscription is one-to-one with User and created/updated only by the
// billing sync. AccessID selects the SubscriptionAccess row the entitlement
// resolver loads.
type UserSubscription struct {
	BaseModel
	UserID uuid.UUID `gorm:"uniqueIndex"`

	PlanName             string
	PlanID               string
	StripeSubscriptionID string `gorm:"index"`
	Status               string `gorm:"index"`
	Method               string
	CardLast4            string

	Description        pq.StringArray `gorm:"type:text[]"`
	AllowedPermissions pq.StringArray `gorm:"type:text[]"`
	TimesRenewed       int64

	AccessID uuid.UUID
	Access   SubscriptionAccess `gorm:"foreignKey:AccessID"`
}
