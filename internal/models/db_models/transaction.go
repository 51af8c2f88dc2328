package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type TransactionStatus string

const (
	TxnStatusPending   TransactionStatus = "pending"
	TxnStatusSucceeded TransactionStatus = "succeeded"
	TxnStatusFailed    TransactionStatus = "failed"
	TxnStatusCanceled  TransactionStatus = "canceled"
)

// PaymentTransaction is one row per applied billing event. Amount is in
// major units (provider reports minor units; divided by 100 on the way in).
type PaymentTransaction struct {
	BaseModel
	UserID         uuid.UUID  `gorm:"index"`
	SubscriptionID *uuid.UUID `gorm:"index"`

	Type      string            `gorm:"index"` // "subscription"
	Provider  string            `gorm:"index"` // "stripe"
	Status    TransactionStatus `gorm:"type:varchar(32);index"`
	RawStatus string

	Amount   *float64 `gorm:"type:numeric(12,2)"`
	Currency string   `gorm:"size:3"`
	OrderID  string   `gorm:"index"`

	ReferenceNumber string `gorm:"index"` // provider payment-intent id
	PaidAmount      *float64
	PaidCurrency    string

	Receipt datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
}
