package models

import (
	"time"

	"gorm.io/gorm"
)

// Subscription period values
const (
	PeriodMonthly = "MONTHLY"
	PeriodYearly  = "YEARLY"
)

// SubscriptionTransaction records a settled payment that changed a user's
// subscription. Settlement happens at the payment gateway; rows here are
// read-only facts, never billing state.
type SubscriptionTransaction struct {
	gorm.Model
	UserID    uint       `gorm:"index;not null" json:"user_id"`
	Reference string     `gorm:"unique;not null" json:"reference"` // internal uuid
	PaymentID string     `gorm:"default:''" json:"payment_id"`     // gateway identifier
	Tier      Tier       `gorm:"type:varchar(20);not null" json:"tier"`
	Period    string     `gorm:"type:varchar(20);default:'MONTHLY'" json:"period"` // MONTHLY, YEARLY
	Amount    uint       `gorm:"default:0" json:"amount"`
	ExpiresAt *time.Time `json:"expires_at"` // expiry applied to the subscription
	GrantedBy *uint      `json:"granted_by"` // admin user id for manual grants
	IsDeleted bool       `gorm:"default:false"`
}
