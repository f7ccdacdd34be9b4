package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	ProfileImage          string     `gorm:"default:''"`
	Name                  string     `gorm:"default:''"`
	Email                 string     `gorm:"unique;not null"`
	Role                  string     `gorm:"default:'USER'"` // USER, ADMIN
	Password              string     `gorm:"not null" json:"-"`
	SubscriptionType      Tier       `gorm:"type:varchar(20);default:'freemium'" json:"subscription_type"`
	SubscriptionStartedAt *time.Time `json:"subscription_started_at"`
	SubscriptionExpiresAt *time.Time `json:"subscription_expires_at"`
	ExpiryReminderSent    bool       `gorm:"default:false" json:"-"`
	LastLogin             *time.Time `json:"last_login"`
	FailedLoginAttempts   int        `gorm:"default:0" json:"-"`
	IsSuspended           bool       `gorm:"default:false"`
	IsDeleted             bool       `gorm:"default:false"`
}

// EffectiveTier returns the tier used for access decisions at the given
// instant. A lapsed basic/premium subscription evaluates as freemium; the
// stored SubscriptionType is never rewritten, so a renewal restores the
// original tier without a reactivation step. A nil receiver (anonymous
// caller) evaluates as freemium.
func (u *User) EffectiveTier(now time.Time) Tier {
	if u == nil {
		return TierFreemium
	}
	if u.SubscriptionType == TierFreemium {
		return TierFreemium
	}
	// Nil expiry means non-expiring (admin-class accounts).
	if u.SubscriptionExpiresAt == nil {
		return u.SubscriptionType
	}
	if now.After(*u.SubscriptionExpiresAt) {
		return TierFreemium
	}
	return u.SubscriptionType
}

// IsAdmin reports whether the user holds the administrator role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == "ADMIN"
}
