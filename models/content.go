package models

import (
	"time"

	"gorm.io/gorm"
)

// Content status values shared by Series and Video
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusArchived  = "archived"
)

// ContentItem is the gating surface shared by Series and Video.
type ContentItem interface {
	ContentVisibility() Tier
	ContentStatus() string
	ContentOwnerID() uint
}

// IsAccessible decides whether the caller may access the item. Pass a nil
// user for anonymous callers. Administrators see everything; an instructor
// sees their own content regardless of status. Everyone else needs the item
// published and an effective tier at or above the item's visibility.
func IsAccessible(u *User, item ContentItem, now time.Time) bool {
	if u.IsAdmin() {
		return true
	}
	if u != nil && item.ContentOwnerID() != 0 && u.ID == item.ContentOwnerID() {
		return true
	}
	if item.ContentStatus() != StatusPublished {
		return false
	}
	return u.EffectiveTier(now).AtLeast(item.ContentVisibility())
}

// VisibleTo translates IsAccessible into a WHERE clause for list queries.
// An item passes this filter exactly when IsAccessible returns true for it,
// so list endpoints and single-item checks can never disagree.
func VisibleTo(u *User, now time.Time) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if u.IsAdmin() {
			return db
		}
		tiers := TiersUpTo(u.EffectiveTier(now))
		if u == nil {
			return db.Where("status = ? AND visibility IN ?", StatusPublished, tiers)
		}
		return db.Where("(status = ? AND visibility IN ?) OR instructor_id = ?", StatusPublished, tiers, u.ID)
	}
}
