package models

import "gorm.io/gorm"

// Series groups videos under one visibility/status gate
type Series struct {
	gorm.Model
	Title        string `json:"title"`
	Description  string `json:"description" gorm:"type:text"`
	InstructorID uint   `json:"instructor_id" gorm:"index;not null"`
	Visibility   Tier   `json:"visibility" gorm:"type:varchar(20);default:'freemium';index"`
	Status       string `json:"status" gorm:"type:varchar(20);default:'draft';index"` // draft, published, archived
	ThumbnailURL string `json:"thumbnail_url"`
	Position     int    `json:"position" gorm:"default:0"`
	IsDeleted    bool   `gorm:"default:false"`
}

func (s Series) ContentVisibility() Tier { return s.Visibility }
func (s Series) ContentStatus() string   { return s.Status }
func (s Series) ContentOwnerID() uint    { return s.InstructorID }
