package models

import "gorm.io/gorm"

// Video is a single piece of playable content, optionally belonging to a series
type Video struct {
	gorm.Model
	SeriesID        *uint   `json:"series_id" gorm:"index"`
	InstructorID    uint    `json:"instructor_id" gorm:"index;not null"`
	Title           string  `json:"title"`
	Description     string  `json:"description" gorm:"type:text"`
	Visibility      Tier    `json:"visibility" gorm:"type:varchar(20);default:'freemium';index"`
	Status          string  `json:"status" gorm:"type:varchar(20);default:'draft';index"` // draft, published, archived
	DurationSeconds int     `json:"duration_seconds" gorm:"default:0"`
	VideoURL        string  `json:"video_url"`
	ThumbnailURL    string  `json:"thumbnail_url"`
	Position        int     `json:"position" gorm:"default:0"`
	Rating          float64 `json:"rating" gorm:"default:0"`       // recomputed by the rating aggregator
	RatingCount     int64   `json:"rating_count" gorm:"default:0"` // recomputed by the rating aggregator
	IsDeleted       bool    `gorm:"default:false"`
}

func (v Video) ContentVisibility() Tier { return v.Visibility }
func (v Video) ContentStatus() string   { return v.Status }
func (v Video) ContentOwnerID() uint    { return v.InstructorID }
