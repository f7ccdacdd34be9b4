package models

import (
	"math"
	"time"

	"gorm.io/gorm"
)

// CompletionThreshold is the watched percentage at which a video counts as
// completed. Below 100 so unwatched credits/outros still earn completion.
const CompletionThreshold = 90

// VideoProgress is the single per-(user, video) record carrying playback
// position, completion, favorite and rating state. It is created lazily on
// first interaction; the composite unique index backs the upsert that keeps
// concurrent first writes from producing duplicates.
type VideoProgress struct {
	gorm.Model
	UserID               uint       `json:"user_id" gorm:"not null;uniqueIndex:idx_user_video"`
	VideoID              uint       `json:"video_id" gorm:"not null;uniqueIndex:idx_user_video"`
	SeriesID             *uint      `json:"series_id" gorm:"index"`
	TimeWatchedSeconds   int        `json:"time_watched_seconds" gorm:"default:0"`
	VideoDurationSeconds int        `json:"video_duration_seconds" gorm:"default:0"`
	ProgressPercentage   int        `json:"progress_percentage" gorm:"default:0"`
	IsCompleted          bool       `json:"is_completed" gorm:"default:false"`
	CompletedAt          *time.Time `json:"completed_at"`
	FirstWatchedAt       *time.Time `json:"first_watched_at"`
	LastWatchedAt        *time.Time `json:"last_watched_at"`
	IsFavorite           bool       `json:"is_favorite" gorm:"default:false"`
	FavoritedAt          *time.Time `json:"favorited_at"`
	Rating               *int       `json:"rating"`
	Review               string     `json:"review" gorm:"type:text;default:''"`

	Video Video `json:"video,omitempty" gorm:"foreignKey:VideoID"`
}

// ComputeProgressPercentage derives the watched percentage from the latest
// reported position and duration. The result is clamped to [0,100]: player
// clocks routinely report slightly past the end, which is noise, not an
// input error. Duration must be validated as positive before calling.
func ComputeProgressPercentage(timeWatchedSeconds, durationSeconds int) int {
	pct := int(math.Round(float64(timeWatchedSeconds) / float64(durationSeconds) * 100))
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
