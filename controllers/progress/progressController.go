package progressController

import (
	"math"
	"time"

	"github.com/smartcoindev389/ana-rey-video-sub000/database"
	"github.com/smartcoindev389/ana-rey-video-sub000/middleware"
	"github.com/smartcoindev389/ana-rey-video-sub000/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// currentUser loads the authenticated user set by the JWT middleware
func currentUser(c *fiber.Ctx) (*models.User, bool) {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return nil, false
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return nil, false
	}
	return &user, true
}

// findAccessibleVideo resolves the validated video ID to a video the caller
// may interact with. Missing video and denied access are distinct outcomes:
// 404 must never leak into 403 or vice versa.
func findAccessibleVideo(c *fiber.Ctx, user *models.User) (*models.Video, error) {
	videoID := c.Locals("videoID").(int)

	var video models.Video
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", videoID, false).First(&video).Error; err != nil {
		return nil, middleware.JsonResponse(c, fiber.StatusNotFound, false, "Video not found!", nil)
	}

	now := time.Now()
	if !models.IsAccessible(user, video, now) {
		return nil, middleware.JsonResponse(c, fiber.StatusForbidden, false, "This video requires a higher subscription!", fiber.Map{
			"required_tier":     video.Visibility,
			"user_subscription": user.EffectiveTier(now),
		})
	}

	return &video, nil
}

// RecordProgress upserts the caller's progress record for a video.
// The record reflects the most recent reported position, not a high-water
// mark; the only sticky field is is_completed, which is ratcheted in SQL so
// concurrent reports can never un-complete a video.
func RecordProgress(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	video, errResp := findAccessibleVideo(c, user)
	if video == nil {
		return errResp
	}

	reqData, ok := c.Locals("validatedProgress").(*struct {
		TimeWatched        *int  `json:"time_watched"`
		VideoDuration      *int  `json:"video_duration"`
		ProgressPercentage *int  `json:"progress_percentage"`
		IsCompleted        *bool `json:"is_completed"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	timeWatched := *reqData.TimeWatched
	duration := *reqData.VideoDuration

	// Percentage is derived server-side; a client-sent progress_percentage
	// is ignored. The is_completed override can only set the flag, never
	// clear it.
	pct := models.ComputeProgressPercentage(timeWatched, duration)
	completed := pct >= models.CompletionThreshold
	if reqData.IsCompleted != nil && *reqData.IsCompleted {
		completed = true
	}

	now := time.Now()
	record := models.VideoProgress{
		UserID:               user.ID,
		VideoID:              video.ID,
		SeriesID:             video.SeriesID,
		TimeWatchedSeconds:   timeWatched,
		VideoDurationSeconds: duration,
		ProgressPercentage:   pct,
		IsCompleted:          completed,
		FirstWatchedAt:       &now,
		LastWatchedAt:        &now,
	}
	if completed {
		record.CompletedAt = &now
	}

	// Single upsert keyed on (user_id, video_id). first_watched_at and
	// completed_at keep their first value, is_completed is ORed with the
	// stored flag; everything else is latest-report-wins.
	err := database.Database.Db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "video_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"time_watched_seconds":   timeWatched,
			"video_duration_seconds": duration,
			"progress_percentage":    pct,
			"is_completed":           gorm.Expr("video_progresses.is_completed OR excluded.is_completed"),
			"completed_at":           gorm.Expr("COALESCE(video_progresses.completed_at, excluded.completed_at)"),
			"first_watched_at":       gorm.Expr("COALESCE(video_progresses.first_watched_at, excluded.first_watched_at)"),
			"last_watched_at":        now,
			"updated_at":             now,
		}),
	}).Create(&record).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save progress!", nil)
	}

	var saved models.VideoProgress
	if err := database.Database.Db.Where("user_id = ? AND video_id = ?", user.ID, video.ID).First(&saved).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load progress!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress saved successfully!", saved)
}

// ensureProgressRecord lazily creates the (user, video) record for
// interactions that may precede any playback (favorite, rating). The
// DoNothing upsert makes concurrent first interactions safe.
func ensureProgressRecord(userID uint, video *models.Video) error {
	record := models.VideoProgress{
		UserID:   userID,
		VideoID:  video.ID,
		SeriesID: video.SeriesID,
	}
	return database.Database.Db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "video_id"}},
		DoNothing: true,
	}).Create(&record).Error
}

// ToggleFavorite flips the favorite flag on the caller's progress record,
// creating the record if this is their first interaction with the video.
func ToggleFavorite(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	video, errResp := findAccessibleVideo(c, user)
	if video == nil {
		return errResp
	}

	if err := ensureProgressRecord(user.ID, video); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update favorite!", nil)
	}

	// Flip flag and timestamp in one statement; both assignments read the
	// pre-update row, so the pair stays consistent under concurrency.
	now := time.Now()
	err := database.Database.Db.Model(&models.VideoProgress{}).
		Where("user_id = ? AND video_id = ?", user.ID, video.ID).
		Updates(map[string]interface{}{
			"is_favorite":  gorm.Expr("NOT is_favorite"),
			"favorited_at": gorm.Expr("CASE WHEN is_favorite THEN NULL ELSE ? END", now),
		}).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update favorite!", nil)
	}

	var saved models.VideoProgress
	if err := database.Database.Db.Where("user_id = ? AND video_id = ?", user.ID, video.ID).First(&saved).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load progress!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Favorite updated successfully!", saved)
}

// RateVideo writes the caller's 1-5 rating and optional review, then
// recomputes the video's aggregate rating.
func RateVideo(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	video, errResp := findAccessibleVideo(c, user)
	if video == nil {
		return errResp
	}

	reqData, ok := c.Locals("validatedRating").(*struct {
		Rating *int   `json:"rating"`
		Review string `json:"review"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if err := ensureProgressRecord(user.ID, video); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save rating!", nil)
	}

	err := database.Database.Db.Model(&models.VideoProgress{}).
		Where("user_id = ? AND video_id = ?", user.ID, video.ID).
		Updates(map[string]interface{}{
			"rating": *reqData.Rating,
			"review": reqData.Review,
		}).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save rating!", nil)
	}

	if err := RecomputeVideoRating(database.Database.Db, video.ID); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update video rating!", nil)
	}

	var saved models.VideoProgress
	if err := database.Database.Db.Where("user_id = ? AND video_id = ?", user.ID, video.ID).First(&saved).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load progress!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Rating saved successfully!", saved)
}

// RemoveRating clears the caller's rating for a video and recomputes the
// aggregate from the remaining ratings.
func RemoveRating(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	video, errResp := findAccessibleVideo(c, user)
	if video == nil {
		return errResp
	}

	var record models.VideoProgress
	if err := database.Database.Db.Where("user_id = ? AND video_id = ? AND rating IS NOT NULL", user.ID, video.ID).First(&record).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No rating found for this video!", nil)
	}

	err := database.Database.Db.Model(&record).
		Updates(map[string]interface{}{"rating": nil, "review": ""}).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to remove rating!", nil)
	}

	if err := RecomputeVideoRating(database.Database.Db, video.ID); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update video rating!", nil)
	}

	var saved models.VideoProgress
	if err := database.Database.Db.Where("user_id = ? AND video_id = ?", user.ID, video.ID).First(&saved).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load progress!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Rating removed successfully!", saved)
}

// RecomputeVideoRating does a full recompute of a video's mean rating and
// rating count from all non-null user ratings. Full recompute instead of
// incremental maintenance: edits and removals by any user are reflected
// without decrement bookkeeping, and recomputation commutes under
// concurrent rating writes.
func RecomputeVideoRating(db *gorm.DB, videoID uint) error {
	type aggregate struct {
		Mean  *float64 `gorm:"column:mean"`
		Count int64    `gorm:"column:count"`
	}

	var agg aggregate
	err := db.Model(&models.VideoProgress{}).
		Select("AVG(rating) AS mean, COUNT(rating) AS count").
		Where("video_id = ? AND rating IS NOT NULL", videoID).
		Scan(&agg).Error
	if err != nil {
		return err
	}

	mean := 0.0
	if agg.Mean != nil {
		mean = math.Round(*agg.Mean*100) / 100
	}

	return db.Model(&models.Video{}).Where("id = ?", videoID).
		Updates(map[string]interface{}{"rating": mean, "rating_count": agg.Count}).Error
}

// GetUserStats aggregates the caller's progress records on demand. No
// incremental counters exist anywhere, so there is nothing to drift.
func GetUserStats(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	type statsRow struct {
		Total             int64 `gorm:"column:total"`
		Completed         int64 `gorm:"column:completed"`
		FavoriteCount     int64 `gorm:"column:favorite_count"`
		TotalWatchSeconds int64 `gorm:"column:total_watch_seconds"`
	}

	var stats statsRow
	err := db.Model(&models.VideoProgress{}).
		Select(`COUNT(*) AS total,
			SUM(CASE WHEN is_completed THEN 1 ELSE 0 END) AS completed,
			SUM(CASE WHEN is_favorite THEN 1 ELSE 0 END) AS favorite_count,
			COALESCE(SUM(time_watched_seconds), 0) AS total_watch_seconds`).
		Where("user_id = ?", user.ID).
		Scan(&stats).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch stats!", nil)
	}

	var recentlyWatched []models.VideoProgress
	if err := db.Where("user_id = ? AND last_watched_at IS NOT NULL", user.ID).
		Preload("Video").
		Order("last_watched_at desc").
		Limit(10).
		Find(&recentlyWatched).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch stats!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Stats fetched successfully!", fiber.Map{
		"total":               stats.Total,
		"completed":           stats.Completed,
		"favorite_count":      stats.FavoriteCount,
		"total_watch_seconds": stats.TotalWatchSeconds,
		"recently_watched":    recentlyWatched,
	})
}
