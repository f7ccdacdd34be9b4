package catalogController

import (
	"time"

	"github.com/smartcoindev389/ana-rey-video-sub000/database"
	"github.com/smartcoindev389/ana-rey-video-sub000/middleware"
	"github.com/smartcoindev389/ana-rey-video-sub000/models"

	"github.com/gofiber/fiber/v2"
)

// optionalUser resolves the caller when a token was presented
func optionalUser(c *fiber.Ctx) *models.User {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return nil
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return nil
	}
	return &user
}

// GetSeriesList returns the series visible to the caller. The visibility
// filter is the same predicate the single-item check uses, translated into
// a WHERE clause, so the list can never show an item the detail endpoint
// would deny.
func GetSeriesList(c *fiber.Ctx) error {
	user := optionalUser(c)
	now := time.Now()

	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&models.Series{}).
		Where("is_deleted = ?", false).
		Scopes(models.VisibleTo(user, now))

	var total int64
	db.Count(&total)

	var seriesList []models.Series
	if err := db.Order("position asc, created_at desc").Offset(offset).Limit(limit).Find(&seriesList).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch series!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Series fetched successfully!", fiber.Map{
		"series": seriesList,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// GetSeriesDetails returns one series and the videos in it the caller may
// see. 404 for a missing series, 403 with the required tier when the
// caller's subscription is too low.
func GetSeriesDetails(c *fiber.Ctx) error {
	user := optionalUser(c)
	now := time.Now()
	seriesID := c.Locals("seriesID").(int)

	var series models.Series
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", seriesID, false).First(&series).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Series not found!", nil)
	}

	if !models.IsAccessible(user, series, now) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "This series requires a higher subscription!", fiber.Map{
			"required_tier":     series.Visibility,
			"user_subscription": user.EffectiveTier(now),
		})
	}

	var videos []models.Video
	if err := database.Database.Db.Model(&models.Video{}).
		Where("series_id = ? AND is_deleted = ?", series.ID, false).
		Scopes(models.VisibleTo(user, now)).
		Order("position asc, created_at asc").
		Find(&videos).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch videos!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Series details fetched successfully!", fiber.Map{
		"series": series,
		"videos": videos,
	})
}

// GetVideoDetails returns one video, plus the caller's progress record for
// it when one exists.
func GetVideoDetails(c *fiber.Ctx) error {
	user := optionalUser(c)
	now := time.Now()
	videoID := c.Locals("videoID").(int)

	var video models.Video
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", videoID, false).First(&video).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Video not found!", nil)
	}

	if !models.IsAccessible(user, video, now) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "This video requires a higher subscription!", fiber.Map{
			"required_tier":     video.Visibility,
			"user_subscription": user.EffectiveTier(now),
		})
	}

	response := fiber.Map{"video": video}

	if user != nil {
		var progress models.VideoProgress
		if err := database.Database.Db.Where("user_id = ? AND video_id = ?", user.ID, video.ID).First(&progress).Error; err == nil {
			response["progress"] = progress
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Video details fetched successfully!", response)
}
