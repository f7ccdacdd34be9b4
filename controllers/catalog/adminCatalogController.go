package catalogController

import (
	"github.com/smartcoindev389/ana-rey-video-sub000/database"
	"github.com/smartcoindev389/ana-rey-video-sub000/middleware"
	"github.com/smartcoindev389/ana-rey-video-sub000/models"

	"github.com/gofiber/fiber/v2"
)

// adminUser returns the user resolved by the role middleware
func adminUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals("currentUser").(*models.User)
	return user, ok
}

// AdminCreateSeries creates a new series in draft status. Visibility is set
// explicitly by the author and never changes implicitly afterwards.
func AdminCreateSeries(c *fiber.Ctx) error {
	admin, ok := adminUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedSeries").(*struct {
		Title        string `json:"title"`
		Description  string `json:"description"`
		Visibility   string `json:"visibility"`
		ThumbnailURL string `json:"thumbnail_url"`
		Position     int    `json:"position"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	series := models.Series{
		Title:        reqData.Title,
		Description:  reqData.Description,
		InstructorID: admin.ID,
		Visibility:   models.Tier(reqData.Visibility),
		Status:       models.StatusDraft,
		ThumbnailURL: reqData.ThumbnailURL,
		Position:     reqData.Position,
	}

	if err := database.Database.Db.Create(&series).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create series!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Series created successfully!", series)
}

// AdminUpdateSeries updates series metadata and visibility
func AdminUpdateSeries(c *fiber.Ctx) error {
	seriesID := c.Locals("seriesID").(int)

	var series models.Series
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", seriesID, false).First(&series).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Series not found!", nil)
	}

	reqData, ok := c.Locals("validatedSeries").(*struct {
		Title        string `json:"title"`
		Description  string `json:"description"`
		Visibility   string `json:"visibility"`
		ThumbnailURL string `json:"thumbnail_url"`
		Position     int    `json:"position"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	series.Title = reqData.Title
	series.Description = reqData.Description
	series.Visibility = models.Tier(reqData.Visibility)
	series.ThumbnailURL = reqData.ThumbnailURL
	series.Position = reqData.Position

	if err := database.Database.Db.Save(&series).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update series!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Series updated successfully!", series)
}

// AdminSetSeriesStatus publishes or archives a series
func AdminSetSeriesStatus(c *fiber.Ctx) error {
	seriesID := c.Locals("seriesID").(int)
	status := c.Locals("contentStatus").(string)

	var series models.Series
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", seriesID, false).First(&series).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Series not found!", nil)
	}

	if err := database.Database.Db.Model(&series).Update("status", status).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update series status!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Series status updated successfully!", series)
}

// AdminDeleteSeries soft-deletes a series
func AdminDeleteSeries(c *fiber.Ctx) error {
	seriesID := c.Locals("seriesID").(int)

	var series models.Series
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", seriesID, false).First(&series).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Series not found!", nil)
	}

	if err := database.Database.Db.Model(&series).Update("is_deleted", true).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete series!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Series deleted successfully!", nil)
}

// AdminCreateVideo creates a new video in draft status
func AdminCreateVideo(c *fiber.Ctx) error {
	admin, ok := adminUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedVideo").(*struct {
		SeriesID        *uint  `json:"series_id"`
		Title           string `json:"title"`
		Description     string `json:"description"`
		Visibility      string `json:"visibility"`
		DurationSeconds int    `json:"duration_seconds"`
		VideoURL        string `json:"video_url"`
		ThumbnailURL    string `json:"thumbnail_url"`
		Position        int    `json:"position"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.SeriesID != nil {
		var series models.Series
		if err := database.Database.Db.Where("id = ? AND is_deleted = ?", *reqData.SeriesID, false).First(&series).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Series not found!", nil)
		}
	}

	video := models.Video{
		SeriesID:        reqData.SeriesID,
		InstructorID:    admin.ID,
		Title:           reqData.Title,
		Description:     reqData.Description,
		Visibility:      models.Tier(reqData.Visibility),
		Status:          models.StatusDraft,
		DurationSeconds: reqData.DurationSeconds,
		VideoURL:        reqData.VideoURL,
		ThumbnailURL:    reqData.ThumbnailURL,
		Position:        reqData.Position,
	}

	if err := database.Database.Db.Create(&video).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create video!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Video created successfully!", video)
}

// AdminUpdateVideo updates video metadata and visibility
func AdminUpdateVideo(c *fiber.Ctx) error {
	videoID := c.Locals("videoID").(int)

	var video models.Video
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", videoID, false).First(&video).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Video not found!", nil)
	}

	reqData, ok := c.Locals("validatedVideo").(*struct {
		SeriesID        *uint  `json:"series_id"`
		Title           string `json:"title"`
		Description     string `json:"description"`
		Visibility      string `json:"visibility"`
		DurationSeconds int    `json:"duration_seconds"`
		VideoURL        string `json:"video_url"`
		ThumbnailURL    string `json:"thumbnail_url"`
		Position        int    `json:"position"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	video.SeriesID = reqData.SeriesID
	video.Title = reqData.Title
	video.Description = reqData.Description
	video.Visibility = models.Tier(reqData.Visibility)
	video.DurationSeconds = reqData.DurationSeconds
	video.VideoURL = reqData.VideoURL
	video.ThumbnailURL = reqData.ThumbnailURL
	video.Position = reqData.Position

	if err := database.Database.Db.Save(&video).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update video!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Video updated successfully!", video)
}

// AdminSetVideoStatus publishes or archives a video
func AdminSetVideoStatus(c *fiber.Ctx) error {
	videoID := c.Locals("videoID").(int)
	status := c.Locals("contentStatus").(string)

	var video models.Video
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", videoID, false).First(&video).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Video not found!", nil)
	}

	if err := database.Database.Db.Model(&video).Update("status", status).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update video status!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Video status updated successfully!", video)
}

// AdminDeleteVideo soft-deletes a video
func AdminDeleteVideo(c *fiber.Ctx) error {
	videoID := c.Locals("videoID").(int)

	var video models.Video
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", videoID, false).First(&video).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Video not found!", nil)
	}

	if err := database.Database.Db.Model(&video).Update("is_deleted", true).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete video!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Video deleted successfully!", nil)
}
