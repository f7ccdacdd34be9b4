package accessController

import (
	"time"

	"github.com/smartcoindev389/ana-rey-video-sub000/database"
	"github.com/smartcoindev389/ana-rey-video-sub000/middleware"
	"github.com/smartcoindev389/ana-rey-video-sub000/models"

	"github.com/gofiber/fiber/v2"
)

// optionalUser resolves the caller when a token was presented; anonymous
// callers come back nil and evaluate as freemium.
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

// CheckAccess evaluates whether the caller may access a series or video.
// A missing item is a 404, never a denial: the two outcomes must stay
// distinct so clients can tell "does not exist" from "upgrade required".
func CheckAccess(c *fiber.Ctx) error {
	contentType := c.Locals("contentType").(string)
	contentID := c.Locals("contentID").(int)

	var item models.ContentItem
	switch contentType {
	case "series":
		var series models.Series
		if err := database.Database.Db.Where("id = ? AND is_deleted = ?", contentID, false).First(&series).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Series not found!", nil)
		}
		item = series
	case "video":
		var video models.Video
		if err := database.Database.Db.Where("id = ? AND is_deleted = ?", contentID, false).First(&video).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Video not found!", nil)
		}
		item = video
	}

	user := optionalUser(c)
	now := time.Now()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Access evaluated successfully!", fiber.Map{
		"accessible":        models.IsAccessible(user, item, now),
		"visibility":        item.ContentVisibility(),
		"user_subscription": user.EffectiveTier(now),
	})
}
