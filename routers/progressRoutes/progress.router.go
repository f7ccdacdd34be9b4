package progressRoutes

import (
	progressController "github.com/smartcoindev389/ana-rey-video-sub000/controllers/progress"
	"github.com/smartcoindev389/ana-rey-video-sub000/middleware"
	progressValidator "github.com/smartcoindev389/ana-rey-video-sub000/validators/progress"

	"github.com/gofiber/fiber/v2"
)

// SetupProgressRoutes sets up per-user watch progress routes
func SetupProgressRoutes(app *fiber.App) {
	progressGroup := app.Group("/progress")

	progressGroup.Get("/stats", middleware.JWTMiddleware, progressController.GetUserStats)
	progressGroup.Post("/:videoId", middleware.JWTMiddleware, progressValidator.VideoID(), progressValidator.RecordProgress(), progressController.RecordProgress)
	progressGroup.Post("/:videoId/favorite", middleware.JWTMiddleware, progressValidator.VideoID(), progressController.ToggleFavorite)
	progressGroup.Post("/:videoId/rate", middleware.JWTMiddleware, progressValidator.VideoID(), progressValidator.RateVideo(), progressController.RateVideo)
	progressGroup.Delete("/:videoId/rate", middleware.JWTMiddleware, progressValidator.VideoID(), progressController.RemoveRating)
}
