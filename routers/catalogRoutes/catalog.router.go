package catalogRoutes

import (
	accessController "github.com/smartcoindev389/ana-rey-video-sub000/controllers/access"
	catalogController "github.com/smartcoindev389/ana-rey-video-sub000/controllers/catalog"
	"github.com/smartcoindev389/ana-rey-video-sub000/middleware"
	catalogValidator "github.com/smartcoindev389/ana-rey-video-sub000/validators/catalog"

	"github.com/gofiber/fiber/v2"
)

// SetupCatalogRoutes sets up browsing and access-check routes. These accept
// anonymous callers, who are evaluated at the freemium tier.
func SetupCatalogRoutes(app *fiber.App) {
	seriesGroup := app.Group("/series")
	seriesGroup.Get("/list", middleware.OptionalJWTMiddleware, catalogController.GetSeriesList)
	seriesGroup.Get("/:id", middleware.OptionalJWTMiddleware, catalogValidator.SeriesID(), catalogController.GetSeriesDetails)

	videoGroup := app.Group("/video")
	videoGroup.Get("/:id", middleware.OptionalJWTMiddleware, catalogValidator.VideoID(), catalogController.GetVideoDetails)

	app.Get("/access-check/:contentType/:id", middleware.OptionalJWTMiddleware, catalogValidator.AccessCheck(), accessController.CheckAccess)
}
