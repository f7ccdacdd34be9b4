package adminRoutes

import (
	adminController "github.com/smartcoindev389/ana-rey-video-sub000/controllers/admin"
	catalogController "github.com/smartcoindev389/ana-rey-video-sub000/controllers/catalog"
	subscriptionController "github.com/smartcoindev389/ana-rey-video-sub000/controllers/subscription"
	"github.com/smartcoindev389/ana-rey-video-sub000/middleware"
	catalogValidator "github.com/smartcoindev389/ana-rey-video-sub000/validators/catalog"
	subscriptionValidator "github.com/smartcoindev389/ana-rey-video-sub000/validators/subscription"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminRoutes sets up catalog and user management routes for admins
func SetupAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"))

	// Series management
	adminGroup.Post("/series", catalogValidator.AdminSeries(), catalogController.AdminCreateSeries)
	adminGroup.Put("/series/:id", catalogValidator.SeriesID(), catalogValidator.AdminSeries(), catalogController.AdminUpdateSeries)
	adminGroup.Patch("/series/:id/status", catalogValidator.SeriesID(), catalogValidator.ContentStatus(), catalogController.AdminSetSeriesStatus)
	adminGroup.Delete("/series/:id", catalogValidator.SeriesID(), catalogController.AdminDeleteSeries)

	// Video management
	adminGroup.Post("/video", catalogValidator.AdminVideo(), catalogController.AdminCreateVideo)
	adminGroup.Put("/video/:id", catalogValidator.VideoID(), catalogValidator.AdminVideo(), catalogController.AdminUpdateVideo)
	adminGroup.Patch("/video/:id/status", catalogValidator.VideoID(), catalogValidator.ContentStatus(), catalogController.AdminSetVideoStatus)
	adminGroup.Delete("/video/:id", catalogValidator.VideoID(), catalogController.AdminDeleteVideo)

	// User management
	adminGroup.Get("/users", adminController.AdminListUsers)
	adminGroup.Patch("/users/:id/suspend", subscriptionValidator.TargetUserID(), adminController.AdminSuspendUser)
	adminGroup.Patch("/users/:id/activate", subscriptionValidator.TargetUserID(), adminController.AdminActivateUser)

	// Subscription grants
	adminGroup.Post("/subscription/grant", subscriptionValidator.Grant(), subscriptionController.AdminGrantSubscription)
}
