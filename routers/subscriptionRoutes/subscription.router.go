package subscriptionRoutes

import (
	subscriptionController "github.com/smartcoindev389/ana-rey-video-sub000/controllers/subscription"
	"github.com/smartcoindev389/ana-rey-video-sub000/middleware"
	subscriptionValidator "github.com/smartcoindev389/ana-rey-video-sub000/validators/subscription"

	"github.com/gofiber/fiber/v2"
)

// SetupSubscriptionRoutes sets up subscription self-service routes
func SetupSubscriptionRoutes(app *fiber.App) {
	subGroup := app.Group("/subscription")

	subGroup.Get("/", middleware.JWTMiddleware, subscriptionController.GetSubscription)
	subGroup.Post("/upgrade", middleware.JWTMiddleware, subscriptionValidator.Upgrade(), subscriptionController.UpgradeSubscription)
}
