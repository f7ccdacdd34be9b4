package authRoutes

import (
	authController "github.com/smartcoindev389/ana-rey-video-sub000/controllers/auth"
	authValidator "github.com/smartcoindev389/ana-rey-video-sub000/validators/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupAuthRoutes sets up registration and login routes
func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/signup", authValidator.Signup(), authController.Signup)
	authGroup.Post("/login", authValidator.Login(), authController.Login)
}
