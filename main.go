package main

import (
	"log"

	"github.com/smartcoindev389/ana-rey-video-sub000/config"
	"github.com/smartcoindev389/ana-rey-video-sub000/database"
	adminRoutes "github.com/smartcoindev389/ana-rey-video-sub000/routers/adminRoutes"
	authRoutes "github.com/smartcoindev389/ana-rey-video-sub000/routers/authRoutes"
	catalogRoutes "github.com/smartcoindev389/ana-rey-video-sub000/routers/catalogRoutes"
	progressRoutes "github.com/smartcoindev389/ana-rey-video-sub000/routers/progressRoutes"
	subscriptionRoutes "github.com/smartcoindev389/ana-rey-video-sub000/routers/subscriptionRoutes"
	"github.com/smartcoindev389/ana-rey-video-sub000/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()
	utils.InitializeSubscriptionScheduler()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",    // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization",   // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app)
	catalogRoutes.SetupCatalogRoutes(app)
	progressRoutes.SetupProgressRoutes(app)
	subscriptionRoutes.SetupSubscriptionRoutes(app)
	adminRoutes.SetupAdminRoutes(app)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
