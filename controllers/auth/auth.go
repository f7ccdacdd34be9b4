package authController

import (
	"log"
	"time"

	"github.com/smartcoindev389/ana-rey-video-sub000/config"
	"github.com/smartcoindev389/ana-rey-video-sub000/database"
	"github.com/smartcoindev389/ana-rey-video-sub000/middleware"
	"github.com/smartcoindev389/ana-rey-video-sub000/models"
	"github.com/smartcoindev389/ana-rey-video-sub000/utils"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

func Signup(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedUser").(*struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Name     string `json:"name"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// Check if email already exists
	if err := db.Where("email = ?", reqData.Email).First(&models.User{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already registered!", nil)
	}

	// Hash Password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	// New accounts start on the freemium plan
	newUser := models.User{
		Name:             reqData.Name,
		Email:            reqData.Email,
		Password:         string(hashedPassword),
		SubscriptionType: models.TierFreemium,
	}

	if err := db.Create(&newUser).Error; err != nil {
		log.Printf("Error saving user to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to Signup user!", nil)
	}

	go func() {
		if err := utils.SendWelcomeEmail(newUser.Email, newUser.Name); err != nil {
			log.Printf("Error sending welcome email to %s: %v", newUser.Email, err)
		}
	}()

	// Clean Response
	newUser.Password = ""

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User registered successfully.", newUser)
}

func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("email = ? AND is_deleted = ?", reqData.Email, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid email or password!", nil)
	}

	if user.IsSuspended {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Your account has been suspended!", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
		database.Database.Db.Model(&user).Update("failed_login_attempts", user.FailedLoginAttempts+1)
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid email or password!", nil)
	}

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	if err != nil {
		log.Printf("Error generating JWT: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to login!", nil)
	}

	now := time.Now()
	database.Database.Db.Model(&user).Updates(map[string]interface{}{
		"last_login":            now,
		"failed_login_attempts": 0,
	})

	user.Password = ""

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful!", fiber.Map{
		"token": token,
		"user":  user,
	})
}
