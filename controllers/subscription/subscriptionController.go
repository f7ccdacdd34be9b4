package subscriptionController

import (
	"log"
	"time"

	"github.com/smartcoindev389/ana-rey-video-sub000/database"
	"github.com/smartcoindev389/ana-rey-video-sub000/middleware"
	"github.com/smartcoindev389/ana-rey-video-sub000/models"
	"github.com/smartcoindev389/ana-rey-video-sub000/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// GetSubscription returns the caller's stored subscription plus the
// effective tier used for access decisions. The two differ when the
// subscription has lapsed: the stored type is kept so renewal restores it.
func GetSubscription(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Subscription fetched successfully!", fiber.Map{
		"subscription_type":       user.SubscriptionType,
		"subscription_started_at": user.SubscriptionStartedAt,
		"subscription_expires_at": user.SubscriptionExpiresAt,
		"effective_tier":          user.EffectiveTier(time.Now()),
	})
}

// UpgradeSubscription applies a settled payment to the caller's
// subscription. The payment itself was decided at the gateway; this only
// reads the settled fact, records it and moves the tier/expiry.
func UpgradeSubscription(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	reqData, ok := c.Locals("validatedUpgrade").(*struct {
		Tier      string `json:"tier"`
		Period    string `json:"period"`
		PaymentID string `json:"payment_id"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	payment, err := utils.VerifyPaymentSettled(reqData.PaymentID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Payment could not be verified!", nil)
	}

	now := time.Now()
	expiresAt := now.AddDate(0, 1, 0)
	if reqData.Period == models.PeriodYearly {
		expiresAt = now.AddDate(1, 0, 0)
	}

	tx := database.Database.Db.Begin()

	transaction := models.SubscriptionTransaction{
		UserID:    user.ID,
		Reference: uuid.NewString(),
		PaymentID: payment.ID,
		Tier:      models.Tier(reqData.Tier),
		Period:    reqData.Period,
		Amount:    payment.Amount,
		ExpiresAt: &expiresAt,
	}
	if err := tx.Create(&transaction).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record transaction!", nil)
	}

	if err := tx.Model(&user).Updates(map[string]interface{}{
		"subscription_type":       reqData.Tier,
		"subscription_started_at": now,
		"subscription_expires_at": expiresAt,
		"expiry_reminder_sent":    false,
	}).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to upgrade subscription!", nil)
	}

	tx.Commit()

	go func() {
		if err := utils.SendSubscriptionUpgradedEmail(user.Email, user.Name, reqData.Tier, &expiresAt); err != nil {
			log.Printf("Error sending upgrade email to %s: %v", user.Email, err)
		}
	}()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Subscription upgraded successfully!", fiber.Map{
		"subscription_type":       reqData.Tier,
		"subscription_expires_at": expiresAt,
		"transaction":             transaction,
	})
}

// AdminGrantSubscription lets an administrator set a user's subscription
// directly, with an optional expiry. A nil expiry means non-expiring.
func AdminGrantSubscription(c *fiber.Ctx) error {
	admin, ok := c.Locals("currentUser").(*models.User)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedGrant").(*struct {
		UserID    uint       `json:"user_id"`
		Tier      string     `json:"tier"`
		ExpiresAt *time.Time `json:"expires_at"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var target models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", reqData.UserID, false).First(&target).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	now := time.Now()
	tx := database.Database.Db.Begin()

	transaction := models.SubscriptionTransaction{
		UserID:    target.ID,
		Reference: uuid.NewString(),
		Tier:      models.Tier(reqData.Tier),
		ExpiresAt: reqData.ExpiresAt,
		GrantedBy: &admin.ID,
	}
	if err := tx.Create(&transaction).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record transaction!", nil)
	}

	if err := tx.Model(&target).Updates(map[string]interface{}{
		"subscription_type":       reqData.Tier,
		"subscription_started_at": now,
		"subscription_expires_at": reqData.ExpiresAt,
		"expiry_reminder_sent":    false,
	}).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to grant subscription!", nil)
	}

	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Subscription granted successfully!", transaction)
}
