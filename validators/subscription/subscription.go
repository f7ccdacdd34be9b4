package subscriptionValidator

import (
	"strconv"
	"strings"
	"time"

	"github.com/smartcoindev389/ana-rey-video-sub000/middleware"
	"github.com/smartcoindev389/ana-rey-video-sub000/models"

	"github.com/gofiber/fiber/v2"
)

// Upgrade validates a self-service subscription upgrade
func Upgrade() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Tier      string `json:"tier"`
			Period    string `json:"period"`
			PaymentID string `json:"payment_id"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		tier, err := models.ParseTier(reqData.Tier)
		if err != nil || tier == models.TierFreemium {
			errors["tier"] = "Tier must be basic or premium!"
		}

		if reqData.Period == "" {
			reqData.Period = models.PeriodMonthly
		} else if reqData.Period != models.PeriodMonthly && reqData.Period != models.PeriodYearly {
			errors["period"] = "Period must be MONTHLY or YEARLY!"
		}

		if strings.TrimSpace(reqData.PaymentID) == "" {
			errors["payment_id"] = "Payment ID is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedUpgrade", reqData)
		return c.Next()
	}
}

// Grant validates an admin subscription grant
func Grant() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			UserID    uint       `json:"user_id"`
			Tier      string     `json:"tier"`
			ExpiresAt *time.Time `json:"expires_at"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.UserID == 0 {
			errors["user_id"] = "User ID is required!"
		}

		if _, err := models.ParseTier(reqData.Tier); err != nil {
			errors["tier"] = "Tier must be freemium, basic or premium!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedGrant", reqData)
		return c.Next()
	}
}

// TargetUserID validates the :id path parameter on admin user endpoints
func TargetUserID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid User ID!", nil)
		}
		c.Locals("targetUserID", id)
		return c.Next()
	}
}
