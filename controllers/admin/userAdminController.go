package adminController

import (
	"time"

	"github.com/smartcoindev389/ana-rey-video-sub000/database"
	"github.com/smartcoindev389/ana-rey-video-sub000/middleware"
	"github.com/smartcoindev389/ana-rey-video-sub000/models"

	"github.com/gofiber/fiber/v2"
)

// AdminListUsers returns users with their stored and effective tiers
func AdminListUsers(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&models.User{}).Where("is_deleted = ?", false)

	var total int64
	db.Count(&total)

	var users []models.User
	if err := db.Order("created_at desc").Offset(offset).Limit(limit).Find(&users).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch users!", nil)
	}

	now := time.Now()
	type userRow struct {
		models.User
		EffectiveTier models.Tier `json:"effective_tier"`
	}
	rows := make([]userRow, len(users))
	for i, u := range users {
		u.Password = ""
		rows[i] = userRow{User: u, EffectiveTier: u.EffectiveTier(now)}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Users fetched successfully!", fiber.Map{
		"users": rows,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// AdminSuspendUser blocks a user from logging in
func AdminSuspendUser(c *fiber.Ctx) error {
	targetID := c.Locals("targetUserID").(int)

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", targetID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	if err := database.Database.Db.Model(&user).Update("is_suspended", true).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to suspend user!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User suspended successfully!", nil)
}

// AdminActivateUser lifts a suspension
func AdminActivateUser(c *fiber.Ctx) error {
	targetID := c.Locals("targetUserID").(int)

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", targetID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	if err := database.Database.Db.Model(&user).Update("is_suspended", false).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to activate user!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User activated successfully!", nil)
}
