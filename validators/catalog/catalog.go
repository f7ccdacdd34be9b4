package catalogValidator

import (
	"strconv"
	"strings"

	"github.com/smartcoindev389/ana-rey-video-sub000/middleware"
	"github.com/smartcoindev389/ana-rey-video-sub000/models"

	"github.com/gofiber/fiber/v2"
)

func parseIDParam(c *fiber.Ctx, param string) (int, bool) {
	idStr := strings.TrimSpace(c.Params(param))
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// SeriesID validates the :id path parameter for series endpoints
func SeriesID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseIDParam(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Series ID!", nil)
		}
		c.Locals("seriesID", id)
		return c.Next()
	}
}

// VideoID validates the :id path parameter for video endpoints
func VideoID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseIDParam(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Video ID!", nil)
		}
		c.Locals("videoID", id)
		return c.Next()
	}
}

// AccessCheck validates the :contentType/:id pair for the access endpoint
func AccessCheck() fiber.Handler {
	return func(c *fiber.Ctx) error {
		contentType := strings.ToLower(strings.TrimSpace(c.Params("contentType")))
		if contentType != "series" && contentType != "video" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Content type must be 'series' or 'video'!", nil)
		}

		id, ok := parseIDParam(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid content ID!", nil)
		}

		c.Locals("contentType", contentType)
		c.Locals("contentID", id)
		return c.Next()
	}
}

// AdminSeries validates the series create/update payload
func AdminSeries() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title        string `json:"title"`
			Description  string `json:"description"`
			Visibility   string `json:"visibility"`
			ThumbnailURL string `json:"thumbnail_url"`
			Position     int    `json:"position"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if len(strings.TrimSpace(reqData.Title)) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}

		if reqData.Visibility == "" {
			reqData.Visibility = string(models.TierFreemium)
		} else if _, err := models.ParseTier(reqData.Visibility); err != nil {
			errors["visibility"] = "Visibility must be freemium, basic or premium!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSeries", reqData)
		return c.Next()
	}
}

// AdminVideo validates the video create/update payload
func AdminVideo() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			SeriesID        *uint  `json:"series_id"`
			Title           string `json:"title"`
			Description     string `json:"description"`
			Visibility      string `json:"visibility"`
			DurationSeconds int    `json:"duration_seconds"`
			VideoURL        string `json:"video_url"`
			ThumbnailURL    string `json:"thumbnail_url"`
			Position        int    `json:"position"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if len(strings.TrimSpace(reqData.Title)) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}

		if reqData.Visibility == "" {
			reqData.Visibility = string(models.TierFreemium)
		} else if _, err := models.ParseTier(reqData.Visibility); err != nil {
			errors["visibility"] = "Visibility must be freemium, basic or premium!"
		}

		if reqData.DurationSeconds < 0 {
			errors["duration_seconds"] = "Duration cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedVideo", reqData)
		return c.Next()
	}
}

// ContentStatus validates the publish/archive payload
func ContentStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Status string `json:"status"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		status := strings.ToLower(strings.TrimSpace(reqData.Status))
		if status != models.StatusDraft && status != models.StatusPublished && status != models.StatusArchived {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"status": "Status must be draft, published or archived!",
			})
		}

		c.Locals("contentStatus", status)
		return c.Next()
	}
}
