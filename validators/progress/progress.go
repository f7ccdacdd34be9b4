package progressValidator

import (
	"strconv"
	"strings"

	"github.com/smartcoindev389/ana-rey-video-sub000/middleware"

	"github.com/gofiber/fiber/v2"
)

// VideoID validates the :videoId path parameter
func VideoID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		videoIDStr := strings.TrimSpace(c.Params("videoId"))
		if videoIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Video ID is required!", nil)
		}

		videoID, err := strconv.Atoi(videoIDStr)
		if err != nil || videoID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Video ID!", nil)
		}

		c.Locals("videoID", videoID)
		return c.Next()
	}
}

// RecordProgress validates a playback progress report. Raw input is never
// coerced: a negative watched time or non-positive duration is a client bug
// and must surface as a validation error, not be clamped away.
func RecordProgress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			TimeWatched        *int  `json:"time_watched"`
			VideoDuration      *int  `json:"video_duration"`
			ProgressPercentage *int  `json:"progress_percentage"`
			IsCompleted        *bool `json:"is_completed"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.TimeWatched == nil {
			errors["time_watched"] = "Watched time is required!"
		} else if *reqData.TimeWatched < 0 {
			errors["time_watched"] = "Watched time cannot be negative!"
		}

		if reqData.VideoDuration == nil {
			errors["video_duration"] = "Video duration is required!"
		} else if *reqData.VideoDuration <= 0 {
			errors["video_duration"] = "Video duration must be greater than 0!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProgress", reqData)
		return c.Next()
	}
}

// RateVideo validates a rating submission
func RateVideo() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Rating *int   `json:"rating"`
			Review string `json:"review"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Rating == nil {
			errors["rating"] = "Rating is required!"
		} else if *reqData.Rating < 1 || *reqData.Rating > 5 {
			errors["rating"] = "Rating must be between 1 and 5!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedRating", reqData)
		return c.Next()
	}
}
