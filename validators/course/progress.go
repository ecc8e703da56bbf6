package courseValidator

import (
	"strconv"
	"strings"

	"porto/middleware"

	"github.com/gofiber/fiber/v2"
)

// LessonProgress validates the lesson progress path parameters and body
func LessonProgress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseIDStr := strings.TrimSpace(c.Params("course_id"))
		lessonIDStr := strings.TrimSpace(c.Params("lesson_id"))

		courseID, err := strconv.Atoi(courseIDStr)
		if err != nil || courseID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		lessonID, err := strconv.Atoi(lessonIDStr)
		if err != nil || lessonID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Lesson ID!", nil)
		}

		reqData := new(struct {
			WatchDuration *int  `json:"watchDuration"`
			LastPosition  *int  `json:"lastPosition"`
			Completed     *bool `json:"completed"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.WatchDuration != nil && *reqData.WatchDuration < 0 {
			errors["watchDuration"] = "Watch duration cannot be negative!"
		}
		if reqData.LastPosition != nil && *reqData.LastPosition < 0 {
			errors["lastPosition"] = "Last position cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("courseID", courseID)
		c.Locals("lessonID", lessonID)
		c.Locals("validatedLessonProgress", reqData)
		return c.Next()
	}
}
