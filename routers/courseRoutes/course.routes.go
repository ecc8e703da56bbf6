package courseRoutes

import (
	courseController "porto/controllers/course"
	"porto/middleware"
	courseValidator "porto/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up all user-facing course routes
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/course")

	// Course listing and details (published courses)
	courseGroup.Get("/list", courseController.GetAllCourses)
	courseGroup.Get("/:id", middleware.AuthMiddleware, courseValidator.CourseID("id"), courseController.GetCourseDetails)

	// Progress tracking
	courseGroup.Post("/:course_id/lesson/:lesson_id/progress", middleware.AuthMiddleware, courseValidator.LessonProgress(), courseController.UpdateLessonProgress)
	courseGroup.Get("/:course_id/progress", middleware.AuthMiddleware, courseValidator.CourseID("course_id"), courseController.GetCourseProgress)

	// Public certificate verification
	app.Get("/certificate/verify/:code", courseController.VerifyCertificate)
}
