package courseRoutes

import (
	courseController "porto/controllers/course"
	"porto/middleware"
	courseValidator "porto/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminCourseRoutes sets up course management routes
func SetupAdminCourseRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin/course", middleware.AuthMiddleware, middleware.RequireRole("ADMIN"))

	adminGroup.Get("/list", courseController.GetAllCoursesAdmin)
	adminGroup.Post("/create", courseValidator.CreateCourse(), courseController.CreateCourse)
	adminGroup.Put("/:id", courseValidator.CourseID("id"), courseValidator.UpdateCourse(), courseController.UpdateCourse)
	adminGroup.Post("/:id/lesson", courseValidator.CourseID("id"), courseValidator.CreateLesson(), courseController.CreateLesson)
	adminGroup.Put("/:id/lesson/:lesson_id", courseValidator.CourseID("id"), courseValidator.UpdateLesson(), courseController.UpdateLesson)
}
