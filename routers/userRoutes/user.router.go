package userRoutes

import (
	authController "porto/controllers/auth"
	courseController "porto/controllers/course"
	"porto/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/user")

	userGroup.Get("/profile", middleware.AuthMiddleware, authController.GetProfile)
	userGroup.Get("/enrollments", middleware.AuthMiddleware, courseController.GetUserEnrollmentsList)
	userGroup.Get("/certificates", middleware.AuthMiddleware, courseController.GetUserCertificates)
}
