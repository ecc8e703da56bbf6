package authRoutes

import (
	authController "porto/controllers/auth"
	"porto/middleware"
	authValidator "porto/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/signup", authValidator.Signup(), authController.Signup)
	authGroup.Post("/login", authValidator.Login(), authController.Login)
	authGroup.Post("/logout", middleware.AuthMiddleware, authController.Logout)
}
