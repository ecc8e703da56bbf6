package orderRoutes

import (
	cartController "porto/controllers/cart"
	orderController "porto/controllers/order"
	"porto/middleware"
	courseValidator "porto/validators/course"
	orderValidator "porto/validators/order"

	"github.com/gofiber/fiber/v2"
)

func SetupOrderRoutes(app *fiber.App) {
	cartGroup := app.Group("/cart")

	cartGroup.Get("/", middleware.AuthMiddleware, cartController.GetCart)
	cartGroup.Post("/:id", middleware.AuthMiddleware, courseValidator.CourseID("id"), cartController.AddToCart)
	cartGroup.Delete("/:id", middleware.AuthMiddleware, courseValidator.CourseID("id"), cartController.RemoveFromCart)

	orderGroup := app.Group("/order")

	orderGroup.Post("/create", orderValidator.CreateOrder(), middleware.AuthMiddleware, orderController.CreateOrder)
	orderGroup.Post("/:id/pay", middleware.AuthMiddleware, orderValidator.OrderID(), orderController.ProcessPayment)
	orderGroup.Get("/list", middleware.AuthMiddleware, orderController.GetOrders)
	orderGroup.Get("/:id", middleware.AuthMiddleware, orderValidator.OrderID(), orderController.GetOrderDetails)
}
