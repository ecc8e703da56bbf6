package main

import (
	"porto/config"
	"porto/database"
	authRoutes "porto/routers/authRoutes"
	courseRoutes "porto/routers/courseRoutes"
	orderRoutes "porto/routers/orderRoutes"
	portfolioRoutes "porto/routers/portfolioRoutes"
	userRoutes "porto/routers/userRoutes"
	walletRoutes "porto/routers/walletRoutes"
	"porto/utils"

	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",        // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve static files from the public folder
	app.Static("/", "./public")

	authRoutes.SetupAuthRoutes(app)
	userRoutes.SetupUserRoutes(app)
	walletRoutes.SetupWalletRoutes(app)
	orderRoutes.SetupOrderRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	courseRoutes.SetupAdminCourseRoutes(app)
	portfolioRoutes.SetupPortfolioRoutes(app)

	// Purge expired sessions once a day
	utils.StartSessionCleaner()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
