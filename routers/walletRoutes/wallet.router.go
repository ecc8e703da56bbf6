package walletRoutes

import (
	walletController "porto/controllers/wallet"
	"porto/middleware"
	walletValidator "porto/validators/wallet"

	"github.com/gofiber/fiber/v2"
)

func SetupWalletRoutes(app *fiber.App) {
	walletGroup := app.Group("/wallet")

	// User routes
	walletGroup.Get("/balance", middleware.AuthMiddleware, walletController.GetWalletBalance)
	walletGroup.Post("/deposit", walletValidator.Deposit(), middleware.AuthMiddleware, walletController.DepositToWallet)
	walletGroup.Get("/history", middleware.AuthMiddleware, walletController.GetWalletHistory)

	// Admin routes
	adminGroup := walletGroup.Group("/admin", middleware.AuthMiddleware, middleware.RequireRole("ADMIN"))
	adminGroup.Get("/stats", walletController.GetWalletStats)
	adminGroup.Post("/add-balance", walletValidator.AddBalance(), walletController.AddBalance)
	adminGroup.Post("/deduct-balance", walletValidator.DeductBalance(), walletController.DeductBalance)
	adminGroup.Get("/user-balance", walletController.GetUserBalance)
	adminGroup.Get("/user-history", walletController.GetUserHistory)
}
