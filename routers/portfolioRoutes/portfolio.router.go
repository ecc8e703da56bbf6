package portfolioRoutes

import (
	portfolioController "porto/controllers/portfolio"
	"porto/middleware"
	portfolioValidator "porto/validators/portfolio"

	"github.com/gofiber/fiber/v2"
)

func SetupPortfolioRoutes(app *fiber.App) {
	// Public content
	app.Get("/projects", portfolioController.GetProjects)
	app.Get("/skills", portfolioController.GetSkills)
	app.Get("/services", portfolioController.GetServices)
	app.Get("/blog", portfolioController.GetBlogPosts)
	app.Get("/blog/:slug", portfolioController.GetBlogPostBySlug)
	app.Post("/quotation", portfolioValidator.Quotation(), portfolioController.SubmitQuotation)

	// Admin content management
	adminGroup := app.Group("/admin", middleware.AuthMiddleware, middleware.RequireRole("ADMIN"))

	adminGroup.Post("/projects", portfolioValidator.Project(), portfolioController.CreateProject)
	adminGroup.Put("/projects/:id", portfolioValidator.EntityID(), portfolioValidator.Project(), portfolioController.UpdateProject)
	adminGroup.Delete("/projects/:id", portfolioValidator.EntityID(), portfolioController.DeleteProject)

	adminGroup.Post("/skills", portfolioValidator.Skill(), portfolioController.CreateSkill)
	adminGroup.Put("/skills/:id", portfolioValidator.EntityID(), portfolioValidator.Skill(), portfolioController.UpdateSkill)
	adminGroup.Delete("/skills/:id", portfolioValidator.EntityID(), portfolioController.DeleteSkill)

	adminGroup.Post("/services", portfolioValidator.Service(), portfolioController.CreateService)
	adminGroup.Put("/services/:id", portfolioValidator.EntityID(), portfolioValidator.Service(), portfolioController.UpdateService)
	adminGroup.Delete("/services/:id", portfolioValidator.EntityID(), portfolioController.DeleteService)

	adminGroup.Post("/blog", portfolioValidator.BlogPost(), portfolioController.CreateBlogPost)
	adminGroup.Put("/blog/:id", portfolioValidator.EntityID(), portfolioValidator.BlogPost(), portfolioController.UpdateBlogPost)
	adminGroup.Delete("/blog/:id", portfolioValidator.EntityID(), portfolioController.DeleteBlogPost)

	adminGroup.Get("/quotations", portfolioController.GetQuotations)
	adminGroup.Put("/quotations/:id", portfolioValidator.EntityID(), portfolioValidator.QuotationStatus(), portfolioController.UpdateQuotationStatus)
}
