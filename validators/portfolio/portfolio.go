package portfolioValidator

import (
	"strconv"
	"strings"

	"porto/middleware"
	"porto/models"

	"github.com/gofiber/fiber/v2"
)

// EntityID validates a numeric ID path parameter shared by the content routes
func EntityID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		if idStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "ID is required!", nil)
		}

		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid ID!", nil)
		}

		c.Locals("entityID", id)
		return c.Next()
	}
}

// Project validates a project create/update request
func Project() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(models.Project)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProject", reqData)
		return c.Next()
	}
}

// Skill validates a skill create/update request
func Skill() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(models.Skill)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Name) == "" {
			errors["name"] = "Name is required!"
		}
		if reqData.Level < 0 || reqData.Level > 100 {
			errors["level"] = "Level must be between 0 and 100!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSkill", reqData)
		return c.Next()
	}
}

// BlogPost validates a blog post create/update request
func BlogPost() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title       string `json:"title"`
			Excerpt     string `json:"excerpt"`
			Content     string `json:"content"`
			CoverURL    string `json:"cover_url"`
			Tags        string `json:"tags"`
			IsPublished bool   `json:"is_published"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}
		if strings.TrimSpace(reqData.Content) == "" {
			errors["content"] = "Content is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedBlogPost", reqData)
		return c.Next()
	}
}

// Service validates a service create/update request
func Service() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(models.Service)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}
		if reqData.StartingAt < 0 {
			errors["starting_at"] = "Starting price cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedService", reqData)
		return c.Next()
	}
}

// Quotation validates a public quotation submission
func Quotation() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(models.Quotation)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Name) == "" {
			errors["name"] = "Name is required!"
		}
		if reqData.Email == "" || !strings.Contains(reqData.Email, "@") {
			errors["email"] = "A valid email is required!"
		}
		if strings.TrimSpace(reqData.Message) == "" {
			errors["message"] = "Message is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		// Status is always NEW on submission
		reqData.Status = "NEW"

		c.Locals("validatedQuotation", reqData)
		return c.Next()
	}
}

// QuotationStatus validates a quotation status update
func QuotationStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Status string `json:"status"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		switch reqData.Status {
		case "NEW", "REVIEWED", "CLOSED":
		default:
			return middleware.ValidationErrorResponse(c, map[string]string{
				"status": "Status must be NEW, REVIEWED or CLOSED!",
			})
		}

		c.Locals("validatedQuotationStatus", reqData)
		return c.Next()
	}
}
