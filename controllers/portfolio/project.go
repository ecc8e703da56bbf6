package portfolioController

import (
	"porto/database"
	"porto/middleware"
	"porto/models"

	"github.com/gofiber/fiber/v2"
)

// GetProjects lists published projects in display order
func GetProjects(c *fiber.Ctx) error {
	var projects []models.Project
	if err := database.Database.Db.Where("is_deleted = false AND is_published = ?", true).
		Order("order_index asc, created_at desc").Find(&projects).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch projects!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Projects fetched successfully!", projects)
}

// CreateProject creates a project entry (Admin only)
func CreateProject(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedProject").(*models.Project)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if err := database.Database.Db.Create(reqData).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create project!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Project created successfully!", reqData)
}

// UpdateProject updates a project entry (Admin only)
func UpdateProject(c *fiber.Ctx) error {
	projectID := c.Locals("entityID").(int)

	var project models.Project
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", projectID).First(&project).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Project not found!", nil)
	}

	reqData, ok := c.Locals("validatedProject").(*models.Project)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	project.Title = reqData.Title
	project.Description = reqData.Description
	project.ThumbnailURL = reqData.ThumbnailURL
	project.LiveURL = reqData.LiveURL
	project.RepoURL = reqData.RepoURL
	project.TechStack = reqData.TechStack
	project.OrderIndex = reqData.OrderIndex
	project.IsPublished = reqData.IsPublished

	if err := database.Database.Db.Save(&project).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update project!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Project updated successfully!", project)
}

// DeleteProject soft-deletes a project entry (Admin only)
func DeleteProject(c *fiber.Ctx) error {
	projectID := c.Locals("entityID").(int)

	var project models.Project
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", projectID).First(&project).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Project not found!", nil)
	}

	project.IsDeleted = true
	if err := database.Database.Db.Save(&project).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete project!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Project deleted successfully!", nil)
}
