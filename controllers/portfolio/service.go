package portfolioController

import (
	"porto/database"
	"porto/middleware"
	"porto/models"

	"github.com/gofiber/fiber/v2"
)

// GetServices lists published services in display order
func GetServices(c *fiber.Ctx) error {
	var services []models.Service
	if err := database.Database.Db.Where("is_deleted = false AND is_published = ?", true).
		Order("order_index asc").Find(&services).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch services!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Services fetched successfully!", services)
}

// CreateService creates a service entry (Admin only)
func CreateService(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedService").(*models.Service)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if err := database.Database.Db.Create(reqData).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create service!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Service created successfully!", reqData)
}

// UpdateService updates a service entry (Admin only)
func UpdateService(c *fiber.Ctx) error {
	serviceID := c.Locals("entityID").(int)

	var service models.Service
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", serviceID).First(&service).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Service not found!", nil)
	}

	reqData, ok := c.Locals("validatedService").(*models.Service)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	service.Title = reqData.Title
	service.Description = reqData.Description
	service.IconURL = reqData.IconURL
	service.StartingAt = reqData.StartingAt
	service.OrderIndex = reqData.OrderIndex
	service.IsPublished = reqData.IsPublished

	if err := database.Database.Db.Save(&service).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update service!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Service updated successfully!", service)
}

// DeleteService soft-deletes a service entry (Admin only)
func DeleteService(c *fiber.Ctx) error {
	serviceID := c.Locals("entityID").(int)

	var service models.Service
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", serviceID).First(&service).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Service not found!", nil)
	}

	service.IsDeleted = true
	if err := database.Database.Db.Save(&service).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete service!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Service deleted successfully!", nil)
}
