package portfolioController

import (
	"porto/database"
	"porto/middleware"
	"porto/models"

	"github.com/gofiber/fiber/v2"
)

// GetSkills lists published skills grouped by category order
func GetSkills(c *fiber.Ctx) error {
	category := c.Query("category")

	db := database.Database.Db.Where("is_deleted = false AND is_published = ?", true)
	if category != "" {
		db = db.Where("category = ?", category)
	}

	var skills []models.Skill
	if err := db.Order("category asc, order_index asc").Find(&skills).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch skills!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Skills fetched successfully!", skills)
}

// CreateSkill creates a skill entry (Admin only)
func CreateSkill(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSkill").(*models.Skill)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if err := database.Database.Db.Create(reqData).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create skill!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Skill created successfully!", reqData)
}

// UpdateSkill updates a skill entry (Admin only)
func UpdateSkill(c *fiber.Ctx) error {
	skillID := c.Locals("entityID").(int)

	var skill models.Skill
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", skillID).First(&skill).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Skill not found!", nil)
	}

	reqData, ok := c.Locals("validatedSkill").(*models.Skill)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	skill.Name = reqData.Name
	skill.Category = reqData.Category
	skill.Level = reqData.Level
	skill.IconURL = reqData.IconURL
	skill.OrderIndex = reqData.OrderIndex
	skill.IsPublished = reqData.IsPublished

	if err := database.Database.Db.Save(&skill).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update skill!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Skill updated successfully!", skill)
}

// DeleteSkill soft-deletes a skill entry (Admin only)
func DeleteSkill(c *fiber.Ctx) error {
	skillID := c.Locals("entityID").(int)

	var skill models.Skill
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", skillID).First(&skill).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Skill not found!", nil)
	}

	skill.IsDeleted = true
	if err := database.Database.Db.Save(&skill).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete skill!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Skill deleted successfully!", nil)
}
