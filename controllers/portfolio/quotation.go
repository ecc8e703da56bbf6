package portfolioController

import (
	"fmt"
	"log"

	"porto/config"
	"porto/database"
	"porto/middleware"
	"porto/models"
	"porto/utils"

	"github.com/gofiber/fiber/v2"
)

// SubmitQuotation stores a public quote request and notifies the admin
func SubmitQuotation(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedQuotation").(*models.Quotation)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if err := database.Database.Db.Create(reqData).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit quotation!", nil)
	}

	// Notification is best effort; the request itself already succeeded
	if config.AppConfig.AdminEmail != "" {
		go func(q models.Quotation) {
			body := fmt.Sprintf("<p>New quotation request from <b>%s</b> (%s)</p><p>%s</p>", q.Name, q.Email, q.Message)
			if err := utils.SendEmail([]string{config.AppConfig.AdminEmail}, "New quotation request: "+q.Subject, body); err != nil {
				log.Printf("Failed to send quotation notification: %v", err)
			}
		}(*reqData)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Quotation submitted successfully!", fiber.Map{
		"id":     reqData.ID,
		"status": reqData.Status,
	})
}

// GetQuotations lists quote requests (Admin only)
func GetQuotations(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	status := c.Query("status")

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&models.Quotation{}).Where("is_deleted = false")
	if status != "" {
		db = db.Where("status = ?", status)
	}

	var total int64
	db.Count(&total)

	var quotations []models.Quotation
	if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&quotations).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch quotations!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quotations fetched successfully!", fiber.Map{
		"quotations": quotations,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// UpdateQuotationStatus moves a quote request between NEW/REVIEWED/CLOSED (Admin only)
func UpdateQuotationStatus(c *fiber.Ctx) error {
	quotationID := c.Locals("entityID").(int)

	var quotation models.Quotation
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", quotationID).First(&quotation).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quotation not found!", nil)
	}

	reqData, ok := c.Locals("validatedQuotationStatus").(*struct {
		Status string `json:"status"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	quotation.Status = reqData.Status
	if err := database.Database.Db.Save(&quotation).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update quotation!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quotation updated successfully!", quotation)
}
