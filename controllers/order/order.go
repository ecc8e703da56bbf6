package orderController

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"
	"strings"
	"time"

	"porto/database"
	"porto/middleware"
	"porto/models"
	courseModels "porto/models/course"
	walletController "porto/controllers/wallet"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// generateOrderNumber returns an order number of the form ORD-YYYYMMDD-XXXXXXXX
func generateOrderNumber() (string, error) {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return fmt.Sprintf("ORD-%s-%s", time.Now().Format("20060102"), strings.ToUpper(hex.EncodeToString(b))), nil
}

// CreateOrder converts the requested courses (or the user's cart) into a
// pending order with price and title snapshots.
func CreateOrder(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", userID).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	reqData, ok := c.Locals("validatedCreateOrder").(*struct {
		CourseIDs     []uint `json:"courseIds"`
		PaymentMethod string `json:"paymentMethod"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	courseIDs := reqData.CourseIDs
	if len(courseIDs) == 0 {
		// Fall back to the user's cart
		var cartItems []models.CartItem
		if err := db.Where("user_id = ? AND is_deleted = false", userID).Find(&cartItems).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load cart!", nil)
		}
		for _, item := range cartItems {
			courseIDs = append(courseIDs, item.CourseID)
		}
	}

	if len(courseIDs) == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Cart is empty!", nil)
	}

	// Reject when the user already owns any of the requested courses
	var enrolledCount int64
	db.Model(&courseModels.Enrollment{}).
		Where("user_id = ? AND course_id IN ? AND is_deleted = false", userID, courseIDs).
		Count(&enrolledCount)
	if enrolledCount > 0 {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Already enrolled in one or more of these courses!", nil)
	}

	// All courses must exist and be purchasable
	var courses []courseModels.Course
	if err := db.Where("id IN ? AND is_deleted = false AND is_published = ? AND status = ?", courseIDs, true, "ACTIVE").
		Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load courses!", nil)
	}
	if len(courses) != len(courseIDs) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "One or more courses not found or not active!", nil)
	}

	orderNumber, err := generateOrderNumber()
	if err != nil {
		log.Printf("Failed to generate order number: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create order!", nil)
	}

	var totalAmount float64
	items := make([]models.OrderItem, 0, len(courses))
	for _, course := range courses {
		totalAmount += course.Price
		items = append(items, models.OrderItem{
			CourseID:    course.ID,
			CourseTitle: course.Title,
			Price:       course.Price,
		})
	}

	order := models.Order{
		OrderNumber:   orderNumber,
		UserID:        userID,
		TotalAmount:   totalAmount,
		FinalAmount:   totalAmount,
		PaymentMethod: reqData.PaymentMethod,
		PaymentStatus: models.PaymentStatusPending,
	}

	tx := db.Begin()

	if err := tx.Create(&order).Error; err != nil {
		tx.Rollback()
		log.Printf("Failed to create order: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create order!", nil)
	}

	for i := range items {
		items[i].OrderID = order.ID
	}
	if err := tx.Create(&items).Error; err != nil {
		tx.Rollback()
		log.Printf("Failed to create order items: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create order!", nil)
	}

	tx.Commit()

	order.Items = items

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Order created successfully!", order)
}

// ProcessPayment settles a pending order: the wallet debit, the completed
// status, the enrollments, the student counters and the cart cleanup all
// commit in one transaction or not at all.
func ProcessPayment(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", userID).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	orderID := c.Locals("orderID").(int)

	db := database.Database.Db

	var order models.Order
	if err := db.Where("id = ? AND user_id = ? AND is_deleted = false", orderID, userID).
		Preload("Items").First(&order).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Order not found!", nil)
	}

	if order.PaymentStatus == models.PaymentStatusCompleted {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Order already paid!", nil)
	}
	if order.PaymentStatus != models.PaymentStatusPending {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Order is not payable!", nil)
	}

	tx := db.Begin()

	txn, err := walletController.Debit(tx, userID, order.FinalAmount, models.TransactionTypePurchase,
		"order", order.ID, order.OrderNumber, "Order payment "+order.OrderNumber)
	if err != nil {
		tx.Rollback()
		if err == walletController.ErrInsufficientFunds {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Insufficient wallet balance!", nil)
		}
		log.Printf("Wallet debit failed for order %s: %v", order.OrderNumber, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process payment!", nil)
	}

	paidAt := time.Now()
	order.PaymentStatus = models.PaymentStatusCompleted
	order.PaidAt = &paidAt
	if err := tx.Save(&order).Error; err != nil {
		tx.Rollback()
		log.Printf("Failed to mark order %s paid: %v", order.OrderNumber, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process payment!", nil)
	}

	for _, item := range order.Items {
		// Insert the enrollment unless one already exists
		var existing courseModels.Enrollment
		err := tx.Where("user_id = ? AND course_id = ? AND is_deleted = false", userID, item.CourseID).
			First(&existing).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			tx.Rollback()
			log.Printf("Enrollment lookup failed for order %s: %v", order.OrderNumber, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process payment!", nil)
		}

		enrollment := courseModels.Enrollment{
			UserID:   userID,
			CourseID: item.CourseID,
			Status:   "ENROLLED",
		}
		if err := tx.Create(&enrollment).Error; err != nil {
			tx.Rollback()
			log.Printf("Enrollment failed for order %s: %v", order.OrderNumber, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process payment!", nil)
		}

		if err := tx.Model(&courseModels.Course{}).Where("id = ?", item.CourseID).
			Update("students_count", gorm.Expr("students_count + 1")).Error; err != nil {
			tx.Rollback()
			log.Printf("Students count update failed for order %s: %v", order.OrderNumber, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process payment!", nil)
		}
	}

	// Clear the user's cart
	if err := tx.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error; err != nil {
		tx.Rollback()
		log.Printf("Cart cleanup failed for order %s: %v", order.OrderNumber, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process payment!", nil)
	}

	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment processed successfully!", fiber.Map{
		"orderNumber":   order.OrderNumber,
		"paymentStatus": order.PaymentStatus,
		"amountPaid":    order.FinalAmount,
		"balanceAfter":  txn.BalanceAfter,
		"paidAt":        order.PaidAt,
	})
}

// GetOrders returns the user's orders, newest first
func GetOrders(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	db := database.Database.Db

	query := db.Model(&models.Order{}).Where("user_id = ? AND is_deleted = false", userID)

	var total int64
	query.Count(&total)

	var orders []models.Order
	if err := query.Preload("Items").Order("created_at desc").
		Offset(offset).Limit(limit).Find(&orders).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch orders!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Orders fetched successfully!", fiber.Map{
		"orders": orders,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// GetOrderDetails returns a single order with its items
func GetOrderDetails(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)
	orderID := c.Locals("orderID").(int)

	var order models.Order
	if err := database.Database.Db.Where("id = ? AND user_id = ? AND is_deleted = false", orderID, userID).
		Preload("Items").First(&order).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Order not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Order fetched successfully!", order)
}
