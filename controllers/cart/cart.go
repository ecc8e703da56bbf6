package cartController

import (
	"porto/database"
	"porto/middleware"
	"porto/models"
	courseModels "porto/models/course"

	"github.com/gofiber/fiber/v2"
)

// AddToCart adds a course to the user's cart
func AddToCart(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", userID).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(int)

	db := database.Database.Db

	// Course must be purchasable
	var course courseModels.Course
	if err := db.Where("id = ? AND is_deleted = false AND is_published = ? AND status = ?", courseID, true, "ACTIVE").
		First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found or not active!", nil)
	}

	// Already enrolled courses cannot be added
	var enrollment courseModels.Enrollment
	if err := db.Where("user_id = ? AND course_id = ? AND is_deleted = false", userID, courseID).
		First(&enrollment).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Already enrolled in this course!", nil)
	}

	// No duplicate cart rows
	var existing models.CartItem
	if err := db.Where("user_id = ? AND course_id = ? AND is_deleted = false", userID, courseID).
		First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Course already in cart!", nil)
	}

	item := models.CartItem{
		UserID:   userID,
		CourseID: uint(courseID),
	}
	if err := db.Create(&item).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to add to cart!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course added to cart!", item)
}

// RemoveFromCart removes a course from the user's cart
func RemoveFromCart(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)
	courseID := c.Locals("courseID").(int)

	db := database.Database.Db

	var item models.CartItem
	if err := db.Where("user_id = ? AND course_id = ? AND is_deleted = false", userID, courseID).
		First(&item).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not in cart!", nil)
	}

	if err := db.Delete(&item).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to remove from cart!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course removed from cart!", nil)
}

// GetCart returns the user's cart with course details and total
func GetCart(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	db := database.Database.Db

	var items []models.CartItem
	if err := db.Where("user_id = ? AND is_deleted = false", userID).Order("created_at desc").
		Find(&items).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch cart!", nil)
	}

	type CartItemWithCourse struct {
		models.CartItem
		CourseTitle string  `json:"courseTitle"`
		Price       float64 `json:"price"`
	}

	var total float64
	result := make([]CartItemWithCourse, len(items))
	for i, item := range items {
		var course courseModels.Course
		db.Where("id = ?", item.CourseID).First(&course)
		result[i] = CartItemWithCourse{
			CartItem:    item,
			CourseTitle: course.Title,
			Price:       course.Price,
		}
		total += course.Price
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Cart fetched successfully!", fiber.Map{
		"items": result,
		"total": total,
		"count": len(result),
	})
}
