package orderController

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"regexp"
	"testing"

	"porto/config"
	walletController "porto/controllers/wallet"
	"porto/database"
	"porto/models"
	courseModels "porto/models/course"
	orderValidator "porto/validators/order"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// In-memory SQLite lives per connection, keep a single one
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	config.AppConfig = &config.Config{
		Port:         "3000",
		DBName:       ":memory:",
		JWTKey:       "test-secret",
		SaltRound:    4,
		SessionHours: 24,
	}

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *models.User {
	user := models.User{
		Name:     "Test Buyer",
		Email:    email,
		Password: "hashed",
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func createTestCourse(t *testing.T, db *gorm.DB, title string, price float64) *courseModels.Course {
	course := courseModels.Course{
		Title:       title,
		Description: "A test course",
		Author:      "Author",
		Price:       price,
		Status:      "ACTIVE",
		IsPublished: true,
	}
	require.NoError(t, db.Create(&course).Error)
	return &course
}

func newOrderTestApp(userID uint) *fiber.App {
	app := fiber.New()
	injectUser := func(c *fiber.Ctx) error {
		c.Locals("userId", userID)
		return c.Next()
	}

	app.Post("/order/create", orderValidator.CreateOrder(), injectUser, CreateOrder)
	app.Post("/order/:id/pay", injectUser, orderValidator.OrderID(), ProcessPayment)
	return app
}

func TestGenerateOrderNumberFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^ORD-\d{8}-[0-9A-F]{8}$`)

	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		number, err := generateOrderNumber()
		require.NoError(t, err)
		assert.Regexp(t, pattern, number)
		assert.False(t, seen[number], "order numbers should not repeat")
		seen[number] = true
	}
}

func TestCreateOrderFromCart(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "buyer@example.com")
	first := createTestCourse(t, db, "Go Basics", 49.99)
	second := createTestCourse(t, db, "Advanced Go", 79.99)

	require.NoError(t, db.Create(&models.CartItem{UserID: user.ID, CourseID: first.ID}).Error)
	require.NoError(t, db.Create(&models.CartItem{UserID: user.ID, CourseID: second.ID}).Error)

	app := newOrderTestApp(user.ID)

	body, _ := json.Marshal(map[string]interface{}{})
	req := httptest.NewRequest("POST", "/order/create", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var order models.Order
	require.NoError(t, db.Where("user_id = ?", user.ID).Preload("Items").First(&order).Error)
	assert.Equal(t, models.PaymentStatusPending, order.PaymentStatus)
	assert.Equal(t, 129.98, order.TotalAmount)
	assert.Len(t, order.Items, 2)

	// Items snapshot title and price at order time
	titles := map[string]float64{}
	for _, item := range order.Items {
		titles[item.CourseTitle] = item.Price
	}
	assert.Equal(t, 49.99, titles["Go Basics"])
	assert.Equal(t, 79.99, titles["Advanced Go"])
}

func TestCreateOrderEmptyCart(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "empty@example.com")
	app := newOrderTestApp(user.ID)

	body, _ := json.Marshal(map[string]interface{}{})
	req := httptest.NewRequest("POST", "/order/create", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCreateOrderAlreadyEnrolled(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "enrolled@example.com")
	course := createTestCourse(t, db, "Owned Course", 10)

	require.NoError(t, db.Create(&courseModels.Enrollment{
		UserID:   user.ID,
		CourseID: course.ID,
		Status:   "ENROLLED",
	}).Error)

	app := newOrderTestApp(user.ID)

	body, _ := json.Marshal(map[string]interface{}{"courseIds": []uint{course.ID}})
	req := httptest.NewRequest("POST", "/order/create", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestProcessPaymentSettlesOrder(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "payer@example.com")
	course := createTestCourse(t, db, "Paid Course", 25)

	_, err := walletController.Credit(db, user.ID, 100, models.TransactionTypeDeposit, "Test funds", nil)
	require.NoError(t, err)

	require.NoError(t, db.Create(&models.CartItem{UserID: user.ID, CourseID: course.ID}).Error)

	app := newOrderTestApp(user.ID)

	body, _ := json.Marshal(map[string]interface{}{"courseIds": []uint{course.ID}})
	req := httptest.NewRequest("POST", "/order/create", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var order models.Order
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&order).Error)

	req = httptest.NewRequest("POST", fmt.Sprintf("/order/%d/pay", order.ID), nil)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// The order is completed with a paid timestamp
	require.NoError(t, db.First(&order, order.ID).Error)
	assert.Equal(t, models.PaymentStatusCompleted, order.PaymentStatus)
	assert.NotNil(t, order.PaidAt)

	// The wallet was debited exactly once
	var wallet models.Wallet
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&wallet).Error)
	assert.Equal(t, float64(75), wallet.Balance)

	// The enrollment exists and the course counter moved
	var enrollment courseModels.Enrollment
	require.NoError(t, db.Where("user_id = ? AND course_id = ?", user.ID, course.ID).First(&enrollment).Error)
	assert.Equal(t, "ENROLLED", enrollment.Status)

	var updated courseModels.Course
	require.NoError(t, db.First(&updated, course.ID).Error)
	assert.Equal(t, uint(1), updated.StudentsCount)

	// The cart was cleared
	var cartCount int64
	db.Model(&models.CartItem{}).Where("user_id = ?", user.ID).Count(&cartCount)
	assert.Equal(t, int64(0), cartCount)
}

func TestProcessPaymentInsufficientFunds(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "poor@example.com")
	course := createTestCourse(t, db, "Expensive Course", 500)

	_, err := walletController.Credit(db, user.ID, 20, models.TransactionTypeDeposit, "Test funds", nil)
	require.NoError(t, err)

	app := newOrderTestApp(user.ID)

	body, _ := json.Marshal(map[string]interface{}{"courseIds": []uint{course.ID}})
	req := httptest.NewRequest("POST", "/order/create", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var order models.Order
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&order).Error)

	req = httptest.NewRequest("POST", fmt.Sprintf("/order/%d/pay", order.ID), nil)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	// Nothing settled: order still pending, balance untouched, no enrollment
	require.NoError(t, db.First(&order, order.ID).Error)
	assert.Equal(t, models.PaymentStatusPending, order.PaymentStatus)
	assert.Nil(t, order.PaidAt)

	var wallet models.Wallet
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&wallet).Error)
	assert.Equal(t, float64(20), wallet.Balance)

	var enrollCount int64
	db.Model(&courseModels.Enrollment{}).Where("user_id = ?", user.ID).Count(&enrollCount)
	assert.Equal(t, int64(0), enrollCount)
}

func TestProcessPaymentTwice(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "double@example.com")
	course := createTestCourse(t, db, "Single Pay Course", 30)

	_, err := walletController.Credit(db, user.ID, 100, models.TransactionTypeDeposit, "Test funds", nil)
	require.NoError(t, err)

	app := newOrderTestApp(user.ID)

	body, _ := json.Marshal(map[string]interface{}{"courseIds": []uint{course.ID}})
	req := httptest.NewRequest("POST", "/order/create", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var order models.Order
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&order).Error)

	req = httptest.NewRequest("POST", fmt.Sprintf("/order/%d/pay", order.ID), nil)
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	req = httptest.NewRequest("POST", fmt.Sprintf("/order/%d/pay", order.ID), nil)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	// Only one debit hit the wallet
	var wallet models.Wallet
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&wallet).Error)
	assert.Equal(t, float64(70), wallet.Balance)
}
