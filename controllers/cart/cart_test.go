package cartController

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"porto/config"
	"porto/database"
	"porto/models"
	courseModels "porto/models/course"
	courseValidator "porto/validators/course"

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
		Port:   "3000",
		DBName: ":memory:",
		JWTKey: "test-secret",
	}

	return db
}

func newCartTestApp(userID uint) *fiber.App {
	app := fiber.New()
	injectUser := func(c *fiber.Ctx) error {
		c.Locals("userId", userID)
		return c.Next()
	}

	app.Get("/cart", injectUser, GetCart)
	app.Post("/cart/:id", injectUser, courseValidator.CourseID("id"), AddToCart)
	app.Delete("/cart/:id", injectUser, courseValidator.CourseID("id"), RemoveFromCart)
	return app
}

func TestCartAddRemoveAndTotals(t *testing.T) {
	db := setupTestDB(t)

	user := models.User{Name: "Shopper", Email: "shopper@example.com", Password: "hashed"}
	require.NoError(t, db.Create(&user).Error)

	course := courseModels.Course{Title: "Cart Course", Price: 15, Status: "ACTIVE", IsPublished: true}
	require.NoError(t, db.Create(&course).Error)

	app := newCartTestApp(user.ID)

	req := httptest.NewRequest("POST", fmt.Sprintf("/cart/%d", course.ID), nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	// The same course cannot be added twice
	req = httptest.NewRequest("POST", fmt.Sprintf("/cart/%d", course.ID), nil)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	req = httptest.NewRequest("GET", "/cart", nil)
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result struct {
		Data struct {
			Total float64 `json:"total"`
			Count int     `json:"count"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, float64(15), result.Data.Total)
	assert.Equal(t, 1, result.Data.Count)

	req = httptest.NewRequest("DELETE", fmt.Sprintf("/cart/%d", course.ID), nil)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// Removing again reports not in cart
	req = httptest.NewRequest("DELETE", fmt.Sprintf("/cart/%d", course.ID), nil)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestCartRejectsUnpurchasableCourses(t *testing.T) {
	db := setupTestDB(t)

	user := models.User{Name: "Shopper", Email: "shopper2@example.com", Password: "hashed"}
	require.NoError(t, db.Create(&user).Error)

	draft := courseModels.Course{Title: "Draft Course", Price: 10, Status: "DRAFT"}
	require.NoError(t, db.Create(&draft).Error)

	owned := courseModels.Course{Title: "Owned Course", Price: 10, Status: "ACTIVE", IsPublished: true}
	require.NoError(t, db.Create(&owned).Error)
	require.NoError(t, db.Create(&courseModels.Enrollment{UserID: user.ID, CourseID: owned.ID, Status: "ENROLLED"}).Error)

	app := newCartTestApp(user.ID)

	// Unpublished course
	req := httptest.NewRequest("POST", fmt.Sprintf("/cart/%d", draft.ID), nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	// Already enrolled course
	req = httptest.NewRequest("POST", fmt.Sprintf("/cart/%d", owned.ID), nil)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}
