package authController

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"porto/config"
	"porto/database"
	"porto/middleware"
	"porto/models"
	authValidator "porto/validators/auth"

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

func newAuthTestApp() *fiber.App {
	app := fiber.New()
	app.Post("/auth/signup", authValidator.Signup(), Signup)
	app.Post("/auth/login", authValidator.Login(), Login)
	app.Post("/auth/logout", middleware.AuthMiddleware, Logout)
	app.Get("/user/profile", middleware.AuthMiddleware, GetProfile)
	return app
}

func TestSignupLoginAndSessionLifecycle(t *testing.T) {
	setupTestDB(t)
	app := newAuthTestApp()

	// Signup
	body, _ := json.Marshal(map[string]string{
		"name":     "Jane Dev",
		"email":    "jane@example.com",
		"password": "secret123",
	})
	req := httptest.NewRequest("POST", "/auth/signup", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	// Duplicate email is rejected
	req = httptest.NewRequest("POST", "/auth/signup", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	// Login
	loginBody, _ := json.Marshal(map[string]string{
		"email":    "jane@example.com",
		"password": "secret123",
	})
	req = httptest.NewRequest("POST", "/auth/login", bytes.NewBuffer(loginBody))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var loginResult struct {
		Status bool `json:"status"`
		Data   struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&loginResult))
	require.NotEmpty(t, loginResult.Data.Token)

	// A session row backs the token
	var sessionCount int64
	database.Database.Db.Model(&models.Session{}).Count(&sessionCount)
	assert.Equal(t, int64(1), sessionCount)

	// The token opens the profile
	req = httptest.NewRequest("GET", "/user/profile", nil)
	req.Header.Set("Authorization", "Bearer "+loginResult.Data.Token)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// Logout revokes the session
	req = httptest.NewRequest("POST", "/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer "+loginResult.Data.Token)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// The revoked token no longer works even though the JWT is still valid
	req = httptest.NewRequest("GET", "/user/profile", nil)
	req.Header.Set("Authorization", "Bearer "+loginResult.Data.Token)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	setupTestDB(t)
	app := newAuthTestApp()

	body, _ := json.Marshal(map[string]string{
		"name":     "Jane Dev",
		"email":    "jane@example.com",
		"password": "secret123",
	})
	req := httptest.NewRequest("POST", "/auth/signup", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	loginBody, _ := json.Marshal(map[string]string{
		"email":    "jane@example.com",
		"password": "wrong-password",
	})
	req = httptest.NewRequest("POST", "/auth/login", bytes.NewBuffer(loginBody))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewareRejectsGarbageTokens(t *testing.T) {
	setupTestDB(t)
	app := newAuthTestApp()

	req := httptest.NewRequest("GET", "/user/profile", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	req = httptest.NewRequest("GET", "/user/profile", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestSignupValidation(t *testing.T) {
	setupTestDB(t)
	app := newAuthTestApp()

	// Short password
	body, _ := json.Marshal(map[string]string{
		"name":     "Jane Dev",
		"email":    "jane@example.com",
		"password": "abc",
	})
	req := httptest.NewRequest("POST", "/auth/signup", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	// Email is normalized to lower case
	body, _ = json.Marshal(map[string]string{
		"name":     "Jane Dev",
		"email":    "Jane@Example.COM",
		"password": "secret123",
	})
	req = httptest.NewRequest("POST", "/auth/signup", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var user models.User
	require.NoError(t, database.Database.Db.Where("email = ?", "jane@example.com").First(&user).Error)
	assert.Equal(t, "jane@example.com", user.Email)
}
