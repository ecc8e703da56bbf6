package authController

import (
	"log"
	"time"

	"porto/config"
	"porto/database"
	"porto/middleware"
	"porto/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Signup registers a new user account
func Signup(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSignup").(*struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// Check if email is already registered
	var existingUser models.User
	if err := db.Where("email = ? AND is_deleted = false", reqData.Email).First(&existingUser).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email already registered!", nil)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Failed to hash password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create account!", nil)
	}

	user := models.User{
		Name:     reqData.Name,
		Email:    reqData.Email,
		Password: string(hashedPassword),
	}

	if err := db.Create(&user).Error; err != nil {
		log.Printf("Failed to create user: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create account!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Account created successfully!", fiber.Map{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
	})
}

// Login verifies credentials and opens a new session
func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("email = ? AND is_deleted = false", reqData.Email).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid email or password!", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid email or password!", nil)
	}

	expiresAt := time.Now().Add(time.Duration(config.AppConfig.SessionHours) * time.Hour)

	session := models.Session{
		SessionID: uuid.NewString(),
		UserID:    user.ID,
		ExpiresAt: expiresAt,
		UserAgent: c.Get("User-Agent"),
		IP:        c.IP(),
	}

	tx := db.Begin()

	if err := tx.Create(&session).Error; err != nil {
		tx.Rollback()
		log.Printf("Failed to create session: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Login failed!", nil)
	}

	user.LastLogin = time.Now()
	if err := tx.Save(&user).Error; err != nil {
		tx.Rollback()
		log.Printf("Failed to update last login: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Login failed!", nil)
	}

	tx.Commit()

	token, err := middleware.GenerateSessionToken(session.SessionID, user.ID, expiresAt)
	if err != nil {
		log.Printf("Failed to sign session token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Login failed!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful!", fiber.Map{
		"token":     token,
		"expiresAt": expiresAt,
		"user": fiber.Map{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}

// Logout revokes the current session
func Logout(c *fiber.Ctx) error {
	sessionID, ok := c.Locals("sessionId").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	now := time.Now()
	if err := database.Database.Db.Model(&models.Session{}).
		Where("session_id = ?", sessionID).
		Update("revoked_at", &now).Error; err != nil {
		log.Printf("Failed to revoke session: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Logout failed!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Logged out successfully!", nil)
}

// GetProfile returns the authenticated user's profile
func GetProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", userID).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched!", user)
}
